package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"smart-daily-planner/internal/note/repository"
	"smart-daily-planner/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed note Repository.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("note/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("note/repository/postgre.%s", method)
}
