package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"smart-daily-planner/internal/fixedschedule/repository"
	"smart-daily-planner/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed fixed schedule store.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("fixedschedule/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("fixedschedule/repository/postgre.%s", method)
}
