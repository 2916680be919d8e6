package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"smart-daily-planner/internal/plan/repository"
	"smart-daily-planner/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed daily plan store.
func New(db *sqlx.DB, l log.Logger) repository.PlanRepository {
	if db == nil {
		panic("plan/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("plan/repository/postgre.%s", method)
}
