package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"smart-daily-planner/internal/correction"
	"smart-daily-planner/internal/estimator"
	"smart-daily-planner/internal/fixedschedule"
	"smart-daily-planner/internal/middleware"
	"smart-daily-planner/internal/plan"
	planHTTP "smart-daily-planner/internal/plan/delivery/http"
	"smart-daily-planner/internal/plan/publisher"
	"smart-daily-planner/internal/plan/repository"
	sessionMemory "smart-daily-planner/internal/plan/repository/memory"
	planRepo "smart-daily-planner/internal/plan/repository/postgre"
	sessionRedis "smart-daily-planner/internal/plan/repository/redis"
	planUC "smart-daily-planner/internal/plan/usecase"
	"smart-daily-planner/internal/schedule"
	"smart-daily-planner/internal/suggestion"
	"smart-daily-planner/internal/task"
	"smart-daily-planner/pkg/wallclock"
)

// setupPlanDomain wires the generation components, the session store and the
// optional calendar publisher, then registers /api/v1/plans and /api/v1/ai.
func (srv HTTPServer) setupPlanDomain(
	ctx context.Context,
	api *gin.RouterGroup,
	mw middleware.Middleware,
	taskUC task.UseCase,
	fixedUC fixedschedule.UseCase,
	correctionUC correction.UseCase,
) error {
	workday, err := srv.workday()
	if err != nil {
		return err
	}

	est := estimator.New(srv.llm, srv.l)
	suggester := suggestion.New(srv.llm, srv.l)
	builder := schedule.New(srv.llm, srv.l, workday)

	uc := planUC.New(
		srv.l,
		srv.sessionStore(ctx),
		planRepo.New(srv.postgresDB, srv.l),
		taskUC,
		fixedUC,
		correctionUC,
		est,
		suggester,
		builder,
		srv.publisher(ctx),
	)

	h := planHTTP.New(srv.l, uc)
	planHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Plan domain registered (workday %s-%s)",
		wallclock.Format(workday.DayStart), wallclock.Format(workday.DayEnd))
	return nil
}

func (srv HTTPServer) workday() (schedule.Config, error) {
	var cfg schedule.Config
	if srv.planner.WorkdayStart != "" {
		start, err := wallclock.Parse(srv.planner.WorkdayStart)
		if err != nil {
			return cfg, fmt.Errorf("planner.workday_start: %w", err)
		}
		cfg.DayStart = start
	}
	if srv.planner.WorkdayEnd != "" {
		end, err := wallclock.Parse(srv.planner.WorkdayEnd)
		if err != nil {
			return cfg, fmt.Errorf("planner.workday_end: %w", err)
		}
		cfg.DayEnd = end
	}
	if cfg.DayStart == 0 {
		cfg.DayStart = schedule.DefaultDayStart
	}
	if cfg.DayEnd <= cfg.DayStart {
		cfg.DayEnd = schedule.DefaultDayEnd
	}
	return cfg, nil
}

func (srv HTTPServer) sessionStore(ctx context.Context) repository.SessionRepository {
	if srv.redis != nil {
		srv.l.Infof(ctx, "Planning sessions stored in Redis (ttl=%s)", srv.planner.SessionTTL)
		return sessionRedis.New(srv.redis, srv.planner.SessionTTL, srv.l)
	}
	srv.l.Infof(ctx, "Planning sessions stored in memory (capacity=%d, ttl=%s)",
		srv.planner.SessionCapacity, srv.planner.SessionTTL)
	return sessionMemory.New(srv.planner.SessionCapacity, srv.planner.SessionTTL, srv.l)
}

func (srv HTTPServer) publisher(ctx context.Context) plan.Publisher {
	if srv.calendar == nil {
		srv.l.Infof(ctx, "Google Calendar not configured, saved plans are not published")
		return nil
	}
	return publisher.NewCalendar(srv.calendar, srv.googleCalendar.CalendarID, srv.googleCalendar.TimeZone, srv.l)
}
