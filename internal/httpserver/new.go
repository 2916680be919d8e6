package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"

	"smart-daily-planner/config"
	"smart-daily-planner/pkg/gcalendar"
	"smart-daily-planner/pkg/llmprovider"
	"smart-daily-planner/pkg/log"
	"smart-daily-planner/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	postgresDB *sqlx.DB
	redis      *goredis.Client
	llm        llmprovider.TextGenerator
	jwtManager scope.Manager
	calendar   *gcalendar.Client

	// Settings
	cors           config.CORSConfig
	rateLimit      config.RateLimitConfig
	planner        config.PlannerConfig
	googleCalendar config.GoogleCalendarConfig
	devLogin       bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sqlx.DB
	// Redis is optional; sessions stay in memory without it.
	Redis      *goredis.Client
	LLM        llmprovider.TextGenerator
	JWTManager scope.Manager
	// Calendar is optional; saved plans are not published without it.
	Calendar *gcalendar.Client

	CORS           config.CORSConfig
	RateLimit      config.RateLimitConfig
	Planner        config.PlannerConfig
	GoogleCalendar config.GoogleCalendarConfig
	DevLogin       bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		redis:          cfg.Redis,
		llm:            cfg.LLM,
		jwtManager:     cfg.JWTManager,
		calendar:       cfg.Calendar,
		cors:           cfg.CORS,
		rateLimit:      cfg.RateLimit,
		planner:        cfg.Planner,
		googleCalendar: cfg.GoogleCalendar,
		devLogin:       cfg.DevLogin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres database is required")
	}
	if srv.llm == nil {
		return errors.New("llm is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	return nil
}
