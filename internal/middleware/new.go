package middleware

import (
	"smart-daily-planner/config"
	"smart-daily-planner/pkg/log"
	"smart-daily-planner/pkg/scope"
)

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	corsConfig  config.CORSConfig
	rateLimiter *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, corsConfig config.CORSConfig, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		corsConfig:  corsConfig,
		rateLimiter: newRateLimiter(rateLimit.RequestsPerMinute, rateLimit.Burst),
	}
}
