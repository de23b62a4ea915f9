package commands

import (
	"github.com/portalwatch/backend/internal/contracts"
	"github.com/portalwatch/backend/internal/external/cfbd"
	"github.com/portalwatch/backend/internal/external/rosterweb"
	"github.com/portalwatch/backend/pkg/config"
	"github.com/portalwatch/backend/pkg/httputil"
	"github.com/portalwatch/backend/pkg/logger"
)

func newHTTPClient(cfg *config.Config, log *logger.Logger) *httputil.Client {
	return httputil.New(cfg, log).WithRateLimit(cfg.CFBD.RateLimitRPS)
}

func newStatsSource(cfg *config.Config, client *httputil.Client, log *logger.Logger) contracts.StatsSource {
	return cfbd.NewClient(cfg, client, log)
}

func newRosterFallback(cfg *config.Config, client *httputil.Client, log *logger.Logger) contracts.RosterFallback {
	return rosterweb.New(cfg, client, log)
}
