package doctor

import (
	"context"
	"fmt"

	appconfig "github.com/doeshing/ha-assist/internal/application/config"
	"github.com/doeshing/ha-assist/internal/domain"
	"github.com/doeshing/ha-assist/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	HistoryStore   ports.HistoryAdmin
	Client         ports.ConversationClient
}

// Run executes checks and returns a report. A config that cannot be loaded
// stops the run since nothing else can be checked without it.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("prefix %q, language %s", cfg.PrefixOrDefault(), cfg.LanguageOrDefault())))
	}

	checks = append(checks, s.historyCheck(ctx))
	checks = append(checks, s.apiCheck(ctx, cfg))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) historyCheck(ctx context.Context) domain.HealthCheck {
	if s.HistoryStore == nil {
		return warn("History store", "not initialized")
	}
	if !s.HistoryStore.Available() {
		path := s.HistoryStore.Path()
		if path == "" {
			return warn("History store", "no cache directory; suggestions disabled")
		}
		return warn("History store", fmt.Sprintf("%s unavailable; suggestions disabled", path))
	}
	count, err := s.HistoryStore.Count(ctx)
	if err != nil {
		return warn("History store", err.Error())
	}
	return ok("History store", fmt.Sprintf("%s (%d entries)", s.HistoryStore.Path(), count))
}

func (s *Service) apiCheck(ctx context.Context, cfg domain.Config) domain.HealthCheck {
	if s.Client == nil {
		return warn("Home Assistant API", "client not initialized")
	}
	if err := s.Client.Ping(ctx); err != nil {
		return fail("Home Assistant API", err.Error())
	}
	return ok("Home Assistant API", fmt.Sprintf("reachable at %s", cfg.URL))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
