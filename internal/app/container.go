package app

import (
	"context"
	"io"

	"github.com/doeshing/ha-assist/internal/application/assist"
	appconfig "github.com/doeshing/ha-assist/internal/application/config"
	"github.com/doeshing/ha-assist/internal/application/doctor"
	"github.com/doeshing/ha-assist/internal/domain"
	"github.com/doeshing/ha-assist/internal/infrastructure/cache"
	"github.com/doeshing/ha-assist/internal/infrastructure/config"
	"github.com/doeshing/ha-assist/internal/infrastructure/conversation"
	"github.com/doeshing/ha-assist/internal/infrastructure/fuzzy"
	"github.com/doeshing/ha-assist/internal/infrastructure/history"
	"github.com/doeshing/ha-assist/internal/pkg/logger"
	"github.com/doeshing/ha-assist/internal/ports"
)

// Options controls how the container is built.
type Options struct {
	// ConfigDir overrides the config directory lookup when non-empty.
	ConfigDir string
	Verbose   bool
	// LogOutput defaults to stderr. Stdout is reserved for host output.
	LogOutput io.Writer
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	Logger        ports.Logger
	AssistService *assist.Service
	DoctorService *doctor.Service
	HistoryStore  *history.SQLiteStore
	ResponseCache *cache.ResponseCache
	Client        *conversation.Client
}

// BuildContainer constructs the dependency graph. Configuration problems are
// fatal; an unusable history database is not.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigDir)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		return nil, err
	}

	log := logger.NewStd(opts.Verbose)
	if opts.LogOutput != nil {
		log = logger.New(opts.LogOutput, opts.Verbose)
	}

	client, err := conversation.NewClient(cfg, nil)
	if err != nil {
		return nil, err
	}

	historyStore := history.NewSQLiteStore(history.DefaultPath(cfg), log)
	responseCache := cache.NewResponseCache()

	assistService := &assist.Service{
		Prefix:  cfg.PrefixOrDefault(),
		History: historyStore,
		Cache:   responseCache,
		Ranker:  fuzzy.NewRanker(),
		Client:  client,
		Logger:  log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		HistoryStore:   historyStore,
		Client:         client,
	}

	log.Debug("container ready", map[string]interface{}{
		"config":   cfgLoader.Path(),
		"history":  historyStore.Path(),
		"endpoint": client.Endpoint(),
	})

	return &Container{
		Config:        cfg,
		ConfigLoader:  cfgLoader,
		Logger:        log,
		AssistService: assistService,
		DoctorService: doctorService,
		HistoryStore:  historyStore,
		ResponseCache: responseCache,
		Client:        client,
	}, nil
}

// Close releases the history database.
func (c *Container) Close() error {
	if c == nil || c.HistoryStore == nil {
		return nil
	}
	return c.HistoryStore.Close()
}
