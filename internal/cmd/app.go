package cmd

import (
	"github.com/eventcal-io/eventcal/internal/api"
	"github.com/eventcal-io/eventcal/internal/config"
	"github.com/eventcal-io/eventcal/internal/events"
	"github.com/eventcal-io/eventcal/internal/likes"
	"github.com/eventcal-io/eventcal/internal/log"
	"github.com/eventcal-io/eventcal/internal/session"
	"github.com/eventcal-io/eventcal/internal/storage"
)

// app holds the wired-up client state for the current invocation.
// initApp builds it once from config, env, and flags before any
// subcommand runs.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	store   *storage.FileStore
	client  *api.Client
	session *session.Store
}

var current *app

func initApp() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags win over env, env wins over the config file.
	if flagAPIURL != "" {
		cfg.API.BaseURL = flagAPIURL
	}
	if flagDataDir != "" {
		cfg.Data.Dir = flagDataDir
	}
	if flagEventsFile != "" {
		cfg.Data.EventsFile = flagEventsFile
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.Logging.Format = flagLogFormat
	}

	logger := newLogger(cfg.Logging.Level, cfg.Logging.Format)
	log.SetDefaultLogger(logger)

	dir := cfg.Data.Dir
	if dir == "" {
		dir = storage.DefaultDir()
	}
	store, err := storage.NewFileStore(dir)
	if err != nil {
		return err
	}

	baseURL := cfg.API.BaseURL
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}
	client := api.NewClient(baseURL, api.WithLogger(logger))

	current = &app{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		client:  client,
		session: session.NewStore(client, store, logger),
	}
	return nil
}

// getCatalog loads the event catalog, honoring a configured override file.
func getCatalog() (*events.Catalog, error) {
	if current.cfg.Data.EventsFile != "" {
		return events.LoadFile(current.cfg.Data.EventsFile)
	}
	return events.Default()
}

func getLikes() (*likes.Set, error) {
	return likes.Load(current.store)
}
