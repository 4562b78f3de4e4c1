package app

import (
	"context"
	"time"

	"github.com/doeshing/codesuggest/internal/application/doctor"
	"github.com/doeshing/codesuggest/internal/application/suggest"
	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/infrastructure/cache"
	"github.com/doeshing/codesuggest/internal/infrastructure/config"
	contextcollector "github.com/doeshing/codesuggest/internal/infrastructure/context"
	"github.com/doeshing/codesuggest/internal/infrastructure/extract"
	"github.com/doeshing/codesuggest/internal/infrastructure/history"
	"github.com/doeshing/codesuggest/internal/infrastructure/practices"
	"github.com/doeshing/codesuggest/internal/infrastructure/providers"
	"github.com/doeshing/codesuggest/internal/pkg/logger"
	"github.com/doeshing/codesuggest/internal/ports"
)

// Options selects the config file and log verbosity.
type Options struct {
	ConfigPath string
	Verbose    bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Engine         *suggest.Engine
	Collector      ports.EditorStateCollector
	UsageStore     ports.UsageRepository
	DoctorService  *doctor.Service
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(opts.Verbose)

	rules, err := practices.Load(cfg.Practices.RulesFile)
	if err != nil {
		log.Warn("user rules ignored", map[string]interface{}{"file": cfg.Practices.RulesFile, "error": err.Error()})
		rules, err = practices.LoadDefaults()
		if err != nil {
			return nil, err
		}
	}

	var usage ports.UsageRepository
	if cfg.IsUsageTrackingEnabled() {
		store := history.NewSQLiteStore(cfg.Usage.Database)
		if store.Degraded() {
			log.Warn("sqlite unavailable, using jsonl usage store", map[string]interface{}{"path": store.Path()})
		}
		usage = store
	}

	engine, err := suggest.NewEngine(suggest.Options{
		Cache:         cache.NewSuggestionCache(cfg.GetCacheMaxEntries()),
		History:       history.NewContextHistory(cfg.GetHistorySize()),
		Usage:         usage,
		Logger:        log,
		Clock:         time.Now,
		MaxResults:    cfg.GetMaxResults(),
		RecencyWindow: cfg.GetRecencyWindow(),
	})
	if err != nil {
		return nil, err
	}

	factory := providers.NewFactory(rules, time.Now)
	for _, language := range cfg.GetEnabledProviders() {
		provider, err := factory.ForLanguage(language)
		if err != nil {
			log.Warn("provider skipped", map[string]interface{}{"language": language, "error": err.Error()})
			continue
		}
		engine.RegisterLanguageProvider(provider)
	}

	collector := contextcollector.NewFileCollector(func(ext string) (string, bool) {
		if language, ok := engine.ProviderForExtension(ext); ok {
			return language, true
		}
		return extract.LanguageForExtension(ext)
	})

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		LoadRules:      loadRuleLanguages,
		Usage:          usage,
		Providers:      engine,
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Engine:         engine,
		Collector:      collector,
		UsageStore:     usage,
		DoctorService:  doctorService,
		Logger:         log,
	}, nil
}

func loadRuleLanguages(path string) ([]string, error) {
	catalog, err := practices.Load(path)
	if err != nil {
		return nil, err
	}
	return catalog.Languages(), nil
}
