package config

import (
	"errors"
	"strings"
	"time"

	"github.com/clemensw/pagemap/pkg/analyzer"
	"github.com/clemensw/pagemap/pkg/analyzer/azure"
	"github.com/clemensw/pagemap/pkg/limiter"
	"github.com/clemensw/pagemap/pkg/otel"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterAnalyzer(id string, p analyzer.Provider) {
	if cfg.analyzers == nil {
		cfg.analyzers = make(map[string]analyzer.Provider)
	}

	if _, ok := cfg.analyzers[""]; !ok {
		cfg.analyzers[""] = p
	}

	cfg.analyzers[id] = p
}

func (cfg *Config) Analyzer(id string) (analyzer.Provider, error) {
	if cfg.analyzers != nil {
		if a, ok := cfg.analyzers[id]; ok {
			return a, nil
		}
	}

	return nil, errors.New("analyzer not found: " + id)
}

type analyzerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Interval string `yaml:"interval"`

	Limit *int `yaml:"limit"`
}

type analyzerContext struct {
	Limiter *rate.Limiter
}

func (cfg *Config) registerAnalyzers(f *configFile) error {
	if f.Analyzers.IsZero() {
		return nil
	}

	var configs map[string]analyzerConfig

	if err := f.Analyzers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Analyzers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := analyzerContext{
			Limiter: createLimiter(config.Limit),
		}

		p, err := createAnalyzer(config, context)

		if err != nil {
			return err
		}

		if _, ok := p.(limiter.Analyzer); !ok {
			p = limiter.NewAnalyzer(context.Limiter, p)
		}

		if _, ok := p.(otel.Analyzer); !ok {
			p = otel.NewAnalyzer(id, p)
		}

		cfg.RegisterAnalyzer(id, p)
	}

	return nil
}

func createAnalyzer(cfg analyzerConfig, context analyzerContext) (analyzer.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "azure":
		return azureAnalyzer(cfg)

	default:
		return nil, errors.New("invalid analyzer type: " + cfg.Type)
	}
}

func azureAnalyzer(cfg analyzerConfig) (analyzer.Provider, error) {
	var options []azure.Option

	if cfg.Token != "" {
		options = append(options, azure.WithToken(cfg.Token))
	}

	if cfg.Interval != "" {
		interval, err := time.ParseDuration(cfg.Interval)

		if err != nil {
			return nil, err
		}

		options = append(options, azure.WithInterval(interval))
	}

	return azure.New(cfg.URL, options...)
}
