package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hyeonwoo/careerfit/internal/config"
	"github.com/hyeonwoo/careerfit/internal/embedding"
	"github.com/hyeonwoo/careerfit/internal/llm"
	"github.com/hyeonwoo/careerfit/internal/logger"
	"github.com/hyeonwoo/careerfit/internal/matching"
	"github.com/hyeonwoo/careerfit/internal/requirements"
	"github.com/hyeonwoo/careerfit/internal/store"
	"github.com/hyeonwoo/careerfit/internal/vectorindex"
)

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to JSON config file")
}

// engine bundles the wired components shared by all commands.
type engine struct {
	cfg          *config.Config
	logger       *zap.Logger
	store        *store.Store
	orchestrator *matching.Orchestrator
	resolver     *requirements.Resolver

	closers []func()
}

// newEngine loads config and wires the full component graph.
func newEngine(ctx context.Context) (*engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	e := &engine{cfg: cfg, logger: log, store: st}
	e.closers = append(e.closers, st.Close, func() { _ = log.Sync() })

	embedder := embedding.NewClient(embedding.Config{
		EndpointURL: cfg.Embedding.EndpointURL,
		APIKey:      cfg.Embedding.APIKey,
		Model:       cfg.Embedding.Model,
		Timeout:     time.Duration(cfg.Embedding.TimeoutSeconds) * time.Second,
	})

	collections := make([]vectorindex.Collection, 0, len(cfg.VectorIndex.ActivityCollections)+1)
	activityNames := make([]string, 0, len(cfg.VectorIndex.ActivityCollections))
	for _, c := range cfg.VectorIndex.ActivityCollections {
		collections = append(collections, vectorindex.Collection{Name: c.Name, Dimension: c.Dimension})
		activityNames = append(activityNames, c.Name)
	}
	collections = append(collections, vectorindex.Collection{
		Name:      cfg.VectorIndex.JobCollection.Name,
		Dimension: cfg.VectorIndex.JobCollection.Dimension,
	})

	index := vectorindex.NewClient(vectorindex.Config{
		BaseURL:     cfg.VectorIndex.BaseURL,
		APIKey:      cfg.VectorIndex.APIKey,
		Collections: collections,
		Timeout:     time.Duration(cfg.VectorIndex.TimeoutSeconds) * time.Second,
	}, log)

	e.orchestrator = matching.New(matching.Config{
		ActivityCollections: activityNames,
		JobCollection:       cfg.VectorIndex.JobCollection.Name,
	}, embedder, index, st, log)

	extractor, err := e.buildExtractor(ctx)
	if err != nil {
		e.close()
		return nil, err
	}
	e.resolver = requirements.NewResolver(extractor, log)

	return e, nil
}

// buildExtractor picks the extraction provider: the HTTP service when
// configured, the LLM when an API key is present, else none (fallback only).
func (e *engine) buildExtractor(ctx context.Context) (requirements.Extractor, error) {
	ext := e.cfg.Extraction
	if ext.URL != "" {
		return requirements.NewExtractionClient(ext.URL, 0)
	}
	if ext.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, ext.GeminiAPIKey, ext.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM extractor: %w", err)
		}
		e.closers = append(e.closers, func() { _ = client.Close() })
		return requirements.NewLLMExtractor(client), nil
	}
	return nil, nil
}

func (e *engine) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// printJSON renders a command result for human consumption.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
