package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"embedd/internal/config"
	"embedd/internal/generator"
	"embedd/internal/httpapi"
	"embedd/pkg/types"
)

var (
	flagConfig     string
	flagAddr       string
	flagLogLevel   string
	flagQueueDepth int
	flagMaxWaitMS  int
	flagModels     string
)

func main() {
	root := &cobra.Command{
		Use:           "embedd",
		Short:         "Text-embedding daemon with a single serialized model worker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	defaultAddr := ":8080"
	if v := os.Getenv("EMBEDD_ADDR"); v != "" {
		defaultAddr = v
	}
	root.Flags().StringVarP(&flagConfig, "config", "c", "", "Config file (.yaml/.json/.toml)")
	root.Flags().StringVar(&flagAddr, "addr", defaultAddr, "HTTP listen address, e.g. :8080")
	root.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	root.Flags().IntVar(&flagQueueDepth, "queue-depth", 0, "Request queue capacity (0=default)")
	root.Flags().IntVar(&flagMaxWaitMS, "max-wait-ms", 0, "Max milliseconds to wait for a queue slot (0=default)")
	root.Flags().StringVar(&flagModels, "models", "", "Models to load as CSV of kind[:device[:path]], e.g. mock or all-minilm-l12-v2:cpu:/models/minilm.onnx")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "embedd:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	var cfg config.Config
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if cmd.Flags().Changed("addr") || cfg.Addr == "" {
		cfg.Addr = flagAddr
	}
	if flagQueueDepth > 0 {
		cfg.QueueDepth = flagQueueDepth
	}
	if flagMaxWaitMS > 0 {
		cfg.MaxWaitMS = flagMaxWaitMS
	}
	if flagModels != "" {
		models, err := parseModelSpecs(flagModels)
		if err != nil {
			return err
		}
		cfg.Models = models
	}
	if len(cfg.Models) == 0 {
		logger.Warn().Msg("no models configured, loading the mock model")
		cfg.Models = []types.ModelConfig{{Kind: types.ModelKindMock}}
	}

	gen, err := generator.NewWithConfig(generator.GeneratorConfig{
		Models:     cfg.Models,
		QueueDepth: cfg.QueueDepth,
		MaxWait:    time.Duration(cfg.MaxWaitMS) * time.Millisecond,
		Logger:     &logger,
	})
	if err != nil {
		return err
	}
	defer gen.Close()

	// Requests joined to this context abort when a shutdown signal arrives.
	baseCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins)
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(gen)}
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Int("models", len(cfg.Models)).Msg("embedd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-baseCtx.Done():
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q", level)
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger(), nil
}

// parseModelSpecs parses a CSV of model specs, each kind[:device[:path]].
// The path segment may itself contain ':' on non-unix systems, so only the
// first two separators are significant.
func parseModelSpecs(s string) ([]types.ModelConfig, error) {
	var out []types.ModelConfig
	for _, spec := range strings.Split(s, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		parts := strings.SplitN(spec, ":", 3)
		cfg := types.ModelConfig{Kind: types.ModelKind(parts[0])}
		if cfg.Kind == "" {
			return nil, fmt.Errorf("model spec %q has empty kind", spec)
		}
		if len(parts) > 1 && parts[1] != "" {
			cfg.Device = types.DeviceKind(parts[1])
		}
		if len(parts) > 2 {
			p, err := config.ExpandHome(parts[2])
			if err != nil {
				return nil, err
			}
			cfg.Path = p
		}
		out = append(out, cfg)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no model specs in %q", s)
	}
	return out, nil
}
