package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/DavidLiedle/gitorg/internal/config"
	"github.com/DavidLiedle/gitorg/internal/display"
	"github.com/DavidLiedle/gitorg/internal/gateway"
	"github.com/DavidLiedle/gitorg/internal/usecase"
)

// pipeline bundles what every data command needs: the configured
// aggregator, the raw fetcher for diagnostics, the loaded config, and the
// global flag values.
type pipeline struct {
	agg     *usecase.Aggregator
	fetcher gateway.Fetcher
	cfg     config.Config
	json    bool
	verbose bool
}

// newPipeline performs the shared setup: load the config file, resolve a
// token, and build the gateway and aggregator around it.
func newPipeline(cmd *cobra.Command) (*pipeline, error) {
	jsonMode, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")
	workers, _ := cmd.Flags().GetInt("concurrency")

	logger := newLogger(verbose)

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	token, err := resolveToken(cfg)
	if err != nil {
		return nil, err
	}
	fetcher, err := gateway.NewGateway(token, logger)
	if err != nil {
		return nil, err
	}
	agg := usecase.NewAggregator(fetcher, usecase.Options{
		Logger:  logger,
		Warn:    display.Warn,
		Workers: workers,
	})
	return &pipeline{
		agg:     agg,
		fetcher: fetcher,
		cfg:     cfg,
		json:    jsonMode,
		verbose: verbose,
	}, nil
}

func newLogger(verbose bool) *log.Logger {
	if verbose {
		return log.New(os.Stderr, "", log.LstdFlags)
	}
	return log.New(io.Discard, "", log.LstdFlags)
}

// resolveToken prefers the stored credential and falls back to the
// GITHUB_TOKEN environment variable, loading a .env file when one is
// present. The token value itself is never logged.
func resolveToken(cfg config.Config) (string, error) {
	if token, err := cfg.Token(); err == nil {
		return token, nil
	}
	_ = godotenv.Load()
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}
	return "", config.ErrNotAuthenticated
}

// resolveOrgs applies the organization priority chain: the --org flag,
// then configured defaults, then every organization the account belongs to.
func (p *pipeline) resolveOrgs(ctx context.Context, explicit string) ([]string, error) {
	return p.agg.ResolveOrgs(ctx, explicit, p.cfg.Defaults.Orgs)
}

// checkRateLimitIfVerbose reports the remaining call budget on stderr
// after a command has produced its output.
func (p *pipeline) checkRateLimitIfVerbose(ctx context.Context) {
	if !p.verbose {
		return
	}
	limit, err := p.fetcher.RateLimitStatus(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not check rate limit: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Rate limit: %d/%d remaining (resets at %s)\n",
		limit.Remaining, limit.Limit, limit.ResetClock())
}
