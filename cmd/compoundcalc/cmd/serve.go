package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cicalc/compound-calculator/internal/advisor"
	"github.com/cicalc/compound-calculator/internal/cache"
	"github.com/cicalc/compound-calculator/internal/calculation"
	"github.com/cicalc/compound-calculator/internal/server"
)

var (
	serveAddr      string
	redisAddr      string
	rateLimit      int
	rateWindow     time.Duration
	disableAdvisor bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP calculation service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the result cache (in-memory when empty)")
	serveCmd.Flags().IntVar(&rateLimit, "rate-limit", 30, "requests per client per window")
	serveCmd.Flags().DurationVar(&rateWindow, "rate-window", time.Minute, "rate limit window")
	serveCmd.Flags().BoolVar(&disableAdvisor, "no-tips", false, "disable AI commentary in responses")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cobraCmd *cobra.Command, _ []string) error {
	logger := newStderrLogger()

	engine := calculation.NewEngine()
	engine.SetLogger(logger)

	var results cache.ResultCache
	if redisAddr != "" {
		logger.Infof("using redis result cache at %s", redisAddr)
		results = cache.NewRedisCache(redisAddr)
	} else {
		results = cache.NewMemoryCache()
	}

	var tipAdvisor *advisor.TipAdvisor
	if !disableAdvisor {
		tipAdvisor = advisor.New(newGenAIClient(cobraCmd.Context()))
		tipAdvisor.Logger = logger
	}

	limiter := server.NewRateLimiter(rateLimit, rateWindow)
	defer limiter.Stop()

	handler := server.NewCalculateHandler(engine, results, tipAdvisor, logger)
	srv := server.New(serveAddr, server.NewMux(handler, limiter))

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", serveAddr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	logger.Infof("shutdown signal received, stopping server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
