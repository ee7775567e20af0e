// Command measurements generates synthetic testing measurements for a
// roster of athletes and writes them as CSV.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fieldlab/combine/internal/adapters/roster"
	"github.com/fieldlab/combine/internal/adapters/sink"
	"github.com/fieldlab/combine/internal/config"
	"github.com/fieldlab/combine/internal/generator"
	"github.com/fieldlab/combine/pkg/logger"
	"github.com/fieldlab/combine/pkg/metrics"
)

// HTTP server timeout constants for the optional metrics endpoint.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
)

const dateLayout = "2006-01-02"

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("measurements: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env); flags override.
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var (
		rosterPath  = flag.String("roster", "", "Path to roster CSV (required)")
		outPath     = flag.String("out", "", "Output measurements CSV (required)")
		trials      = flag.Int("trials", cfg.Trials, "Trials per metric per date")
		datesArg    = flag.String("dates", "", "Comma-separated test dates YYYY-MM-DD; drawn randomly if omitted")
		randomDates = flag.Int("random-dates", cfg.RandomDates, "If no -dates, how many random dates to draw")
		dateStart   = flag.String("date-start", cfg.DateStart, "Start of random date window YYYY-MM-DD")
		dateEnd     = flag.String("date-end", cfg.DateEnd, "End of random date window YYYY-MM-DD")
		seed        = flag.Int64("seed", cfg.Seed, "Random seed for reproducibility")
		metricsAddr = flag.String("metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address while running (empty: disabled)")
		logLevel    = flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	)
	flag.Parse()

	if err := logger.SetLevelString(*logLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log level; falling back to info", logger.String("log_level", *logLevel))
		_ = logger.SetLevelString("info")
	}

	if *rosterPath == "" || *outPath == "" {
		flag.Usage()
		return errors.New("-roster and -out are required")
	}

	dates, err := parseDates(*datesArg)
	if err != nil {
		return err
	}
	windowStart, err := time.Parse(dateLayout, *dateStart)
	if err != nil {
		return fmt.Errorf("parse -date-start: %w", err)
	}
	windowEnd, err := time.Parse(dateLayout, *dateEnd)
	if err != nil {
		return fmt.Errorf("parse -date-end: %w", err)
	}

	athletes, err := roster.ReadFile(*rosterPath)
	if err != nil {
		return err
	}

	if *metricsAddr != "" {
		go serveMetrics(ctx, *metricsAddr)
	}

	out, err := sink.Create(*outPath)
	if err != nil {
		return err
	}

	runner := generator.New(
		generator.WithTrials(*trials),
		generator.WithSeed(*seed),
		generator.WithLogger(logger.Get()),
		generator.WithMetrics(metrics.Get()),
	)
	stats, err := runner.Run(ctx, generator.Request{
		Roster:      athletes,
		Dates:       dates,
		RandomDates: *randomDates,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}, out)
	if err != nil {
		out.Close() //nolint:errcheck // already failing
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	used := make([]string, len(stats.DatesUsed))
	for i, d := range stats.DatesUsed {
		used[i] = d.Format(dateLayout)
	}
	fmt.Fprintf(os.Stdout, "Wrote measurements: %s\n", *outPath)
	fmt.Fprintf(os.Stdout, "Dates used: %s\n", strings.Join(used, ", "))
	return nil
}

// parseDates splits a comma-separated date list.
func parseDates(arg string) ([]time.Time, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, nil
	}
	parts := strings.Split(arg, ",")
	dates := make([]time.Time, 0, len(parts))
	for _, p := range parts {
		d, err := time.Parse(dateLayout, strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse -dates: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// serveMetrics exposes the Prometheus registry until the context ends.
func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Get().Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Get().Warn(ctx, "metrics endpoint stopped", logger.Error(err))
	}
}
