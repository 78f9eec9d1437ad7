package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"loan-amortizer/config"
	"loan-amortizer/domain"
	"loan-amortizer/input"
	"loan-amortizer/logging"
	"loan-amortizer/render"
	"loan-amortizer/repository"
	"loan-amortizer/service"
	"loan-amortizer/tui"
)

const (
	exitOK           = 0
	exitError        = 1
	exitNoResult     = 2
	exitNotConverged = 3

	redisPingTimeout = 2 * time.Second
	redisKeyPrefix   = "loan-amortizer:"
)

type options struct {
	fields  input.Fields
	print   bool
	json    bool
	tui     bool
	rows    int
	envFile string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, now time.Time, stderr io.Writer) (options, error) {
	d := input.Defaults(now)
	var o options

	fs := flag.NewFlagSet("loan-amortizer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.fields.OriginalAmount, "original", d.OriginalAmount, "original loan amount")
	fs.StringVar(&o.fields.Balance, "balance", d.Balance, "remaining balance to amortize")
	fs.StringVar(&o.fields.RatePercent, "rate", d.RatePercent, "annual interest rate in percent")
	fs.StringVar(&o.fields.TermYears, "term", d.TermYears, "term in years")
	fs.StringVar(&o.fields.StartDate, "start", d.StartDate, "first payment month (YYYY-MM)")
	fs.StringVar(&o.fields.TaxAmount, "tax", d.TaxAmount, "property tax amount")
	fs.StringVar(&o.fields.TaxFrequency, "tax-frequency", d.TaxFrequency, "tax frequency: monthly or annual")
	fs.StringVar(&o.fields.ExtraAmount, "extra", d.ExtraAmount, "extra principal payment amount")
	fs.StringVar(&o.fields.ExtraFrequency, "extra-frequency", d.ExtraFrequency, "extra payment frequency: monthly or annual")
	fs.StringVar(&o.fields.ExtraStartDate, "extra-start", d.ExtraStartDate, "first month with extra payments (YYYY-MM)")

	fs.BoolVar(&o.print, "print", false, "write a printable document")
	fs.BoolVar(&o.json, "json", false, "write the result as JSON")
	fs.BoolVar(&o.tui, "tui", false, "start the interactive calculator")
	fs.IntVar(&o.rows, "rows", 0, "payments shown in the schedule table, 0 for all")
	fs.StringVar(&o.envFile, "env", ".env", "environment file to load")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return options{}, errors.New("unexpected arguments")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	now := time.Now()

	opts, err := parseFlags(args, now, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return exitError
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	logger, closeLog, err := newLogger(cfg, stderr, opts.tui)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening log file: %v\n", err)
		return exitError
	}
	defer closeLog()
	logger = logger.With(logging.FieldRunID, uuid.NewString())
	logging.SetDefault(logger)

	cache, closeCache := newScheduleCache(ctx, cfg, logger)
	defer closeCache()

	amortization := service.NewAmortizationService(cache, logger)
	comparison := service.NewComparisonService(amortization, logger)

	if opts.tui {
		return runTUI(ctx, comparison, logger)
	}

	in := input.Collect(opts.fields, now)
	cmp, ok := comparison.Compare(ctx, in)
	if !ok {
		_ = render.New(render.PlainTheme()).Prompt(stderr)
		return exitNoResult
	}

	if err := write(stdout, opts, in, cmp, now); err != nil {
		logger.ErrorContext(ctx, "Failed to write output", logging.FieldOperation, logging.OpRender, logging.FieldError, err)
		return exitError
	}

	if !cmp.Scenario.Converged {
		return exitNotConverged
	}
	return exitOK
}

func write(w io.Writer, opts options, in domain.LoanInputs, cmp domain.Comparison, now time.Time) error {
	switch {
	case opts.json:
		return render.JSON(w, cmp)
	case opts.print:
		return render.PrintView(w, in, cmp, now)
	}

	r := render.New(render.ColorTheme())
	if err := r.Summary(w, cmp.Scenario); err != nil {
		return err
	}
	if err := r.Comparison(w, cmp); err != nil {
		return err
	}
	return r.ScheduleTable(w, cmp.Scenario, opts.rows)
}

func runTUI(ctx context.Context, comparison *service.ComparisonService, logger *logging.Logger) int {
	p := tea.NewProgram(tui.New(ctx, comparison, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.ErrorContext(ctx, "Interactive calculator failed", logging.FieldError, err)
		return exitError
	}
	return exitOK
}

// newLogger logs to LOG_FILE when set. Without it the CLI logs to stderr
// and the TUI discards records, the terminal belongs to the UI.
func newLogger(cfg *config.Config, stderr io.Writer, interactive bool) (*logging.Logger, func(), error) {
	level, _ := logging.ParseLevel(cfg.LogLevel)
	lc := logging.DefaultConfig()
	lc.Level = level
	lc.Format = cfg.LogFormat
	lc.Output = stderr

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		lc.Output = f
		return logging.New(lc), func() { f.Close() }, nil
	}
	if interactive {
		return logging.Discard(), func() {}, nil
	}
	return logging.New(lc), func() {}, nil
}

// newScheduleCache builds the configured memoization backend. An unreachable
// redis falls back to the in-process cache.
func newScheduleCache(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*repository.ScheduleCache, func()) {
	switch cfg.CacheBackend {
	case config.CacheBackendNone:
		return repository.NewScheduleCache(nil), func() {}

	case config.CacheBackendRedis:
		redisCache := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   redisKeyPrefix,
			TTL:      cfg.CacheTTL,
		})

		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err == nil {
			logger.InfoContext(ctx, "Using redis schedule cache",
				logging.FieldOperation, logging.OpStartup, logging.FieldBackend, config.CacheBackendRedis)
			return repository.NewScheduleCache(redisCache), func() { redisCache.Close() }
		}

		logger.WarnErr(ctx, "Redis unavailable, falling back to memory cache", err,
			logging.FieldOperation, logging.OpStartup, logging.FieldBackend, config.CacheBackendRedis)
		redisCache.Close()
	}

	cacheLog := logger.WithComponent(logging.ComponentCache)
	memory := repository.NewMemoryCache(cfg.CacheSize, cfg.CacheTTL)
	if cfg.CacheTTL <= 0 {
		return repository.NewScheduleCache(memory), func() {}
	}

	janitor := repository.NewJanitor(memory, cfg.CacheTTL, func(removed int) {
		cacheLog.Debug("Removed expired schedules", logging.FieldBackend, config.CacheBackendMemory, logging.FieldRemoved, removed)
	})
	return repository.NewScheduleCache(memory), janitor.Stop
}
