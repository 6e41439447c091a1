package main

import (
	"context"
	"errors"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mhollan/solstice/pkg/backtest"
	"github.com/mhollan/solstice/pkg/bus"
	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/datasource"
	"github.com/mhollan/solstice/pkg/datasource/duckdb"
	"github.com/mhollan/solstice/pkg/datasource/historical"
	"github.com/mhollan/solstice/pkg/datasource/stream"
	"github.com/mhollan/solstice/pkg/datasource/synthetic"
	"github.com/mhollan/solstice/pkg/exchange/sandbox"
	"github.com/mhollan/solstice/pkg/middleware"
	"github.com/mhollan/solstice/pkg/portfolio"
	"github.com/mhollan/solstice/pkg/report"
	"github.com/mhollan/solstice/pkg/strategy"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

func main() {
	configPath := flag.String("config", "backtest.yaml", "path to the configuration file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	defer logger.Info("done")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("error loading configuration", zap.Error(err))
	}

	source, closeSource, err := openFeed(ctx, logger, cfg)
	if err != nil {
		logger.Fatal("error opening bar feed", zap.Error(err))
	}
	defer closeSource()

	router := bus.NewRouter(cfg.RouterEventCapacity)
	telemetry := middleware.NewTelemetry(logger)
	monitorFlags := middleware.MonitorNone
	if cfg.MonitorEvents {
		monitorFlags = middleware.MonitorAll
	}
	monitor := middleware.NewMonitor(monitorFlags)

	port := portfolio.NewPortfolio(router, cfg.initialCash(),
		portfolio.WithUnitSize(fixed.FromInt64(cfg.UnitSize, 0)))
	simulator := sandbox.NewSimulator(router)

	momentum, err := strategy.NewMomentum(router, cfg.Symbols, cfg.FormationPeriods, cfg.HoldingPeriods)
	if err != nil {
		logger.Fatal("error creating strategy", zap.Error(err))
	}

	engine, err := backtest.NewEngine(router, source, momentum, port, simulator,
		backtest.WithBarDecorators(telemetry.WithBar, monitor.WithBar),
		backtest.WithSignalDecorators(telemetry.WithSignal, monitor.WithSignal),
		backtest.WithOrderDecorators(telemetry.WithOrder, monitor.WithOrder),
		backtest.WithFillDecorators(telemetry.WithFill, monitor.WithFill))
	if err != nil {
		logger.Fatal("error creating engine", zap.Error(err))
	}

	defer func() { engine.Statistics().Print() }()
	defer telemetry.PrintStatistics()

	if err := engine.Run(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Error("error during simulation", zap.Error(err))
			return
		}
	}

	report.Generate(engine.History()).Print(logger)

	if cfg.EquityCurvePath != "" {
		f, err := os.Create(cfg.EquityCurvePath)
		if err != nil {
			logger.Error("error creating equity curve file", zap.Error(err))
			return
		}
		defer func() { _ = f.Close() }()
		if err := report.WriteEquityCurve(f, engine.History()); err != nil {
			logger.Error("error writing equity curve", zap.Error(err))
			return
		}
		logger.Info("equity curve written", zap.String("path", cfg.EquityCurvePath))
	}
}

// openFeed builds the configured bar source. The duckdb feed is loaded
// eagerly into a memory source, the others replay lazily.
func openFeed(ctx context.Context, logger *zap.Logger, cfg *Config) (datasource.BarSource, func(), error) {
	switch cfg.Feed.Kind {
	case "synthetic":
		rng := rand.New(rand.NewSource(cfg.Feed.Seed))
		src := synthetic.NewGenerator(rng, cfg.Symbols, cfg.feedStart(), cfg.feedInterval(), cfg.Feed.Steps)
		return src, func() {}, nil

	case "historical":
		src := historical.NewSource(cfg.Feed.Path)
		if err := src.Open(); err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil

	case "duckdb":
		reader := duckdb.NewReader(cfg.Feed.Path)
		if err := reader.Connect(); err != nil {
			return nil, nil, err
		}
		defer reader.Close()

		from := cfg.feedStart()
		to := time.Now()
		if cfg.Feed.End != "" {
			parsed, err := time.Parse(time.RFC3339, cfg.Feed.End)
			if err != nil {
				return nil, nil, err
			}
			to = parsed
		}

		var bars []common.Bar
		for _, symbol := range cfg.Symbols {
			if err := reader.LoadBars(ctx, symbol, from, to, func(bar common.Bar) error {
				bars = append(bars, bar)
				return nil
			}); err != nil {
				return nil, nil, err
			}
		}
		sort.SliceStable(bars, func(i, j int) bool {
			return bars[i].TimeStamp.Before(bars[j].TimeStamp)
		})
		logger.Info("bars loaded", zap.Int("count", len(bars)))
		return datasource.NewMemoryFromBars(bars), func() {}, nil

	case "stream":
		src := stream.NewSource(logger, cfg.Feed.Url)
		if err := src.Connect(); err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil

	default:
		return nil, nil, errors.New("unknown feed kind")
	}
}
