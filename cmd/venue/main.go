package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/venuelabs/matching-venue/api"
	"github.com/venuelabs/matching-venue/config"
	"github.com/venuelabs/matching-venue/feed"
	"github.com/venuelabs/matching-venue/marketdata"
	"github.com/venuelabs/matching-venue/matching"
	"github.com/venuelabs/matching-venue/risk"
)

const multithread = true

const shutdownTimeout = 10 * time.Second

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create matching engine with risk admission checks
	riskManager := risk.NewManager(log.Named("risk"), cfg.RiskLimits)
	handler := &venueHandler{log: log.Named("engine"), risk: riskManager}
	engine := matching.NewEngine(handler, riskManager, nil, multithread)
	engine.Start()

	symbol := matching.NewSymbol(cfg.SymbolID, cfg.SymbolName)
	if _, err := engine.AddOrderBook(symbol); err != nil {
		log.Fatal("failed to add order book", zap.Error(err))
	}

	// Order ids are shared by the API, the poller and the simulator
	orderIDs := matching.NewSequence()

	publisher := feed.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log.Named("feed"))
	server := api.NewServer(cfg.ListenAddr, engine, riskManager, []matching.Symbol{symbol}, orderIDs, log.Named("api"))
	handler.server = server
	handler.publisher = publisher

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		publisher.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runSpreadMonitor(ctx, engine, cfg.SymbolID, cfg.SpreadMonitorInterval, log.Named("spread"))
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runPositionReporter(ctx, engine, riskManager, cfg.SymbolID, cfg.PositionReportInterval, log.Named("positions"))
	}()

	if cfg.MarketDataAPIKey != "" {
		client, err := marketdata.NewClient(cfg.MarketDataBaseURL, cfg.MarketDataAPIKey, log.Named("marketdata"))
		if err != nil {
			log.Fatal("failed to create market data client", zap.Error(err))
		}
		poller := marketdata.NewPoller(
			client, engine, symbol, cfg.MarketDataTicker, cfg.TickSize,
			marketDataAccountID, orderIDs, cfg.PollInterval, log.Named("poller"),
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			poller.Run(ctx)
		}()
	} else {
		log.Info("market data poller disabled, no API key configured")
	}

	if cfg.SimulatorEnabled {
		sim := newSimulator(engine, cfg.SymbolID, orderIDs, cfg.SimulatorAccounts, cfg.SimulatorInterval, log.Named("simulator"))
		wg.Add(1)
		go func() {
			defer wg.Done()
			sim.run(ctx)
		}()
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Run()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			log.Error("http server failed", zap.Error(err))
		}
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}

	wg.Wait()
	engine.Stop(false)
	if err := publisher.Close(); err != nil {
		log.Error("trade feed close failed", zap.Error(err))
	}
	log.Info("venue stopped")
}

// marketDataAccountID is the house account synthetic quotes are booked to.
const marketDataAccountID = 1_000_000
