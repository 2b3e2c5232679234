package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/venuelabs/matching-venue/matching"
	"github.com/venuelabs/matching-venue/risk"
)

// Config carries everything the venue binary needs: the HTTP listen
// address, the instrument, risk limits, the market data source and the
// trade feed destination. Every field has a default so the binary runs
// with no environment at all (the market data poller stays off until
// an API key is provided).
type Config struct {
	ListenAddr string

	SymbolID   uint32
	SymbolName string
	TickSize   matching.Uint

	RiskLimits risk.Limits

	KafkaBrokers []string
	KafkaTopic   string

	MarketDataBaseURL string
	MarketDataAPIKey  string
	MarketDataTicker  string
	PollInterval      time.Duration

	SpreadMonitorInterval  time.Duration
	PositionReportInterval time.Duration

	SimulatorEnabled  bool
	SimulatorInterval time.Duration
	SimulatorAccounts int
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{}

	var err error
	if cfg.ListenAddr, err = getEnv("LISTEN_ADDR", ":8080"); err != nil {
		return cfg, err
	}

	symbolID, err := getEnv("SYMBOL_ID", 1)
	if err != nil {
		return cfg, err
	}
	cfg.SymbolID = uint32(symbolID)
	if cfg.SymbolName, err = getEnv("SYMBOL_NAME", "AAPL"); err != nil {
		return cfg, err
	}
	if cfg.TickSize, err = getEnvUint("TICK_SIZE", "0.01"); err != nil {
		return cfg, err
	}

	if cfg.RiskLimits.MaxOrderQuantity, err = getEnvUint("RISK_MAX_ORDER_QTY", "0"); err != nil {
		return cfg, err
	}
	if cfg.RiskLimits.MaxPositionQuantity, err = getEnvUint("RISK_MAX_POSITION_QTY", "0"); err != nil {
		return cfg, err
	}
	if cfg.RiskLimits.MaxNotional, err = getEnvUint("RISK_MAX_NOTIONAL", "0"); err != nil {
		return cfg, err
	}

	brokers, err := getEnv("KAFKA_BROKER_ADDR", "localhost:9092")
	if err != nil {
		return cfg, err
	}
	cfg.KafkaBrokers = splitList(brokers)
	if cfg.KafkaTopic, err = getEnv("TRADES_TOPIC", "executed-trades"); err != nil {
		return cfg, err
	}

	if cfg.MarketDataBaseURL, err = getEnv("MARKET_DATA_BASE_URL", "https://www.alphavantage.co"); err != nil {
		return cfg, err
	}
	if cfg.MarketDataAPIKey, err = getEnv("MARKET_DATA_API_KEY", ""); err != nil {
		return cfg, err
	}
	if cfg.MarketDataTicker, err = getEnv("MARKET_DATA_TICKER", "AAPL"); err != nil {
		return cfg, err
	}
	if cfg.PollInterval, err = getEnvDuration("MARKET_DATA_POLL_INTERVAL", time.Minute); err != nil {
		return cfg, err
	}

	if cfg.SpreadMonitorInterval, err = getEnvDuration("SPREAD_MONITOR_INTERVAL", 5*time.Second); err != nil {
		return cfg, err
	}
	if cfg.PositionReportInterval, err = getEnvDuration("POSITION_REPORT_INTERVAL", 10*time.Second); err != nil {
		return cfg, err
	}

	if cfg.SimulatorEnabled, err = getEnv("SIMULATOR_ENABLED", false); err != nil {
		return cfg, err
	}
	if cfg.SimulatorInterval, err = getEnvDuration("SIMULATOR_INTERVAL", 100*time.Millisecond); err != nil {
		return cfg, err
	}
	if cfg.SimulatorAccounts, err = getEnv("SIMULATOR_ACCOUNTS", 4); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func getEnv[T any](key string, defaultValue T) (T, error) {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}

	var err error
	var parsed any

	switch any(defaultValue).(type) {
	case string:
		return any(v).(T), nil
	case int:
		parsed, err = strconv.Atoi(v)
	case bool:
		parsed, err = strconv.ParseBool(v)
	default:
		return defaultValue, fmt.Errorf("unsupported type for env var %s: %T", key, defaultValue)
	}

	if err != nil {
		return defaultValue, fmt.Errorf("failed to parse env %s as %T: %w", key, defaultValue, err)
	}
	return parsed.(T), nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue, fmt.Errorf("failed to parse env %s as duration: %w", key, err)
	}
	return parsed, nil
}

// getEnvUint parses a fixed-point decimal like "0.01" or "1000".
func getEnvUint(key, defaultValue string) (matching.Uint, error) {
	v, exists := os.LookupEnv(key)
	if !exists {
		v = defaultValue
	}
	parsed, err := matching.NewUintFromFloatString(v)
	if err != nil {
		return matching.NewZeroUint(), fmt.Errorf("failed to parse env %s as decimal: %w", key, err)
	}
	return parsed, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
