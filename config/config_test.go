package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/venuelabs/matching-venue/matching"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, uint32(1), cfg.SymbolID)
	require.Equal(t, "AAPL", cfg.SymbolName)
	require.Equal(t, "0.01", cfg.TickSize.ToFloatString())
	require.True(t, cfg.RiskLimits.MaxOrderQuantity.IsZero())
	require.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	require.Equal(t, "executed-trades", cfg.KafkaTopic)
	require.Empty(t, cfg.MarketDataAPIKey)
	require.Equal(t, time.Minute, cfg.PollInterval)
	require.Equal(t, 5*time.Second, cfg.SpreadMonitorInterval)
	require.False(t, cfg.SimulatorEnabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("SYMBOL_ID", "7")
	t.Setenv("SYMBOL_NAME", "MSFT")
	t.Setenv("TICK_SIZE", "0.05")
	t.Setenv("RISK_MAX_POSITION_QTY", "1000")
	t.Setenv("KAFKA_BROKER_ADDR", "kafka-1:9092, kafka-2:9092")
	t.Setenv("MARKET_DATA_API_KEY", "demo")
	t.Setenv("MARKET_DATA_POLL_INTERVAL", "30s")
	t.Setenv("SIMULATOR_ENABLED", "true")
	t.Setenv("SIMULATOR_ACCOUNTS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9999", cfg.ListenAddr)
	require.Equal(t, uint32(7), cfg.SymbolID)
	require.Equal(t, "MSFT", cfg.SymbolName)
	require.Equal(t, "0.05", cfg.TickSize.ToFloatString())
	require.True(t, cfg.RiskLimits.MaxPositionQuantity.Equals(matching.NewUint(1000).Mul64(matching.UintPrecision)))
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, "demo", cfg.MarketDataAPIKey)
	require.Equal(t, 30*time.Second, cfg.PollInterval)
	require.True(t, cfg.SimulatorEnabled)
	require.Equal(t, 8, cfg.SimulatorAccounts)
}

func TestLoadInvalidValues(t *testing.T) {
	t.Setenv("SYMBOL_ID", "not-a-number")
	_, err := Load()
	require.Error(t, err)
}

func TestGetEnvUnsupportedType(t *testing.T) {
	t.Setenv("SOME_FLOAT", "1.5")
	_, err := getEnv("SOME_FLOAT", 1.5)
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitList("a,b"))
	require.Equal(t, []string{"a"}, splitList(" a ,, "))
	require.Empty(t, splitList(""))
}
