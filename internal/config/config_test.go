package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYaml = `
LogLevel: debug
Chain:
  Id: 56
  RpcUrl: https://bsc-dataseed.binance.org
  NativeCurrency:
    Symbol: BNB
  SlippageBps: 100
TelegramBot:
  ApiToken: test-token
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(filename, []byte(content), 0o644)
	require.NoError(t, err)
	return filename
}

func TestLoadFromFileDefaults(t *testing.T) {
	c, err := LoadFromFile(writeConfig(t, minimalYaml))
	require.NoError(t, err)

	assert.Equal(t, int64(56), c.Chain.Id)
	assert.Equal(t, uint8(18), c.Chain.NativeCurrency.Decimals)
	assert.Equal(t, "https://api.dodoex.io", c.Dodo.BaseUrl)
	assert.Equal(t, "deepseek-chat", c.DeepSeek.Model)

	assert.True(t, c.Swap.MinAmount.Equal(decimal.NewFromFloat(0.005)))
	assert.True(t, c.Swap.MaxAmount.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 200, c.Swap.SafetyMarginBps)
	assert.Equal(t, 30, c.Swap.QuoteTTLSeconds)
	assert.Equal(t, 90, c.Swap.ConfirmTimeoutSeconds)
	assert.Equal(t, int64(3), c.Swap.MinGasPriceGwei)
	assert.Equal(t, int64(50), c.Swap.GasLimitBufferPct)
}

func TestLoadFromFileMissingRpcUrl(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, `
Chain:
  Id: 56
  SlippageBps: 100
TelegramBot:
  ApiToken: test-token
`))
	assert.Error(t, err)
}

func TestLoadFromFileMissingApiToken(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, `
Chain:
  Id: 56
  RpcUrl: https://bsc-dataseed.binance.org
  SlippageBps: 100
`))
	assert.Error(t, err)
}

func TestLoadFromFileBadSlippage(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, `
Chain:
  Id: 56
  RpcUrl: https://bsc-dataseed.binance.org
  SlippageBps: 5000
TelegramBot:
  ApiToken: test-token
`))
	assert.Error(t, err)
}

func TestLoadFromFileEnvOverride(t *testing.T) {
	t.Setenv("SWAPBOT_TG_API_TOKEN", "env-token")
	t.Setenv("SWAPBOT_DODO_APIKEY", "env-dodo")

	c, err := LoadFromFile(writeConfig(t, minimalYaml))
	require.NoError(t, err)

	assert.Equal(t, "env-token", c.TelegramBot.ApiToken)
	assert.Equal(t, "env-dodo", c.Dodo.Apikey)
}

func TestSwapSettingsValidate(t *testing.T) {
	s := SwapSettings{
		MinAmount: decimal.NewFromInt(5),
		MaxAmount: decimal.NewFromInt(1),
	}
	assert.Error(t, s.Validate())

	s = SwapSettings{SafetyMarginBps: 10000}
	assert.Error(t, s.Validate())

	s = SwapSettings{
		MinAmount:       decimal.NewFromFloat(0.01),
		MaxAmount:       decimal.NewFromInt(5),
		SafetyMarginBps: 300,
	}
	require.NoError(t, s.Validate())
	assert.Equal(t, 300, s.SafetyMarginBps)
	assert.True(t, s.MinAmount.Equal(decimal.NewFromFloat(0.01)))
}

func TestIsWhiteListUser(t *testing.T) {
	c := TelegramBot{}
	assert.True(t, c.IsWhiteListUser(1))

	c.WhiteList = []int64{100, 200}
	assert.True(t, c.IsWhiteListUser(100))
	assert.False(t, c.IsWhiteListUser(1))
}
