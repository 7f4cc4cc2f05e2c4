package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Chain struct {
	Id             int64  `yaml:"Id"`
	RpcUrl         string `yaml:"RpcUrl"`
	NativeCurrency struct {
		Symbol   string `yaml:"Symbol"`
		Decimals uint8  `yaml:"Decimals"`
	} `yaml:"NativeCurrency"`
	SlippageBps int `yaml:"SlippageBps"`
}

type Dodo struct {
	Apikey  string `yaml:"Apikey"`
	BaseUrl string `yaml:"BaseUrl"`
}

type CoinGecko struct {
	Apikey  string `yaml:"Apikey"`
	BaseUrl string `yaml:"BaseUrl"`
}

type DeepSeek struct {
	Apikey string `yaml:"Apikey"`
	Model  string `yaml:"Model"`
}

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type TelegramBot struct {
	Debug     bool    `yaml:"Debug"`
	ApiToken  string  `yaml:"ApiToken"`
	WhiteList []int64 `yaml:"WhiteList"`
}

func (c *TelegramBot) IsWhiteListUser(userId int64) bool {
	if len(c.WhiteList) == 0 {
		return true
	}
	return slices.Contains(c.WhiteList, userId)
}

type SwapSettings struct {
	MinAmount             decimal.Decimal `yaml:"MinAmount"`
	MaxAmount             decimal.Decimal `yaml:"MaxAmount"`
	SafetyMarginBps       int             `yaml:"SafetyMarginBps"`
	QuoteTTLSeconds       int             `yaml:"QuoteTTLSeconds"`
	ConfirmTimeoutSeconds int             `yaml:"ConfirmTimeoutSeconds"`
	MinGasPriceGwei       int64           `yaml:"MinGasPriceGwei"`
	GasLimitBufferPct     int64           `yaml:"GasLimitBufferPct"`
}

func (c *SwapSettings) Validate() error {
	if c.MinAmount.LessThanOrEqual(decimal.Zero) {
		c.MinAmount = decimal.NewFromFloat(0.005)
	}
	if c.MaxAmount.LessThanOrEqual(decimal.Zero) {
		c.MaxAmount = decimal.NewFromInt(10)
	}
	if c.MaxAmount.LessThanOrEqual(c.MinAmount) {
		return errors.New("MaxAmount 必须大于 MinAmount")
	}

	if c.SafetyMarginBps < 0 || c.SafetyMarginBps >= 10000 {
		return errors.New("SafetyMarginBps 取值范围: [0, 10000)")
	}
	if c.SafetyMarginBps == 0 {
		c.SafetyMarginBps = 200
	}

	if c.QuoteTTLSeconds <= 0 {
		c.QuoteTTLSeconds = 30
	}
	if c.ConfirmTimeoutSeconds <= 0 {
		c.ConfirmTimeoutSeconds = 90
	}
	if c.MinGasPriceGwei <= 0 {
		c.MinGasPriceGwei = 3
	}
	if c.GasLimitBufferPct <= 0 {
		c.GasLimitBufferPct = 50
	}

	return nil
}

type Config struct {
	LogLevel    string       `yaml:"LogLevel"`
	Chain       Chain        `yaml:"Chain"`
	Dodo        Dodo         `yaml:"Dodo"`
	Swap        SwapSettings `yaml:"Swap"`
	CoinGecko   CoinGecko    `yaml:"CoinGecko"`
	DeepSeek    DeepSeek     `yaml:"DeepSeek"`
	Sock5Proxy  Sock5Proxy   `yaml:"Sock5Proxy"`
	TelegramBot TelegramBot  `yaml:"TelegramBot"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, err
	}

	if c.Chain.RpcUrl == "" {
		return nil, errors.New("Chain.RpcUrl 不能为空")
	}
	if c.Chain.NativeCurrency.Decimals == 0 {
		c.Chain.NativeCurrency.Decimals = 18
	}
	if c.Chain.SlippageBps <= 0 || c.Chain.SlippageBps > 2000 {
		return nil, errors.New("Chain.SlippageBps 取值范围: (0, 2000]")
	}

	if c.Dodo.BaseUrl == "" {
		c.Dodo.BaseUrl = "https://api.dodoex.io"
	}
	if c.DeepSeek.Model == "" {
		c.DeepSeek.Model = "deepseek-chat"
	}

	if err = c.Swap.Validate(); err != nil {
		return nil, fmt.Errorf("Swap配置错误: %w", err)
	}

	// 敏感配置允许通过环境变量覆盖
	if v := os.Getenv("SWAPBOT_TG_API_TOKEN"); v != "" {
		c.TelegramBot.ApiToken = v
	}
	if v := os.Getenv("SWAPBOT_DODO_APIKEY"); v != "" {
		c.Dodo.Apikey = v
	}
	if v := os.Getenv("SWAPBOT_DEEPSEEK_APIKEY"); v != "" {
		c.DeepSeek.Apikey = v
	}

	if c.TelegramBot.ApiToken == "" {
		return nil, errors.New("TelegramBot.ApiToken 不能为空")
	}

	return &c, nil
}
