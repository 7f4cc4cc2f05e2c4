package svc

import (
	"context"
	"crypto/tls"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"time"

	"github.com/fachebot/evm-swap-bot/internal/cache"
	"github.com/fachebot/evm-swap-bot/internal/config"
	"github.com/fachebot/evm-swap-bot/internal/datapi/coingecko"
	"github.com/fachebot/evm-swap-bot/internal/datapi/deepseek"
	"github.com/fachebot/evm-swap-bot/internal/datapi/geckoterminal"
	"github.com/fachebot/evm-swap-bot/internal/dexagg/dodo"
	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/eth"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/model"
	"github.com/fachebot/evm-swap-bot/internal/utils"

	"github.com/ethereum/go-ethereum/ethclient"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config              *config.Config
	HashEncoder         *utils.HashEncoder
	DbClient            *ent.Client
	BotApi              *tgbotapi.BotAPI
	BotUserInfo         *tgbotapi.User
	TransportProxy      *http.Transport
	EthClient           *ethclient.Client
	Chain               *eth.Client
	NonceManager        *eth.NonceManager
	DodoClient          *dodo.Client
	CoinGeckoClient     *coingecko.Client
	GeckoTerminalClient *geckoterminal.Client
	DeepSeekClient      *deepseek.Client
	MessageCache        *cache.MessageCache
	TokenMetaCache      *cache.TokenMetaCache
	PriceCache          *cache.PriceCache
	NonceModel          *model.NonceModel
	OrderModel          *model.OrderModel
	SettingsModel       *model.SettingsModel
	WalletModel         *model.WalletModel
}

func NewServiceContext(c *config.Config, ethClient *ethclient.Client) *ServiceContext {
	// 创建hash编码器
	salt := os.Getenv("SWAPBOT_HASH_SALT")
	if salt == "" {
		salt = "q2Fv8wYr=5cX]kTm)7ZJp?dN6Gh[sW3ePbAuL4iC"
		logger.Debugf("环境变量 SWAPBOT_HASH_SALT 未设置")
	}
	hashEncoder, err := utils.NewHashEncoder(salt)
	if err != nil {
		logger.Fatalf("创建Hash编码器失败, %v", err)
	}

	// 创建数据库连接
	client, err := ent.Open("sqlite3", "file:data/sqlite.db?mode=rwc&_journal_mode=WAL&_fk=1")
	if err != nil {
		logger.Fatalf("打开数据库失败, %v", err)
	}
	if err = client.Schema.Create(context.Background()); err != nil {
		logger.Fatalf("创建数据库Schema失败, %v", err)
	}

	// 创建SOCKS5代理
	var transportProxy *http.Transport
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("创建SOCKS5代理失败, %v", err)
		}

		transportProxy = &http.Transport{
			Dial:            dialer.Dial,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	// 创建行情客户端
	geckoTerminalClient, err := geckoterminal.NewClient(c.Chain.Id, c.Sock5Proxy)
	if err != nil {
		logger.Fatalf("创建GeckoTerminal客户端失败, %v", err)
	}

	// 创建电报机器人
	tgHttpClient := new(http.Client)
	if transportProxy != nil {
		tgHttpClient.Transport = transportProxy
	}
	botApi, err := tgbotapi.NewBotAPIWithClient(c.TelegramBot.ApiToken, tgbotapi.APIEndpoint, tgHttpClient)
	if err != nil {
		logger.Fatalf("创建电报机器人失败, %v", err)
	}
	botApi.Debug = c.TelegramBot.Debug

	botUserInfo, err := botApi.GetMe()
	if err != nil {
		logger.Fatalf("获取电报机器人信息失败, %v", err)
	}

	chain := eth.NewClient(ethClient, eth.Options{
		MinGasPrice:       new(big.Int).Mul(big.NewInt(c.Swap.MinGasPriceGwei), big.NewInt(1_000_000_000)),
		GasLimitBufferPct: c.Swap.GasLimitBufferPct,
		ConfirmTimeout:    time.Duration(c.Swap.ConfirmTimeoutSeconds) * time.Second,
	})

	svcCtx := &ServiceContext{
		Config:              c,
		HashEncoder:         hashEncoder,
		DbClient:            client,
		BotApi:              botApi,
		BotUserInfo:         &botUserInfo,
		TransportProxy:      transportProxy,
		EthClient:           ethClient,
		Chain:               chain,
		NonceManager:        eth.NewNonceManager(client, ethClient),
		DodoClient:          dodo.NewClient(c.Dodo.Apikey, c.Dodo.BaseUrl, transportProxy),
		CoinGeckoClient:     coingecko.NewClient(c.CoinGecko, transportProxy),
		GeckoTerminalClient: geckoTerminalClient,
		DeepSeekClient:      deepseek.NewClient(c.DeepSeek, transportProxy),
		MessageCache:        cache.NewMessageCache(),
		TokenMetaCache:      cache.NewTokenMetaCache(ethClient),
		PriceCache:          cache.NewPriceCache(),
		NonceModel:          model.NewNonceModel(client.Nonce),
		OrderModel:          model.NewOrderModel(client.Order),
		SettingsModel:       model.NewSettingsModel(client.Settings),
		WalletModel:         model.NewWalletModel(client.Wallet),
	}

	return svcCtx
}

func (svcCtx *ServiceContext) Close() {
	if err := svcCtx.DbClient.Close(); err != nil {
		logger.Errorf("关闭数据库失败, %v", err)
	}
}
