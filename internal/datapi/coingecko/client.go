package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fachebot/evm-swap-bot/internal/config"

	"github.com/carlmjohnson/requests"
	"github.com/shopspring/decimal"
)

const defaultBaseUrl = "https://api.coingecko.com/api/v3"

type Client struct {
	apikey         string
	baseUrl        string
	transportProxy *http.Transport
}

func NewClient(c config.CoinGecko, transportProxy *http.Transport) *Client {
	baseUrl := c.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}
	return &Client{
		apikey:         c.Apikey,
		baseUrl:        baseUrl,
		transportProxy: transportProxy,
	}
}

func (client *Client) httpClient() *http.Client {
	httpClient := new(http.Client)
	if client.transportProxy != nil {
		httpClient.Transport = client.transportProxy
	}
	return httpClient
}

// GetNativePrice 查询原生资产的美元价格
func (client *Client) GetNativePrice(ctx context.Context, chainId int64) (decimal.Decimal, error) {
	coinId, ok := ChainIdToCoinId(chainId)
	if !ok {
		return decimal.Zero, fmt.Errorf("unsupported chain: %d", chainId)
	}

	var result map[string]map[string]decimal.Decimal
	builder := requests.URL(client.baseUrl + "/simple/price").
		Client(client.httpClient()).
		Param("ids", coinId).
		Param("vs_currencies", "usd").
		ToJSON(&result)
	if client.apikey != "" {
		builder = builder.Header("x-cg-demo-api-key", client.apikey)
	}

	if err := builder.Fetch(ctx); err != nil {
		return decimal.Zero, err
	}

	price, ok := result[coinId]["usd"]
	if !ok {
		return decimal.Zero, fmt.Errorf("price not found, coin: %s", coinId)
	}
	return price, nil
}

// GetTokenPrice 查询代币合约的美元价格
func (client *Client) GetTokenPrice(ctx context.Context, chainId int64, token string) (decimal.Decimal, error) {
	platform, ok := ChainIdToPlatform(chainId)
	if !ok {
		return decimal.Zero, fmt.Errorf("unsupported chain: %d", chainId)
	}

	var result map[string]map[string]decimal.Decimal
	builder := requests.URL(client.baseUrl + "/simple/token_price/" + platform).
		Client(client.httpClient()).
		Param("contract_addresses", token).
		Param("vs_currencies", "usd").
		ToJSON(&result)
	if client.apikey != "" {
		builder = builder.Header("x-cg-demo-api-key", client.apikey)
	}

	if err := builder.Fetch(ctx); err != nil {
		return decimal.Zero, err
	}

	for addr, prices := range result {
		if strings.EqualFold(addr, token) {
			if price, ok := prices["usd"]; ok {
				return price, nil
			}
		}
	}
	return decimal.Zero, fmt.Errorf("price not found, token: %s", token)
}
