package geckoterminal

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fachebot/evm-swap-bot/internal/config"

	"github.com/Danny-Dasilva/CycleTLS/cycletls"
	"github.com/shopspring/decimal"
)

const (
	baseUrl   = "https://api.geckoterminal.com/api/v2"
	chromeJa3 = "771,4865-4866-4867-49195-49199-49196-49200-52393-52392-49171-49172-156-157-47-53,45-18-27-43-16-0-17513-5-13-35-11-10-51-65281-23-65037,4588-29-23-24,0"
)

// Client GeckoTerminal行情客户端, 该接口有浏览器指纹校验, 普通http.Client会被拦截
type Client struct {
	chainId    int64
	proxy      string
	tlsSession cycletls.CycleTLS
}

func NewClient(chainId int64, sock5Proxy config.Sock5Proxy) (*Client, error) {
	if _, ok := ChainIdToNetwork(chainId); !ok {
		return nil, fmt.Errorf("unsupported chain: %d", chainId)
	}

	var proxy string
	if sock5Proxy.Enable {
		proxy = fmt.Sprintf("socks5://%s:%d", sock5Proxy.Host, sock5Proxy.Port)
	}

	client := &Client{
		chainId:    chainId,
		proxy:      proxy,
		tlsSession: cycletls.Init(),
	}
	return client, nil
}

func (client *Client) get(ctx context.Context, url string, result any) error {
	response, err := client.tlsSession.Do(url, cycletls.Options{
		Ja3:       chromeJa3,
		UserAgent: RandomUserAgent(),
		Proxy:     client.proxy,
		Timeout:   15,
		Headers: map[string]string{
			"Accept": "application/json",
		},
	}, "GET")
	if err != nil {
		return err
	}
	if response.Status != 200 {
		return fmt.Errorf("unexpected status code: %d", response.Status)
	}

	return json.Unmarshal([]byte(response.Body), result)
}

// GetTopPool 查询代币流动性最好的交易池
func (client *Client) GetTopPool(ctx context.Context, token string) (*Pool, error) {
	network, _ := ChainIdToNetwork(client.chainId)
	url := fmt.Sprintf("%s/networks/%s/tokens/%s/pools?page=1", baseUrl, network, token)

	var res poolsResponse
	if err := client.get(ctx, url, &res); err != nil {
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("pool not found, token: %s", token)
	}

	attrs := res.Data[0].Attributes
	pool := &Pool{
		Address:           attrs.Address,
		Name:              attrs.Name,
		BaseTokenPriceUsd: parseDecimal(attrs.BaseTokenPriceUsd),
		ReserveInUsd:      parseDecimal(attrs.ReserveInUsd),
		VolumeUsd24h:      parseDecimal(attrs.VolumeUsd.H24),
		PriceChange24h:    parseDecimal(attrs.PriceChangePercentage.H24),
	}
	return pool, nil
}

// GetOhlcv 查询交易池K线, timeframe 取值 minute/hour/day
func (client *Client) GetOhlcv(ctx context.Context, pool, timeframe string, aggregate, limit int) ([]Candle, error) {
	network, _ := ChainIdToNetwork(client.chainId)
	url := fmt.Sprintf("%s/networks/%s/pools/%s/ohlcv/%s?aggregate=%d&limit=%d",
		baseUrl, network, pool, timeframe, aggregate, limit)

	var res ohlcvResponse
	if err := client.get(ctx, url, &res); err != nil {
		return nil, err
	}

	return parseOhlcvList(res.Data.Attributes.OhlcvList), nil
}

// parseOhlcvList 接口返回时间倒序, 翻转为老到新方便做指标计算
func parseOhlcvList(list [][]json.Number) []Candle {
	candles := make([]Candle, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		row := list[i]
		if len(row) < 6 {
			continue
		}

		ts, err := strconv.ParseInt(row[0].String(), 10, 64)
		if err != nil {
			continue
		}
		candles = append(candles, Candle{
			Timestamp: ts,
			Open:      parseDecimal(row[1].String()),
			High:      parseDecimal(row[2].String()),
			Low:       parseDecimal(row[3].String()),
			Close:     parseDecimal(row[4].String()),
			Volume:    parseDecimal(row[5].String()),
		})
	}
	return candles
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
