package dodo

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/fachebot/evm-swap-bot/internal/dexagg"
	"github.com/fachebot/evm-swap-bot/internal/logger"

	"github.com/carlmjohnson/requests"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

type routeData struct {
	ResAmount         decimal.Decimal `json:"resAmount"`
	PriceImpact       decimal.Decimal `json:"priceImpact"`
	TargetApproveAddr string          `json:"targetApproveAddr"`
	To                string          `json:"to"`
	Data              string          `json:"data"`
	Value             string          `json:"value"`
	UseSource         string          `json:"useSource"`
}

type routeResponse struct {
	Status int       `json:"status"`
	Data   routeData `json:"data"`
}

// Client DODO route-service 报价客户端
type Client struct {
	apikey         string
	baseUrl        string
	transportProxy *http.Transport
}

func NewClient(apikey, baseUrl string, transportProxy *http.Transport) *Client {
	if baseUrl == "" {
		baseUrl = "https://api.dodoex.io"
	}
	return &Client{
		apikey:         apikey,
		baseUrl:        baseUrl,
		transportProxy: transportProxy,
	}
}

// GetQuote 请求兑换路由; 报价具有时效性, 任何失败都不在此处重试
func (client *Client) GetQuote(ctx context.Context, req dexagg.QuoteRequest) (*dexagg.Quote, error) {
	httpClient := new(http.Client)
	if client.transportProxy != nil {
		httpClient.Transport = client.transportProxy
	}

	// DODO 的 slippage 参数以百分数表示
	slippage := decimal.NewFromInt(int64(req.SlippageBps)).Div(decimal.NewFromInt(100))

	var response routeResponse
	err := requests.URL(client.baseUrl + "/route-service/v2/widget/getdodoroute").
		Client(httpClient).
		Param("chainId", fmt.Sprint(req.ChainId)).
		Param("fromTokenAddress", req.FromToken).
		Param("toTokenAddress", req.ToToken).
		Param("fromAmount", req.FromAmount.String()).
		Param("slippage", slippage.String()).
		Param("userAddr", req.UserAddr).
		Param("apikey", client.apikey).
		ToJSON(&response).
		Fetch(ctx)
	if err != nil {
		logger.Debugf("[dodo] 请求路由失败, chainId: %d, from: %s, to: %s, %v",
			req.ChainId, req.FromToken, req.ToToken, err)
		return nil, fmt.Errorf("%w: %v", dexagg.ErrQuoteUnavailable, err)
	}

	if response.Status != 200 {
		return nil, fmt.Errorf("%w: status %d", dexagg.ErrQuoteUnavailable, response.Status)
	}

	if response.Data.To == "" || response.Data.Data == "" || response.Data.Data == "0x" {
		return nil, dexagg.ErrInvalidRoute
	}

	data, err := hexutil.Decode(response.Data.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: bad calldata: %v", dexagg.ErrInvalidRoute, err)
	}

	value := big.NewInt(0)
	if response.Data.Value != "" {
		if _, ok := value.SetString(response.Data.Value, 10); !ok {
			return nil, fmt.Errorf("%w: bad value: %s", dexagg.ErrInvalidRoute, response.Data.Value)
		}
	}

	return &dexagg.Quote{
		FromToken:         req.FromToken,
		ToToken:           req.ToToken,
		FromAmount:        new(big.Int).Set(req.FromAmount),
		To:                response.Data.To,
		Data:              data,
		Value:             value,
		ExpectedOutput:    response.Data.ResAmount,
		PriceImpactPct:    response.Data.PriceImpact.Mul(decimal.NewFromInt(100)),
		TargetApproveAddr: response.Data.TargetApproveAddr,
		FetchedAt:         time.Now(),
	}, nil
}
