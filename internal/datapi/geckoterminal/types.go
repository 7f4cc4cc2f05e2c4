package geckoterminal

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Pool struct {
	Address           string
	Name              string
	BaseTokenPriceUsd decimal.Decimal
	ReserveInUsd      decimal.Decimal
	VolumeUsd24h      decimal.Decimal
	PriceChange24h    decimal.Decimal
}

// Candle OHLCV单根K线, 时间戳为秒
type Candle struct {
	Timestamp int64
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    decimal.Decimal
}

type poolsResponse struct {
	Data []struct {
		Attributes struct {
			Address           string `json:"address"`
			Name              string `json:"name"`
			BaseTokenPriceUsd string `json:"base_token_price_usd"`
			ReserveInUsd      string `json:"reserve_in_usd"`
			VolumeUsd         struct {
				H24 string `json:"h24"`
			} `json:"volume_usd"`
			PriceChangePercentage struct {
				H24 string `json:"h24"`
			} `json:"price_change_percentage"`
		} `json:"attributes"`
	} `json:"data"`
}

type ohlcvResponse struct {
	Data struct {
		Attributes struct {
			OhlcvList [][]json.Number `json:"ohlcv_list"`
		} `json:"attributes"`
	} `json:"data"`
}
