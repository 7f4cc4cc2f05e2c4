package coingecko

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fachebot/evm-swap-bot/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNativePrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "binancecoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "test-key", r.Header.Get("x-cg-demo-api-key"))

		json.NewEncoder(w).Encode(map[string]map[string]float64{
			"binancecoin": {"usd": 612.34},
		})
	}))
	defer server.Close()

	client := NewClient(config.CoinGecko{Apikey: "test-key", BaseUrl: server.URL}, nil)
	price, err := client.GetNativePrice(context.Background(), 56)
	require.NoError(t, err)
	assert.Equal(t, "612.34", price.String())

	_, err = client.GetNativePrice(context.Background(), 1)
	assert.Error(t, err)
}

func TestGetTokenPrice(t *testing.T) {
	token := "0x55d398326f99059fF775485246999027B3197955"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/token_price/binance-smart-chain", r.URL.Path)
		assert.Equal(t, token, r.URL.Query().Get("contract_addresses"))

		// 接口返回小写地址
		json.NewEncoder(w).Encode(map[string]map[string]float64{
			"0x55d398326f99059ff775485246999027b3197955": {"usd": 0.999},
		})
	}))
	defer server.Close()

	client := NewClient(config.CoinGecko{BaseUrl: server.URL}, nil)
	price, err := client.GetTokenPrice(context.Background(), 56, token)
	require.NoError(t, err)
	assert.Equal(t, "0.999", price.String())
}

func TestGetTokenPriceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]map[string]float64{})
	}))
	defer server.Close()

	client := NewClient(config.CoinGecko{BaseUrl: server.URL}, nil)
	_, err := client.GetTokenPrice(context.Background(), 56, "0x1111111111111111111111111111111111111111")
	assert.Error(t, err)
}
