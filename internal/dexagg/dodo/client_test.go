package dodo

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fachebot/evm-swap-bot/internal/dexagg"
	"github.com/fachebot/evm-swap-bot/internal/utils/evm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteRequest() dexagg.QuoteRequest {
	return dexagg.QuoteRequest{
		ChainId:     56,
		FromToken:   evm.NativeTokenCA,
		ToToken:     "0x1111111111111111111111111111111111111111",
		FromAmount:  big.NewInt(1e17),
		SlippageBps: 150,
		UserAddr:    "0x2222222222222222222222222222222222222222",
	}
}

func TestGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "56", query.Get("chainId"))
		assert.Equal(t, evm.NativeTokenCA, query.Get("fromTokenAddress"))
		assert.Equal(t, "100000000000000000", query.Get("fromAmount"))
		// 150bps = 1.5%
		assert.Equal(t, "1.5", query.Get("slippage"))

		json.NewEncoder(w).Encode(map[string]any{
			"status": 200,
			"data": map[string]any{
				"resAmount":         "1234.5",
				"priceImpact":       "0.0012",
				"targetApproveAddr": "0x3333333333333333333333333333333333333333",
				"to":                "0x4444444444444444444444444444444444444444",
				"data":              "0x01020304",
				"value":             "100000000000000000",
				"useSource":         "dodoRoute",
			},
		})
	}))
	defer server.Close()

	client := NewClient("", server.URL, nil)
	quote, err := client.GetQuote(context.Background(), quoteRequest())
	require.NoError(t, err)

	assert.Equal(t, "0x4444444444444444444444444444444444444444", quote.To)
	assert.Equal(t, "0x3333333333333333333333333333333333333333", quote.TargetApproveAddr)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, quote.Data)
	assert.Equal(t, big.NewInt(1e17), quote.Value)
	assert.Equal(t, "1234.5", quote.ExpectedOutput.String())
	assert.Equal(t, "0.12", quote.PriceImpactPct.String())
	assert.False(t, quote.FetchedAt.IsZero())
}

func TestGetQuoteBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": 500})
	}))
	defer server.Close()

	client := NewClient("", server.URL, nil)
	_, err := client.GetQuote(context.Background(), quoteRequest())
	assert.ErrorIs(t, err, dexagg.ErrQuoteUnavailable)
}

func TestGetQuoteInvalidRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": 200,
			"data": map[string]any{
				"resAmount": "0",
				"to":        "0x4444444444444444444444444444444444444444",
				"data":      "0x",
			},
		})
	}))
	defer server.Close()

	client := NewClient("", server.URL, nil)
	_, err := client.GetQuote(context.Background(), quoteRequest())
	assert.ErrorIs(t, err, dexagg.ErrInvalidRoute)
}

func TestGetQuoteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("", server.URL, nil)
	_, err := client.GetQuote(context.Background(), quoteRequest())
	assert.ErrorIs(t, err, dexagg.ErrQuoteUnavailable)
}
