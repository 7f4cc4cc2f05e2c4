package geckoterminal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOhlcvList(t *testing.T) {
	var res ohlcvResponse
	err := json.Unmarshal([]byte(`{
		"data": {
			"attributes": {
				"ohlcv_list": [
					[1700003600, 1.2, 1.3, 1.1, 1.25, 5000],
					[1700000000, 1.0, 1.2, 0.9, 1.2, 8000]
				]
			}
		}
	}`), &res)
	require.NoError(t, err)

	candles := parseOhlcvList(res.Data.Attributes.OhlcvList)
	require.Len(t, candles, 2)

	// 老到新排列
	assert.Equal(t, int64(1700000000), candles[0].Timestamp)
	assert.Equal(t, int64(1700003600), candles[1].Timestamp)
	assert.Equal(t, "1.2", candles[0].Close.String())
	assert.Equal(t, "1.25", candles[1].Close.String())
	assert.Equal(t, "5000", candles[1].Volume.String())
}

func TestParseOhlcvListSkipsBadRows(t *testing.T) {
	list := [][]json.Number{
		{"1700000000", "1.0", "1.2", "0.9", "1.1", "100"},
		{"1700003600", "1.1"},
		{"not-a-number", "1.0", "1.2", "0.9", "1.1", "100"},
	}

	candles := parseOhlcvList(list)
	require.Len(t, candles, 1)
	assert.Equal(t, int64(1700000000), candles[0].Timestamp)
}

func TestChainIdToNetwork(t *testing.T) {
	network, ok := ChainIdToNetwork(56)
	require.True(t, ok)
	assert.Equal(t, "bsc", network)

	network, ok = ChainIdToNetwork(8453)
	require.True(t, ok)
	assert.Equal(t, "base", network)

	_, ok = ChainIdToNetwork(1)
	assert.False(t, ok)
}
