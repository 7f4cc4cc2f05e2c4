package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNetworkName(t *testing.T) {
	assert.Equal(t, "BSC", GetNetworkName(56))
	assert.Equal(t, "Base", GetNetworkName(8453))
	assert.Equal(t, "Arbitrum", GetNetworkName(42161))
	assert.Equal(t, "", GetNetworkName(1))
}

func TestGetBlockExplorerLinks(t *testing.T) {
	hash := "0xabc"
	assert.Equal(t, "https://bscscan.com/tx/0xabc", GetBlockExplorerTxLink(56, hash))
	assert.Equal(t, "https://basescan.org/tx/0xabc", GetBlockExplorerTxLink(8453, hash))
	assert.Equal(t, "https://arbiscan.io/tx/0xabc", GetBlockExplorerTxLink(42161, hash))
	assert.Equal(t, "", GetBlockExplorerTxLink(1, hash))

	assert.Equal(t, "https://bscscan.com/token/0xabc", GetBlockExplorerTokenLink(56, "0xabc"))
	assert.Equal(t, "https://bscscan.com/address/0xabc", GetBlockExplorerAccountLink(56, "0xabc"))
}

func TestGetTokenLinks(t *testing.T) {
	token := "0xdef"
	assert.Equal(t, "https://dexscreener.com/bsc/0xdef", GetDexscreenerTokenLink(56, token))
	assert.Equal(t, "https://www.geckoterminal.com/base/pools/0xdef", GetGeckoTerminalTokenLink(8453, token))
	assert.Equal(t, "", GetDexscreenerTokenLink(1, token))
}
