package geckoterminal

import (
	"math/rand"
)

var (
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:133.0) Gecko/20100101 Firefox/133.0",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.6 Safari/605.1.15",
	}
)

func RandomUserAgent() string {
	return userAgents[rand.Intn(len(userAgents))]
}

func ChainIdToNetwork(chainId int64) (string, bool) {
	switch chainId {
	case 56:
		return "bsc", true
	case 8453:
		return "base", true
	case 42161:
		return "arbitrum", true
	}
	return "", false
}
