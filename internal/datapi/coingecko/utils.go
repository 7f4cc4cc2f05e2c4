package coingecko

func ChainIdToCoinId(chainId int64) (string, bool) {
	switch chainId {
	case 56:
		return "binancecoin", true
	case 8453, 42161:
		return "ethereum", true
	}
	return "", false
}

func ChainIdToPlatform(chainId int64) (string, bool) {
	switch chainId {
	case 56:
		return "binance-smart-chain", true
	case 8453:
		return "base", true
	case 42161:
		return "arbitrum-one", true
	}
	return "", false
}
