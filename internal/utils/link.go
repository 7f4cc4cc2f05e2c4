package utils

import "fmt"

func GetNetworkName(chainId int64) string {
	switch chainId {
	case 56:
		return "BSC"
	case 8453:
		return "Base"
	case 42161:
		return "Arbitrum"
	}
	return ""
}

func getChainSlug(chainId int64) string {
	switch chainId {
	case 56:
		return "bsc"
	case 8453:
		return "base"
	case 42161:
		return "arbitrum"
	}
	return ""
}

func GetDexscreenerTokenLink(chainId int64, token string) string {
	slug := getChainSlug(chainId)
	if slug == "" {
		return ""
	}
	return fmt.Sprintf("https://dexscreener.com/%s/%s", slug, token)
}

func GetGeckoTerminalTokenLink(chainId int64, token string) string {
	slug := getChainSlug(chainId)
	if slug == "" {
		return ""
	}
	return fmt.Sprintf("https://www.geckoterminal.com/%s/pools/%s", slug, token)
}

func getBlockExplorer(chainId int64) string {
	switch chainId {
	case 56:
		return "https://bscscan.com"
	case 8453:
		return "https://basescan.org"
	case 42161:
		return "https://arbiscan.io"
	}
	return ""
}

func GetBlockExplorerTxLink(chainId int64, hash string) string {
	explorer := getBlockExplorer(chainId)
	if explorer == "" {
		return ""
	}
	return fmt.Sprintf("%s/tx/%s", explorer, hash)
}

func GetBlockExplorerTokenLink(chainId int64, token string) string {
	explorer := getBlockExplorer(chainId)
	if explorer == "" {
		return ""
	}
	return fmt.Sprintf("%s/token/%s", explorer, token)
}

func GetBlockExplorerAccountLink(chainId int64, account string) string {
	explorer := getBlockExplorer(chainId)
	if explorer == "" {
		return ""
	}
	return fmt.Sprintf("%s/address/%s", explorer, account)
}
