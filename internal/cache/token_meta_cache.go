package cache

import (
	"context"
	"sync"

	"github.com/fachebot/evm-swap-bot/internal/utils/evm"
)

type TokenMeta struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// TokenMetaCache 代币元数据只读缓存, 元数据不可变所以永不过期
type TokenMetaCache struct {
	caller       evm.ContractCaller
	tokenMetaMap sync.Map
}

func NewTokenMetaCache(caller evm.ContractCaller) *TokenMetaCache {
	return &TokenMetaCache{caller: caller}
}

func (c *TokenMetaCache) GetTokenMeta(ctx context.Context, tokenAddress string) (TokenMeta, error) {
	val, ok := c.tokenMetaMap.Load(tokenAddress)
	if ok {
		return val.(TokenMeta), nil
	}

	tokenmeta, err := evm.GetTokenMeta(ctx, c.caller, tokenAddress)
	if err != nil {
		return TokenMeta{}, err
	}

	ret := TokenMeta{
		Name:     tokenmeta.Name,
		Symbol:   tokenmeta.Symbol,
		Decimals: tokenmeta.Decimals,
	}
	c.tokenMetaMap.Store(tokenAddress, ret)

	return ret, nil
}
