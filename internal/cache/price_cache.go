package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// PriceCache 行情短缓存, 避免菜单刷新时重复请求行情接口
type PriceCache struct {
	prices *gocache.Cache
}

func NewPriceCache() *PriceCache {
	return &PriceCache{
		prices: gocache.New(time.Second*30, time.Minute),
	}
}

func (c *PriceCache) SetPrice(key string, price decimal.Decimal) {
	c.prices.SetDefault(key, price)
}

func (c *PriceCache) GetPrice(key string) (decimal.Decimal, bool) {
	v, ok := c.prices.Get(key)
	if !ok {
		return decimal.Zero, false
	}
	return v.(decimal.Decimal), true
}
