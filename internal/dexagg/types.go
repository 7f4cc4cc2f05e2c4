package dexagg

import (
	"errors"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrQuoteUnavailable 聚合器无法给出路由报价, 本次交易终止且不重试
	ErrQuoteUnavailable = errors.New("quote unavailable")
	// ErrInvalidRoute 聚合器返回的路由缺少目标合约或calldata
	ErrInvalidRoute = errors.New("invalid route")
)

type QuoteRequest struct {
	ChainId     int64
	FromToken   string
	ToToken     string
	FromAmount  *big.Int
	SlippageBps int
	UserAddr    string
}

// Quote 单次报价结果, 短暂有效且绝不落库
type Quote struct {
	FromToken         string
	ToToken           string
	FromAmount        *big.Int
	To                string
	Data              []byte
	Value             *big.Int
	ExpectedOutput    decimal.Decimal
	PriceImpactPct    decimal.Decimal
	TargetApproveAddr string
	FetchedAt         time.Time
}

// Expired 报价是否超过有效期
func (q *Quote) Expired(ttl time.Duration) bool {
	return time.Since(q.FetchedAt) > ttl
}
