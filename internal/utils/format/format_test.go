package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, "0", Price(decimal.Zero, 4))
	assert.Equal(t, "1234.56", Price(decimal.NewFromFloat(1234.5678), 2))
	assert.Equal(t, "0.0012", Price(decimal.NewFromFloat(0.00123456), 4))
	assert.Equal(t, "0.0001234", Price(decimal.NewFromFloat(0.000123456), 4))
	assert.Equal(t, "0.0{5}1234", Price(decimal.RequireFromString("0.000001234567"), 4))
	assert.Equal(t, "-0.0{5}1234", Price(decimal.RequireFromString("-0.000001234567"), 4))
}

func TestUSD(t *testing.T) {
	assert.Equal(t, "1,234,567.89", USD(decimal.NewFromFloat(1234567.89)))
	assert.Equal(t, "0.1234", USD(decimal.NewFromFloat(0.123456)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "+12.34%", Percent(decimal.NewFromFloat(12.345)))
	assert.Equal(t, "-5.67%", Percent(decimal.NewFromFloat(-5.678)))
	assert.Equal(t, "0%", Percent(decimal.Zero))
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x1234...cdef", ShortAddress("0x123456789abcdef0123456789abcdef012abcdef"))
	assert.Equal(t, "0x1234", ShortAddress("0x1234"))
}
