package format

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Price 格式化价格; 对极小价格使用下标写法, 如 0.0{5}1234
func Price(value decimal.Decimal, precision int32) string {
	if value.IsZero() {
		return "0"
	}

	abs := value.Abs()
	if abs.GreaterThanOrEqual(decimal.NewFromFloat(0.001)) {
		return value.Truncate(precision).String()
	}

	s := abs.String()
	idx := strings.Index(s, ".")
	if idx < 0 {
		return value.String()
	}

	frac := s[idx+1:]
	zeros := 0
	for _, c := range frac {
		if c != '0' {
			break
		}
		zeros++
	}
	if zeros < 4 {
		return value.Truncate(precision + int32(zeros)).String()
	}

	digits := frac[zeros:]
	if int32(len(digits)) > precision {
		digits = digits[:precision]
	}

	sign := ""
	if value.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s0.0{%d}%s", sign, zeros, digits)
}

// USD 格式化美元金额, 大额使用千分位
func USD(value decimal.Decimal) string {
	abs := value.Abs()
	if abs.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return humanize.CommafWithDigits(value.InexactFloat64(), 2)
	}
	return Price(value, 4)
}

// Percent 格式化百分比变化, 带正负号
func Percent(value decimal.Decimal) string {
	if value.IsPositive() {
		return "+" + value.Truncate(2).String() + "%"
	}
	return value.Truncate(2).String() + "%"
}

// ShortAddress 缩写地址显示, 如 0x1234...abcd
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
