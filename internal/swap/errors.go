package swap

import (
	"errors"
	"fmt"
)

// Kind 交易管线的失败分类, 在失败源头分类一次, 下游不再解析错误文本
type Kind int

const (
	KindRpc Kind = iota + 1
	KindQuoteUnavailable
	KindInvalidRoute
	KindQuoteExpired
	KindAmountOutOfRange
	KindApprovalFailed
	KindInsufficientFunds
	KindSimulationFailed
	KindOnChainRevert
	KindConfirmTimeout
	KindNoWallet
)

func (k Kind) String() string {
	switch k {
	case KindRpc:
		return "rpc error"
	case KindQuoteUnavailable:
		return "no route"
	case KindInvalidRoute:
		return "invalid route"
	case KindQuoteExpired:
		return "quote expired"
	case KindAmountOutOfRange:
		return "amount out of range"
	case KindApprovalFailed:
		return "approval failed"
	case KindInsufficientFunds:
		return "insufficient funds"
	case KindSimulationFailed:
		return "simulation failed"
	case KindOnChainRevert:
		return "transaction failed on-chain"
	case KindConfirmTimeout:
		return "confirmation timeout"
	case KindNoWallet:
		return "no wallet configured"
	}
	return "unknown"
}

// Terminal 本次交易是否终结; 除RPC故障外所有失败都是终态, 由用户重新发起
func (k Kind) Terminal() bool {
	return k != KindRpc
}

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// AsError 提取交易管线的分类错误
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf 返回错误分类, 无法识别时归类为RPC故障
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindRpc
}
