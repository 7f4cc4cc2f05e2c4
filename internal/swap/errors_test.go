package swap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindOf(t *testing.T) {
	err := newError(KindInsufficientFunds, nil, "need %d wei", 100)
	assert.Equal(t, KindInsufficientFunds, KindOf(err))

	wrapped := fmt.Errorf("buy failed: %w", err)
	assert.Equal(t, KindInsufficientFunds, KindOf(wrapped))

	// 未分类错误一律按RPC故障处理
	assert.Equal(t, KindRpc, KindOf(errors.New("plain")))
}

func TestKindTerminal(t *testing.T) {
	assert.False(t, KindRpc.Terminal())
	assert.True(t, KindQuoteExpired.Terminal())
	assert.True(t, KindOnChainRevert.Terminal())
	assert.True(t, KindAmountOutOfRange.Terminal())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := newError(KindRpc, cause, "estimate gas")

	require.ErrorIs(t, err, cause)

	swapErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindRpc, swapErr.Kind)
	assert.Contains(t, swapErr.Error(), "estimate gas")
}

func TestKindString(t *testing.T) {
	assert.NotEmpty(t, KindQuoteExpired.String())
	assert.NotEmpty(t, KindOnChainRevert.String())
	assert.NotEqual(t, KindQuoteExpired.String(), KindOnChainRevert.String())
}
