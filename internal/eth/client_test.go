package eth

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	balance      *big.Int
	baseFee      *big.Int
	gasTipCap    *big.Int
	estimateGas  uint64
	estimateErr  error
	callErr      error
	balanceCalls int
	balanceErrs  int
	receipt      *types.Receipt
	receiptErr   error
}

func (b *fakeBackend) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	b.balanceCalls++
	if b.balanceErrs > 0 {
		b.balanceErrs--
		return nil, errors.New("connection reset")
	}
	return b.balance, nil
}

func (b *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if b.callErr != nil {
		return nil, b.callErr
	}
	return nil, nil
}

func (b *fakeBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if b.estimateErr != nil {
		return 0, b.estimateErr
	}
	return b.estimateGas, nil
}

func (b *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return b.gasTipCap, nil
}

func (b *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{BaseFee: b.baseFee}, nil
}

func (b *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return 0, nil
}

func (b *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return nil
}

func (b *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if b.receiptErr != nil {
		return nil, b.receiptErr
	}
	return b.receipt, nil
}

func TestFeeParamsFloorsTip(t *testing.T) {
	backend := &fakeBackend{
		gasTipCap: big.NewInt(1_000_000_000), // 1 gwei, 低于下限
		baseFee:   big.NewInt(2_000_000_000),
	}
	client := NewClient(backend, Options{MinGasPrice: big.NewInt(3_000_000_000)})

	gasFeeCap, gasTipCap, err := client.FeeParams(context.Background())
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(3_000_000_000), gasTipCap)
	// feeCap = 2*baseFee + tip
	assert.Equal(t, big.NewInt(7_000_000_000), gasFeeCap)
}

func TestFeeParamsKeepsHigherTip(t *testing.T) {
	backend := &fakeBackend{
		gasTipCap: big.NewInt(5_000_000_000),
		baseFee:   big.NewInt(1_000_000_000),
	}
	client := NewClient(backend, Options{MinGasPrice: big.NewInt(3_000_000_000)})

	gasFeeCap, gasTipCap, err := client.FeeParams(context.Background())
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(5_000_000_000), gasTipCap)
	assert.Equal(t, big.NewInt(7_000_000_000), gasFeeCap)
}

func TestEstimateGasAddsBuffer(t *testing.T) {
	backend := &fakeBackend{estimateGas: 100_000}
	client := NewClient(backend, Options{GasLimitBufferPct: 50})

	gas, err := client.EstimateGas(context.Background(), ethereum.CallMsg{})
	require.NoError(t, err)
	assert.Equal(t, uint64(150_000), gas)
}

func TestEstimateGasClassifiesRevert(t *testing.T) {
	backend := &fakeBackend{estimateErr: errors.New("execution reverted: TRANSFER_FROM_FAILED")}
	client := NewClient(backend, Options{})

	_, err := client.EstimateGas(context.Background(), ethereum.CallMsg{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutionReverted)
}

func TestSimulate(t *testing.T) {
	client := NewClient(&fakeBackend{}, Options{})
	ok, err := client.Simulate(context.Background(), ethereum.CallMsg{})
	require.NoError(t, err)
	assert.True(t, ok)

	// 回滚返回 (false, nil)
	client = NewClient(&fakeBackend{callErr: errors.New("execution reverted")}, Options{})
	ok, err = client.Simulate(context.Background(), ethereum.CallMsg{})
	require.NoError(t, err)
	assert.False(t, ok)

	// 网络故障返回错误
	client = NewClient(&fakeBackend{callErr: errors.New("connection refused")}, Options{})
	_, err = client.Simulate(context.Background(), ethereum.CallMsg{})
	require.Error(t, err)
}

func TestBalanceRetriesReads(t *testing.T) {
	backend := &fakeBackend{balance: big.NewInt(42), balanceErrs: 2}
	client := NewClient(backend, Options{})

	balance, err := client.Balance(context.Background(), "0x1111111111111111111111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), balance)
	assert.Equal(t, 3, backend.balanceCalls)
}

func TestWaitForReceiptTimeout(t *testing.T) {
	backend := &fakeBackend{receiptErr: errors.New("not found")}
	client := NewClient(backend, Options{ConfirmTimeout: time.Millisecond * 50})

	_, err := client.WaitForReceipt(context.Background(), "0xabc")
	assert.ErrorIs(t, err, ErrReceiptTimeout)
}

func TestWaitForReceiptSuccess(t *testing.T) {
	backend := &fakeBackend{receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful}}
	client := NewClient(backend, Options{})

	receipt, err := client.WaitForReceipt(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
}