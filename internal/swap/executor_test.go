package swap

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/fachebot/evm-swap-bot/internal/dexagg"
	"github.com/fachebot/evm-swap-bot/internal/eth"
	"github.com/fachebot/evm-swap-bot/internal/utils/evm"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken  = "0x1111111111111111111111111111111111111111"
	testRouter = "0x2222222222222222222222222222222222222222"
)

type fakeChain struct {
	mutex          sync.Mutex
	balance        *big.Int
	tokenBalance   *big.Int
	allowance      *big.Int
	estimateErr    error
	simulateOK     bool
	receiptStatus  uint64
	receiptErr     error
	sentTxs        []*ethtypes.Transaction
	allowanceReads int
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		balance:       big.NewInt(2e17),
		tokenBalance:  big.NewInt(1e18),
		allowance:     big.NewInt(0),
		simulateOK:    true,
		receiptStatus: ethtypes.ReceiptStatusSuccessful,
	}
}

func (c *fakeChain) Balance(ctx context.Context, account string) (*big.Int, error) {
	return new(big.Int).Set(c.balance), nil
}

func (c *fakeChain) TokenBalance(ctx context.Context, token, account string) (*big.Int, error) {
	return new(big.Int).Set(c.tokenBalance), nil
}

func (c *fakeChain) TokenAllowance(ctx context.Context, token, owner, spender string) (*big.Int, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.allowanceReads++
	return new(big.Int).Set(c.allowance), nil
}

func (c *fakeChain) FeeParams(ctx context.Context) (*big.Int, *big.Int, error) {
	return big.NewInt(5_000_000_000), big.NewInt(3_000_000_000), nil
}

func (c *fakeChain) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if c.estimateErr != nil {
		return 0, c.estimateErr
	}
	return 100_000, nil
}

func (c *fakeChain) Simulate(ctx context.Context, msg ethereum.CallMsg) (bool, error) {
	return c.simulateOK, nil
}

func (c *fakeChain) SendTransaction(ctx context.Context, signedTx *ethtypes.Transaction) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.sentTxs = append(c.sentTxs, signedTx)
	// 授权交易生效后放行后续的授权检查
	if len(signedTx.Data()) >= 4 && signedTx.To() != nil && signedTx.To().Hex() != testRouter {
		c.allowance = evm.MaxUint256
	}
	return nil
}

func (c *fakeChain) WaitForReceipt(ctx context.Context, hash string) (*ethtypes.Receipt, error) {
	if c.receiptErr != nil {
		return nil, c.receiptErr
	}
	return &ethtypes.Receipt{Status: c.receiptStatus}, nil
}

type fakeNonce struct {
	next uint64
}

func (n *fakeNonce) Request(ctx context.Context, account common.Address, consume eth.NonceConsumeFunc) error {
	nonce := n.next
	n.next++
	_, err := consume(ctx, nonce)
	return err
}

type fakeQuotes struct {
	calls     int
	err       error
	fetchedAt time.Time
}

func (q *fakeQuotes) GetQuote(ctx context.Context, req dexagg.QuoteRequest) (*dexagg.Quote, error) {
	q.calls++
	if q.err != nil {
		return nil, q.err
	}

	fetchedAt := q.fetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	value := big.NewInt(0)
	if evm.IsNativeToken(req.FromToken) {
		value = req.FromAmount
	}

	return &dexagg.Quote{
		FromToken:         req.FromToken,
		ToToken:           req.ToToken,
		FromAmount:        req.FromAmount,
		To:                testRouter,
		Data:              []byte{0x01, 0x02, 0x03, 0x04},
		Value:             value,
		ExpectedOutput:    decimal.NewFromInt(1000),
		TargetApproveAddr: testRouter,
		FetchedAt:         fetchedAt,
	}, nil
}

func testKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	prv, err := crypto.GenerateKey()
	require.NoError(t, err)
	return prv
}

func testConfig() Config {
	return Config{
		ChainId:        56,
		NativeDecimals: 18,
		MinAmount:      decimal.NewFromFloat(0.005),
		MaxAmount:      decimal.NewFromInt(10),
		QuoteTTL:       time.Second * 30,
	}
}

func buyIntent() Intent {
	return Intent{
		UserId:      1,
		FromToken:   evm.NativeTokenCA,
		ToToken:     testToken,
		Amount:      big.NewInt(1e17),
		SlippageBps: 100,
	}
}

func sellIntent() Intent {
	return Intent{
		UserId:      1,
		FromToken:   testToken,
		ToToken:     evm.NativeTokenCA,
		Amount:      big.NewInt(5e17),
		SlippageBps: 100,
	}
}

func TestExecuteBuySuccess(t *testing.T) {
	chain := newFakeChain()
	quotes := &fakeQuotes{}
	executor := NewExecutor(testConfig(), chain, quotes, &fakeNonce{next: 7})

	result, err := executor.Execute(context.Background(), testKey(t), buyIntent(), nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.TxHash)
	assert.Equal(t, uint64(7), result.Nonce)
	assert.Len(t, chain.sentTxs, 1)
	// 原生资产买入不需要读授权
	assert.Zero(t, chain.allowanceReads)
}

func TestExecuteAmountOutOfRange(t *testing.T) {
	chain := newFakeChain()
	quotes := &fakeQuotes{}
	executor := NewExecutor(testConfig(), chain, quotes, &fakeNonce{})

	intent := buyIntent()
	intent.Amount = big.NewInt(1e15) // 0.001 低于下限
	_, err := executor.Execute(context.Background(), testKey(t), intent, nil)
	assert.Equal(t, KindAmountOutOfRange, KindOf(err))

	intent.Amount = new(big.Int).Mul(big.NewInt(11), big.NewInt(1e18))
	_, err = executor.Execute(context.Background(), testKey(t), intent, nil)
	assert.Equal(t, KindAmountOutOfRange, KindOf(err))

	// 区间检查必须在报价之前完成
	assert.Zero(t, quotes.calls)
	assert.Empty(t, chain.sentTxs)
}

func TestExecuteQuoteErrors(t *testing.T) {
	chain := newFakeChain()
	executor := NewExecutor(testConfig(), chain, &fakeQuotes{err: dexagg.ErrQuoteUnavailable}, &fakeNonce{})
	_, err := executor.Execute(context.Background(), testKey(t), buyIntent(), nil)
	assert.Equal(t, KindQuoteUnavailable, KindOf(err))

	executor = NewExecutor(testConfig(), chain, &fakeQuotes{err: dexagg.ErrInvalidRoute}, &fakeNonce{})
	_, err = executor.Execute(context.Background(), testKey(t), buyIntent(), nil)
	assert.Equal(t, KindInvalidRoute, KindOf(err))
	assert.Empty(t, chain.sentTxs)
}

func TestExecuteSellApprovesOnce(t *testing.T) {
	chain := newFakeChain()
	executor := NewExecutor(testConfig(), chain, &fakeQuotes{}, &fakeNonce{})

	result, err := executor.Execute(context.Background(), testKey(t), sellIntent(), nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	// 授权交易 + 兑换交易
	assert.Len(t, chain.sentTxs, 2)

	// 授权已生效, 第二次卖出不再授权
	result, err = executor.Execute(context.Background(), testKey(t), sellIntent(), nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, chain.sentTxs, 3)
}

func TestExecuteSellSufficientAllowance(t *testing.T) {
	chain := newFakeChain()
	chain.allowance = evm.MaxUint256
	executor := NewExecutor(testConfig(), chain, &fakeQuotes{}, &fakeNonce{})

	_, err := executor.Execute(context.Background(), testKey(t), sellIntent(), nil)
	require.NoError(t, err)
	assert.Len(t, chain.sentTxs, 1)
}

func TestExecuteInsufficientFunds(t *testing.T) {
	chain := newFakeChain()
	chain.balance = big.NewInt(1e15) // 不够支付金额+燃气
	executor := NewExecutor(testConfig(), chain, &fakeQuotes{}, &fakeNonce{})

	_, err := executor.Execute(context.Background(), testKey(t), buyIntent(), nil)
	assert.Equal(t, KindInsufficientFunds, KindOf(err))
	assert.Empty(t, chain.sentTxs)
}

func TestExecuteInsufficientTokenBalance(t *testing.T) {
	chain := newFakeChain()
	chain.allowance = evm.MaxUint256
	chain.tokenBalance = big.NewInt(1e16)
	executor := NewExecutor(testConfig(), chain, &fakeQuotes{}, &fakeNonce{})

	_, err := executor.Execute(context.Background(), testKey(t), sellIntent(), nil)
	assert.Equal(t, KindInsufficientFunds, KindOf(err))
	assert.Empty(t, chain.sentTxs)
}

func TestExecuteSimulationBlocksBroadcast(t *testing.T) {
	chain := newFakeChain()
	chain.simulateOK = false
	executor := NewExecutor(testConfig(), chain, &fakeQuotes{}, &fakeNonce{})

	_, err := executor.Execute(context.Background(), testKey(t), buyIntent(), nil)
	assert.Equal(t, KindSimulationFailed, KindOf(err))
	assert.Empty(t, chain.sentTxs)
}

func TestExecuteEstimateRevert(t *testing.T) {
	chain := newFakeChain()
	chain.estimateErr = eth.ErrExecutionReverted
	executor := NewExecutor(testConfig(), chain, &fakeQuotes{}, &fakeNonce{})

	_, err := executor.Execute(context.Background(), testKey(t), buyIntent(), nil)
	assert.Equal(t, KindSimulationFailed, KindOf(err))
	assert.Empty(t, chain.sentTxs)
}

func TestExecuteQuoteExpired(t *testing.T) {
	chain := newFakeChain()
	quotes := &fakeQuotes{fetchedAt: time.Now().Add(-time.Minute)}
	executor := NewExecutor(testConfig(), chain, quotes, &fakeNonce{})

	_, err := executor.Execute(context.Background(), testKey(t), buyIntent(), nil)
	assert.Equal(t, KindQuoteExpired, KindOf(err))
	assert.Empty(t, chain.sentTxs)
}

func TestExecuteOnChainRevert(t *testing.T) {
	chain := newFakeChain()
	chain.receiptStatus = ethtypes.ReceiptStatusFailed
	executor := NewExecutor(testConfig(), chain, &fakeQuotes{}, &fakeNonce{})

	result, err := executor.Execute(context.Background(), testKey(t), buyIntent(), nil)
	assert.Equal(t, KindOnChainRevert, KindOf(err))

	// 已上链的失败必须带回交易哈希
	require.NotNil(t, result)
	assert.NotEmpty(t, result.TxHash)
}

func TestExecuteConfirmTimeout(t *testing.T) {
	chain := newFakeChain()
	chain.receiptErr = eth.ErrReceiptTimeout
	executor := NewExecutor(testConfig(), chain, &fakeQuotes{}, &fakeNonce{})

	result, err := executor.Execute(context.Background(), testKey(t), buyIntent(), nil)
	assert.Equal(t, KindConfirmTimeout, KindOf(err))
	require.NotNil(t, result)
	assert.NotEmpty(t, result.TxHash)
}

func TestExecuteProgressStages(t *testing.T) {
	chain := newFakeChain()
	executor := NewExecutor(testConfig(), chain, &fakeQuotes{}, &fakeNonce{})

	var stages []Stage
	sink := ProgressFunc(func(stage Stage, detail string) {
		stages = append(stages, stage)
	})

	_, err := executor.Execute(context.Background(), testKey(t), buyIntent(), sink)
	require.NoError(t, err)

	expected := []Stage{StageQuoting, StageEstimating, StageValidating, StageSimulating, StageSubmitting, StageConfirming}
	assert.Equal(t, expected, stages)
}
