package eth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/fachebot/evm-swap-bot/internal/utils/evm"

	"github.com/cenkalti/backoff/v5"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrReceiptTimeout 等待交易收据超过配置的确认超时时间
	ErrReceiptTimeout = errors.New("wait receipt timeout")

	// ErrExecutionReverted 节点判定交易会回滚, 在RPC边界分类一次
	ErrExecutionReverted = errors.New("execution reverted")
)

// Backend 节点RPC接口, *ethclient.Client 实现该接口
type Backend interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type Options struct {
	// MinGasPrice 燃气价格下限, 低于该值的报价一律抬高到下限, 避免交易卡住
	MinGasPrice *big.Int
	// GasLimitBufferPct 燃气限制缓冲百分比, 在预估值基础上额外增加
	GasLimitBufferPct int64
	// ConfirmTimeout 等待交易收据的总超时时间
	ConfirmTimeout time.Duration
}

// Client 链客户端, 封装余额查询/燃气估算/交易模拟/收据轮询
type Client struct {
	backend Backend
	opts    Options
}

func NewClient(backend Backend, opts Options) *Client {
	if opts.MinGasPrice == nil || opts.MinGasPrice.Sign() <= 0 {
		opts.MinGasPrice = big.NewInt(3_000_000_000)
	}
	if opts.GasLimitBufferPct <= 0 {
		opts.GasLimitBufferPct = 50
	}
	if opts.ConfirmTimeout <= 0 {
		opts.ConfirmTimeout = time.Second * 90
	}
	return &Client{backend: backend, opts: opts}
}

func (c *Client) Backend() Backend {
	return c.backend
}

// 只读调用失败时有限次重试, 写操作绝不重试
func retryRead[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Millisecond * 200
	return backoff.Retry(ctx, fn,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(3))
}

func (c *Client) Balance(ctx context.Context, account string) (*big.Int, error) {
	return retryRead(ctx, func() (*big.Int, error) {
		return c.backend.BalanceAt(ctx, common.HexToAddress(account), nil)
	})
}

func (c *Client) TokenBalance(ctx context.Context, token, account string) (*big.Int, error) {
	return retryRead(ctx, func() (*big.Int, error) {
		return evm.GetTokenBalance(ctx, c.backend, token, account)
	})
}

func (c *Client) TokenAllowance(ctx context.Context, token, owner, spender string) (*big.Int, error) {
	return retryRead(ctx, func() (*big.Int, error) {
		return evm.GetTokenAllowance(ctx, c.backend, token, owner, spender)
	})
}

// FeeParams 查询 EIP-1559 燃气参数, 上限与小费均不低于配置下限
func (c *Client) FeeParams(ctx context.Context) (gasFeeCap, gasTipCap *big.Int, err error) {
	gasTipCap, err = retryRead(ctx, func() (*big.Int, error) {
		return c.backend.SuggestGasTipCap(ctx)
	})
	if err != nil {
		return nil, nil, err
	}

	head, err := retryRead(ctx, func() (*types.Header, error) {
		return c.backend.HeaderByNumber(ctx, nil)
	})
	if err != nil {
		return nil, nil, err
	}

	if gasTipCap.Cmp(c.opts.MinGasPrice) < 0 {
		gasTipCap = new(big.Int).Set(c.opts.MinGasPrice)
	}

	baseFee := big.NewInt(0)
	if head.BaseFee != nil {
		baseFee = head.BaseFee
	}
	gasFeeCap = new(big.Int).Add(new(big.Int).Mul(baseFee, big.NewInt(2)), gasTipCap)
	if gasFeeCap.Cmp(c.opts.MinGasPrice) < 0 {
		gasFeeCap = new(big.Int).Set(c.opts.MinGasPrice)
	}

	return gasFeeCap, gasTipCap, nil
}

// EstimateGas 预估燃气限制并附加缓冲, 容忍估算与上链之间的状态漂移
func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	gas, err := retryRead(ctx, func() (uint64, error) {
		gas, err := c.backend.EstimateGas(ctx, msg)
		if err != nil && isRevertError(err) {
			return 0, backoff.Permanent(fmt.Errorf("%w: %v", ErrExecutionReverted, err))
		}
		return gas, err
	})
	if err != nil {
		return 0, err
	}
	return gas + gas*uint64(c.opts.GasLimitBufferPct)/100, nil
}

// Simulate 对交易做 eth_call 干跑; 回滚返回 (false, nil), 网络故障返回错误
func (c *Client) Simulate(ctx context.Context, msg ethereum.CallMsg) (bool, error) {
	_, err := c.backend.CallContract(ctx, msg, nil)
	if err == nil {
		return true, nil
	}

	if isRevertError(err) {
		return false, nil
	}
	return false, err
}

// 回滚错误只在RPC边界分类一次, 下游凭类型而非文本判断
func isRevertError(err error) bool {
	type rpcError interface {
		Error() string
		ErrorCode() int
	}

	var rpcErr rpcError
	if errors.As(err, &rpcErr) {
		// -32000: generic execution failure; 3: execution reverted with data
		code := rpcErr.ErrorCode()
		if code == 3 || code == -32000 || code == -32015 {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "execution reverted") || strings.Contains(msg, "out of gas")
}

func (c *Client) SendTransaction(ctx context.Context, signedTx *types.Transaction) error {
	return c.backend.SendTransaction(ctx, signedTx)
}

// WaitForReceipt 指数退避轮询交易收据, 超时返回 ErrReceiptTimeout
func (c *Client) WaitForReceipt(ctx context.Context, hash string) (*types.Receipt, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Second
	policy.MaxInterval = time.Second * 10

	receipt, err := backoff.Retry(ctx, func() (*types.Receipt, error) {
		receipt, err := c.backend.TransactionReceipt(ctx, common.HexToHash(hash))
		if err != nil {
			return nil, err
		}
		return receipt, nil
	}, backoff.WithBackOff(policy), backoff.WithMaxElapsedTime(c.opts.ConfirmTimeout))

	if err != nil {
		if ctx.Err() == nil {
			return nil, ErrReceiptTimeout
		}
		return nil, err
	}
	return receipt, nil
}
