package swap

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	"github.com/fachebot/evm-swap-bot/internal/dexagg"
	"github.com/fachebot/evm-swap-bot/internal/eth"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/utils/evm"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
)

// ChainClient 管线依赖的链上操作, *eth.Client 实现该接口
type ChainClient interface {
	Balance(ctx context.Context, account string) (*big.Int, error)
	TokenBalance(ctx context.Context, token, account string) (*big.Int, error)
	TokenAllowance(ctx context.Context, token, owner, spender string) (*big.Int, error)
	FeeParams(ctx context.Context) (gasFeeCap, gasTipCap *big.Int, err error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	Simulate(ctx context.Context, msg ethereum.CallMsg) (bool, error)
	SendTransaction(ctx context.Context, signedTx *ethtypes.Transaction) error
	WaitForReceipt(ctx context.Context, hash string) (*ethtypes.Receipt, error)
}

// NonceSource 按账户串行分配nonce, *eth.NonceManager 实现该接口
type NonceSource interface {
	Request(ctx context.Context, account common.Address, consume eth.NonceConsumeFunc) error
}

// QuoteProvider 聚合器报价接口
type QuoteProvider interface {
	GetQuote(ctx context.Context, req dexagg.QuoteRequest) (*dexagg.Quote, error)
}

type Config struct {
	ChainId        int64
	NativeDecimals uint8
	// MinAmount/MaxAmount 原生资产计价的单笔金额区间, 越界请求在任何网络调用前拒绝
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
	// QuoteTTL 报价有效期, 过期报价不允许上链
	QuoteTTL time.Duration
}

type Intent struct {
	UserId           int64
	FromToken        string
	ToToken          string
	Amount           *big.Int
	SlippageBps      int
	InfiniteApproval bool
}

// Result 广播后的交易信息; 广播后失败(回滚/确认超时)时与错误一并返回
type Result struct {
	TxHash string
	Nonce  uint64
	Quote  *dexagg.Quote
}

// Executor 兑换管线: 报价 → 授权 → 估算 → 校验 → 模拟 → 广播 → 确认.
// 一次调用就是一条顺序管线, 任何终态失败都交由用户重新发起, 绝不自动重试.
type Executor struct {
	cfg       Config
	chain     ChainClient
	quotes    QuoteProvider
	nonce     NonceSource
	allowance *AllowanceManager
}

func NewExecutor(cfg Config, chain ChainClient, quotes QuoteProvider, nonce NonceSource) *Executor {
	if cfg.NativeDecimals == 0 {
		cfg.NativeDecimals = 18
	}
	if cfg.QuoteTTL <= 0 {
		cfg.QuoteTTL = time.Second * 30
	}
	return &Executor{
		cfg:       cfg,
		chain:     chain,
		quotes:    quotes,
		nonce:     nonce,
		allowance: NewAllowanceManager(cfg.ChainId, chain, nonce),
	}
}

func (e *Executor) Execute(ctx context.Context, prv *ecdsa.PrivateKey, intent Intent, sink ProgressSink) (*Result, error) {
	if sink == nil {
		sink = nopSink{}
	}

	account, err := evm.GetAddress(prv)
	if err != nil {
		return nil, newError(KindNoWallet, err, "bad private key")
	}

	// 金额区间检查先于一切网络调用
	if evm.IsNativeToken(intent.FromToken) {
		uiAmount := evm.ParseUnits(intent.Amount, e.cfg.NativeDecimals)
		if uiAmount.LessThan(e.cfg.MinAmount) {
			return nil, newError(KindAmountOutOfRange, nil, "amount too small, min: %s", e.cfg.MinAmount)
		}
		if uiAmount.GreaterThan(e.cfg.MaxAmount) {
			return nil, newError(KindAmountOutOfRange, nil, "amount too large, max: %s", e.cfg.MaxAmount)
		}
	}

	sink.Progress(StageQuoting, "")
	quote, err := e.quotes.GetQuote(ctx, dexagg.QuoteRequest{
		ChainId:     e.cfg.ChainId,
		FromToken:   intent.FromToken,
		ToToken:     intent.ToToken,
		FromAmount:  intent.Amount,
		SlippageBps: intent.SlippageBps,
		UserAddr:    account.Hex(),
	})
	if err != nil {
		if errors.Is(err, dexagg.ErrInvalidRoute) {
			return nil, newError(KindInvalidRoute, err, "aggregator returned unusable route")
		}
		return nil, newError(KindQuoteUnavailable, err, "no route for %s -> %s", intent.FromToken, intent.ToToken)
	}

	// 原生资产兑换不需要授权
	if !evm.IsNativeToken(intent.FromToken) {
		if err = e.ensureAllowance(ctx, prv, account, quote, intent, sink); err != nil {
			return nil, err
		}
	}

	sink.Progress(StageEstimating, "")
	gasFeeCap, gasTipCap, err := e.chain.FeeParams(ctx)
	if err != nil {
		return nil, newError(KindRpc, err, "query fee parameters")
	}

	to := common.HexToAddress(quote.To)
	callMsg := ethereum.CallMsg{
		From:  account,
		To:    &to,
		Value: quote.Value,
		Data:  quote.Data,
	}
	gasLimit, err := e.chain.EstimateGas(ctx, callMsg)
	if err != nil {
		if errors.Is(err, eth.ErrExecutionReverted) {
			return nil, newError(KindSimulationFailed, err, "transaction would revert")
		}
		return nil, newError(KindRpc, err, "estimate gas")
	}

	sink.Progress(StageValidating, "")
	if err = e.validateBalances(ctx, account, intent, quote, gasLimit, gasFeeCap); err != nil {
		return nil, err
	}

	sink.Progress(StageSimulating, "")
	ok, err := e.chain.Simulate(ctx, callMsg)
	if err != nil {
		return nil, newError(KindRpc, err, "simulate transaction")
	}
	if !ok {
		// 模拟失败绝不广播, 避免白白燃烧燃气
		return nil, newError(KindSimulationFailed, nil, "dry-run call reverted")
	}

	if quote.Expired(e.cfg.QuoteTTL) {
		return nil, newError(KindQuoteExpired, nil, "quote older than %s", e.cfg.QuoteTTL)
	}

	sink.Progress(StageSubmitting, "")
	result := &Result{Quote: quote}
	err = e.nonce.Request(ctx, account, func(ctx context.Context, nonce uint64) (string, error) {
		dynamicFeeTx := ethtypes.DynamicFeeTx{
			ChainID:   big.NewInt(e.cfg.ChainId),
			Nonce:     nonce,
			GasTipCap: gasTipCap,
			GasFeeCap: gasFeeCap,
			Gas:       gasLimit,
			To:        &to,
			Value:     quote.Value,
			Data:      quote.Data,
		}

		tx := ethtypes.NewTx(&dynamicFeeTx)
		signedTx, err := ethtypes.SignTx(tx, ethtypes.NewLondonSigner(big.NewInt(e.cfg.ChainId)), prv)
		if err != nil {
			return "", err
		}

		if err = e.chain.SendTransaction(ctx, signedTx); err != nil {
			return "", err
		}

		result.TxHash = signedTx.Hash().Hex()
		result.Nonce = nonce
		return result.TxHash, nil
	})
	if err != nil {
		return nil, newError(KindRpc, err, "broadcast transaction")
	}

	logger.Infof("[SwapExecutor] 交易已广播, account: %s, nonce: %d, hash: %s", account, result.Nonce, result.TxHash)

	sink.Progress(StageConfirming, result.TxHash)
	receipt, err := e.chain.WaitForReceipt(ctx, result.TxHash)
	if err != nil {
		if errors.Is(err, eth.ErrReceiptTimeout) {
			return result, newError(KindConfirmTimeout, err, "transaction not confirmed in time, hash: %s", result.TxHash)
		}
		return result, newError(KindRpc, err, "wait receipt, hash: %s", result.TxHash)
	}

	if receipt.Status == ethtypes.ReceiptStatusFailed {
		// 广播后的回滚已消耗燃气, 与广播前失败分开呈现
		return result, newError(KindOnChainRevert, nil, "transaction reverted on-chain, hash: %s", result.TxHash)
	}

	return result, nil
}

func (e *Executor) ensureAllowance(ctx context.Context, prv *ecdsa.PrivateKey, account common.Address, quote *dexagg.Quote, intent Intent, sink ProgressSink) error {
	spender := quote.TargetApproveAddr
	if spender == "" {
		spender = quote.To
	}

	ok, err := e.allowance.HasSufficientAllowance(ctx, intent.FromToken, account.Hex(), spender, intent.Amount)
	if err != nil {
		return newError(KindRpc, err, "query allowance")
	}
	if ok {
		return nil
	}

	sink.Progress(StageApproving, spender)
	approveAmount := intent.Amount
	if intent.InfiniteApproval {
		approveAmount = evm.MaxUint256
	}

	if _, err = e.allowance.Approve(ctx, intent.FromToken, spender, approveAmount, prv); err != nil {
		return newError(KindApprovalFailed, err, "approve %s for %s", intent.FromToken, spender)
	}
	return nil
}

func (e *Executor) validateBalances(ctx context.Context, account common.Address, intent Intent, quote *dexagg.Quote, gasLimit uint64, gasFeeCap *big.Int) error {
	balance, err := e.chain.Balance(ctx, account.Hex())
	if err != nil {
		return newError(KindRpc, err, "query native balance")
	}

	gasCost := new(big.Int).Mul(new(big.Int).SetUint64(gasLimit), gasFeeCap)
	need := new(big.Int).Add(gasCost, quote.Value)
	if balance.Cmp(need) < 0 {
		return newError(KindInsufficientFunds, nil, "need %s wei (amount+gas), balance %s wei", need, balance)
	}

	if !evm.IsNativeToken(intent.FromToken) {
		tokenBalance, err := e.chain.TokenBalance(ctx, intent.FromToken, account.Hex())
		if err != nil {
			return newError(KindRpc, err, "query token balance")
		}
		if tokenBalance.Cmp(intent.Amount) < 0 {
			return newError(KindInsufficientFunds, nil, "token balance %s below sell amount %s", tokenBalance, intent.Amount)
		}
	}

	return nil
}
