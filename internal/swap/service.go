package swap

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/ent/order"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/model"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/utils"
	"github.com/fachebot/evm-swap-bot/internal/utils/evm"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SwapService 面向单个用户的兑换服务, 读取钱包和个性化设置后驱动执行管线
type SwapService struct {
	svcCtx   *svc.ServiceContext
	userId   int64
	prv      *ecdsa.PrivateKey
	settings *ent.Settings
}

func NewSwapService(svcCtx *svc.ServiceContext, userId int64) *SwapService {
	return &SwapService{svcCtx: svcCtx, userId: userId}
}

// Buy 原生资产买入代币, 返回已广播交易的订单记录
func (s *SwapService) Buy(ctx context.Context, token string, uiAmount decimal.Decimal, sink ProgressSink) (*ent.Order, error) {
	prv, err := s.getUserWallet(ctx)
	if err != nil {
		return nil, err
	}

	userSettings, err := s.getUserSettings(ctx)
	if err != nil {
		return nil, err
	}

	decimals := s.svcCtx.Config.Chain.NativeCurrency.Decimals
	intent := Intent{
		UserId:           s.userId,
		FromToken:        evm.NativeTokenCA,
		ToToken:          token,
		Amount:           evm.FormatUnits(uiAmount, decimals),
		SlippageBps:      int(userSettings.SlippageBps),
		InfiniteApproval: s.infiniteApprovalEnabled(userSettings),
	}

	result, err := s.executor().Execute(ctx, prv, intent, sink)
	return s.finishOrder(ctx, order.TypeBuy, intent, result, err)
}

// Sell 卖出代币换回原生资产, pct 取值 (0, 100], 100 表示清仓
func (s *SwapService) Sell(ctx context.Context, token string, pct int64, sink ProgressSink) (*ent.Order, error) {
	if pct <= 0 || pct > 100 {
		return nil, newError(KindAmountOutOfRange, nil, "invalid sell percent: %d", pct)
	}

	prv, err := s.getUserWallet(ctx)
	if err != nil {
		return nil, err
	}

	userSettings, err := s.getUserSettings(ctx)
	if err != nil {
		return nil, err
	}

	account, err := evm.GetAddress(prv)
	if err != nil {
		return nil, newError(KindNoWallet, err, "bad private key")
	}

	balance, err := s.svcCtx.Chain.TokenBalance(ctx, token, account.Hex())
	if err != nil {
		return nil, newError(KindRpc, err, "query token balance")
	}

	amount := new(big.Int).Mul(balance, big.NewInt(pct))
	amount.Div(amount, big.NewInt(100))
	if pct == 100 {
		// 清仓预留安全余量, 规避转账扣费代币导致的余额不足回滚
		margin := int64(s.svcCtx.Config.Swap.SafetyMarginBps)
		amount = new(big.Int).Mul(balance, big.NewInt(10000-margin))
		amount.Div(amount, big.NewInt(10000))
	}
	if amount.Sign() <= 0 {
		return nil, newError(KindInsufficientFunds, nil, "token balance is zero")
	}

	slippageBps := int(userSettings.SlippageBps)
	if userSettings.SellSlippageBps != nil {
		slippageBps = int(*userSettings.SellSlippageBps)
	}

	intent := Intent{
		UserId:           s.userId,
		FromToken:        token,
		ToToken:          evm.NativeTokenCA,
		Amount:           amount,
		SlippageBps:      slippageBps,
		InfiniteApproval: s.infiniteApprovalEnabled(userSettings),
	}

	result, err := s.executor().Execute(ctx, prv, intent, sink)
	return s.finishOrder(ctx, order.TypeSell, intent, result, err)
}

func (s *SwapService) executor() *Executor {
	c := s.svcCtx.Config
	return NewExecutor(Config{
		ChainId:        c.Chain.Id,
		NativeDecimals: c.Chain.NativeCurrency.Decimals,
		MinAmount:      c.Swap.MinAmount,
		MaxAmount:      c.Swap.MaxAmount,
		QuoteTTL:       time.Duration(c.Swap.QuoteTTLSeconds) * time.Second,
	}, s.svcCtx.Chain, s.svcCtx.DodoClient, s.svcCtx.NonceManager)
}

// finishOrder 只为已广播的交易落库, 广播前的失败直接返回错误
func (s *SwapService) finishOrder(ctx context.Context, orderType order.Type, intent Intent, result *Result, execErr error) (*ent.Order, error) {
	if result == nil || result.TxHash == "" {
		return nil, execErr
	}

	account, _ := evm.GetAddress(s.prv)

	token := intent.ToToken
	inAmount := evm.ParseUnits(intent.Amount, s.svcCtx.Config.Chain.NativeCurrency.Decimals)
	if orderType == order.TypeSell {
		token = intent.FromToken
		meta, err := s.svcCtx.TokenMetaCache.GetTokenMeta(ctx, token)
		if err == nil {
			inAmount = evm.ParseUnits(intent.Amount, meta.Decimals)
		}
	}

	symbol := ""
	if meta, err := s.svcCtx.TokenMetaCache.GetTokenMeta(ctx, token); err == nil {
		symbol = meta.Symbol
	}

	status := order.StatusClosed
	failReason := ""
	switch {
	case execErr == nil:
	case KindOf(execErr) == KindConfirmTimeout:
		// 确认超时不代表失败, 留给OrderKeeper继续跟踪
		status = order.StatusPending
	default:
		status = order.StatusRejected
		failReason = execErr.Error()
	}

	outAmount := result.Quote.ExpectedOutput
	price := decimal.Zero
	if inAmount.IsPositive() && outAmount.IsPositive() {
		if orderType == order.TypeBuy {
			price = inAmount.Div(outAmount)
		} else {
			price = outAmount.Div(inAmount)
		}
	}

	args := ent.Order{
		GUID:      uuid.NewString(),
		UserId:    s.userId,
		Account:   account.Hex(),
		Token:     token,
		Symbol:    symbol,
		Type:      orderType,
		InAmount:  inAmount,
		OutAmount: outAmount,
		Price:     price,
		Status:    status,
		Nonce:     result.Nonce,
		TxHash:    result.TxHash,
	}

	var orderRecord *ent.Order
	err := utils.Tx(ctx, s.svcCtx.DbClient, func(tx *ent.Tx) error {
		orderModel := model.NewOrderModel(tx.Order)
		record, err := orderModel.Save(ctx, args)
		if err != nil {
			return err
		}

		if failReason != "" {
			if err = orderModel.SetOrderRejectedStatus(ctx, record.ID, failReason); err != nil {
				return err
			}
		}

		orderRecord = record
		return nil
	})
	if err != nil {
		logger.Errorf("[SwapService] 保存订单失败, userId: %d, hash: %s, %v", s.userId, result.TxHash, err)
		return nil, execErr
	}

	return orderRecord, execErr
}

func (s *SwapService) getUserWallet(ctx context.Context) (*ecdsa.PrivateKey, error) {
	if s.prv != nil {
		return s.prv, nil
	}

	w, err := s.svcCtx.WalletModel.FindByUserId(ctx, s.userId)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, newError(KindNoWallet, nil, "wallet not found, userId: %d", s.userId)
		}
		return nil, err
	}

	plaintext, err := s.svcCtx.HashEncoder.Decryption(w.PrivateKey)
	if err != nil {
		return nil, newError(KindNoWallet, err, "decode private key")
	}

	prv, err := crypto.HexToECDSA(plaintext)
	if err != nil {
		return nil, newError(KindNoWallet, err, "parse private key")
	}

	s.prv = prv
	return prv, nil
}

func (s *SwapService) getUserSettings(ctx context.Context) (*ent.Settings, error) {
	if s.settings != nil {
		return s.settings, nil
	}

	userSettings, err := s.svcCtx.SettingsModel.FindByUserId(ctx, s.userId)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, err
		}
		// 未初始化时使用链级默认滑点
		userSettings = &ent.Settings{
			UserId:      s.userId,
			SlippageBps: s.svcCtx.Config.Chain.SlippageBps,
		}
	}

	s.settings = userSettings
	return userSettings, nil
}

func (s *SwapService) infiniteApprovalEnabled(userSettings *ent.Settings) bool {
	return userSettings.EnableInfiniteApproval == nil || *userSettings.EnableInfiniteApproval
}
