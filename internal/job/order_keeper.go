package job

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/ent/order"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/utils"
	"github.com/fachebot/evm-swap-bot/internal/utils/evm"
	"github.com/fachebot/evm-swap-bot/internal/utils/format"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// OrderKeeper 跟踪确认超时的pending订单, 拿到收据后补记终态并推送通知
type OrderKeeper struct {
	ctx        context.Context
	cancel     context.CancelFunc
	stopChan   chan struct{}
	svcCtx     *svc.ServiceContext
	timeoutTxs map[string]struct{}
}

func NewOrderKeeper(svcCtx *svc.ServiceContext) *OrderKeeper {
	ctx, cancel := context.WithCancel(context.Background())
	return &OrderKeeper{
		ctx:        ctx,
		cancel:     cancel,
		svcCtx:     svcCtx,
		timeoutTxs: map[string]struct{}{},
	}
}

func (keeper *OrderKeeper) Stop() {
	if keeper.stopChan == nil {
		return
	}

	logger.Infof("[OrderKeeper] 准备停止服务")

	keeper.cancel()

	<-keeper.stopChan
	close(keeper.stopChan)
	keeper.stopChan = nil

	logger.Infof("[OrderKeeper] 服务已经停止")
}

func (keeper *OrderKeeper) Start() {
	if keeper.stopChan != nil {
		return
	}

	keeper.stopChan = make(chan struct{})
	logger.Infof("[OrderKeeper] 开始运行服务")
	go keeper.run()
}

func (keeper *OrderKeeper) run() {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			keeper.handlePolling()
			timer.Reset(time.Millisecond * 3000)
		case <-keeper.ctx.Done():
			keeper.stopChan <- struct{}{}
			return
		}
	}
}

func (keeper *OrderKeeper) handlePolling() {
	orders, err := keeper.svcCtx.OrderModel.FindPendingOrders(keeper.ctx, 100)
	if err != nil {
		logger.Errorf("[OrderKeeper] 获取订单列表失败, %v", err)
	}
	if len(orders) == 0 {
		return
	}

	now := time.Now()
	for _, item := range orders {
		if _, timeout := keeper.timeoutTxs[item.TxHash]; timeout {
			continue
		}

		receipt, err := keeper.svcCtx.EthClient.TransactionReceipt(keeper.ctx, common.HexToHash(item.TxHash))
		if err != nil {
			// 长时间查不到收据说明交易被丢弃, 停止跟踪
			if strings.Contains(err.Error(), "not found") {
				if now.Sub(item.CreateTime) > time.Minute*10 {
					keeper.timeoutTxs[item.TxHash] = struct{}{}
					logger.Errorf("[OrderKeeper] 交易打包超时, account: %s, nonce: %d, hash: %s, createTime: %v",
						item.Account, item.Nonce, item.TxHash, item.CreateTime)
				}
				continue
			}

			logger.Errorf("[OrderKeeper] 查询交易收据失败, account: %s, nonce: %d, hash: %s, %v", item.Account, item.Nonce, item.TxHash, err)
			return
		}

		if receipt.Status == 0 {
			keeper.handleRejectOrder(item, "execution reverted")
			continue
		}

		keeper.handleCloseOrder(item, receipt)
	}
}

func (keeper *OrderKeeper) handleCloseOrder(ord *ent.Order, receipt *ethtypes.Receipt) {
	finalPrice := ord.Price
	outAmount := ord.OutAmount

	// 买入订单用收据里的Transfer日志修正实际成交数量
	if ord.Type == order.TypeBuy {
		tokenMeta, err := keeper.svcCtx.TokenMetaCache.GetTokenMeta(keeper.ctx, ord.Token)
		if err != nil {
			logger.Errorf("[OrderKeeper] 查询代币元数据失败, token: %s, %v", ord.Token, err)
			return
		}

		changes := evm.GetTokenBalanceChanges(receipt, ord.Account)
		if v, ok := changes[common.HexToAddress(ord.Token)]; ok {
			change := evm.ParseUnits(v, tokenMeta.Decimals)
			if change.IsPositive() {
				outAmount = change
				finalPrice = ord.InAmount.Div(change)
			}
		}
	}

	err := keeper.svcCtx.OrderModel.SetOrderClosedStatus(keeper.ctx, ord.ID, finalPrice, outAmount)
	if err != nil {
		logger.Errorf("[OrderKeeper] 设置订单 closed 状态失败, id: %d, hash: %s, %v", ord.ID, ord.TxHash, err)
		return
	}
	logger.Infof("[OrderKeeper] 设置订单 closed 状态, id: %d, type: %s, finalPrice: %s, outAmount: %s, hash: %s",
		ord.ID, ord.Type, finalPrice, outAmount, ord.TxHash)

	chainId := keeper.svcCtx.Config.Chain.Id
	switch ord.Type {
	case order.TypeBuy:
		keeper.sendNotification(ord, fmt.Sprintf("✅ 买入 *%s* 代币成功, 成交价格: %s, 💰 数量: %s [>>](%s)",
			ord.Symbol, format.Price(finalPrice, 5), outAmount.Truncate(6), utils.GetBlockExplorerTxLink(chainId, ord.TxHash)))
	case order.TypeSell:
		keeper.sendNotification(ord, fmt.Sprintf("✅ 卖出 *%s* 代币成功, 成交价格: %s, 💰 金额: %s [>>](%s)",
			ord.Symbol, format.Price(finalPrice, 5), outAmount.Truncate(6), utils.GetBlockExplorerTxLink(chainId, ord.TxHash)))
	}
}

func (keeper *OrderKeeper) handleRejectOrder(ord *ent.Order, reason string) {
	err := keeper.svcCtx.OrderModel.SetOrderRejectedStatus(keeper.ctx, ord.ID, reason)
	if err != nil {
		logger.Errorf("[OrderKeeper] 设置订单 rejected 状态失败, id: %d, hash: %s, %v", ord.ID, ord.TxHash, err)
		return
	}
	logger.Infof("[OrderKeeper] 设置订单 rejected 状态, id: %d, hash: %s, reason: %s", ord.ID, ord.TxHash, reason)

	chainId := keeper.svcCtx.Config.Chain.Id
	keeper.sendNotification(ord, fmt.Sprintf("❌ %s *%s* 代币失败, 原因: 流动性不足或者滑点问题 [>>](%s)",
		typeName(ord.Type), ord.Symbol, utils.GetBlockExplorerTxLink(chainId, ord.TxHash)))
}

func (keeper *OrderKeeper) sendNotification(ord *ent.Order, text string) {
	w, err := keeper.svcCtx.WalletModel.FindByAccount(keeper.ctx, ord.Account)
	if err != nil {
		logger.Errorf("[OrderKeeper] 查询钱包信息失败, account: %s, %v", ord.Account, err)
		return
	}

	if _, err = utils.SendMessage(keeper.svcCtx.BotApi, w.UserId, text); err != nil {
		logger.Warnf("[OrderKeeper] 发送电报通知失败, userId: %d, text: %s, %v", w.UserId, text, err)
	}
}

func typeName(t order.Type) string {
	if t == order.TypeBuy {
		return "买入"
	}
	return "卖出"
}
