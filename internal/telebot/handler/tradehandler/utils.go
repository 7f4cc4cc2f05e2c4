package tradehandler

import (
	"context"
	"fmt"

	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/ent/order"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/swap"
	"github.com/fachebot/evm-swap-bot/internal/utils"
	"github.com/fachebot/evm-swap-bot/internal/utils/format"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func stageText(stage swap.Stage) string {
	switch stage {
	case swap.StageQuoting:
		return "⏳ 正在获取报价..."
	case swap.StageApproving:
		return "⏳ 正在授权代币..."
	case swap.StageEstimating:
		return "⏳ 正在估算燃气..."
	case swap.StageValidating:
		return "⏳ 正在校验余额..."
	case swap.StageSimulating:
		return "⏳ 正在模拟交易..."
	case swap.StageSubmitting:
		return "⏳ 正在广播交易..."
	case swap.StageConfirming:
		return "⏳ 正在等待确认..."
	}
	return "⏳ 处理中..."
}

// statusSink 把执行管线的阶段变化实时编辑到状态消息上
type statusSink struct {
	botApi    *tgbotapi.BotAPI
	chatId    int64
	messageId int
}

func (s *statusSink) Progress(stage swap.Stage, detail string) {
	if _, err := utils.EditMessage(s.botApi, s.chatId, s.messageId, stageText(stage)); err != nil {
		logger.Debugf("[TradeHandler] 更新状态消息失败, chatId: %d, %v", s.chatId, err)
	}
}

func finalText(chainId int64, orderRecord *ent.Order, err error) string {
	if err == nil {
		action := "买入"
		if orderRecord.Type == order.TypeSell {
			action = "卖出"
		}
		return fmt.Sprintf("✅ %s *%s* 代币成功, 成交价格: %s, 💰 数量: %s [>>](%s)",
			action, orderRecord.Symbol, format.Price(orderRecord.Price, 5),
			orderRecord.OutAmount.Truncate(6), utils.GetBlockExplorerTxLink(chainId, orderRecord.TxHash))
	}

	if swapErr, ok := swap.AsError(err); ok {
		if orderRecord == nil {
			return fmt.Sprintf("❌ 交易失败: %s", swapErr.Kind)
		}

		switch swapErr.Kind {
		case swap.KindConfirmTimeout:
			return fmt.Sprintf("⏳ 交易确认超时, 已转入后台跟踪, 结果会另行通知 [>>](%s)",
				utils.GetBlockExplorerTxLink(chainId, orderRecord.TxHash))
		case swap.KindOnChainRevert:
			return fmt.Sprintf("❌ 交易上链后回滚, 燃气已消耗 [>>](%s)",
				utils.GetBlockExplorerTxLink(chainId, orderRecord.TxHash))
		default:
			return fmt.Sprintf("❌ 交易失败: %s", swapErr.Kind)
		}
	}

	return "❌ 交易失败, 请稍后再试"
}

// runSwap 后台执行兑换, 避免长时间阻塞更新循环
func runSwap(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI, chatId int64, execute func(ctx context.Context, sink swap.ProgressSink) (*ent.Order, error)) {
	statusMsg, err := utils.SendMessage(botApi, chatId, "⏳ 正在获取报价...")
	if err != nil {
		logger.Debugf("[TradeHandler] 发送状态消息失败, chatId: %d, %v", chatId, err)
		return
	}

	go func() {
		sink := &statusSink{botApi: botApi, chatId: chatId, messageId: statusMsg.MessageID}
		orderRecord, err := execute(context.Background(), sink)
		if err != nil {
			logger.Errorf("[TradeHandler] 执行兑换失败, chatId: %d, %v", chatId, err)
		}

		if orderRecord == nil && err == nil {
			return
		}

		text := finalText(svcCtx.Config.Chain.Id, orderRecord, err)
		if _, err = utils.EditMessage(botApi, chatId, statusMsg.MessageID, text); err != nil {
			logger.Debugf("[TradeHandler] 更新结果消息失败, chatId: %d, %v", chatId, err)
		}
	}()
}
