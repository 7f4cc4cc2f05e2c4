package markethandler

import (
	"context"
	"fmt"
	"strings"

	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/ent/order"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/telebot/pathrouter"
	"github.com/fachebot/evm-swap-bot/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
)

type HistoryHandler struct {
	botApi *tgbotapi.BotAPI
	svcCtx *svc.ServiceContext
}

func NewHistoryHandler(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI) *HistoryHandler {
	return &HistoryHandler{botApi: botApi, svcCtx: svcCtx}
}

func (h HistoryHandler) FormatPath() string {
	return "/market/history"
}

func (h *HistoryHandler) AddRouter(router *pathrouter.Router) {
	router.HandleFunc(h.FormatPath(), h.handle)
}

func (h *HistoryHandler) handle(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	orders, err := h.svcCtx.OrderModel.FindLatestByUserId(ctx, userId, 10)
	if err != nil {
		logger.Errorf("[HistoryHandler] 查询订单列表失败, userId: %d, %v", userId, err)
		return err
	}

	if len(orders) == 0 {
		_, err = utils.ReplyMessage(h.botApi, update, "📭 还没有交易记录")
		return err
	}

	chainId := h.svcCtx.Config.Chain.Id
	lines := lo.Map(orders, func(ord *ent.Order, _ int) string {
		action := "🟢 买入"
		if ord.Type == order.TypeSell {
			action = "🔴 卖出"
		}

		status := statusName(ord.Status)
		return fmt.Sprintf("%s *%s* | %s | 数量: %s | %s [>>](%s)",
			action, ord.Symbol, status, ord.OutAmount.Truncate(6),
			ord.CreateTime.Format("01-02 15:04"), utils.GetBlockExplorerTxLink(chainId, ord.TxHash))
	})

	text := "📦 最近交易记录\n\n" + strings.Join(lines, "\n")
	_, err = utils.ReplyMessage(h.botApi, update, text)
	return err
}

func statusName(status order.Status) string {
	switch status {
	case order.StatusPending:
		return "确认中"
	case order.StatusClosed:
		return "已成交"
	case order.StatusRejected:
		return "已失败"
	}
	return string(status)
}
