package tradehandler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fachebot/evm-swap-bot/internal/cache"
	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/swap"
	"github.com/fachebot/evm-swap-bot/internal/telebot/handler/wallethandler"
	"github.com/fachebot/evm-swap-bot/internal/telebot/pathrouter"
	"github.com/fachebot/evm-swap-bot/internal/utils"
	"github.com/fachebot/evm-swap-bot/internal/utils/evm"

	"github.com/ethereum/go-ethereum/common"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type SellHandler struct {
	botApi *tgbotapi.BotAPI
	svcCtx *svc.ServiceContext
}

func NewSellHandler(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI) *SellHandler {
	return &SellHandler{botApi: botApi, svcCtx: svcCtx}
}

func (h SellHandler) FormatPath(token string) string {
	if token == "" {
		return "/trade/sell"
	}
	return fmt.Sprintf("/trade/sell/%s", token)
}

func (h *SellHandler) AddRouter(router *pathrouter.Router) {
	router.HandleFunc("/trade/sell", h.handle)
	router.HandleFunc("/trade/sell/{token}/{pct}", h.handlePercent)
}

// 步骤1: 询问代币地址; 步骤2: 展示卖出比例菜单
func (h *SellHandler) handle(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	if update.CallbackQuery != nil {
		chatId := update.CallbackQuery.Message.Chat.ID
		c := tgbotapi.NewMessage(chatId, "🌳 填写要卖出的代币合约地址")
		c.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true}

		msg, err := h.botApi.Send(c)
		if err != nil {
			logger.Debugf("[SellHandler] 发送消息失败, %v", err)
			return err
		}

		route := cache.RouteInfo{Path: h.FormatPath(""), Context: update.CallbackQuery.Message}
		h.svcCtx.MessageCache.SetRoute(chatId, msg.MessageID, route)
		return nil
	}

	if update.Message != nil {
		chatId := update.Message.Chat.ID
		token := update.Message.Text
		if !common.IsHexAddress(token) {
			utils.SendMessageAndDelayDeletion(h.botApi, chatId, "⚠️ 请输入有效的代币合约地址", 1)
			return nil
		}

		return h.displayPercentMenu(ctx, update, userId, token)
	}

	return nil
}

func (h *SellHandler) displayPercentMenu(ctx context.Context, update tgbotapi.Update, userId int64, token string) error {
	chatId := update.Message.Chat.ID

	meta, err := h.svcCtx.TokenMetaCache.GetTokenMeta(ctx, token)
	if err != nil {
		logger.Errorf("[SellHandler] 查询代币元数据失败, token: %s, %v", token, err)
		utils.SendMessageAndDelayDeletion(h.botApi, chatId, "⚠️ 查询代币信息失败, 请检查合约地址", 1)
		return nil
	}

	w, err := wallethandler.GetUserWallet(ctx, h.svcCtx, userId)
	if err != nil {
		return err
	}

	balance, err := h.svcCtx.Chain.TokenBalance(ctx, token, w.Account)
	if err != nil {
		logger.Errorf("[SellHandler] 查询代币余额失败, token: %s, %v", token, err)
		return err
	}
	if balance.Sign() <= 0 {
		utils.SendMessageAndDelayDeletion(h.botApi, chatId, fmt.Sprintf("⚠️ 没有 %s 代币持仓", meta.Symbol), 1)
		return nil
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("25%", fmt.Sprintf("/trade/sell/%s/25", token)),
			tgbotapi.NewInlineKeyboardButtonData("50%", fmt.Sprintf("/trade/sell/%s/50", token)),
			tgbotapi.NewInlineKeyboardButtonData("75%", fmt.Sprintf("/trade/sell/%s/75", token)),
			tgbotapi.NewInlineKeyboardButtonData("100%", fmt.Sprintf("/trade/sell/%s/100", token)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ 返回主页", "/home"),
		),
	)

	text := fmt.Sprintf("🔴 卖出 *%s*\n\n合约地址:\n`%s`\n\n💰 持仓数量: `%s`",
		meta.Symbol, token, evm.ParseUnits(balance, meta.Decimals).Truncate(6))
	_, err = utils.ReplyMessage(h.botApi, update, text, markup)
	return err
}

func (h *SellHandler) handlePercent(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	token := vars["token"]
	pct, err := strconv.ParseInt(vars["pct"], 10, 64)
	if err != nil || pct <= 0 || pct > 100 {
		return fmt.Errorf("invalid sell percent: %s", vars["pct"])
	}

	chatId := chatIdOf(update)
	service := swap.NewSwapService(h.svcCtx, userId)
	runSwap(h.svcCtx, h.botApi, chatId, func(ctx context.Context, sink swap.ProgressSink) (*ent.Order, error) {
		return service.Sell(ctx, token, pct, sink)
	})
	return nil
}
