package tradehandler

import (
	"context"
	"fmt"

	"github.com/fachebot/evm-swap-bot/internal/cache"
	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/swap"
	"github.com/fachebot/evm-swap-bot/internal/telebot/pathrouter"
	"github.com/fachebot/evm-swap-bot/internal/utils"

	"github.com/ethereum/go-ethereum/common"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func InitRoutes(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI, router *pathrouter.Router) {
	NewBuyHandler(svcCtx, botApi).AddRouter(router)
	NewSellHandler(svcCtx, botApi).AddRouter(router)
}

type BuyHandler struct {
	botApi *tgbotapi.BotAPI
	svcCtx *svc.ServiceContext
}

func NewBuyHandler(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI) *BuyHandler {
	return &BuyHandler{botApi: botApi, svcCtx: svcCtx}
}

func (h BuyHandler) FormatPath(token string) string {
	if token == "" {
		return "/trade/buy"
	}
	return fmt.Sprintf("/trade/buy/%s", token)
}

func (h *BuyHandler) AddRouter(router *pathrouter.Router) {
	router.HandleFunc("/trade/buy", h.handle)
	router.HandleFunc("/trade/buy/{token}/{amount}", h.handleAmount)
}

// 步骤1: 询问代币地址; 步骤2: 展示金额菜单
func (h *BuyHandler) handle(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	if update.CallbackQuery != nil {
		chatId := update.CallbackQuery.Message.Chat.ID
		c := tgbotapi.NewMessage(chatId, "🌳 填写要买入的代币合约地址")
		c.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true}

		msg, err := h.botApi.Send(c)
		if err != nil {
			logger.Debugf("[BuyHandler] 发送消息失败, %v", err)
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

		return h.displayAmountMenu(ctx, update, token)
	}

	return nil
}

func (h *BuyHandler) displayAmountMenu(ctx context.Context, update tgbotapi.Update, token string) error {
	meta, err := h.svcCtx.TokenMetaCache.GetTokenMeta(ctx, token)
	if err != nil {
		logger.Errorf("[BuyHandler] 查询代币元数据失败, token: %s, %v", token, err)
		chatId := update.Message.Chat.ID
		utils.SendMessageAndDelayDeletion(h.botApi, chatId, "⚠️ 查询代币信息失败, 请检查合约地址", 1)
		return nil
	}

	currency := h.svcCtx.Config.Chain.NativeCurrency.Symbol
	presets := []string{"0.01", "0.05", "0.1", "0.5"}
	buttons := lo.Map(presets, func(amount string, _ int) tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("%s %s", amount, currency),
			fmt.Sprintf("/trade/buy/%s/%s", token, amount))
	})

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(buttons[:2]...),
		tgbotapi.NewInlineKeyboardRow(buttons[2:]...),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ 自定义金额", fmt.Sprintf("/trade/buy/%s/x", token)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ 返回主页", "/home"),
		),
	)

	chainId := h.svcCtx.Config.Chain.Id
	text := fmt.Sprintf("🟢 买入 *%s*\n\n合约地址:\n`%s`\n\n[Dexscreener](%s) | [GeckoTerminal](%s)",
		meta.Symbol, token, utils.GetDexscreenerTokenLink(chainId, token), utils.GetGeckoTerminalTokenLink(chainId, token))
	_, err = utils.ReplyMessage(h.botApi, update, text, markup)
	return err
}

func (h *BuyHandler) handleAmount(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	token := vars["token"]
	amount := vars["amount"]

	// 自定义金额走ForceReply流程
	if amount == "x" {
		if update.CallbackQuery != nil {
			chatId := update.CallbackQuery.Message.Chat.ID
			currency := h.svcCtx.Config.Chain.NativeCurrency.Symbol
			c := tgbotapi.NewMessage(chatId, fmt.Sprintf("🌳 填写买入金额, 单位是 %s", currency))
			c.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true}

			msg, err := h.botApi.Send(c)
			if err != nil {
				logger.Debugf("[BuyHandler] 发送消息失败, %v", err)
				return err
			}

			route := cache.RouteInfo{Path: fmt.Sprintf("/trade/buy/%s/x", token), Context: update.CallbackQuery.Message}
			h.svcCtx.MessageCache.SetRoute(chatId, msg.MessageID, route)
			return nil
		}

		if update.Message != nil {
			amount = update.Message.Text
		}
	}

	uiAmount, err := decimal.NewFromString(amount)
	if err != nil || uiAmount.LessThanOrEqual(decimal.Zero) {
		chatId := chatIdOf(update)
		utils.SendMessageAndDelayDeletion(h.botApi, chatId, "⚠️ 请输入有效数字", 1)
		return nil
	}

	chatId := chatIdOf(update)
	service := swap.NewSwapService(h.svcCtx, userId)
	runSwap(h.svcCtx, h.botApi, chatId, func(ctx context.Context, sink swap.ProgressSink) (*ent.Order, error) {
		return service.Buy(ctx, token, uiAmount, sink)
	})
	return nil
}

func chatIdOf(update tgbotapi.Update) int64 {
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	return 0
}
