package settingshandler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fachebot/evm-swap-bot/internal/cache"
	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/telebot/pathrouter"
	"github.com/fachebot/evm-swap-bot/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
)

type SettingsOption int

var (
	SettingsOptionSlippageBps            SettingsOption = 1
	SettingsOptionSellSlippageBps        SettingsOption = 2
	SettingsOptionEnableInfiniteApproval SettingsOption = 3
)

func InitRoutes(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI, router *pathrouter.Router) {
	NewSettingsHomeHandler(svcCtx, botApi).AddRouter(router)
}

type SettingsHomeHandler struct {
	botApi *tgbotapi.BotAPI
	svcCtx *svc.ServiceContext
}

func NewSettingsHomeHandler(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI) *SettingsHomeHandler {
	return &SettingsHomeHandler{botApi: botApi, svcCtx: svcCtx}
}

func (h SettingsHomeHandler) FormatPath(option *SettingsOption) string {
	if option == nil {
		return "/settings"
	}
	return fmt.Sprintf("/settings/set/%d", *option)
}

func (h *SettingsHomeHandler) AddRouter(router *pathrouter.Router) {
	router.HandleFunc("/settings", h.handle)
	router.HandleFunc("/settings/set/{option}", h.handle)
}

func (h *SettingsHomeHandler) handle(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	record, err := getUserSettings(ctx, h.svcCtx, userId)
	if err != nil {
		logger.Errorf("[SettingsHomeHandler] 查询用户设置失败, userId: %d, %v", userId, err)
		return err
	}

	option, ok := vars["option"]
	if !ok {
		return displaySettingsMenu(h.svcCtx, h.botApi, update, record)
	}

	optionValue, err := strconv.Atoi(option)
	if err != nil {
		return err
	}

	switch SettingsOption(optionValue) {
	case SettingsOptionSlippageBps:
		return h.handleSlippageBps(ctx, update, record)
	case SettingsOptionSellSlippageBps:
		return h.handleSellSlippageBps(ctx, update, record)
	case SettingsOptionEnableInfiniteApproval:
		return h.handleEnableInfiniteApproval(ctx, update, record)
	}

	return nil
}

func (h *SettingsHomeHandler) handleEnableInfiniteApproval(ctx context.Context, update tgbotapi.Update, record *ent.Settings) error {
	newValue := true
	if record.EnableInfiniteApproval != nil && *record.EnableInfiniteApproval {
		newValue = false
	}

	err := h.svcCtx.SettingsModel.UpdateEnableInfiniteApproval(ctx, record.ID, newValue)
	if err != nil {
		logger.Errorf("[SettingsHomeHandler] 更新无限授权设置失败, userId: %d, %v", record.UserId, err)
		return err
	}

	record.EnableInfiniteApproval = &newValue
	return displaySettingsMenu(h.svcCtx, h.botApi, update, record)
}

func (h *SettingsHomeHandler) handleSlippageBps(ctx context.Context, update tgbotapi.Update, record *ent.Settings) error {
	// 步骤1
	if update.CallbackQuery != nil {
		return h.askForSlippage(update, "🌳 填写买入交易允许的价格滑点\n\n💵 例如: 10｜代表 10% , 单位是 %", SettingsOptionSlippageBps)
	}

	// 步骤2
	if update.Message != nil {
		return h.applySlippage(ctx, update, record, false)
	}

	return nil
}

func (h *SettingsHomeHandler) handleSellSlippageBps(ctx context.Context, update tgbotapi.Update, record *ent.Settings) error {
	// 步骤1
	if update.CallbackQuery != nil {
		return h.askForSlippage(update, "🌳 填写卖出交易允许的价格滑点\n\n💵 例如: 10｜代表 10% , 单位是 %", SettingsOptionSellSlippageBps)
	}

	// 步骤2
	if update.Message != nil {
		return h.applySlippage(ctx, update, record, true)
	}

	return nil
}

func (h *SettingsHomeHandler) askForSlippage(update tgbotapi.Update, text string, option SettingsOption) error {
	chatId := update.CallbackQuery.Message.Chat.ID
	c := tgbotapi.NewMessage(chatId, text)
	c.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true}

	msg, err := h.botApi.Send(c)
	if err != nil {
		logger.Debugf("[SettingsHomeHandler] 发送消息失败, %v", err)
		return err
	}

	route := cache.RouteInfo{Path: h.FormatPath(&option), Context: update.CallbackQuery.Message}
	h.svcCtx.MessageCache.SetRoute(chatId, msg.MessageID, route)

	return nil
}

func (h *SettingsHomeHandler) applySlippage(ctx context.Context, update tgbotapi.Update, record *ent.Settings, sell bool) error {
	chatId := update.Message.Chat.ID
	deleteMessages := []int{update.Message.MessageID}
	if update.Message.ReplyToMessage != nil {
		deleteMessages = append(deleteMessages, update.Message.ReplyToMessage.MessageID)
	}
	utils.DeleteMessages(h.botApi, chatId, deleteMessages, 0)

	// 检查输入滑点
	d, err := decimal.NewFromString(update.Message.Text)
	if err != nil || d.LessThanOrEqual(decimal.Zero) {
		utils.SendMessageAndDelayDeletion(h.botApi, chatId, "⚠️ 请输入有效数字", 1)
		return nil
	} else if d.GreaterThan(decimal.NewFromInt(50)) {
		utils.SendMessageAndDelayDeletion(h.botApi, chatId, "⚠️ 滑点不能超过50%", 1)
		return nil
	}

	newValue := int(d.Mul(decimal.NewFromInt(100)).IntPart())
	if sell {
		err = h.svcCtx.SettingsModel.UpdateSellSlippageBps(ctx, record.ID, newValue)
		if err == nil {
			record.SellSlippageBps = &newValue
		}
	} else {
		err = h.svcCtx.SettingsModel.UpdateSlippageBps(ctx, record.ID, newValue)
		if err == nil {
			record.SlippageBps = newValue
		}
	}
	if err != nil {
		logger.Errorf("[SettingsHomeHandler] 更新滑点设置失败, userId: %d, %v", record.UserId, err)
		return err
	}

	// 刷新设置菜单
	return displaySettingsMenu(h.svcCtx, h.botApi, update, record)
}
