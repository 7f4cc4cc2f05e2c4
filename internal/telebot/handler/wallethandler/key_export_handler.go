package wallethandler

import (
	"context"
	"fmt"

	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/telebot/pathrouter"
	"github.com/fachebot/evm-swap-bot/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type KeyExportHandler struct {
	botApi *tgbotapi.BotAPI
	svcCtx *svc.ServiceContext
}

func NewKeyExportHandler(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI) *KeyExportHandler {
	return &KeyExportHandler{botApi: botApi, svcCtx: svcCtx}
}

func (h KeyExportHandler) FormatPath(account string) string {
	return fmt.Sprintf("/wallet/export/%s", account)
}

func (h *KeyExportHandler) AddRouter(router *pathrouter.Router) {
	router.HandleFunc("/wallet/export/{account}", h.handle)
	router.HandleFunc("/wallet/export/{account}/confirm", h.handleConfirm)
}

func (h *KeyExportHandler) handle(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	account := vars["account"]
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ 取消", WalletHomeHandler{}.FormatPath()),
			tgbotapi.NewInlineKeyboardButtonData("⚠️ 确认导出", h.FormatPath(account)+"/confirm"),
		),
	)

	text := "⚠️ 私钥是账户的唯一凭证, 任何人拿到私钥即可转走全部资产, 确认导出吗?"
	_, err := utils.ReplyMessage(h.botApi, update, text, markup)
	return err
}

func (h *KeyExportHandler) handleConfirm(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	w, err := h.svcCtx.WalletModel.FindByUserId(ctx, userId)
	if err != nil {
		if ent.IsNotFound(err) {
			_, err = utils.ReplyMessage(h.botApi, update, "⚠️ 尚未创建钱包")
			return err
		}
		return err
	}

	plaintext, err := h.svcCtx.HashEncoder.Decryption(w.PrivateKey)
	if err != nil {
		logger.Errorf("[KeyExportHandler] 解码私钥失败, userId: %d, %v", userId, err)
		return err
	}

	chatId := update.CallbackQuery.Message.Chat.ID
	text := fmt.Sprintf("💳 钱包地址:\n`%s`\n\n🔑 私钥:\n`%s`\n\n⚠️ 此消息30秒后自动删除, 请立即妥善保存", w.Account, plaintext)
	utils.SendMessageAndDelayDeletion(h.botApi, chatId, text, 30)
	return nil
}
