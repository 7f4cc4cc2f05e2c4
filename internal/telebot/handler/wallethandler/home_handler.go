package wallethandler

import (
	"context"

	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/telebot/pathrouter"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func InitRoutes(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI, router *pathrouter.Router) {
	NewWalletHomeHandler(svcCtx, botApi).AddRouter(router)
	NewKeyExportHandler(svcCtx, botApi).AddRouter(router)
}

type WalletHomeHandler struct {
	botApi *tgbotapi.BotAPI
	svcCtx *svc.ServiceContext
}

func NewWalletHomeHandler(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI) *WalletHomeHandler {
	return &WalletHomeHandler{botApi: botApi, svcCtx: svcCtx}
}

func (h WalletHomeHandler) FormatPath() string {
	return "/wallet"
}

func (h *WalletHomeHandler) AddRouter(router *pathrouter.Router) {
	router.HandleFunc(h.FormatPath(), h.handle)
}

func (h *WalletHomeHandler) handle(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	return DisplayWalletMenu(ctx, h.svcCtx, h.botApi, userId, update)
}
