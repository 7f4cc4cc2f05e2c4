package markethandler

import (
	"context"
	"fmt"

	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/telebot/pathrouter"
	"github.com/fachebot/evm-swap-bot/internal/utils"
	"github.com/fachebot/evm-swap-bot/internal/utils/format"

	"github.com/ethereum/go-ethereum/common"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
)

func InitRoutes(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI, router *pathrouter.Router) {
	NewPriceHandler(svcCtx, botApi).AddRouter(router)
	NewChartHandler(svcCtx, botApi).AddRouter(router)
	NewAnalysisHandler(svcCtx, botApi).AddRouter(router)
	NewHistoryHandler(svcCtx, botApi).AddRouter(router)
}

type PriceHandler struct {
	botApi *tgbotapi.BotAPI
	svcCtx *svc.ServiceContext
}

func NewPriceHandler(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI) *PriceHandler {
	return &PriceHandler{botApi: botApi, svcCtx: svcCtx}
}

func (h PriceHandler) FormatPath(token string) string {
	return fmt.Sprintf("/market/price/%s", token)
}

func (h *PriceHandler) AddRouter(router *pathrouter.Router) {
	router.HandleFunc("/market/price/{token}", h.handle)
}

func (h *PriceHandler) handle(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	token := vars["token"]
	if !common.IsHexAddress(token) {
		utils.SendMessageAndDelayDeletion(h.botApi, update.Message.Chat.ID, "⚠️ 请输入有效的代币合约地址", 1)
		return nil
	}

	price, change, err := h.getTokenPrice(ctx, token)
	if err != nil {
		logger.Errorf("[PriceHandler] 查询代币价格失败, token: %s, %v", token, err)
		utils.SendMessageAndDelayDeletion(h.botApi, update.Message.Chat.ID, "⚠️ 查询价格失败, 请稍后再试", 1)
		return nil
	}

	symbol := token
	if meta, err := h.svcCtx.TokenMetaCache.GetTokenMeta(ctx, token); err == nil {
		symbol = meta.Symbol
	}

	chainId := h.svcCtx.Config.Chain.Id
	text := fmt.Sprintf("💰 *%s* 价格: %s\n📊 24h涨跌: %s\n\n[Dexscreener](%s) | [GeckoTerminal](%s)",
		symbol, format.Price(price, 5), format.Percent(change),
		utils.GetDexscreenerTokenLink(chainId, token), utils.GetGeckoTerminalTokenLink(chainId, token))
	_, err = utils.ReplyMessage(h.botApi, update, text)
	return err
}

// getTokenPrice 优先读取缓存, 其次CoinGecko, 最后GeckoTerminal交易池兜底
func (h *PriceHandler) getTokenPrice(ctx context.Context, token string) (decimal.Decimal, decimal.Decimal, error) {
	change := decimal.Zero
	pool, err := h.svcCtx.GeckoTerminalClient.GetTopPool(ctx, token)
	if err == nil {
		change = pool.PriceChange24h
	}

	if price, ok := h.svcCtx.PriceCache.GetPrice(token); ok {
		return price, change, nil
	}

	chainId := h.svcCtx.Config.Chain.Id
	price, err := h.svcCtx.CoinGeckoClient.GetTokenPrice(ctx, chainId, token)
	if err != nil {
		if pool == nil {
			return decimal.Zero, decimal.Zero, err
		}
		price = pool.BaseTokenPriceUsd
	}

	h.svcCtx.PriceCache.SetPrice(token, price)
	return price, change, nil
}
