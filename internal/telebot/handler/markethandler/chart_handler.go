package markethandler

import (
	"context"
	"fmt"
	"strings"

	"github.com/fachebot/evm-swap-bot/internal/datapi/geckoterminal"
	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/telebot/pathrouter"
	"github.com/fachebot/evm-swap-bot/internal/utils"
	"github.com/fachebot/evm-swap-bot/internal/utils/format"

	"github.com/ethereum/go-ethereum/common"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/markcheno/go-talib"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	rsiPeriod      = 14
	momentumPeriod = 10
)

type ChartHandler struct {
	botApi *tgbotapi.BotAPI
	svcCtx *svc.ServiceContext
}

func NewChartHandler(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI) *ChartHandler {
	return &ChartHandler{botApi: botApi, svcCtx: svcCtx}
}

func (h ChartHandler) FormatPath(token string) string {
	return fmt.Sprintf("/market/chart/%s", token)
}

func (h *ChartHandler) AddRouter(router *pathrouter.Router) {
	router.HandleFunc("/market/chart/{token}", h.handle)
}

func (h *ChartHandler) handle(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	token := vars["token"]
	if !common.IsHexAddress(token) {
		utils.SendMessageAndDelayDeletion(h.botApi, update.Message.Chat.ID, "⚠️ 请输入有效的代币合约地址", 1)
		return nil
	}

	pool, candles, err := fetchMarketData(ctx, h.svcCtx, token)
	if err != nil {
		logger.Errorf("[ChartHandler] 查询行情数据失败, token: %s, %v", token, err)
		utils.SendMessageAndDelayDeletion(h.botApi, update.Message.Chat.ID, "⚠️ 查询行情失败, 请稍后再试", 1)
		return nil
	}

	symbol := token
	if meta, err := h.svcCtx.TokenMetaCache.GetTokenMeta(ctx, token); err == nil {
		symbol = meta.Symbol
	}

	text := renderChartText(h.svcCtx.Config.Chain.Id, symbol, token, pool, candles)
	_, err = utils.ReplyMessage(h.botApi, update, text)
	return err
}

func fetchMarketData(ctx context.Context, svcCtx *svc.ServiceContext, token string) (*geckoterminal.Pool, []geckoterminal.Candle, error) {
	pool, err := svcCtx.GeckoTerminalClient.GetTopPool(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	candles, err := svcCtx.GeckoTerminalClient.GetOhlcv(ctx, pool.Address, "hour", 1, 100)
	if err != nil {
		return nil, nil, err
	}
	return pool, candles, nil
}

func renderChartText(chainId int64, symbol, token string, pool *geckoterminal.Pool, candles []geckoterminal.Candle) string {
	lines := []string{
		fmt.Sprintf("📊 *%s* 小时线行情", symbol),
		"",
		fmt.Sprintf("💰 价格: %s", format.Price(pool.BaseTokenPriceUsd, 5)),
		fmt.Sprintf("📈 24h涨跌: %s", format.Percent(pool.PriceChange24h)),
		fmt.Sprintf("💧 流动性: %s", format.USD(pool.ReserveInUsd)),
		fmt.Sprintf("🔄 24h成交额: %s", format.USD(pool.VolumeUsd24h)),
	}

	closes := lo.Map(candles, func(c geckoterminal.Candle, _ int) float64 {
		return c.Close.InexactFloat64()
	})

	if len(closes) > rsiPeriod {
		rsi := talib.Rsi(closes, rsiPeriod)
		latest := rsi[len(rsi)-1]

		signal := "中性"
		if latest >= 70 {
			signal = "超买"
		} else if latest <= 30 {
			signal = "超卖"
		}
		lines = append(lines, fmt.Sprintf("📐 RSI(%d): %.1f (%s)", rsiPeriod, latest, signal))
	}

	if len(closes) > momentumPeriod {
		mom := talib.Mom(closes, momentumPeriod)
		latest := mom[len(mom)-1]

		direction := "走平"
		if latest > 0 {
			direction = "向上"
		} else if latest < 0 {
			direction = "向下"
		}
		lines = append(lines, fmt.Sprintf("🚀 动量(%d): %s (%s)", momentumPeriod, format.Price(decimal.NewFromFloat(latest), 5), direction))
	}

	lines = append(lines, "", fmt.Sprintf("[Dexscreener](%s) | [GeckoTerminal](%s)",
		utils.GetDexscreenerTokenLink(chainId, token), utils.GetGeckoTerminalTokenLink(chainId, token)))
	return strings.Join(lines, "\n")
}
