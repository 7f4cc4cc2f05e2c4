package markethandler

import (
	"context"
	"fmt"
	"strings"

	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/telebot/pathrouter"
	"github.com/fachebot/evm-swap-bot/internal/utils"

	"github.com/ethereum/go-ethereum/common"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const analysisSystemPrompt = "你是一名加密货币市场分析师, 根据提供的代币行情数据给出简短的走势分析, " +
	"包含趋势判断和风险提示, 控制在200字以内, 不构成投资建议"

type AnalysisHandler struct {
	botApi *tgbotapi.BotAPI
	svcCtx *svc.ServiceContext
}

func NewAnalysisHandler(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI) *AnalysisHandler {
	return &AnalysisHandler{botApi: botApi, svcCtx: svcCtx}
}

func (h AnalysisHandler) FormatPath(token string) string {
	return fmt.Sprintf("/market/analysis/%s", token)
}

func (h *AnalysisHandler) AddRouter(router *pathrouter.Router) {
	router.HandleFunc("/market/analysis/{token}", h.handle)
}

func (h *AnalysisHandler) handle(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
	token := vars["token"]
	if !common.IsHexAddress(token) {
		utils.SendMessageAndDelayDeletion(h.botApi, update.Message.Chat.ID, "⚠️ 请输入有效的代币合约地址", 1)
		return nil
	}

	chatId := update.Message.Chat.ID
	statusMsg, err := utils.SendMessage(h.botApi, chatId, "🤖 正在分析行情数据...")
	if err != nil {
		return err
	}

	pool, candles, err := fetchMarketData(ctx, h.svcCtx, token)
	if err != nil {
		logger.Errorf("[AnalysisHandler] 查询行情数据失败, token: %s, %v", token, err)
		_, err = utils.EditMessage(h.botApi, chatId, statusMsg.MessageID, "⚠️ 查询行情失败, 请稍后再试")
		return err
	}

	symbol := token
	if meta, err := h.svcCtx.TokenMetaCache.GetTokenMeta(ctx, token); err == nil {
		symbol = meta.Symbol
	}

	summary := []string{
		fmt.Sprintf("代币: %s", symbol),
		fmt.Sprintf("当前价格(USD): %s", pool.BaseTokenPriceUsd),
		fmt.Sprintf("24小时涨跌幅: %s%%", pool.PriceChange24h),
		fmt.Sprintf("流动性(USD): %s", pool.ReserveInUsd),
		fmt.Sprintf("24小时成交额(USD): %s", pool.VolumeUsd24h),
	}
	if n := len(candles); n > 0 {
		recent := candles
		if n > 24 {
			recent = candles[n-24:]
		}
		closes := make([]string, 0, len(recent))
		for _, c := range recent {
			closes = append(closes, c.Close.String())
		}
		summary = append(summary, fmt.Sprintf("最近%d根小时线收盘价: %s", len(recent), strings.Join(closes, ", ")))
	}

	answer, err := h.svcCtx.DeepSeekClient.Chat(ctx, analysisSystemPrompt, strings.Join(summary, "\n"))
	if err != nil {
		logger.Errorf("[AnalysisHandler] 调用分析模型失败, token: %s, %v", token, err)
		_, err = utils.EditMessage(h.botApi, chatId, statusMsg.MessageID, "⚠️ 分析服务暂不可用, 请稍后再试")
		return err
	}

	text := fmt.Sprintf("🤖 *%s* 行情分析\n\n%s", symbol, answer)
	_, err = utils.EditMessage(h.botApi, chatId, statusMsg.MessageID, text)
	return err
}
