package settingshandler

import (
	"context"
	"fmt"
	"strings"

	"github.com/fachebot/evm-swap-bot/internal/ent"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func getSettingsMenuText(chainId int64) string {
	items := []string{
		"1️⃣ *交易滑点:* 买入/卖出允许的价格滑点",
		"2️⃣ *无限授权:* 首次交易授权无限额度, 后续交易省去授权燃气",
	}

	text := fmt.Sprintf("%s 兑换机器人 | 用户配置", utils.GetNetworkName(chainId))
	text = fmt.Sprintf("%s\n\n%s", text, strings.Join(items, "\n"))
	return text
}

func getUserSettings(ctx context.Context, svcCtx *svc.ServiceContext, userId int64) (*ent.Settings, error) {
	record, err := svcCtx.SettingsModel.FindByUserId(ctx, userId)
	if err == nil {
		return record, nil
	}

	if !ent.IsNotFound(err) {
		return nil, err
	}

	enableInfiniteApproval := true
	args := ent.Settings{
		UserId:                 userId,
		SlippageBps:            svcCtx.Config.Chain.SlippageBps,
		EnableInfiniteApproval: &enableInfiniteApproval,
	}
	return svcCtx.SettingsModel.Save(ctx, args)
}

func displaySettingsMenu(svcCtx *svc.ServiceContext, botApi *tgbotapi.BotAPI, update tgbotapi.Update, record *ent.Settings) error {
	text := getSettingsMenuText(svcCtx.Config.Chain.Id)

	sellSlippage := float64(record.SlippageBps) / 100
	if record.SellSlippageBps != nil {
		sellSlippage = float64(*record.SellSlippageBps) / 100
	}

	enableInfiniteApproval := "🔴 关闭代币无限授权"
	if record.EnableInfiniteApproval != nil && *record.EnableInfiniteApproval {
		enableInfiniteApproval = "🟢 打开代币无限授权"
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				enableInfiniteApproval, SettingsHomeHandler{}.FormatPath(&SettingsOptionEnableInfiniteApproval)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("买入滑点: %v%%", float64(record.SlippageBps)/100), SettingsHomeHandler{}.FormatPath(&SettingsOptionSlippageBps)),
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("卖出滑点: %v%%", sellSlippage), SettingsHomeHandler{}.FormatPath(&SettingsOptionSellSlippageBps)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ 返回主页", "/home"),
		),
	)
	_, err := utils.ReplyMessage(botApi, update, text, markup)
	return err
}
