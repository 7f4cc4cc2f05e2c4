package utils

import (
	"time"

	"github.com/fachebot/evm-swap-bot/internal/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendMessage 发送Markdown消息
func SendMessage(botApi *tgbotapi.BotAPI, chatId int64, text string) (tgbotapi.Message, error) {
	c := tgbotapi.NewMessage(chatId, text)
	c.ParseMode = tgbotapi.ModeMarkdown
	c.DisableWebPagePreview = true
	return botApi.Send(c)
}

// ReplyMessage 回复消息; 如果来自回调查询则编辑原消息, 否则发送新消息
func ReplyMessage(botApi *tgbotapi.BotAPI, update tgbotapi.Update, text string, markup ...tgbotapi.InlineKeyboardMarkup) (tgbotapi.Message, error) {
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		chatId := update.CallbackQuery.Message.Chat.ID
		messageId := update.CallbackQuery.Message.MessageID

		c := tgbotapi.NewEditMessageText(chatId, messageId, text)
		c.ParseMode = tgbotapi.ModeMarkdown
		c.DisableWebPagePreview = true
		if len(markup) > 0 {
			c.ReplyMarkup = &markup[0]
		}
		return botApi.Send(c)
	}

	var chatId int64
	if update.Message != nil {
		chatId = update.Message.Chat.ID
	} else if update.EditedMessage != nil {
		chatId = update.EditedMessage.Chat.ID
	} else {
		return tgbotapi.Message{}, nil
	}

	c := tgbotapi.NewMessage(chatId, text)
	c.ParseMode = tgbotapi.ModeMarkdown
	c.DisableWebPagePreview = true
	if len(markup) > 0 {
		c.ReplyMarkup = markup[0]
	}
	return botApi.Send(c)
}

// EditMessage 编辑指定消息内容
func EditMessage(botApi *tgbotapi.BotAPI, chatId int64, messageId int, text string) (tgbotapi.Message, error) {
	c := tgbotapi.NewEditMessageText(chatId, messageId, text)
	c.ParseMode = tgbotapi.ModeMarkdown
	c.DisableWebPagePreview = true
	return botApi.Send(c)
}

// DeleteMessages 延迟删除一组消息, delay 单位秒
func DeleteMessages(botApi *tgbotapi.BotAPI, chatId int64, messageIds []int, delay int) {
	go func() {
		if delay > 0 {
			time.Sleep(time.Second * time.Duration(delay))
		}

		for _, messageId := range messageIds {
			c := tgbotapi.NewDeleteMessage(chatId, messageId)
			if _, err := botApi.Request(c); err != nil {
				logger.Debugf("[utils] 删除消息失败, chatId: %d, messageId: %d, %v", chatId, messageId, err)
			}
		}
	}()
}

// SendMessageAndDelayDeletion 发送提示消息并延迟删除
func SendMessageAndDelayDeletion(botApi *tgbotapi.BotAPI, chatId int64, text string, delay int) {
	msg, err := SendMessage(botApi, chatId, text)
	if err != nil {
		logger.Debugf("[utils] 发送消息失败, chatId: %d, %v", chatId, err)
		return
	}
	DeleteMessages(botApi, chatId, []int{msg.MessageID}, delay)
}
