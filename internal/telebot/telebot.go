package telebot

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/fachebot/evm-swap-bot/internal/logger"
	"github.com/fachebot/evm-swap-bot/internal/svc"
	"github.com/fachebot/evm-swap-bot/internal/telebot/handler/markethandler"
	"github.com/fachebot/evm-swap-bot/internal/telebot/handler/settingshandler"
	"github.com/fachebot/evm-swap-bot/internal/telebot/handler/tradehandler"
	"github.com/fachebot/evm-swap-bot/internal/telebot/handler/wallethandler"
	"github.com/fachebot/evm-swap-bot/internal/telebot/pathrouter"
	"github.com/fachebot/evm-swap-bot/internal/utils"
	"github.com/fachebot/evm-swap-bot/internal/utils/evm"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TeleBot struct {
	ctx      context.Context
	cancel   context.CancelFunc
	stopChan chan struct{}
	svcCtx   *svc.ServiceContext
	botApi   *tgbotapi.BotAPI
	router   *pathrouter.Router
}

func NewTeleBot(svcCtx *svc.ServiceContext) (*TeleBot, error) {
	ctx, cancel := context.WithCancel(context.Background())
	botService := &TeleBot{
		ctx:    ctx,
		cancel: cancel,
		svcCtx: svcCtx,
		botApi: svcCtx.BotApi,
		router: pathrouter.NewRouter(),
	}

	botService.initRoutes()
	return botService, nil
}

func (s *TeleBot) initRoutes() {
	s.router.HandleFunc("/home", func(
		ctx context.Context,
		vars map[string]string,
		userId int64,
		update tgbotapi.Update,
	) error {
		return s.handleHome(userId, update)
	})

	markethandler.InitRoutes(s.svcCtx, s.botApi, s.router)
	settingshandler.InitRoutes(s.svcCtx, s.botApi, s.router)
	tradehandler.InitRoutes(s.svcCtx, s.botApi, s.router)
	wallethandler.InitRoutes(s.svcCtx, s.botApi, s.router)
}

func (s *TeleBot) Stop() {
	if s.stopChan == nil {
		return
	}

	logger.Infof("[TeleBot] 准备停止服务")

	s.botApi.StopReceivingUpdates()
	s.cancel()

	<-s.stopChan
	close(s.stopChan)
	s.stopChan = nil

	logger.Infof("[TeleBot] 服务已经停止")
}

func (s *TeleBot) Start() {
	if s.stopChan != nil {
		return
	}

	s.stopChan = make(chan struct{})
	logger.Infof("[TeleBot] 开始运行服务")
	go s.run()
}

func (s *TeleBot) handleHome(userId int64, update tgbotapi.Update) error {
	// 确保生成账户
	w, err := wallethandler.GetUserWallet(s.ctx, s.svcCtx, userId)
	if err != nil {
		return err
	}

	// 查询账户余额
	balance, err := s.svcCtx.Chain.Balance(s.ctx, w.Account)
	if err != nil {
		balance = big.NewInt(0)
	}

	// 回复首页菜单
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🟢 买入", tradehandler.BuyHandler{}.FormatPath("")),
			tgbotapi.NewInlineKeyboardButtonData("🔴 卖出", tradehandler.SellHandler{}.FormatPath("")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💳 钱包", wallethandler.WalletHomeHandler{}.FormatPath()),
			tgbotapi.NewInlineKeyboardButtonData("⚙️ 设置", settingshandler.SettingsHomeHandler{}.FormatPath(nil)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📦 交易记录", markethandler.HistoryHandler{}.FormatPath()),
		),
	)

	chainId := s.svcCtx.Config.Chain.Id
	currency := s.svcCtx.Config.Chain.NativeCurrency.Symbol
	text := fmt.Sprintf("%s 兑换机器人 | 一键买卖, 快人一步! \n\n💳 我的钱包:\n`%s`\n\n💰 %s余额: `%s`",
		utils.GetNetworkName(chainId), w.Account, currency, evm.ParseETH(balance).Truncate(5))

	text = text + fmt.Sprintf("\n\n[BlockExplorer](%s)", utils.GetBlockExplorerAccountLink(chainId, w.Account))
	_, err = utils.ReplyMessage(s.botApi, update, text, markup)
	if err != nil {
		logger.Debugf("[TeleBot] 处理主页失败, %v", err)
	}

	return nil
}

// handleCommand 把带参数的命令翻译成路由路径
func (s *TeleBot) handleCommand(userId int64, update tgbotapi.Update) {
	command := update.Message.Command()
	args := strings.TrimSpace(update.Message.CommandArguments())

	var path string
	switch command {
	case "start":
		if err := s.handleHome(userId, update); err != nil {
			logger.Debugf("[TeleBot] 处理主页失败, %v", err)
		}
		return
	case "price", "chart", "analysis":
		if args == "" {
			utils.SendMessageAndDelayDeletion(s.botApi, userId, fmt.Sprintf("⚠️ 用法: /%s <代币合约地址>", command), 3)
			return
		}
		switch command {
		case "price":
			path = markethandler.PriceHandler{}.FormatPath(args)
		case "chart":
			path = markethandler.ChartHandler{}.FormatPath(args)
		case "analysis":
			path = markethandler.AnalysisHandler{}.FormatPath(args)
		}
	case "history":
		path = markethandler.HistoryHandler{}.FormatPath()
	default:
		utils.SendMessageAndDelayDeletion(s.botApi, userId, "⚠️ 不支持的命令", 1)
		return
	}

	if err := s.router.Execute(s.ctx, path, userId, update); err != nil {
		logger.Debugf("[TeleBot] 处理路由失败, path: %s, %v", path, err)
	}
}

func (s *TeleBot) handleUpdate(update tgbotapi.Update) {
	// 获取用户ID
	var chat *tgbotapi.Chat
	if update.Message != nil {
		chat = update.Message.Chat
	} else if update.ChannelPost != nil {
		chat = update.ChannelPost.Chat
	} else if update.EditedMessage != nil {
		chat = update.EditedMessage.Chat
	} else if update.CallbackQuery != nil {
		chat = update.CallbackQuery.Message.Chat
	} else {
		return
	}

	userId := chat.ID
	logger.Debugf("[TeleBot] 收到新消息, chat: %d, username: %s, title: %s, type: %s",
		chat.ID, chat.UserName, chat.Title, chat.Type)

	if chat.Type != "private" {
		return
	}
	if !s.svcCtx.Config.TelegramBot.IsWhiteListUser(userId) {
		utils.SendMessage(s.botApi, userId, "🚫 非白名单用户, 不允许使用此机器人")
		return
	}

	// 处理文本消息
	if update.Message != nil {
		if update.Message.IsCommand() {
			s.handleCommand(userId, update)
			return
		}

		if update.Message.ReplyToMessage != nil {
			chatId := update.Message.ReplyToMessage.Chat.ID
			messageID := update.Message.ReplyToMessage.MessageID
			route, ok := s.svcCtx.MessageCache.GetRoute(chatId, messageID)
			if ok {
				err := s.router.Execute(s.ctx, route.Path, userId, update)
				if err != nil {
					logger.Debugf("[TeleBot] 处理路由失败, path: %s, %v", route.Path, err)
				}
			}
		}

		return
	}

	// 处理回调查询
	if update.CallbackQuery != nil {
		err := s.router.Execute(s.ctx, update.CallbackQuery.Data, userId, update)
		if err == nil {
			cb := tgbotapi.NewCallback(update.CallbackQuery.ID, "")
			if _, err = s.botApi.Request(cb); err != nil {
				logger.Debugf("[TeleBot] 回答 CallbackQuery 失败, id: %s, %v", update.CallbackQuery.ID, err)
			}
		} else {
			logger.Errorf("[TeleBot] 处理 CallbackQuery 失败, %v", err)
			cb := tgbotapi.NewCallbackWithAlert(update.CallbackQuery.ID, "操作失败, 请稍后再试")
			if _, err = s.botApi.Request(cb); err != nil {
				logger.Debugf("[TeleBot] 回答 CallbackQuery 失败, id: %s, %v", update.CallbackQuery.ID, err)
			}
		}
	}
}

func (s *TeleBot) run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 5
	updates := s.botApi.GetUpdatesChan(u)

	for {
		select {
		case <-s.ctx.Done():
			logger.Infof("[TeleBot] 上下文已取消")

			s.stopChan <- struct{}{}

			return
		case update := <-updates:
			s.handleUpdate(update)
		}
	}
}
