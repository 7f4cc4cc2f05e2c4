package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// RouteInfo 记录 ForceReply 消息对应的路由, 用户回复时按此路由分发
type RouteInfo struct {
	Path    string
	Context *tgbotapi.Message
}

type MessageCache struct {
	routes *gocache.Cache
}

func NewMessageCache() *MessageCache {
	return &MessageCache{
		routes: gocache.New(time.Hour, time.Minute*10),
	}
}

func (c *MessageCache) SetRoute(chatId int64, messageId int, route RouteInfo) {
	c.routes.SetDefault(makeRouteKey(chatId, messageId), route)
}

func (c *MessageCache) GetRoute(chatId int64, messageId int) (RouteInfo, bool) {
	v, ok := c.routes.Get(makeRouteKey(chatId, messageId))
	if !ok {
		return RouteInfo{}, false
	}
	return v.(RouteInfo), true
}

func (c *MessageCache) DeleteRoute(chatId int64, messageId int) {
	c.routes.Delete(makeRouteKey(chatId, messageId))
}

func makeRouteKey(chatId int64, messageId int) string {
	return fmt.Sprintf("%d:%d", chatId, messageId)
}
