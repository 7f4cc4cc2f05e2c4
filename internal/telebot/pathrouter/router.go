package pathrouter

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type HandlerFunc func(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error

type route struct {
	segments []string
	handler  HandlerFunc
}

// Router 按路径分发回调查询, 形如 /settings/set/{option} 的模式捕获路径变量
type Router struct {
	routes []route
}

func NewRouter() *Router {
	return &Router{}
}

func (r *Router) HandleFunc(pattern string, handler HandlerFunc) {
	r.routes = append(r.routes, route{
		segments: splitPath(pattern),
		handler:  handler,
	})
}

func (r *Router) Execute(ctx context.Context, path string, userId int64, update tgbotapi.Update) error {
	segments := splitPath(path)
	for _, item := range r.routes {
		vars, ok := match(item.segments, segments)
		if !ok {
			continue
		}
		return item.handler(ctx, vars, userId, update)
	}
	return fmt.Errorf("route not found: %s", path)
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func match(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	vars := make(map[string]string)
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			vars[strings.Trim(p, "{}")] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return vars, true
}
