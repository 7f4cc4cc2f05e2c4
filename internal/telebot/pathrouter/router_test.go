package pathrouter

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterExecute(t *testing.T) {
	router := NewRouter()

	var gotVars map[string]string
	router.HandleFunc("/settings", func(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
		gotVars = vars
		return nil
	})
	router.HandleFunc("/trade/{side}/{token}", func(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
		gotVars = vars
		return nil
	})

	err := router.Execute(context.Background(), "/settings", 1, tgbotapi.Update{})
	require.NoError(t, err)
	assert.Empty(t, gotVars)

	err = router.Execute(context.Background(), "/trade/buy/0xABC", 1, tgbotapi.Update{})
	require.NoError(t, err)
	assert.Equal(t, "buy", gotVars["side"])
	assert.Equal(t, "0xABC", gotVars["token"])
}

func TestRouterNotFound(t *testing.T) {
	router := NewRouter()
	router.HandleFunc("/wallet", func(ctx context.Context, vars map[string]string, userId int64, update tgbotapi.Update) error {
		return nil
	})

	err := router.Execute(context.Background(), "/wallet/export", 1, tgbotapi.Update{})
	require.Error(t, err)

	err = router.Execute(context.Background(), "/settings", 1, tgbotapi.Update{})
	require.Error(t, err)
}
