package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run(t *testing.T) {
	practicumServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth practicum-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"homeworks":[{"status":"approved","homework_name":"hw1"}],"current_date":1700000000}`))
	}))
	defer practicumServer.Close()

	sent := make(chan map[string]string, 10)
	botServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := map[string]string{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		sent <- params
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":1700000000,"chat":{"id":42,"type":"private"}}}`))
	}))
	defer botServer.Close()

	a, err := NewApp(&config.Config{
		Practicum: config.Practicum{Token: "practicum-token", Endpoint: practicumServer.URL},
		Telegram:  config.Telegram{BotToken: "bot-token", ChatID: "42", APIURL: botServer.URL},
		Poller:    config.Poller{RetryPeriod: time.Hour, RequestTimeout: time.Second},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() {
		runErr <- a.Run(ctx)
	}()

	select {
	case params := <-sent:
		assert.Equal(t, "42", params["chat_id"])
		assert.Equal(t, `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`, params["text"])
	case <-time.After(5 * time.Second):
		t.Fatal("notification was not delivered")
	}

	cancel()
	select {
	case err = <-runErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}

	assert.Empty(t, sent)
}
