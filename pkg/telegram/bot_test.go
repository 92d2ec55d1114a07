package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-task-dashboard/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastChatID float64
	var lastSecret string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			lastSecret = req["secret_token"]
			if req["url"] == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if req["url"] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req map[string]any
			json.NewDecoder(r.Body).Decode(&req)
			lastChatID, _ = req["chat_id"].(float64)
			text, _ := req["text"].(string)

			if text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			if text == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SetWebhook With Secret", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook", "s3cret"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if lastSecret != "s3cret" {
			t.Errorf("expected secret_token to be sent, got %q", lastSecret)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "cause_500", ""); err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessageWithMode Success", func(t *testing.T) {
		if err := bot.SendMessageWithMode(ctx, 12345, "Hello", "Markdown"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage HTTP Failed", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "cause_500"); err == nil {
			t.Fatalf("expected status error")
		}
	})

	t.Run("Canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := bot.SendMessage(cctx, 12345, "Hello"); err == nil {
			t.Fatalf("expected context error")
		}
	})

	t.Run("Notifier uses bound chat", func(t *testing.T) {
		n := telegram.NewNotifier(bot, 777)
		if err := n.Notify(ctx, "Task added"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastChatID != 777 {
			t.Errorf("expected chat 777, got %v", lastChatID)
		}
	})
}
