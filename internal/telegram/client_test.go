package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSendMessagePayload(t *testing.T) {
	var got sendMessageRequest
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient("TOKEN", server.URL)
	opts := &SendOptions{ParseMode: "HTML", DisableWebPagePreview: true}
	if err := client.SendMessage(context.Background(), 99, "hola", opts); err != nil {
		t.Fatalf("SendMessage err: %v", err)
	}

	if path != "/botTOKEN/sendMessage" {
		t.Fatalf("unexpected path: %s", path)
	}
	if got.ChatID != 99 || got.Text != "hola" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.ParseMode != "HTML" || !got.DisableWebPagePreview {
		t.Fatalf("rendering options not forwarded: %+v", got)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer server.Close()

	client := NewClient("TOKEN", server.URL)
	err := client.SendMessage(context.Background(), 1, "hola", nil)
	if err == nil {
		t.Fatal("expected error for ok=false response")
	}
}

func TestGetUpdatesAdvancesOffset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"result":[
			{"update_id":10,"message":{"message_id":1,"chat":{"id":5},"from":{"id":5,"first_name":"Ana"},"text":"hola"}},
			{"update_id":11,"callback_query":{"id":"cb1","from":{"id":5},"data":"destinos","message":{"message_id":2,"chat":{"id":5}}}}
		]}`))
	}))
	defer server.Close()

	client := NewClient("TOKEN", server.URL)
	updates, next, err := client.GetUpdates(context.Background(), 0, time.Second)
	if err != nil {
		t.Fatalf("GetUpdates err: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(updates))
	}
	if next != 12 {
		t.Fatalf("expected next offset 12, got %d", next)
	}
	if updates[0].Message == nil || updates[0].Message.Text != "hola" {
		t.Fatalf("message update not decoded: %+v", updates[0])
	}
	if updates[1].CallbackQuery == nil || updates[1].CallbackQuery.Data != "destinos" {
		t.Fatalf("callback update not decoded: %+v", updates[1])
	}
}
