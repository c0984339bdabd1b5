package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	"turibot/internal/model/convo"
	convoservice "turibot/internal/service/convo"
)

// User-facing texts, rendered by the transport.
const (
	welcomeText = "¡Hola! Soy tu asistente turístico 🤖🌍\nElegí una categoría para comenzar:"

	promptDestinations = "🌍 Escribime el destino del que querés recibir recomendaciones turísticas."
	promptGastronomy   = "🍽️ Indicame una ciudad o país y te cuento sobre su gastronomía típica."
	promptActivities   = "🎢 Decime un destino y te sugiero actividades o excursiones para hacer."

	infoText = "🤖 *Bot Turístico con IA*\n\n" +
		"Ofrece información sobre destinos, gastronomía y actividades.\n" +
		"Incluye análisis de sentimientos y registro del historial de conversaciones.\n" +
		"_Proyecto educativo del Instituto Tecnológico Universitario._"
)

// infoToken is the keyboard button that shows the about text instead of a
// category prompt. Its token is still stored as the session category; the
// prompt composer treats it as general.
const infoToken = "info"

// Conversation is the slice of the orchestrator the poller dispatches to.
type Conversation interface {
	SelectCategory(userID int64, token string) convo.Category
	HandleMessage(ctx context.Context, userID int64, displayName, text string) ([]string, error)
}

// Bot long-polls the Telegram API and dispatches updates to the
// conversation orchestrator.
type Bot struct {
	api         *Client
	svc         Conversation
	pollTimeout time.Duration
}

// NewBot wires the poller.
func NewBot(api *Client, svc Conversation, pollTimeout time.Duration) *Bot {
	return &Bot{api: api, svc: svc, pollTimeout: pollTimeout}
}

// Run polls until the context is cancelled. Poll failures are logged and
// retried after a short pause; update handling never stops the loop.
func (b *Bot) Run(ctx context.Context) error {
	log.Println("[telegram] polling for updates")

	var offset int64
	for {
		updates, next, err := b.api.GetUpdates(ctx, offset, b.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("[telegram] getUpdates failed: %v", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(3 * time.Second):
			}
			continue
		}
		offset = next

		for _, update := range updates {
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Text != "":
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *CallbackQuery) {
	if err := b.api.AnswerCallbackQuery(ctx, cb.ID); err != nil {
		log.Printf("[telegram] answerCallbackQuery failed: %v", err)
	}
	if cb.From == nil || cb.Message == nil {
		return
	}

	category := b.svc.SelectCategory(cb.From.ID, cb.Data)

	reply, parseMode := categoryReply(category)
	if reply == "" {
		return
	}
	if err := b.api.EditMessageText(ctx, cb.Message.Chat.ID, cb.Message.MessageID, reply, parseMode); err != nil {
		log.Printf("[telegram] editMessageText failed: %v", err)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *Message) {
	if msg.From == nil {
		return
	}
	if strings.HasPrefix(msg.Text, "/") {
		if command(msg.Text) == "start" {
			b.sendWelcome(ctx, msg.Chat.ID)
		}
		// Other commands are ignored, matching the text-only handler.
		return
	}

	chunks, err := b.svc.HandleMessage(ctx, msg.From.ID, msg.From.FirstName, msg.Text)
	if err != nil {
		if sendErr := b.api.SendMessage(ctx, msg.Chat.ID, convoservice.ApologyMessage, nil); sendErr != nil {
			log.Printf("[telegram] failed to send apology: %v", sendErr)
		}
		return
	}

	for _, chunk := range chunks {
		opts := &SendOptions{ParseMode: "HTML", DisableWebPagePreview: true}
		if err := b.api.SendMessage(ctx, msg.Chat.ID, chunk, opts); err != nil {
			log.Printf("[telegram] send failed for user=%d: %v", msg.From.ID, err)
			return
		}
	}
}

func (b *Bot) sendWelcome(ctx context.Context, chatID int64) {
	keyboard := &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{
				{Text: "🌆 Destinos", CallbackData: string(convo.CategoryDestinations)},
				{Text: "🍽️ Gastronomía", CallbackData: string(convo.CategoryGastronomy)},
			},
			{
				{Text: "🎢 Actividades", CallbackData: string(convo.CategoryActivities)},
				{Text: "ℹ️ Info", CallbackData: infoToken},
			},
		},
	}
	if err := b.api.SendMessage(ctx, chatID, welcomeText, &SendOptions{ReplyMarkup: keyboard}); err != nil {
		log.Printf("[telegram] failed to send welcome: %v", err)
	}
}

// command extracts the bare command name from a "/name[@bot] [args]"
// message, so "/start" matches but "/startle" does not.
func command(text string) string {
	name := strings.TrimPrefix(text, "/")
	if i := strings.IndexAny(name, " \n"); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	return name
}

// categoryReply maps a selected category to the prompt text shown in place
// of the keyboard message, with its parse mode.
func categoryReply(category convo.Category) (string, string) {
	switch category {
	case convo.CategoryDestinations:
		return promptDestinations, ""
	case convo.CategoryGastronomy:
		return promptGastronomy, ""
	case convo.CategoryActivities:
		return promptActivities, ""
	case convo.Category(infoToken):
		return infoText, "Markdown"
	default:
		return "", ""
	}
}
