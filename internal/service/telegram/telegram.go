package telegram

import (
	"errors"
	"fmt"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// chat получатель по строковому идентификатору: числовой id или @username канала
type chat string

func (c chat) Recipient() string {
	return string(c)
}

type svc struct {
	bot  sender
	chat chat
}

func NewService(cfg config.Telegram) (*svc, error) {
	bot, err := createBot(cfg)
	if err != nil {
		return nil, fmt.Errorf("createBot: %w", err)
	}

	return newService(bot, cfg.ChatID), nil
}

func newService(bot sender, chatID string) *svc {
	return &svc{
		bot:  bot,
		chat: chat(chatID),
	}
}

func createBot(cfg config.Telegram) (*tele.Bot, error) {
	pref := tele.Settings{
		URL:   cfg.APIURL,
		Token: cfg.BotToken,
		// апдейты бот не читает, getMe при старте не нужен
		Offline: true,
		OnError: func(err error, _ tele.Context) {
			log.Error().Msgf("bot.OnError: %v", err.Error())
		},
	}

	abot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("tele.NewBot: %w", err)
	}

	return abot, nil
}

// Notify отправляет сообщение в чат, ошибка отправки только логируется
func (s *svc) Notify(message string) {
	log.Debug().Str("chat", s.chat.Recipient()).Msgf("sending message: %s", message)

	if _, err := s.bot.Send(s.chat, message); err != nil {
		s.logSendError(err)
		return
	}

	log.Debug().Str("chat", s.chat.Recipient()).Msg("message sent")
}

func (s *svc) logSendError(err error) {
	if errors.Is(err, tele.ErrChatNotFound) ||
		errors.Is(err, tele.ErrBlockedByUser) ||
		errors.Is(err, tele.ErrNotStartedByUser) ||
		errors.Is(err, tele.ErrKickedFromGroup) {
		log.Error().Str("chat", s.chat.Recipient()).
			Msgf("bot can not write to the chat, check TELEGRAM_CHAT_ID: %v", err)
		return
	}

	log.Error().Str("chat", s.chat.Recipient()).Msgf("bot.Send: %v", err)
}
