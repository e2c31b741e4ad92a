package bot

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-telegram-bot-api/telegram-bot-api"
	log "github.com/sirupsen/logrus"
)

// apiClient carries the requests to the bot api.
var apiClient = &http.Client{}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot answers chat messages with expanded urls and converted video ids.
type Bot struct {
	api     sender
	replier *Replier
	timeout time.Duration
	wg      sync.WaitGroup
}

func newBot(api sender, config *Config) *Bot {
	return &Bot{
		api:     api,
		replier: NewReplier(NewResolver(config.Timeout, config.MaxRedirects), config.Host),
		timeout: config.Timeout * time.Duration(config.MaxRedirects),
	}
}

// Serve connects to the chat api and handles updates until ctx is done.
func Serve(ctx context.Context, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	var api *tgbotapi.BotAPI
	operation := func() error {
		var err error
		api, err = tgbotapi.NewBotAPIWithClient(config.Token, apiClient)
		if err == nil {
			return nil
		}

		var apiErr tgbotapi.Error
		if errors.As(err, &apiErr) {
			return backoff.Permanent(err) // rejected by the api, retrying will not help
		}
		log.Warnf("failed connecting to the bot api: %s", err)
		return err
	}
	if err := backoff.Retry(operation, backoff.WithContext(connectBackoff(), ctx)); err != nil {
		return err
	}

	log.Infof("Authorized on account %s", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates, err := api.GetUpdatesChan(u)
	if err != nil {
		return err
	}
	defer api.StopReceivingUpdates()

	newBot(api, config).handleUpdates(ctx, updates)
	return nil
}

func connectBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 5 * time.Minute
	return b
}

func (b *Bot) handleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	defer b.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}

			if (len(update.Message.Text) == 0 && len(update.Message.Caption) == 0) || strings.HasPrefix(update.Message.Text, "/") {
				continue
			}

			b.wg.Add(1)
			go func(receive *tgbotapi.Message) {
				defer b.wg.Done()
				b.handleMessage(ctx, receive)
			}(update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, receive *tgbotapi.Message) {
	text := receive.Text
	if len(text) == 0 {
		text = receive.Caption
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	reply, err := b.replier.Reply(ctx, text)
	if err != nil {
		log.Debugf("no reply for message %d: %s", receive.MessageID, err)
		return
	}

	msg := tgbotapi.NewMessage(receive.Chat.ID, reply)
	msg.ReplyToMessageID = receive.MessageID
	msg.DisableWebPagePreview = true
	if _, err := b.api.Send(msg); err != nil {
		log.Errorf("failed sending reply to chat %d: %s", receive.Chat.ID, err)
	}
}
