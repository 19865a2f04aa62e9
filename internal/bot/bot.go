package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/telebot.v4"

	"github.com/abdullahzahoor404/telco-scanner/internal/detector"
	"github.com/abdullahzahoor404/telco-scanner/internal/models"
	"github.com/abdullahzahoor404/telco-scanner/internal/repository"
	"github.com/abdullahzahoor404/telco-scanner/internal/services/watcher"
)

// Bot wires scan notifications and manual triggers to Telegram.
type Bot struct {
	bot     API
	log     *slog.Logger
	repo    repository.Subscriptions
	watcher watcher.Interface
}

// NewBot creates and authorizes the Telegram bot.
func NewBot(
	log *slog.Logger,
	token string,
	poller time.Duration,
	repo repository.Subscriptions,
	watch watcher.Interface,
) (*Bot, error) {
	api, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: poller},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on account", "account", api.Me.Username)

	botInstance := &Bot{bot: api, log: log, repo: repo, watcher: watch}

	botInstance.registerRoutes()

	return botInstance, nil
}

// Start launches the bot to listen for updates.
func (b *Bot) Start() {
	b.log.Info("Telegram bot is starting...")
	b.bot.Start()
}

// Stop gracefully stops the Telegram bot and logs the action.
func (b *Bot) Stop() {
	b.log.Info("Telegram bot is stopped...")
	b.bot.Stop()
}

// registerRoutes configures all routes (commands).
func (b *Bot) registerRoutes() {
	b.bot.Handle("/start", b.startHandler)
	b.bot.Handle("/stop", b.stopHandler)
	b.bot.Handle("/check", b.checkHandler)
}

// Notify pushes a scan summary to every subscribed chat. Rows whose
// remark is "Same" are omitted: subscribers only hear about new or
// changed offers.
func (b *Bot) Notify(ctx context.Context, rows []models.Row) error {
	changed := filterChanged(rows)
	if len(changed) == 0 {
		b.log.InfoContext(ctx, "No offer changes to notify")
		return nil
	}

	chats, err := b.repo.GetSubscribedChats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get subscribed chats: %w", err)
	}

	message := formatRows(changed)
	for _, chatID := range chats {
		if _, err = b.bot.Send(telebot.ChatID(chatID), message); err != nil {
			b.log.ErrorContext(ctx, "Failed to send notification", "chat_id", chatID, "error", err)
		}
	}

	return nil
}

func filterChanged(rows []models.Row) []models.Row {
	var changed []models.Row
	for _, row := range rows {
		if row.Remark == detector.RemarkSame {
			continue
		}
		changed = append(changed, row)
	}
	return changed
}

func formatRows(rows []models.Row) string {
	var sb strings.Builder
	sb.WriteString("Offer updates:\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "%s | %s | %s | %s | %s\n",
			row.Operator, row.Name, row.Price, row.Validity, row.Remark)
	}
	return sb.String()
}
