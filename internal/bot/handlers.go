package bot

import (
	"context"
	"fmt"

	"gopkg.in/telebot.v4"
)

// startHandler processes /start: subscribes the chat to scan results.
func (b *Bot) startHandler(ctx telebot.Context) error {
	b.log.Info("User subscribed", "username", ctx.Sender().Username, "chat_id", ctx.Chat().ID)

	if err := b.repo.SubscribeChat(context.Background(), ctx.Chat().ID); err != nil {
		return fmt.Errorf("failed to subscribe chat: %w", err)
	}

	if err := ctx.Send("Subscribed. You will receive offer updates after every scan. Use /check to run one now."); err != nil {
		return fmt.Errorf("failed to send greeting message: %w", err)
	}

	return nil
}

// stopHandler processes /stop: unsubscribes the chat.
func (b *Bot) stopHandler(ctx telebot.Context) error {
	b.log.Info("User unsubscribed", "username", ctx.Sender().Username, "chat_id", ctx.Chat().ID)

	if err := b.repo.UnsubscribeChat(context.Background(), ctx.Chat().ID); err != nil {
		return fmt.Errorf("failed to unsubscribe chat: %w", err)
	}

	if err := ctx.Send("Unsubscribed."); err != nil {
		return fmt.Errorf("failed to send farewell message: %w", err)
	}

	return nil
}

// checkHandler processes /check: runs a scan on demand and reports the
// result to the requesting chat.
func (b *Bot) checkHandler(ctx telebot.Context) error {
	b.log.Info("Manual scan requested", "username", ctx.Sender().Username, "chat_id", ctx.Chat().ID)

	rows, err := b.watcher.Scan(context.Background())
	if err != nil {
		b.log.Error("Manual scan failed", "error", err)
		if sendErr := ctx.Send("Scan failed, check the logs."); sendErr != nil {
			return fmt.Errorf("failed to send failure message: %w", sendErr)
		}
		return nil
	}

	changed := filterChanged(rows)
	if len(changed) == 0 {
		if err = ctx.Send(fmt.Sprintf("Scan finished: %d offers, no changes.", len(rows))); err != nil {
			return fmt.Errorf("failed to send scan summary: %w", err)
		}
		return nil
	}

	if err = ctx.Send(formatRows(changed)); err != nil {
		return fmt.Errorf("failed to send scan results: %w", err)
	}

	return nil
}
