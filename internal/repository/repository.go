package repository

import (
	"context"

	"github.com/abdullahzahoor404/telco-scanner/internal/models"
)

// Ledger is the append-only history of observed offers. The scanner
// never deletes or rewrites rows; recency is defined purely by append
// order.
type Ledger interface {
	// GetAllRecords returns every ledger row in append order.
	GetAllRecords(ctx context.Context) ([]models.HistoricalRecord, error)
	// AppendRows persists the run's new rows, preserving slice order.
	AppendRows(ctx context.Context, rows []models.Row) error
}

// Subscriptions tracks the chats that receive scan notifications.
type Subscriptions interface {
	SubscribeChat(ctx context.Context, chatID int64) error
	UnsubscribeChat(ctx context.Context, chatID int64) error
	GetSubscribedChats(ctx context.Context) ([]int64, error)
}
