package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_updates_client.go -package=mocks portfolio-api/internal/service UpdatesClient

import (
	"context"

	"portfolio-api/internal/telegram"
)

// UpdatesClient reads the bot's pending updates. Used to discover the owner's chat id.
type UpdatesClient interface {
	GetUpdates(ctx context.Context) (*telegram.UpdatesResponse, error)
	Configured() bool
}
