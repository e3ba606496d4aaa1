package ports

import (
	"context"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
)

// SessionStore persists ConversationState between turns.
// Load returns domain.ErrSessionNotFound for unknown session IDs.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*domain.ConversationState, error)
	Save(ctx context.Context, sessionID string, state *domain.ConversationState) error
	Clear(ctx context.Context, sessionID string) error
}

// OrderStore persists confirmed orders. Each method is a single atomic
// operation; no multi-step transaction is required because every call touches
// at most one logical record set.
type OrderStore interface {
	Insert(ctx context.Context, order domain.Order) error
	ExistsByNamePhone(ctx context.Context, name, phone string) (bool, error)
	DeleteByNamePhone(ctx context.Context, name, phone string) error
}
