// Package rollsession provides the repository interface and types for roll
// sessions, the feed of chat messages posted for an entity
package rollsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/genesys-dice/internal/presentation"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rollsessionmock github.com/KirkDiggler/genesys-dice/internal/repositories/roll_session Repository

// RollSession is the ordered list of rolls posted for an entity and context
type RollSession struct {
	// Entity that owns these rolls (e.g., "char_123", "gm")
	EntityID string

	// Context for grouping related rolls (e.g., "scene_4", "combat_round_1")
	Context string

	Rolls []RollRecord

	CreatedAt time.Time
	ExpiresAt time.Time
}

// RollRecord is a single roll as posted to the feed
type RollRecord struct {
	RollID string

	// Pool in short codes after effects were applied, e.g. "PAADD"
	Pool string

	// Formula is the equivalent Foundry roll formula
	Formula string

	Message presentation.ChatMessage

	RolledAt time.Time
}

// CreateInput contains parameters for creating a roll session
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []RollRecord
	TTL      time.Duration
}

// CreateOutput contains the result of creating a roll session
type CreateOutput struct {
	Session *RollSession
}

// GetInput contains parameters for retrieving a roll session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a roll session
type GetOutput struct {
	Session *RollSession
}

// DeleteInput contains parameters for deleting a roll session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a roll session
type DeleteOutput struct {
	RollsDeleted int32
}

// Repository defines the interface for roll session storage operations
type Repository interface {
	// Create stores a new roll session with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a roll session by entity ID and context
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a roll session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing roll session (used for appending rolls)
	Update(ctx context.Context, session *RollSession) error
}
