// Package savedroll stores named dice pools so they can be rolled again
package savedroll

import (
	"context"

	"github.com/KirkDiggler/genesys-dice/internal/pool"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=savedrollmock github.com/KirkDiggler/genesys-dice/internal/repositories/saved_roll Repository

// SavedRoll is a named pool in short codes
type SavedRoll struct {
	Name        string        `yaml:"name" json:"name"`
	Dice        string        `yaml:"dice" json:"dice"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Effects     []pool.Effect `yaml:"effects,omitempty" json:"effects,omitempty"`
}

// Repository defines storage for saved rolls
type Repository interface {
	// List returns every saved roll in insertion order
	List(ctx context.Context) ([]SavedRoll, error)

	// Get returns the saved roll with the given name
	Get(ctx context.Context, name string) (*SavedRoll, error)

	// Save inserts a roll or replaces the one with the same name
	Save(ctx context.Context, roll SavedRoll) error

	// Delete removes the saved roll with the given name
	Delete(ctx context.Context, name string) error
}
