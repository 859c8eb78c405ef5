package dice

import (
	"time"

	"github.com/KirkDiggler/genesys-dice/internal/pool"
	"github.com/KirkDiggler/genesys-dice/internal/presentation"
	rollsession "github.com/KirkDiggler/genesys-dice/internal/repositories/roll_session"
	savedroll "github.com/KirkDiggler/genesys-dice/internal/repositories/saved_roll"
)

// AttackInput marks a roll as an attack with the given weapon
type AttackInput struct {
	Weapon presentation.Weapon

	// CharacteristicValue is the attacker's rating in the weapon's damage
	// characteristic
	CharacteristicValue int
}

// RollPoolInput defines the request for rolling a pool
type RollPoolInput struct {
	EntityID string
	Context  string
	Speaker  string

	// Pool in short codes ("PAADD"); Formula ("1dp+2da+2di") is used when
	// Pool is empty
	Pool    string
	Formula string

	Effects []pool.Effect

	// Bonus symbols keyed by code or name ("s" or "success")
	Bonus map[string]int

	// Title and Description may use macro escaping ("|" for spaces)
	Title       string
	Description string

	// RollContext picks the default description when none is given
	RollContext presentation.RollContext

	Attack *AttackInput
	TTL    time.Duration
}

// RollPoolOutput defines the response for rolling a pool
type RollPoolOutput struct {
	Roll    *rollsession.RollRecord
	Session *rollsession.RollSession
}

// RollSavedInput rolls a saved pool by name
type RollSavedInput struct {
	EntityID string
	Context  string
	Speaker  string
	Name     string
	Bonus    map[string]int
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	Context  string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *rollsession.RollSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int32
}

// GetOddsInput defines the request for a pool's outcome distribution
type GetOddsInput struct {
	Pool    string
	Effects []pool.Effect
}

// GetOddsOutput defines the response for a pool's outcome distribution
type GetOddsOutput struct {
	Pool string
	Odds *pool.Odds
}

// ListSavedRollsOutput defines the response for listing saved rolls
type ListSavedRollsOutput struct {
	Rolls []savedroll.SavedRoll
}

// SaveRollInput defines the request for saving a roll
type SaveRollInput struct {
	Roll savedroll.SavedRoll
}

// DeleteSavedRollInput defines the request for deleting a saved roll
type DeleteSavedRollInput struct {
	Name string
}
