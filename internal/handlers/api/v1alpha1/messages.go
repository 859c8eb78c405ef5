package v1alpha1

import (
	"github.com/KirkDiggler/genesys-dice/internal/aggregator"
	"github.com/KirkDiggler/genesys-dice/internal/pool"
	"github.com/KirkDiggler/genesys-dice/internal/presentation"
)

// Effect changes a pool before it is rolled
type Effect struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Difficulty  string `json:"difficulty"`
}

// Attack turns a roll into an attack with the given weapon
type Attack struct {
	Weapon              presentation.Weapon `json:"weapon"`
	CharacteristicValue int32               `json:"characteristicValue"`
}

// RollPoolRequest rolls a pool of narrative dice
type RollPoolRequest struct {
	EntityID string `json:"entityId"`
	Context  string `json:"context"`
	Speaker  string `json:"speaker,omitempty"`

	// Pool in short codes ("PAADD"); Formula ("1dp+2da+2di") is used when
	// Pool is empty
	Pool    string `json:"pool,omitempty"`
	Formula string `json:"formula,omitempty"`

	Effects []Effect         `json:"effects,omitempty"`
	Bonus   map[string]int32 `json:"bonus,omitempty"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	Characteristic      string `json:"characteristic,omitempty"`
	SuperCharacteristic bool   `json:"superCharacteristic,omitempty"`
	Skill               string `json:"skill,omitempty"`

	Attack *Attack `json:"attack,omitempty"`

	TTLSeconds int64 `json:"ttlSeconds,omitempty"`
}

// RollSavedRequest rolls a saved pool by name
type RollSavedRequest struct {
	EntityID string           `json:"entityId"`
	Context  string           `json:"context"`
	Speaker  string           `json:"speaker,omitempty"`
	Name     string           `json:"name"`
	Bonus    map[string]int32 `json:"bonus,omitempty"`
}

// Roll is a posted roll
type Roll struct {
	RollID      string                 `json:"rollId"`
	Pool        string                 `json:"pool"`
	Formula     string                 `json:"formula"`
	Kind        string                 `json:"kind"`
	Speaker     string                 `json:"speaker,omitempty"`
	Description string                 `json:"description,omitempty"`
	Content     string                 `json:"content"`
	Tally       aggregator.ResultTally `json:"tally"`
	Percentile  []int                  `json:"percentile,omitempty"`
	Damage      *presentation.Damage   `json:"damage,omitempty"`
	RolledAt    int64                  `json:"rolledAt"`
}

// RollPoolResponse returns the new roll and the whole session
type RollPoolResponse struct {
	Roll      *Roll   `json:"roll"`
	Rolls     []*Roll `json:"rolls"`
	ExpiresAt int64   `json:"expiresAt"`
}

// GetRollSessionRequest identifies a roll session
type GetRollSessionRequest struct {
	EntityID string `json:"entityId"`
	Context  string `json:"context"`
}

// GetRollSessionResponse lists the rolls of a session
type GetRollSessionResponse struct {
	Rolls     []*Roll `json:"rolls"`
	CreatedAt int64   `json:"createdAt"`
	ExpiresAt int64   `json:"expiresAt"`
}

// ClearRollSessionRequest identifies a roll session
type ClearRollSessionRequest struct {
	EntityID string `json:"entityId"`
	Context  string `json:"context"`
}

// ClearRollSessionResponse reports how many rolls were removed
type ClearRollSessionResponse struct {
	Message      string `json:"message"`
	RollsCleared int32  `json:"rollsCleared"`
}

// GetOddsRequest asks for the outcome distribution of a pool
type GetOddsRequest struct {
	Pool    string   `json:"pool"`
	Effects []Effect `json:"effects,omitempty"`
}

// GetOddsResponse is the outcome distribution of a pool
type GetOddsResponse struct {
	Pool           string         `json:"pool"`
	SuccessPercent float64        `json:"successPercent"`
	Outcomes       []pool.Outcome `json:"outcomes"`
}

// SavedRoll is a named pool
type SavedRoll struct {
	Name        string   `json:"name"`
	Dice        string   `json:"dice"`
	Description string   `json:"description,omitempty"`
	Effects     []Effect `json:"effects,omitempty"`
}

// ListSavedRollsRequest has no fields
type ListSavedRollsRequest struct{}

// ListSavedRollsResponse lists every saved roll
type ListSavedRollsResponse struct {
	Rolls []*SavedRoll `json:"rolls"`
}

// SaveRollRequest stores a named pool, replacing one of the same name
type SaveRollRequest struct {
	Roll *SavedRoll `json:"roll"`
}

// SaveRollResponse has no fields
type SaveRollResponse struct{}

// DeleteSavedRollRequest names the saved roll to remove
type DeleteSavedRollRequest struct {
	Name string `json:"name"`
}

// DeleteSavedRollResponse has no fields
type DeleteSavedRollResponse struct{}
