// Package v1alpha1 handles the genesys dice gRPC service interface
package v1alpha1

import (
	"context"
	"time"

	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/orchestrators/dice"
	"github.com/KirkDiggler/genesys-dice/internal/pool"
	"github.com/KirkDiggler/genesys-dice/internal/presentation"
	rollsession "github.com/KirkDiggler/genesys-dice/internal/repositories/roll_session"
	savedroll "github.com/KirkDiggler/genesys-dice/internal/repositories/saved_roll"
)

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	if c.DiceService == nil {
		return errors.InvalidArgument("dice service is required")
	}
	return nil
}

// DiceHandler implements the dice gRPC service
type DiceHandler struct {
	diceService dice.Service
}

var _ DiceServiceServer = (*DiceHandler)(nil)

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

// RollPool rolls a pool and posts the result to the session
func (h *DiceHandler) RollPool(ctx context.Context, req *RollPoolRequest) (*RollPoolResponse, error) {
	if req.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}
	if req.Pool == "" && req.Formula == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("pool or formula is required"))
	}
	if req.TTLSeconds < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("ttl_seconds must not be negative"))
	}

	input := &dice.RollPoolInput{
		EntityID:    req.EntityID,
		Context:     req.Context,
		Speaker:     req.Speaker,
		Pool:        req.Pool,
		Formula:     req.Formula,
		Effects:     convertEffects(req.Effects),
		Bonus:       convertBonus(req.Bonus),
		Title:       req.Title,
		Description: req.Description,
		RollContext: presentation.RollContext{
			Characteristic: genesys.Characteristic(req.Characteristic),
			SuperChar:      req.SuperCharacteristic,
			Skill:          req.Skill,
		},
		TTL: time.Duration(req.TTLSeconds) * time.Second,
	}
	if req.Attack != nil {
		input.Attack = &dice.AttackInput{
			Weapon:              req.Attack.Weapon,
			CharacteristicValue: int(req.Attack.CharacteristicValue),
		}
	}

	output, err := h.diceService.RollPool(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertRollOutput(output), nil
}

// RollSaved rolls a saved pool and posts the result to the session
func (h *DiceHandler) RollSaved(ctx context.Context, req *RollSavedRequest) (*RollPoolResponse, error) {
	if req.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.diceService.RollSaved(ctx, &dice.RollSavedInput{
		EntityID: req.EntityID,
		Context:  req.Context,
		Speaker:  req.Speaker,
		Name:     req.Name,
		Bonus:    convertBonus(req.Bonus),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertRollOutput(output), nil
}

// GetRollSession retrieves an existing roll session
func (h *DiceHandler) GetRollSession(ctx context.Context, req *GetRollSessionRequest) (*GetRollSessionResponse, error) {
	if req.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}

	output, err := h.diceService.GetRollSession(ctx, &dice.GetRollSessionInput{
		EntityID: req.EntityID,
		Context:  req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetRollSessionResponse{
		Rolls:     convertRolls(output.Session.Rolls),
		CreatedAt: output.Session.CreatedAt.Unix(),
		ExpiresAt: output.Session.ExpiresAt.Unix(),
	}, nil
}

// ClearRollSession removes a roll session
func (h *DiceHandler) ClearRollSession(ctx context.Context, req *ClearRollSessionRequest) (*ClearRollSessionResponse, error) {
	if req.EntityID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("entity_id is required"))
	}
	if req.Context == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("context is required"))
	}

	output, err := h.diceService.ClearRollSession(ctx, &dice.ClearRollSessionInput{
		EntityID: req.EntityID,
		Context:  req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClearRollSessionResponse{
		Message:      "Roll session cleared successfully",
		RollsCleared: output.RollsDeleted,
	}, nil
}

// GetOdds computes the outcome distribution of a pool
func (h *DiceHandler) GetOdds(ctx context.Context, req *GetOddsRequest) (*GetOddsResponse, error) {
	if req.Pool == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("pool is required"))
	}

	output, err := h.diceService.GetOdds(ctx, &dice.GetOddsInput{
		Pool:    req.Pool,
		Effects: convertEffects(req.Effects),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetOddsResponse{
		Pool:           output.Pool,
		SuccessPercent: output.Odds.SuccessPercent,
		Outcomes:       output.Odds.Outcomes,
	}, nil
}

// ListSavedRolls returns every saved roll
func (h *DiceHandler) ListSavedRolls(ctx context.Context, _ *ListSavedRollsRequest) (*ListSavedRollsResponse, error) {
	output, err := h.diceService.ListSavedRolls(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rolls := make([]*SavedRoll, 0, len(output.Rolls))
	for _, r := range output.Rolls {
		rolls = append(rolls, &SavedRoll{
			Name:        r.Name,
			Dice:        r.Dice,
			Description: r.Description,
			Effects:     toEffects(r.Effects),
		})
	}
	return &ListSavedRollsResponse{Rolls: rolls}, nil
}

// SaveRoll stores a named pool
func (h *DiceHandler) SaveRoll(ctx context.Context, req *SaveRollRequest) (*SaveRollResponse, error) {
	if req.Roll == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("roll is required"))
	}

	err := h.diceService.SaveRoll(ctx, &dice.SaveRollInput{
		Roll: savedroll.SavedRoll{
			Name:        req.Roll.Name,
			Dice:        req.Roll.Dice,
			Description: req.Roll.Description,
			Effects:     convertEffects(req.Roll.Effects),
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SaveRollResponse{}, nil
}

// DeleteSavedRoll removes a named pool
func (h *DiceHandler) DeleteSavedRoll(ctx context.Context, req *DeleteSavedRollRequest) (*DeleteSavedRollResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	if err := h.diceService.DeleteSavedRoll(ctx, &dice.DeleteSavedRollInput{Name: req.Name}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &DeleteSavedRollResponse{}, nil
}

// Helper functions for conversion

func convertEffects(in []Effect) []pool.Effect {
	if len(in) == 0 {
		return nil
	}
	out := make([]pool.Effect, len(in))
	for i, e := range in {
		out[i] = pool.Effect{Name: e.Name, Description: e.Description, Difficulty: e.Difficulty}
	}
	return out
}

func toEffects(in []pool.Effect) []Effect {
	if len(in) == 0 {
		return nil
	}
	out := make([]Effect, len(in))
	for i, e := range in {
		out[i] = Effect{Name: e.Name, Description: e.Description, Difficulty: e.Difficulty}
	}
	return out
}

func convertBonus(in map[string]int32) map[string]int {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = int(v)
	}
	return out
}

func convertRoll(r *rollsession.RollRecord) *Roll {
	return &Roll{
		RollID:      r.RollID,
		Pool:        r.Pool,
		Formula:     r.Formula,
		Kind:        string(r.Message.Kind),
		Speaker:     r.Message.Speaker,
		Description: r.Message.Description,
		Content:     r.Message.Content,
		Tally:       r.Message.Tally,
		Percentile:  r.Message.Percentile,
		Damage:      r.Message.Damage,
		RolledAt:    r.RolledAt.Unix(),
	}
}

func convertRolls(records []rollsession.RollRecord) []*Roll {
	rolls := make([]*Roll, 0, len(records))
	for i := range records {
		rolls = append(rolls, convertRoll(&records[i]))
	}
	return rolls
}

func convertRollOutput(output *dice.RollPoolOutput) *RollPoolResponse {
	return &RollPoolResponse{
		Roll:      convertRoll(output.Roll),
		Rolls:     convertRolls(output.Session.Rolls),
		ExpiresAt: output.Session.ExpiresAt.Unix(),
	}
}
