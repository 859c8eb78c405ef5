// Package dice implements the dice orchestrator: it rolls narrative pools,
// tallies and presents the results, and posts them to roll sessions
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/genesys-dice/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/genesys-dice/internal/aggregator"
	"github.com/KirkDiggler/genesys-dice/internal/entities/genesys"
	"github.com/KirkDiggler/genesys-dice/internal/errors"
	"github.com/KirkDiggler/genesys-dice/internal/pkg/clock"
	"github.com/KirkDiggler/genesys-dice/internal/pkg/idgen"
	"github.com/KirkDiggler/genesys-dice/internal/pool"
	"github.com/KirkDiggler/genesys-dice/internal/presentation"
	rollsession "github.com/KirkDiggler/genesys-dice/internal/repositories/roll_session"
	savedroll "github.com/KirkDiggler/genesys-dice/internal/repositories/saved_roll"
	"github.com/KirkDiggler/genesys-dice/internal/roller"
)

const (
	// DefaultSessionTTL is how long a roll session lives without new rolls
	DefaultSessionTTL = 2 * time.Hour

	// MaxPoolSize bounds how many dice a single roll may throw
	MaxPoolSize = pool.MaxDice
)

// Service defines the interface for dice operations
type Service interface {
	RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error)
	RollSaved(ctx context.Context, input *RollSavedInput) (*RollPoolOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	GetOdds(ctx context.Context, input *GetOddsInput) (*GetOddsOutput, error)

	ListSavedRolls(ctx context.Context) (*ListSavedRollsOutput, error)
	SaveRoll(ctx context.Context, input *SaveRollInput) error
	DeleteSavedRoll(ctx context.Context, input *DeleteSavedRollInput) error
}

// PoolRoller throws a pool of dice
type PoolRoller interface {
	Roll(p *pool.Pool) (*roller.Roll, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	RollSessionRepo rollsession.Repository
	SavedRollRepo   savedroll.Repository
	Roller          PoolRoller
	IDGenerator     idgen.Generator
	Clock           clock.Clock

	// SessionTTL is used for new sessions when a roll names no TTL.
	// Zero means DefaultSessionTTL.
	SessionTTL time.Duration

	// ShowDamageOnFailure renders attack damage even when the attack missed
	ShowDamageOnFailure bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RollSessionRepo == nil {
		vb.RequiredField("RollSessionRepo")
	}
	if c.SavedRollRepo == nil {
		vb.RequiredField("SavedRollRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.SessionTTL < 0 {
		vb.InvalidField("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	rollSessionRepo     rollsession.Repository
	savedRollRepo       savedroll.Repository
	roller              PoolRoller
	idGen               idgen.Generator
	clock               clock.Clock
	sessionTTL          time.Duration
	showDamageOnFailure bool
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	sessionTTL := cfg.SessionTTL
	if sessionTTL == 0 {
		sessionTTL = DefaultSessionTTL
	}

	return &orchestrator{
		rollSessionRepo:     cfg.RollSessionRepo,
		savedRollRepo:       cfg.SavedRollRepo,
		roller:              cfg.Roller,
		idGen:               cfg.IDGenerator,
		clock:               cfg.Clock,
		sessionTTL:          sessionTTL,
		showDamageOnFailure: cfg.ShowDamageOnFailure,
	}, nil
}

// BuildPool parses short codes, or a Foundry formula when codes is blank,
// applies the effects and checks the result is a pool that can be thrown
func BuildPool(codes, formula string, effects []pool.Effect) (*pool.Pool, error) {
	var (
		p   *pool.Pool
		err error
	)
	switch {
	case strings.TrimSpace(codes) != "":
		p, err = pool.Parse(codes)
	case strings.TrimSpace(formula) != "":
		p, err = pool.ParseFormula(formula)
	default:
		return nil, errors.InvalidArgument("pool or formula is required")
	}
	if err != nil {
		return nil, err
	}

	for _, e := range effects {
		if err := p.Apply(e); err != nil {
			return nil, err
		}
	}

	if p.IsEmpty() {
		return nil, errors.InvalidArgument("dice pool is empty")
	}
	if p.Size() > MaxPoolSize {
		return nil, errors.InvalidArgumentf("dice pool has %d dice, at most %d are allowed", p.Size(), MaxPoolSize).
			WithPool(p.String())
	}
	return p, nil
}

// NormalizeBonus maps symbol names ("success", "s", "triumph") to codes and
// rejects unknown symbols or negative counts
func NormalizeBonus(in map[string]int) (aggregator.BonusSymbols, error) {
	if len(in) == 0 {
		return nil, nil
	}

	vb := errors.NewValidationBuilder()
	out := make(aggregator.BonusSymbols, len(in))
	for name, n := range in {
		sym, ok := genesys.SymbolFromName(name)
		if !ok {
			vb.InvalidField("bonus."+name, "unknown symbol")
			continue
		}
		if n < 0 {
			vb.Fieldf("bonus."+name, "must not be negative, got %d", n)
			continue
		}
		out[sym.String()] += n
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	return out, nil
}

// RollPool rolls a pool, presents the result and appends it to the session
func (o *orchestrator) RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	if input.TTL < 0 {
		return nil, errors.InvalidArgumentf("ttl must not be negative, got %s", input.TTL).
			WithSession(input.EntityID, input.Context)
	}

	p, err := BuildPool(input.Pool, input.Formula, input.Effects)
	if err != nil {
		return nil, err
	}

	bonus, err := NormalizeBonus(input.Bonus)
	if err != nil {
		return nil, err
	}

	roll, err := o.roller.Roll(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	tally := aggregator.Aggregate(roll.DieResults(), bonus)

	message, err := o.present(input, p.String(), tally, roll.Percentile)
	if err != nil {
		return nil, err
	}

	record := &rollsession.RollRecord{
		RollID:   o.idGen.Generate(),
		Pool:     p.String(),
		Formula:  p.Formula(),
		Message:  *message,
		RolledAt: o.clock.Now(),
	}

	session, err := o.appendToSession(ctx, input.EntityID, input.Context, input.TTL, record)
	if err != nil {
		return nil, err
	}

	slog.Info("Dice pool rolled",
		"entity_id", input.EntityID,
		"context", input.Context,
		"pool", record.Pool,
		"net_success", tally.NetSuccess,
		"net_advantage", tally.NetAdvantage,
		"roll_id", record.RollID,
	)

	return &RollPoolOutput{
		Roll:    record,
		Session: session,
	}, nil
}

func (o *orchestrator) present(
	input *RollPoolInput,
	shortCodes string,
	tally aggregator.ResultTally,
	percentile []int,
) (*presentation.ChatMessage, error) {
	description := presentation.FormatDescription(
		presentation.UnescapeMacroArg(input.Title),
		presentation.UnescapeMacroArg(input.Description),
	)

	if input.Attack != nil {
		if input.Title == "" && input.Description == "" {
			description = presentation.FormatDescription("",
				presentation.DefaultAttackDescription(input.Attack.Weapon.Name, input.RollContext))
		}
		return presentation.RenderAttack(presentation.AttackInput{
			Speaker:             input.Speaker,
			Pool:                shortCodes,
			Description:         description,
			Tally:               tally,
			Percentile:          percentile,
			Weapon:              input.Attack.Weapon,
			CharacteristicValue: input.Attack.CharacteristicValue,
			ShowDamageOnFailure: o.showDamageOnFailure,
		})
	}

	if input.Title == "" && input.Description == "" {
		description = presentation.FormatDescription("", presentation.DefaultSkillDescription(input.RollContext))
	}
	return presentation.RenderSkill(presentation.SkillInput{
		Speaker:     input.Speaker,
		Pool:        shortCodes,
		Description: description,
		Tally:       tally,
		Percentile:  percentile,
	})
}

// appendToSession adds the record to an existing session or starts a new one
func (o *orchestrator) appendToSession(
	ctx context.Context,
	entityID, sessionContext string,
	ttl time.Duration,
	record *rollsession.RollRecord,
) (*rollsession.RollSession, error) {
	getOutput, err := o.rollSessionRepo.Get(ctx, rollsession.GetInput{
		EntityID: entityID,
		Context:  sessionContext,
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to check for existing session")
		}

		if ttl == 0 {
			ttl = o.sessionTTL
		}
		createOutput, err := o.rollSessionRepo.Create(ctx, rollsession.CreateInput{
			EntityID: entityID,
			Context:  sessionContext,
			Rolls:    []rollsession.RollRecord{*record},
			TTL:      ttl,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create roll session")
		}
		return createOutput.Session, nil
	}

	session := getOutput.Session
	session.Rolls = append(session.Rolls, *record)
	if err := o.rollSessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to update roll session")
	}
	return session, nil
}

// RollSaved rolls a saved pool by name
func (o *orchestrator) RollSaved(ctx context.Context, input *RollSavedInput) (*RollPoolOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("saved roll name is required")
	}

	saved, err := o.savedRollRepo.Get(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get saved roll")
	}

	return o.RollPool(ctx, &RollPoolInput{
		EntityID:    input.EntityID,
		Context:     input.Context,
		Speaker:     input.Speaker,
		Pool:        saved.Dice,
		Effects:     saved.Effects,
		Bonus:       input.Bonus,
		Title:       saved.Name,
		Description: saved.Description,
	})
}

// GetRollSession retrieves an existing roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.rollSessionRepo.Get(ctx, rollsession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get roll session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.rollSessionRepo.Delete(ctx, rollsession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete roll session")
	}

	slog.Info("Roll session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}

// GetOdds computes the outcome distribution of a pool
func (o *orchestrator) GetOdds(_ context.Context, input *GetOddsInput) (*GetOddsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p, err := BuildPool(input.Pool, "", input.Effects)
	if err != nil {
		return nil, err
	}

	odds, err := p.Odds()
	if err != nil {
		return nil, err
	}

	return &GetOddsOutput{
		Pool: p.String(),
		Odds: odds,
	}, nil
}

// ListSavedRolls returns every saved roll
func (o *orchestrator) ListSavedRolls(ctx context.Context) (*ListSavedRollsOutput, error) {
	rolls, err := o.savedRollRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved rolls")
	}
	return &ListSavedRollsOutput{Rolls: rolls}, nil
}

// SaveRoll stores a named pool
func (o *orchestrator) SaveRoll(ctx context.Context, input *SaveRollInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if err := o.savedRollRepo.Save(ctx, input.Roll); err != nil {
		return errors.Wrap(err, "failed to save roll")
	}

	slog.Info("Roll saved", "name", input.Roll.Name, "dice", input.Roll.Dice)
	return nil
}

// DeleteSavedRoll removes a named pool
func (o *orchestrator) DeleteSavedRoll(ctx context.Context, input *DeleteSavedRollInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return errors.InvalidArgument("saved roll name is required")
	}
	if err := o.savedRollRepo.Delete(ctx, input.Name); err != nil {
		return errors.Wrap(err, "failed to delete saved roll")
	}
	return nil
}
