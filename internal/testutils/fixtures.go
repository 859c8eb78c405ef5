package testutils

import (
	"sync"
	"time"

	"github.com/KirkDiggler/genesys-dice/internal/aggregator"
	"github.com/KirkDiggler/genesys-dice/internal/presentation"
	rollsession "github.com/KirkDiggler/genesys-dice/internal/repositories/roll_session"
)

// FixedTime is the default time used by FixedClock
var FixedTime = time.Date(2025, time.March, 14, 19, 30, 0, 0, time.UTC)

// FixedClock is a clock.Clock that only moves when told to
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock stopped at FixedTime
func NewFixedClock() *FixedClock {
	return &FixedClock{now: FixedTime}
}

// Now returns the current fixed time
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// CreateTestRollRecord creates a posted roll for an ability die showing a
// success and an advantage
func CreateTestRollRecord(rollID string) rollsession.RollRecord {
	tally := aggregator.Aggregate([]aggregator.DieResult{
		aggregator.RolledDie{Type: "ability", Labels: []string{"sa"}},
	}, nil)

	return rollsession.RollRecord{
		RollID:  rollID,
		Pool:    "A",
		Formula: "1da",
		Message: presentation.ChatMessage{
			Kind:    presentation.KindSkill,
			Speaker: "Test Character",
			Content: "<div>test</div>",
			Tally:   tally,
		},
		RolledAt: FixedTime,
	}
}
