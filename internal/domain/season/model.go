package season

import (
	"fmt"
	"time"
)

// Season stores the rule configuration for one competitive period.
// Point values may be fractional and penalty values are typically negative.
type Season struct {
	ID               string
	Name             string
	PointsWin        float64
	PointsDraw       float64
	PointsLoss       float64
	LatenessPenalty1 float64
	LatenessPenalty2 float64
	YellowCardPoints float64
	BlueCardPoints   float64
	RedCardPoints    float64
	// Discards is the configured count of worst results to drop. The ranking
	// aggregator does not apply it yet; it is kept for parity with the stored
	// season schema.
	Discards  int
	IsActive  bool
	CreatedAt time.Time
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("season name is required")
	}

	return nil
}
