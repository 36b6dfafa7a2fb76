package ai

import "github.com/nelhage/gomokuarm/gomoku"

// Weights are the tunable constants of the greedy player. They are
// fixed for the lifetime of a player.
type Weights struct {
	// Bonuses added once per cell when several threats meet there.
	Critical    int64 `json:"critical"`
	Strong      int64 `json:"strong"`
	DoubleThree int64 `json:"double_three"`

	// Primary is the color whose offense is scaled by PrimaryAttack;
	// the other color uses SecondaryAttack.
	Primary         gomoku.Color `json:"primary"`
	PrimaryAttack   float64      `json:"primary_attack"`
	SecondaryAttack float64      `json:"secondary_attack"`
}

var DefaultWeights = Weights{
	Critical:    800000,
	Strong:      500000,
	DoubleThree: 100000,

	Primary:         gomoku.Black,
	PrimaryAttack:   1.8,
	SecondaryAttack: 0.5,
}

func (w *Weights) AttackCoefficient(side gomoku.Color) float64 {
	if side == w.Primary {
		return w.PrimaryAttack
	}
	return w.SecondaryAttack
}

type Risk int

const (
	RiskNone Risk = iota
	RiskLow
	RiskMedium
	RiskHigh
)

func (r Risk) String() string {
	switch r {
	case RiskLow:
		return "double open-three"
	case RiskMedium:
		return "combined threat"
	case RiskHigh:
		return "multiple forced wins"
	default:
		return "none"
	}
}

// risk applies the escalation rules; the first one that holds wins.
func (w *Weights) risk(open3, forced4, both int) (Risk, int64) {
	switch {
	case forced4 > 1 || both > 1:
		return RiskHigh, w.Critical
	case (forced4 > 0 && open3 > 0) || (both > 0 && open3 > 1):
		return RiskMedium, w.Strong
	case open3 > 1:
		return RiskLow, w.DoubleThree
	default:
		return RiskNone, 0
	}
}
