package priority

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// TierCount is the number of tiers in every ladder.
const TierCount = 5

// Default priority labels, from the smallest to the largest jobs.
const (
	LabelVeryHigh = "very-high"
	LabelHigh     = "high"
	LabelNormal   = "normal"
	LabelLow      = "low"
	LabelVeryLow  = "very-low"
)

var ErrInvalidLadder = errors.New("invalid priority ladder")

// Tier is one rung of the ladder.
type Tier struct {
	// Below is the exclusive upper size bound in megabytes.
	Below float64 `yaml:"below"`
	// Label is the priority token sent to NZBGet.
	Label string `yaml:"label"`
}

// Ladder is an immutable, validated set of TierCount tiers.
type Ladder struct {
	tiers [TierCount]Tier
}

// DefaultTiers returns the tiers of the default ladder.
func DefaultTiers() []Tier {
	return []Tier{
		{Below: 100, Label: LabelVeryHigh},
		{Below: 1024, Label: LabelHigh},
		{Below: 3072, Label: LabelNormal},
		{Below: 8192, Label: LabelLow},
		{Below: 16384, Label: LabelVeryLow},
	}
}

// Default returns the default ladder.
func Default() *Ladder {
	l, err := New(DefaultTiers())
	if err != nil {
		panic(err)
	}
	return l
}

// New validates tiers and returns the ladder built from them. Bounds must
// be finite and strictly ascending and every tier needs a label.
func New(tiers []Tier) (*Ladder, error) {
	if len(tiers) != TierCount {
		return nil, fmt.Errorf("%w: need %d tiers, got %d", ErrInvalidLadder, TierCount, len(tiers))
	}
	l := &Ladder{}
	for i, t := range tiers {
		if math.IsNaN(t.Below) || math.IsInf(t.Below, 0) {
			return nil, fmt.Errorf("%w: tier %d bound %v is not finite", ErrInvalidLadder, i+1, t.Below)
		}
		if t.Label == "" {
			return nil, fmt.Errorf("%w: tier %d has no label", ErrInvalidLadder, i+1)
		}
		if i > 0 && t.Below <= tiers[i-1].Below {
			return nil, fmt.Errorf("%w: tier %d bound %v does not exceed tier %d bound %v",
				ErrInvalidLadder, i+1, t.Below, i, tiers[i-1].Below)
		}
		l.tiers[i] = t
	}
	return l, nil
}

// Classify returns the label for a job of sizeMB megabytes: the label of
// the first tier whose bound is strictly greater than sizeMB, or the
// catch-all label. NaN gets the catch-all.
func (l *Ladder) Classify(sizeMB float64) string {
	for _, t := range l.tiers[:TierCount-1] {
		if sizeMB < t.Below {
			return t.Label
		}
	}
	return l.tiers[TierCount-1].Label
}

// Index returns the position of label in the ladder, or -1.
func (l *Ladder) Index(label string) int {
	for i, t := range l.tiers {
		if t.Label == label {
			return i
		}
	}
	return -1
}

// Tiers returns a copy of the ladder's tiers.
func (l *Ladder) Tiers() []Tier {
	out := make([]Tier, TierCount)
	copy(out, l.tiers[:])
	return out
}

func (l *Ladder) String() string {
	var b strings.Builder
	for _, t := range l.tiers[:TierCount-1] {
		fmt.Fprintf(&b, "<%g MB %s, ", t.Below, t.Label)
	}
	b.WriteString("otherwise " + l.tiers[TierCount-1].Label)
	return b.String()
}
