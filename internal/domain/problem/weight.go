package problem

import (
	"strconv"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// DefaultWeight is the floor for every problem: an unknown platform, an
// unknown tier, or an unparseable rating always scores 1.
const DefaultWeight = 1

// Weighter converts a rating label into a difficulty weight for one
// platform. Implementations are pure and total: any input yields an
// integer >= 1, never an error.
type Weighter interface {
	Weight(rating shared.Rating) int
}

// numericWeighter scores Codeforces-style numeric ratings: rating/100,
// floored, never below 1. "800" scores 8, "1950" scores 19.
type numericWeighter struct{}

func (numericWeighter) Weight(rating shared.Rating) int {
	n, err := strconv.Atoi(string(rating))
	if err != nil {
		return DefaultWeight
	}
	w := n / 100
	if w < DefaultWeight {
		return DefaultWeight
	}
	return w
}

// tierWeighter scores named tiers from a fixed table. Unknown tiers fall
// back to the default weight.
type tierWeighter struct {
	tiers map[shared.Rating]int
}

func (t tierWeighter) Weight(rating shared.Rating) int {
	if w, ok := t.tiers[rating]; ok {
		return w
	}
	return DefaultWeight
}

// defaultWeighter scores everything at 1. Custom problems have no
// comparable difficulty scale.
type defaultWeighter struct{}

func (defaultWeighter) Weight(shared.Rating) int { return DefaultWeight }

// weighters is the closed set of per-platform strategies. Adding a
// platform means adding one entry here.
var weighters = map[Platform]Weighter{
	PlatformTLE: numericWeighter{},
	PlatformUSACO: tierWeighter{tiers: map[shared.Rating]int{
		"Bronze":   5,
		"Silver":   10,
		"Gold":     15,
		"Platinum": 20,
	}},
	PlatformCSES: tierWeighter{tiers: map[shared.Rating]int{
		"Intro":   3,
		"Sorting": 6,
		"DP":      10,
		"Graph":   12,
	}},
}

// Weight returns the difficulty weight for a (platform, rating) pair.
func Weight(platform Platform, rating shared.Rating) int {
	if w, ok := weighters[platform]; ok {
		return w.Weight(rating)
	}
	return defaultWeighter{}.Weight(rating)
}

// WeightOf returns the difficulty weight of a problem.
func WeightOf(p *Problem) int {
	return Weight(p.Platform, p.Rating)
}
