// Package problem contains the problem catalog: curated exercises grouped
// into sheets, each carrying a platform tag, a difficulty rating, and a
// manual position within its (sheet, rating) group. The package also owns
// the two pieces of catalog logic with real invariants: difficulty
// weighting and manual reordering.
package problem

import (
	"strings"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/google/uuid"
)

// Platform tags a problem with the judge it came from. The platform, not
// the sheet, decides how the rating string is interpreted for scoring.
type Platform string

const (
	// PlatformTLE marks Codeforces-style problems with numeric ratings.
	PlatformTLE Platform = "TLE"
	// PlatformUSACO marks USACO problems with division ratings.
	PlatformUSACO Platform = "USACO"
	// PlatformCSES marks CSES problems with section ratings.
	PlatformCSES Platform = "CSES"
	// PlatformCustom marks user-added problems with free-form ratings.
	PlatformCustom Platform = "Custom"
)

// IsValid checks if the platform is one of the known tags.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformTLE, PlatformUSACO, PlatformCSES, PlatformCustom:
		return true
	}
	return false
}

// SheetID names a collection of problems. The three fixed sheets share
// their name with a platform; custom sheets use the sheet's UUID.
type SheetID string

const (
	SheetTLE   SheetID = "TLE"
	SheetUSACO SheetID = "USACO"
	SheetCSES  SheetID = "CSES"
)

// IsFixed reports whether the sheet is one of the built-in catalogs.
func (s SheetID) IsFixed() bool {
	return s == SheetTLE || s == SheetUSACO || s == SheetCSES
}

// String returns the string representation.
func (s SheetID) String() string {
	return string(s)
}

// Problem is a single catalog entry, owned by a team.
//
// Order positions the problem within its (sheet, rating) group. Order
// values are not unique across groups and can collide within a group
// after many swaps; only the relative order inside one group is ever
// read.
type Problem struct {
	ID        string
	TeamID    shared.TeamID
	Name      string
	Link      string
	Rating    shared.Rating
	Platform  Platform
	Sheet     SheetID
	Order     int
	CreatedBy shared.Username
	CreatedAt time.Time
}

// GroupKey identifies the reorder group a problem belongs to.
type GroupKey struct {
	TeamID shared.TeamID
	Sheet  SheetID
	Rating shared.Rating
}

// Group returns the problem's reorder group key.
func (p *Problem) Group() GroupKey {
	return GroupKey{TeamID: p.TeamID, Sheet: p.Sheet, Rating: p.Rating}
}

// New creates a user-added problem. Rating and platform default to
// "Custom" when omitted, matching how ad-hoc problems enter the catalog.
func New(teamID shared.TeamID, name, link string, rating shared.Rating, platform Platform, sheet SheetID, order int, createdBy shared.Username, now time.Time) (*Problem, error) {
	name = strings.TrimSpace(name)
	link = strings.TrimSpace(link)
	if name == "" || link == "" || sheet == "" {
		return nil, shared.ErrProblemRequired
	}
	if rating == "" {
		rating = "Custom"
	}
	if platform == "" {
		platform = PlatformCustom
	}
	return &Problem{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		Name:      name,
		Link:      link,
		Rating:    rating,
		Platform:  platform,
		Sheet:     sheet,
		Order:     order,
		CreatedBy: createdBy,
		CreatedAt: now,
	}, nil
}
