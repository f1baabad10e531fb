// Package shared contains common domain types, errors, and value objects
// that are used across all domain packages.
package shared

import (
	"regexp"
	"strings"
)

// TeamID represents a short, URL-safe team identifier handed out when a
// team is created. Members quote it to join or log in.
type TeamID string

// Team IDs are generated as 10-character URL-safe tokens.
var teamIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{6,24}$`)

// IsValid checks if the team ID has the expected shape.
func (t TeamID) IsValid() bool {
	return teamIDRegex.MatchString(string(t))
}

// String returns the string representation.
func (t TeamID) String() string {
	return string(t)
}

// IsEmpty checks if the ID is empty.
func (t TeamID) IsEmpty() bool {
	return t == ""
}

// NewTeamID validates a raw team ID string.
func NewTeamID(id string) (TeamID, error) {
	tid := TeamID(strings.TrimSpace(id))
	if !tid.IsValid() {
		return "", ErrInvalidTeamID
	}
	return tid, nil
}

// Username identifies a member within a single team. Usernames are only
// unique per team, never globally.
type Username string

// IsValid checks that the username is non-empty and of sane length.
func (u Username) IsValid() bool {
	s := strings.TrimSpace(string(u))
	return len(s) >= 1 && len(s) <= 64
}

// String returns the string representation.
func (u Username) String() string {
	return string(u)
}

// NewUsername validates a raw username.
func NewUsername(name string) (Username, error) {
	u := Username(strings.TrimSpace(name))
	if !u.IsValid() {
		return "", ErrInvalidUsername
	}
	return u, nil
}

// Rating is the free-form difficulty label on a problem. Its semantics
// depend on the platform: "800" on TLE, "Gold" on USACO, "DP" on CSES,
// arbitrary text on custom sheets.
type Rating string

// String returns the string representation.
func (r Rating) String() string {
	return string(r)
}

// RatingUnknown is the default rating for problems without one.
const RatingUnknown Rating = "N/A"

// Direction is a reorder direction within a (sheet, rating) group.
type Direction string

const (
	// DirectionUp moves a problem one position earlier in its group.
	DirectionUp Direction = "up"
	// DirectionDown moves a problem one position later in its group.
	DirectionDown Direction = "down"
)

// IsValid checks if the direction is one of the two allowed values.
func (d Direction) IsValid() bool {
	return d == DirectionUp || d == DirectionDown
}

// ParseDirection validates a raw direction string.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", ErrInvalidDirection
	}
	return d, nil
}
