package identity

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

// SyntheticID derives a stable negative identity from the hash of the source
// family, gender, normalized name and birth date. Negative IDs can never
// collide with the positive native IDs some sources expose.
func SyntheticID(family string, gender record.Gender, name, birthDate string) int64 {
	key := fmt.Sprintf("%s|%s|%s|%s", family, gender, strings.ToLower(strings.TrimSpace(name)), birthDate)
	sum := sha1.Sum([]byte(key))
	n := binary.BigEndian.Uint64(sum[:8]) & (1<<63 - 1)
	return -1 - int64(n)
}

// Full is a completely specified athlete row as seen in a source table.
type Full struct {
	Name  string
	Club  string
	Birth string
}

// Context is per-document parsing memory: the most recent full row (for
// abbreviated repeats) and every identity minted so far, keyed by normalized
// name and birth date.
type Context struct {
	family string
	gender record.Gender

	lastFull *Full
	births   map[string]map[string]bool
	ids      map[string]map[string]int64
}

func NewContext(family string, gender record.Gender) *Context {
	return &Context{
		family: family,
		gender: gender,
		births: make(map[string]map[string]bool),
		ids:    make(map[string]map[string]int64),
	}
}

func normName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ObserveFull records a parsed full row and returns its identity. Identities
// already minted for the same name are preferred over minting a new one when
// the birth date is absent in one of the sightings.
func (c *Context) ObserveFull(name, club, birth string) int64 {
	key := normName(name)
	if c.births[key] == nil {
		c.births[key] = make(map[string]bool)
	}
	c.births[key][birth] = true
	c.lastFull = &Full{Name: name, Club: club, Birth: birth}
	return c.identityFor(name, birth)
}

// LastFull exposes the most recent full row, or nil before any.
func (c *Context) LastFull() *Full {
	return c.lastFull
}

// ResolveAbbreviated resolves a bare surname token with no birth date to the
// most recent full row. Resolution fails when no full row precedes it, when
// the surname does not match, or when the same name was earlier seen with
// more than one birth date (the reference would be a guess).
func (c *Context) ResolveAbbreviated(token string) (Full, int64, error) {
	if c.lastFull == nil {
		return Full{}, 0, fmt.Errorf("abbreviated name %q before any full row", token)
	}
	if !strings.EqualFold(strings.TrimSpace(token), surname(c.lastFull.Name)) {
		return Full{}, 0, fmt.Errorf("abbreviated name %q does not match previous row %q", token, c.lastFull.Name)
	}
	if len(c.births[normName(c.lastFull.Name)]) > 1 {
		return Full{}, 0, fmt.Errorf("abbreviated name %q is ambiguous: %q seen with multiple birth dates", token, c.lastFull.Name)
	}
	full := *c.lastFull
	return full, c.identityFor(full.Name, full.Birth), nil
}

func (c *Context) identityFor(name, birth string) int64 {
	key := normName(name)
	if byBirth := c.ids[key]; byBirth != nil {
		if id, ok := byBirth[birth]; ok {
			return id
		}
		// A later sighting without a birth date refers to the only identity
		// seen so far rather than minting a second one.
		if birth == "" && len(byBirth) == 1 {
			for _, id := range byBirth {
				return id
			}
		}
	}
	id := SyntheticID(c.family, c.gender, name, birth)
	if c.ids[key] == nil {
		c.ids[key] = make(map[string]int64)
	}
	c.ids[key][birth] = id
	return id
}

// surname returns the token an abbreviated repeat would use, the first token
// of the stored name.
func surname(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimSuffix(fields[0], ",")
}

// LooksAbbreviated reports whether a cell is plausibly an abbreviated
// surname-only repeat: a single token, no digits, with a lowercase letter
// after the first character.
func LooksAbbreviated(cell string) bool {
	s := strings.TrimSpace(cell)
	if s == "" || strings.ContainsAny(s, "0123456789") {
		return false
	}
	fields := strings.Fields(s)
	if len(fields) != 1 {
		return false
	}
	runes := []rune(fields[0])
	for _, r := range runes[1:] {
		if r >= 'a' && r <= 'z' || r == 'æ' || r == 'ø' || r == 'å' {
			return true
		}
	}
	return false
}
