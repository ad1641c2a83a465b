package form

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Well-known id prefixes for the entity kinds the store creates.
const (
	FormIDPrefix     = "form"
	QuestionIDPrefix = "q"
	OptionIDPrefix   = "opt"
)

// IDSource produces unique string ids for forms, questions, and
// options. Implementations must be safe for use as stable reference
// keys for the lifetime of the process.
type IDSource interface {
	NewID(prefix string) string
}

// UUIDSource generates ids with a random UUID suffix. Collisions are
// negligible for a single user's form set.
type UUIDSource struct{}

// NewID returns prefix-uuid, or a bare uuid when prefix is empty.
func (UUIDSource) NewID(prefix string) string {
	suffix := uuid.NewString()
	if strings.TrimSpace(prefix) == "" {
		return suffix
	}
	return prefix + "-" + suffix
}

// CounterSource generates sequential ids. Deterministic, for tests.
type CounterSource struct {
	next int
}

// NewID returns prefix-N with N increasing from 1.
func (s *CounterSource) NewID(prefix string) string {
	s.next++
	return fmt.Sprintf("%s-%d", prefix, s.next)
}
