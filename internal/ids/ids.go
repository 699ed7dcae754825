// Package ids generates and validates the type-prefixed identifiers used for
// sprites.
package ids

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const PrefixSprite = "sprite"

// New returns a fresh TypeID string with the given prefix.
func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewSpriteID() string { return New(PrefixSprite) }

// Validate checks that id parses as a TypeID carrying expectedPrefix.
func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
