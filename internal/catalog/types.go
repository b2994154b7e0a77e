// Package catalog holds the ingredient catalog: entry types, the fixed
// category set, an immutable lookup index, and the source loader that reads
// catalog JSON from a file or URL.
package catalog

import (
	"fmt"

	"github.com/maibrennan/larder/internal/text"
)

// Origin distinguishes curated entries from user-contributed ones.
type Origin string

const (
	OriginSystem Origin = "system"
	OriginUser   Origin = "user"
)

// Entry is a single catalog ingredient.
type Entry struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	NormalizedName string   `json:"normalizedName,omitempty"`
	Synonyms       []string `json:"synonyms,omitempty"`
	Category       Category `json:"category"`
	Origin         Origin   `json:"origin"`
	UsageCount     int      `json:"usageCount"`
}

// Prepare computes the normalized name, maps legacy category labels into the
// fixed set, and defaults a missing origin to user-contributed. It returns an
// error for entries that cannot participate in matching.
func (e *Entry) Prepare() error {
	if e.Name == "" {
		return fmt.Errorf("catalog entry %q: empty name", e.ID)
	}
	e.NormalizedName = text.Normalize(e.Name)
	if e.NormalizedName == "" {
		return fmt.Errorf("catalog entry %q: name %q normalizes to nothing", e.ID, e.Name)
	}
	e.Category = ParseCategory(string(e.Category))
	if e.Origin != OriginSystem {
		e.Origin = OriginUser
	}
	return nil
}
