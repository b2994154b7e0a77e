package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/maibrennan/larder/internal/text"
)

// indexedName is one searchable string (an entry's normalized name or one of
// its normalized synonyms) pointing back at its entry.
type indexedName struct {
	value   string
	entry   *Entry
	synonym bool
}

// Index is an immutable lookup structure over the catalog. Build it once per
// catalog snapshot with NewIndex; concurrent readers need no coordination.
type Index struct {
	byExact map[string]*Entry
	names   []indexedName
	entries []Entry
}

// ContainsHit is one substring-lookup candidate.
type ContainsHit struct {
	Entry   *Entry
	Matched string // the normalized name or synonym that matched
}

// FuzzyHit is one edit-distance candidate.
type FuzzyHit struct {
	Entry    *Entry
	Matched  string
	Distance int
}

// NewIndex builds an Index from a catalog snapshot. Entries are prepared
// (normalized, category-mapped) as they are indexed; entries whose names
// normalize to nothing are skipped. When a synonym's normalized form collides
// with another entry's normalized name, the name wins: the synonym is not
// indexed for exact lookup.
func NewIndex(rawEntries []Entry) *Index {
	idx := &Index{
		byExact: make(map[string]*Entry, len(rawEntries)),
		entries: make([]Entry, 0, len(rawEntries)),
	}

	for _, raw := range rawEntries {
		e := raw
		if err := e.Prepare(); err != nil {
			continue
		}
		idx.entries = append(idx.entries, e)
	}

	// Pass 1: names. First entry with a given normalized name claims it.
	for i := range idx.entries {
		e := &idx.entries[i]
		if _, taken := idx.byExact[e.NormalizedName]; !taken {
			idx.byExact[e.NormalizedName] = e
		}
		idx.names = append(idx.names, indexedName{value: e.NormalizedName, entry: e})
	}

	// Pass 2: synonyms. A synonym never displaces a name key.
	for i := range idx.entries {
		e := &idx.entries[i]
		for _, syn := range e.Synonyms {
			norm := text.Normalize(syn)
			if norm == "" {
				continue
			}
			if _, taken := idx.byExact[norm]; !taken {
				idx.byExact[norm] = e
			}
			idx.names = append(idx.names, indexedName{value: norm, entry: e, synonym: true})
		}
	}

	return idx
}

// Len reports how many entries survived preparation.
func (idx *Index) Len() int { return len(idx.entries) }

// Entries returns a copy of the prepared catalog snapshot in input order.
// Mutating the copy cannot reach the index's lookup structures.
func (idx *Index) Entries() []Entry {
	out := make([]Entry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// LookupExact finds the entry whose normalized name or synonym equals the
// query exactly. Returns nil when nothing matches.
func (idx *Index) LookupExact(normalized string) *Entry {
	if normalized == "" {
		return nil
	}
	return idx.byExact[normalized]
}

// LookupContains finds entries related to the query by bidirectional
// substring containment: the indexed string contains the query, or the query
// contains the indexed string. Results are ordered by smaller length
// difference, system origin before user, higher usage count, then normalized
// name for determinism. At most one hit per entry (its closest string).
func (idx *Index) LookupContains(normalized string) []ContainsHit {
	if normalized == "" {
		return nil
	}

	best := make(map[*Entry]ContainsHit)
	for _, n := range idx.names {
		if !contains(n.value, normalized) && !contains(normalized, n.value) {
			continue
		}
		hit := ContainsHit{Entry: n.entry, Matched: n.value}
		if prev, ok := best[n.entry]; !ok || lengthDiff(normalized, hit.Matched) < lengthDiff(normalized, prev.Matched) {
			best[n.entry] = hit
		}
	}

	hits := make([]ContainsHit, 0, len(best))
	for _, h := range best {
		hits = append(hits, h)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		di, dj := lengthDiff(normalized, hits[i].Matched), lengthDiff(normalized, hits[j].Matched)
		if di != dj {
			return di < dj
		}
		return lessByPriority(hits[i].Entry, hits[j].Entry)
	})
	return hits
}

// LookupFuzzy finds entries within maxDistance edits of the query, distance
// ascending, then the same tie-break chain as LookupContains. At most one
// hit per entry (its closest string).
func (idx *Index) LookupFuzzy(normalized string, maxDistance int) []FuzzyHit {
	if normalized == "" || maxDistance < 1 {
		return nil
	}

	best := make(map[*Entry]FuzzyHit)
	for _, n := range idx.names {
		// Cheap pre-filter: a length gap above maxDistance cannot be within range.
		if lengthDiff(normalized, n.value) > maxDistance {
			continue
		}
		d := levenshtein.ComputeDistance(normalized, n.value)
		if d > maxDistance {
			continue
		}
		hit := FuzzyHit{Entry: n.entry, Matched: n.value, Distance: d}
		if prev, ok := best[n.entry]; !ok || d < prev.Distance {
			best[n.entry] = hit
		}
	}

	hits := make([]FuzzyHit, 0, len(best))
	for _, h := range best {
		hits = append(hits, h)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return lessByPriority(hits[i].Entry, hits[j].Entry)
	})
	return hits
}

// lessByPriority is the shared tie-break chain: system entries before
// user-contributed, then higher usage count, then normalized name.
func lessByPriority(a, b *Entry) bool {
	if a.Origin != b.Origin {
		return a.Origin == OriginSystem
	}
	if a.UsageCount != b.UsageCount {
		return a.UsageCount > b.UsageCount
	}
	return a.NormalizedName < b.NormalizedName
}

func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}

func lengthDiff(a, b string) int {
	if len(a) > len(b) {
		return len(a) - len(b)
	}
	return len(b) - len(a)
}
