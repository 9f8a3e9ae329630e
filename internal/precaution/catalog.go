// Package precaution holds static safety advice keyed by crime type.
package precaution

import "strings"

// Catalog maps a lowercase crime type to ordered advisories.
type Catalog struct {
	entries map[string][]string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(map[string][]string{
		"theft": {
			"Keep valuables out of sight",
			"Avoid crowded places during rush hours",
			"Use secure locks for bags and vehicles",
		},
		"robbery": {
			"Avoid isolated areas late at night",
			"Be alert while using ATMs",
			"Do not resist if threatened",
		},
		"assault": {
			"Stay in well-lit public places",
			"Travel with companions when possible",
			"Leave immediately if a situation feels unsafe",
		},
		"rape": {
			"Share travel details with trusted contacts",
			"Prefer verified transport options",
			"Seek help immediately if feeling unsafe",
		},
		"murder": {
			"Avoid high-risk areas late at night",
			"Do not engage in violent disputes",
			"Report serious threats to authorities",
		},
		"cybercrime": {
			"Do not share OTPs or passwords",
			"Verify links before clicking",
			"Use strong unique passwords",
		},
	})
}

// New builds a catalog from entries. Keys are lowercased and values copied.
func New(entries map[string][]string) *Catalog {
	c := &Catalog{entries: make(map[string][]string, len(entries))}
	for k, v := range entries {
		c.entries[strings.ToLower(k)] = append([]string(nil), v...)
	}
	return c
}

// Lookup returns a copy of the advisories for crimeType, matched
// case-insensitively. Unknown types yield an empty, non-nil slice.
func (c *Catalog) Lookup(crimeType string) []string {
	advice, ok := c.entries[strings.ToLower(crimeType)]
	if !ok {
		return []string{}
	}
	out := make([]string, len(advice))
	copy(out, advice)
	return out
}

// Len returns the number of crime types with advice.
func (c *Catalog) Len() int {
	return len(c.entries)
}
