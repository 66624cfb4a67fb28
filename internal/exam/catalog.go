package exam

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is the ordered, immutable list of examination challenges.
// Construction validates the set and fails fast on structural problems;
// a Catalog that exists is always safe to index by ordinal.
type Catalog struct {
	challenges []Challenge
}

// NewCatalog builds a catalog from the given challenges, sorted by ordinal.
// Returns a combined error describing all problems found, or nil if valid.
func NewCatalog(challenges []Challenge) (*Catalog, error) {
	if err := validateChallenges(challenges); err != nil {
		return nil, err
	}

	sorted := make([]Challenge, len(challenges))
	copy(sorted, challenges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Ordinal < sorted[j].Ordinal
	})

	return &Catalog{challenges: sorted}, nil
}

// Len returns the number of challenges in the catalog.
func (c *Catalog) Len() int {
	return len(c.challenges)
}

// At returns the challenge at the given ordinal position.
func (c *Catalog) At(ordinal int) (Challenge, error) {
	if ordinal < 0 || ordinal >= len(c.challenges) {
		return Challenge{}, fmt.Errorf("no challenge at ordinal %d (catalog has %d)", ordinal, len(c.challenges))
	}
	return c.challenges[ordinal], nil
}

// Challenges returns a copy of all challenges in ordinal order.
func (c *Catalog) Challenges() []Challenge {
	out := make([]Challenge, len(c.challenges))
	copy(out, c.challenges)
	return out
}

// validateChallenges performs all structural checks on the challenge set.
func validateChallenges(challenges []Challenge) error {
	var errs []string

	if len(challenges) == 0 {
		errs = append(errs, "catalog must contain at least one challenge")
	}

	idSet := make(map[string]bool, len(challenges))
	ordinalSet := make(map[int]bool, len(challenges))

	for _, ch := range challenges {
		if ch.ID == "" {
			errs = append(errs, fmt.Sprintf("challenge at ordinal %d has empty ID", ch.Ordinal))
		}
		if idSet[ch.ID] {
			errs = append(errs, fmt.Sprintf("duplicate challenge ID: %q", ch.ID))
		}
		idSet[ch.ID] = true

		if ordinalSet[ch.Ordinal] {
			errs = append(errs, fmt.Sprintf("duplicate ordinal %d (challenge %q)", ch.Ordinal, ch.ID))
		}
		ordinalSet[ch.Ordinal] = true

		if ch.Points <= 0 {
			errs = append(errs, fmt.Sprintf("challenge %q: Points must be > 0, got %d", ch.ID, ch.Points))
		}
		if ch.TimeLimitSecs <= 0 {
			errs = append(errs, fmt.Sprintf("challenge %q: TimeLimitSecs must be > 0, got %d", ch.ID, ch.TimeLimitSecs))
		}
		switch ch.Difficulty {
		case DifficultyMaster, DifficultyExpert, DifficultyLegend:
		default:
			errs = append(errs, fmt.Sprintf("challenge %q: unknown difficulty %q", ch.ID, ch.Difficulty))
		}
	}

	// Ordinals must be contiguous starting at 0.
	for i := range challenges {
		if !ordinalSet[i] {
			errs = append(errs, fmt.Sprintf("ordinals must be contiguous from 0: missing ordinal %d", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("exam catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
