package rates

import (
	"fmt"

	"github.com/aniolquer/node-smart-form/pkg/stay"
)

var knownTiers = map[stay.Type]bool{
	stay.TypeHotel: true,
	stay.TypeShort: true,
	stay.TypeMid:   true,
	stay.TypeLong:  true,
}

var knownSeasons = map[stay.Season]bool{
	stay.SeasonApril:  true,
	stay.SeasonMayJul: true,
	stay.SeasonAugSep: true,
	stay.SeasonOctDec: true,
}

// Validate checks the structural invariants of the table: every tier that
// exists defines all four season cells, prices are positive, and within a
// unit and season the monthly price never increases from short to mid to
// long. It returns one error per violation.
func (t Table) Validate() []error {
	var errs []error

	for unit, tiers := range t {
		for tier, seasons := range tiers {
			if !knownTiers[tier] {
				errs = append(errs, fmt.Errorf("%s: unknown stay-type tier %q", unit, tier))
				continue
			}
			for season := range seasons {
				if !knownSeasons[season] {
					errs = append(errs, fmt.Errorf("%s.%s: unknown season %q", unit, tier, season))
				}
			}
			for _, season := range stay.Seasons {
				cell, defined := seasons[season]
				if !defined {
					errs = append(errs, fmt.Errorf("%s.%s: season %s is undefined; mark it null if not offered", unit, tier, season))
					continue
				}
				if cell != nil && *cell <= 0 {
					errs = append(errs, fmt.Errorf("%s.%s.%s: price must be positive, got %.2f", unit, tier, season, *cell))
				}
			}
		}

		for _, season := range stay.Seasons {
			errs = append(errs, checkMonotonic(t, unit, season)...)
		}
	}

	return errs
}

// checkMonotonic verifies short >= mid >= long for one unit and season,
// skipping pairs where either tier is not offered.
func checkMonotonic(t Table, unit Unit, season stay.Season) []error {
	order := []stay.Type{stay.TypeShort, stay.TypeMid, stay.TypeLong}

	var errs []error
	for i := 0; i < len(order)-1; i++ {
		hi, hiTier, hiOK := t.Price(unit, order[i], season)
		lo, loTier, loOK := t.Price(unit, order[i+1], season)
		if !hiTier || !loTier || !hiOK || !loOK {
			continue
		}
		if hi < lo {
			errs = append(errs, fmt.Errorf("%s.%s: %s price %.2f is below %s price %.2f; longer stays must not cost more per month",
				unit, season, order[i], hi, order[i+1], lo))
		}
	}
	return errs
}
