// Package rates holds the monthly rate table: unit type x stay-type tier x
// check-in season. Cells are explicit about unavailability so lookups can
// tell "this tier is priced but not offered this season" apart from "this
// unit has no such tier at all".
package rates

import "github.com/aniolquer/node-smart-form/pkg/stay"

// Unit identifies a rentable unit category. The set is closed; adding a unit
// means adding its rate rows.
type Unit string

const (
	UnitStudioStandard        Unit = "studio-standard"
	UnitStudioStandardTerrace Unit = "studio-standard-terrace"
	UnitStudioRooftop         Unit = "studio-rooftop"
	UnitStudioComfort         Unit = "studio-comfort"
	UnitTwoBedApartment       Unit = "2bed-apartment"
	UnitTwoBedTerrace         Unit = "2bed-terrace"
	UnitTwoBedRooftop         Unit = "2bed-rooftop"
)

// Units lists every unit in display order: studios first, then two-bedroom
// apartments.
var Units = []Unit{
	UnitStudioStandard,
	UnitStudioStandardTerrace,
	UnitStudioComfort,
	UnitStudioRooftop,
	UnitTwoBedApartment,
	UnitTwoBedTerrace,
	UnitTwoBedRooftop,
}

// SeasonPrices holds the four season cells of one stay-type tier. A nil cell
// is the explicit "not offered" marker; validation rejects tiers that leave
// a season undefined.
type SeasonPrices map[stay.Season]*float64

// TierPrices maps a stay-type tier to its season cells. A missing tier means
// the unit does not offer that stay length at all.
type TierPrices map[stay.Type]SeasonPrices

// Table is the full rate table, monthly prices in EUR.
type Table map[Unit]TierPrices

// Price returns the monthly price for the cell, reporting separately whether
// the tier exists for the unit and whether the season cell carries a price.
func (t Table) Price(unit Unit, st stay.Type, season stay.Season) (price float64, tierExists, offered bool) {
	tiers, ok := t[unit]
	if !ok {
		return 0, false, false
	}
	seasons, ok := tiers[st]
	if !ok {
		return 0, false, false
	}
	cell, ok := seasons[season]
	if !ok || cell == nil {
		return 0, true, false
	}
	return *cell, true, true
}

// HasUnit reports whether the unit appears in the table.
func (t Table) HasUnit(unit Unit) bool {
	_, ok := t[unit]
	return ok
}

func eur(v float64) *float64 { return &v }

// row builds one tier's season cells in calendar order. A nil entry keeps
// the season defined but not offered.
func row(april, mayJul, augSep, octDec *float64) SeasonPrices {
	return SeasonPrices{
		stay.SeasonApril:  april,
		stay.SeasonMayJul: mayJul,
		stay.SeasonAugSep: augSep,
		stay.SeasonOctDec: octDec,
	}
}

// Default is the production rate table. Hotel tiers exist only for the
// studios that take nightly-style bookings; the rooftop studio and the
// two-bedroom apartments have no hotel tier at all, which is a different
// gap than a priced tier with closed seasons.
var Default = Table{
	UnitStudioStandard: {
		stay.TypeHotel: row(eur(2415), eur(2450), eur(2475), eur(2510)),
		stay.TypeShort: row(eur(940), eur(950), eur(960), eur(975)),
		stay.TypeMid:   row(eur(870), eur(880), eur(890), eur(900)),
		stay.TypeLong:  row(eur(755), eur(765), eur(775), eur(785)),
	},
	UnitStudioStandardTerrace: {
		stay.TypeHotel: row(eur(2825), eur(2865), eur(2895), eur(2940)),
		stay.TypeShort: row(eur(1095), eur(1110), eur(1125), eur(1140)),
		stay.TypeMid:   row(eur(1015), eur(1030), eur(1040), eur(1055)),
		stay.TypeLong:  row(eur(885), eur(895), eur(905), eur(920)),
	},
	UnitStudioRooftop: {
		stay.TypeShort: row(eur(1135), eur(1150), eur(1165), eur(1180)),
		stay.TypeMid:   row(eur(1045), eur(1060), eur(1070), eur(1085)),
		stay.TypeLong:  row(eur(910), eur(920), eur(930), eur(945)),
	},
	UnitStudioComfort: {
		stay.TypeHotel: row(eur(2700), eur(2740), eur(2770), eur(2810)),
		stay.TypeShort: row(eur(1050), eur(1075), eur(1090), eur(1105)),
		stay.TypeMid:   row(eur(970), eur(995), eur(1010), eur(1020)),
		stay.TypeLong:  row(eur(845), eur(865), eur(875), eur(890)),
	},
	UnitTwoBedApartment: {
		stay.TypeShort: row(eur(1565), eur(1590), eur(1605), eur(1625)),
		stay.TypeMid:   row(eur(1465), eur(1485), eur(1500), eur(1520)),
		stay.TypeLong:  row(eur(1275), eur(1290), eur(1305), eur(1325)),
	},
	UnitTwoBedTerrace: {
		stay.TypeShort: row(eur(1540), eur(1560), eur(1575), eur(1600)),
		stay.TypeMid:   row(eur(1440), eur(1460), eur(1475), eur(1495)),
		stay.TypeLong:  row(eur(1250), eur(1270), eur(1285), eur(1300)),
	},
	UnitTwoBedRooftop: {
		stay.TypeShort: row(eur(1725), eur(1750), eur(1765), eur(1795)),
		stay.TypeMid:   row(eur(1610), eur(1635), eur(1650), eur(1675)),
		stay.TypeLong:  row(eur(1400), eur(1425), eur(1435), eur(1460)),
	},
}
