package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniolquer/node-smart-form/pkg/stay"
)

func TestDefaultTableValid(t *testing.T) {
	require.Empty(t, Default.Validate())
}

func TestDefaultTableCoversEveryUnit(t *testing.T) {
	for _, u := range Units {
		assert.True(t, Default.HasUnit(u), "unit %s missing from default table", u)
	}
	assert.Len(t, Default, len(Units))
}

func TestEveryTierDefinesAllSeasons(t *testing.T) {
	for unit, tiers := range Default {
		for tier, seasons := range tiers {
			for _, season := range stay.Seasons {
				_, defined := seasons[season]
				assert.True(t, defined, "%s.%s misses season %s", unit, tier, season)
			}
		}
	}
}

// The published numbers must honor the design intent: within a unit and
// season, a longer commitment never costs more per month.
func TestDefaultTableMonotonicity(t *testing.T) {
	for unit := range Default {
		for _, season := range stay.Seasons {
			short, _, shortOK := Default.Price(unit, stay.TypeShort, season)
			mid, _, midOK := Default.Price(unit, stay.TypeMid, season)
			long, _, longOK := Default.Price(unit, stay.TypeLong, season)

			require.True(t, shortOK && midOK && longOK, "%s/%s: short, mid and long must all be offered", unit, season)
			assert.GreaterOrEqual(t, short, mid, "%s/%s: short below mid", unit, season)
			assert.GreaterOrEqual(t, mid, long, "%s/%s: mid below long", unit, season)
		}
	}
}

func TestHotelTierOnlyOnHotelCapableStudios(t *testing.T) {
	withHotel := map[Unit]bool{
		UnitStudioStandard:        true,
		UnitStudioStandardTerrace: true,
		UnitStudioComfort:         true,
	}

	for _, u := range Units {
		_, tierExists, _ := Default.Price(u, stay.TypeHotel, stay.SeasonApril)
		assert.Equal(t, withHotel[u], tierExists, "hotel tier presence for %s", u)
	}
}

func TestPriceLookup(t *testing.T) {
	price, tierExists, offered := Default.Price(UnitStudioStandardTerrace, stay.TypeShort, stay.SeasonMayJul)
	require.True(t, tierExists)
	require.True(t, offered)
	assert.Equal(t, 1110.0, price)

	price, tierExists, offered = Default.Price(UnitTwoBedApartment, stay.TypeLong, stay.SeasonOctDec)
	require.True(t, tierExists)
	require.True(t, offered)
	assert.Equal(t, 1325.0, price)

	_, tierExists, _ = Default.Price(UnitTwoBedApartment, stay.TypeHotel, stay.SeasonApril)
	assert.False(t, tierExists, "2-bed apartments take no hotel-like bookings")

	_, tierExists, _ = Default.Price(Unit("penthouse"), stay.TypeShort, stay.SeasonApril)
	assert.False(t, tierExists)
}

func TestLoad(t *testing.T) {
	table, err := Load([]byte(`
units:
  studio-standard:
    short:
      april: 900
      may_jul: 910
      aug_sep: null
      oct_dec: 930
`))
	require.NoError(t, err)

	price, tierExists, offered := table.Price(UnitStudioStandard, stay.TypeShort, stay.SeasonApril)
	require.True(t, tierExists)
	require.True(t, offered)
	assert.Equal(t, 900.0, price)

	// Explicit null: the tier exists but the season is closed.
	_, tierExists, offered = table.Price(UnitStudioStandard, stay.TypeShort, stay.SeasonAugSep)
	assert.True(t, tierExists)
	assert.False(t, offered)

	// Absent tier: a different kind of gap.
	_, tierExists, _ = table.Price(UnitStudioStandard, stay.TypeLong, stay.SeasonApril)
	assert.False(t, tierExists)
}

func TestLoadRejectsMissingSeason(t *testing.T) {
	_, err := Load([]byte(`
units:
  studio-standard:
    short:
      april: 900
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined")
}

func TestLoadRejectsNonPositivePrice(t *testing.T) {
	_, err := Load([]byte(`
units:
  studio-standard:
    short:
      april: 0
      may_jul: 910
      aug_sep: 920
      oct_dec: 930
`))
	require.Error(t, err)
}

func TestLoadRejectsEmpty(t *testing.T) {
	_, err := Load([]byte("units: {}\n"))
	require.Error(t, err)
}

func TestValidateFlagsInvertedPrices(t *testing.T) {
	table, err := Load([]byte(`
units:
  studio-standard:
    short:
      april: 800
      may_jul: 800
      aug_sep: 800
      oct_dec: 800
    mid:
      april: 900
      may_jul: 900
      aug_sep: 900
      oct_dec: 900
`))
	assert.Error(t, err, "mid above short must be rejected")
	assert.Nil(t, table)
}
