package stay

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonPartition(t *testing.T) {
	expected := map[time.Month]Season{
		time.January:   SeasonOctDec,
		time.February:  SeasonOctDec,
		time.March:     SeasonOctDec,
		time.April:     SeasonApril,
		time.May:       SeasonMayJul,
		time.June:      SeasonMayJul,
		time.July:      SeasonMayJul,
		time.August:    SeasonAugSep,
		time.September: SeasonAugSep,
		time.October:   SeasonOctDec,
		time.November:  SeasonOctDec,
		time.December:  SeasonOctDec,
	}

	for m := time.January; m <= time.December; m++ {
		got := SeasonOf(date(2026, m, 15))
		if got != expected[m] {
			t.Errorf("SeasonOf(%s) = %s, want %s", m, got, expected[m])
		}
	}
}

func TestSeasonIgnoresYear(t *testing.T) {
	for _, year := range []int{2024, 2026, 2031} {
		if got := SeasonOf(date(year, time.April, 1)); got != SeasonApril {
			t.Errorf("SeasonOf(April %d) = %s, want %s", year, got, SeasonApril)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     Type
	}{
		{"one night", date(2026, time.June, 1), date(2026, time.June, 2), TypeHotel},
		{"two weeks in april", date(2026, time.April, 10), date(2026, time.April, 24), TypeHotel},
		{"27 nights", date(2026, time.January, 1), date(2026, time.January, 27), TypeHotel},
		// 28 nights inside a single calendar month: the night gate no
		// longer catches it, so the month rule makes it short.
		{"exactly 28 nights, zero whole months", date(2026, time.January, 1), date(2026, time.January, 28), TypeShort},
		{"two whole months", date(2026, time.May, 1), date(2026, time.June, 28), TypeShort},
		{"just under three months", date(2026, time.January, 1), date(2026, time.March, 31), TypeShort},
		{"exactly three whole months", date(2026, time.January, 1), date(2026, time.April, 1), TypeMid},
		{"eight whole months", date(2026, time.January, 1), date(2026, time.September, 30), TypeMid},
		{"exactly nine whole months", date(2026, time.March, 1), date(2026, time.December, 1), TypeLong},
		{"a full year", date(2026, time.January, 15), date(2027, time.January, 15), TypeLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.checkIn, tt.checkOut)
			if err != nil {
				t.Fatalf("Classify returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyInvalidRange(t *testing.T) {
	in := date(2026, time.June, 10)

	for _, out := range []time.Time{in, date(2026, time.June, 9), date(2026, time.May, 10)} {
		if _, err := Classify(in, out); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Classify(%s, %s) error = %v, want ErrInvalidRange", in, out, err)
		}
	}
}

func TestNights(t *testing.T) {
	if got := Nights(date(2026, time.May, 1), date(2026, time.June, 28)); got != 59 {
		t.Errorf("Nights = %d, want 59", got)
	}
	if got := Nights(date(2026, time.June, 1), date(2026, time.June, 2)); got != 2 {
		t.Errorf("Nights = %d, want 2", got)
	}
}

func TestWholeMonths(t *testing.T) {
	tests := []struct {
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{date(2026, time.May, 1), date(2026, time.June, 28), 1},
		{date(2026, time.May, 31), date(2026, time.June, 1), 1},
		{date(2026, time.March, 1), date(2026, time.December, 1), 9},
		{date(2026, time.October, 15), date(2027, time.January, 10), 3},
		{date(2026, time.June, 1), date(2026, time.June, 28), 0},
	}

	for _, tt := range tests {
		if got := WholeMonths(tt.checkIn, tt.checkOut); got != tt.want {
			t.Errorf("WholeMonths(%s, %s) = %d, want %d", tt.checkIn, tt.checkOut, got, tt.want)
		}
	}
}

func TestDurationMonths(t *testing.T) {
	tests := []struct {
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{date(2026, time.June, 1), date(2026, time.June, 28), 1},
		{date(2026, time.May, 1), date(2026, time.June, 28), 2},
		{date(2026, time.March, 1), date(2026, time.December, 1), 10},
	}

	for _, tt := range tests {
		if got := DurationMonths(tt.checkIn, tt.checkOut); got != tt.want {
			t.Errorf("DurationMonths(%s, %s) = %d, want %d", tt.checkIn, tt.checkOut, got, tt.want)
		}
	}
}
