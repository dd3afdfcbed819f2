// Package stay classifies a booking date range into the season and
// stay-length buckets used to select a pricing row.
package stay

import (
	"errors"
	"time"
)

// ErrInvalidRange reports a check-out that is not strictly after check-in.
// Callers that accept optional dates should guard before calling Classify;
// hitting this error means the normal guards were bypassed.
var ErrInvalidRange = errors.New("stay: check-out must be after check-in")

// Season is one of the four pricing periods, chosen by check-in month alone.
// Months are one-indexed (time.Month). The partition recurs annually.
type Season string

const (
	SeasonApril  Season = "april"
	SeasonMayJul Season = "may_jul"
	SeasonAugSep Season = "aug_sep"
	SeasonOctDec Season = "oct_dec"
)

// Seasons lists all season buckets in calendar order.
var Seasons = []Season{SeasonApril, SeasonMayJul, SeasonAugSep, SeasonOctDec}

// Type is a stay-length bucket. Hotel-like stays are routed to an external
// booking channel; the other three tiers select rate-table rows.
type Type string

const (
	TypeHotel Type = "hotel"
	TypeShort Type = "short"
	TypeMid   Type = "mid"
	TypeLong  Type = "long"
)

// Types lists all stay-type buckets from shortest to longest.
var Types = []Type{TypeHotel, TypeShort, TypeMid, TypeLong}

// SeasonOf maps a date to its season bucket by check-in month.
// April alone is the low-demand bucket; May-July, August-September and the
// remaining six months (October-December wrapping to January-March) form the
// other three.
func SeasonOf(date time.Time) Season {
	switch m := date.Month(); {
	case m == time.April:
		return SeasonApril
	case m >= time.May && m <= time.July:
		return SeasonMayJul
	case m >= time.August && m <= time.September:
		return SeasonAugSep
	default:
		return SeasonOctDec
	}
}

// Nights is the inclusive night count: days between the dates plus one.
func Nights(checkIn, checkOut time.Time) int {
	return daysBetween(checkIn, checkOut) + 1
}

// WholeMonths counts the calendar-month boundaries crossed between check-in
// and check-out, ignoring the day of month.
func WholeMonths(checkIn, checkOut time.Time) int {
	return (checkOut.Year()-checkIn.Year())*12 + int(checkOut.Month()) - int(checkIn.Month())
}

// DurationMonths is the billing duration: whole calendar months spanned
// inclusive of partial months, never less than one.
func DurationMonths(checkIn, checkOut time.Time) int {
	d := WholeMonths(checkIn, checkOut) + 1
	if d < 1 {
		return 1
	}
	return d
}

// Classify buckets a date range by length. The rules are ordered and the
// first match wins:
//
//  1. check-out not strictly after check-in -> ErrInvalidRange
//  2. fewer than 28 nights -> hotel-like
//  3. fewer than 3 whole months -> short (a 28-night stay inside one
//     calendar month lands here, not in hotel)
//  4. 3 to 8 whole months -> mid
//  5. 9 or more whole months -> long
func Classify(checkIn, checkOut time.Time) (Type, error) {
	if daysBetween(checkIn, checkOut) < 1 {
		return "", ErrInvalidRange
	}
	if Nights(checkIn, checkOut) < 28 {
		return TypeHotel, nil
	}

	switch months := WholeMonths(checkIn, checkOut); {
	case months < 3:
		return TypeShort, nil
	case months < 9:
		return TypeMid, nil
	default:
		return TypeLong, nil
	}
}

// daysBetween counts calendar days from a to b, ignoring the time of day.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
