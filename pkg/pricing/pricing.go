// Package pricing turns a unit selection and a date range into a monthly and
// total price estimate. Every failure mode is a reason code on the result
// rather than an error: during interactive date picking the inputs are
// expected to be incomplete or transiently invalid.
package pricing

import (
	"fmt"
	"time"

	"github.com/aniolquer/node-smart-form/pkg/rates"
	"github.com/aniolquer/node-smart-form/pkg/stay"
)

// Reason classifies why an estimate is or is not available. Codes are stable
// ids for the localization layer; Message is an advisory English rendering.
type Reason string

const (
	ReasonOK                Reason = "ok"
	ReasonMissingSelection  Reason = "missing_selection"
	ReasonInvalidDates      Reason = "invalid_dates"
	ReasonUnknownUnit       Reason = "unknown_unit"
	ReasonTierUnavailable   Reason = "tier_unavailable"
	ReasonSeasonUnavailable Reason = "season_unavailable"
)

// IncomeMultiple is the required monthly income as a multiple of the monthly
// price, surfaced on the estimate so the questionnaire can show the floor.
const IncomeMultiple = 2

// Estimate is the pricing result. Available is true exactly when both
// MonthlyPrice and TotalPrice are set and positive.
type Estimate struct {
	Available      bool        `json:"available"`
	MonthlyPrice   float64     `json:"monthly_price,omitempty"`
	TotalPrice     float64     `json:"total_price,omitempty"`
	DurationMonths int         `json:"duration_months,omitempty"`
	MinimumIncome  float64     `json:"minimum_income,omitempty"`
	StayType       stay.Type   `json:"stay_type,omitempty"`
	Season         stay.Season `json:"season,omitempty"`
	Reason         Reason      `json:"reason"`
	Message        string      `json:"message"`
}

func unavailable(reason Reason, msg string) Estimate {
	return Estimate{Available: false, Reason: reason, Message: msg}
}

// Compute estimates the price of a stay against the given rate table.
// checkIn and checkOut are optional; the zero time means "not yet selected".
func Compute(table rates.Table, unit rates.Unit, checkIn, checkOut time.Time) Estimate {
	if unit == "" || checkIn.IsZero() || checkOut.IsZero() {
		return unavailable(ReasonMissingSelection,
			"Select the unit type and the check-in and check-out dates.")
	}

	stayType, err := stay.Classify(checkIn, checkOut)
	if err != nil {
		return unavailable(ReasonInvalidDates, "The stay dates are invalid.")
	}

	if !table.HasUnit(unit) {
		return unavailable(ReasonUnknownUnit,
			fmt.Sprintf("Unit type %q not found.", unit))
	}

	season := stay.SeasonOf(checkIn)
	monthly, tierExists, offered := table.Price(unit, stayType, season)
	if !tierExists {
		e := unavailable(ReasonTierUnavailable,
			fmt.Sprintf("The combination of unit %q and stay type %q is not available.", unit, stayType))
		e.StayType = stayType
		e.Season = season
		return e
	}
	if !offered {
		e := unavailable(ReasonSeasonUnavailable,
			fmt.Sprintf("The combination of unit %q, stay type %q and check-in season %q is not available. Please choose another option.", unit, stayType, season))
		e.StayType = stayType
		e.Season = season
		return e
	}

	duration := stay.DurationMonths(checkIn, checkOut)
	return Estimate{
		Available:      true,
		MonthlyPrice:   monthly,
		TotalPrice:     monthly * float64(duration),
		DurationMonths: duration,
		MinimumIncome:  monthly * IncomeMultiple,
		StayType:       stayType,
		Season:         season,
		Reason:         ReasonOK,
		Message:        fmt.Sprintf("Estimated monthly price: %.2f EUR. Duration: %d month(s).", monthly, duration),
	}
}
