package form

import (
	"github.com/aniolquer/node-smart-form/pkg/rates"
	"github.com/aniolquer/node-smart-form/pkg/stay"
)

// WizardStage names how far the visitor has progressed. There is no stored
// step: the stage is recomputed from the snapshot alone, so identical
// snapshots always land on the same stage.
type WizardStage string

const (
	StageSelectingDates WizardStage = "selecting_dates"
	StageHotelDiverted  WizardStage = "hotel_diverted"
	StageSelectingUnit  WizardStage = "selecting_unit"
	StageCollecting     WizardStage = "collecting"
	StageReadyToSubmit  WizardStage = "ready_to_submit"
)

// Stage derives the wizard stage from the snapshot. Hotel-like stays divert
// to the external booking channel before a unit is even chosen.
func Stage(table rates.Table, snap Snapshot) WizardStage {
	if snap.CheckIn.IsZero() || snap.CheckOut.IsZero() {
		return StageSelectingDates
	}
	st, err := stay.Classify(snap.CheckIn, snap.CheckOut)
	if err != nil {
		return StageSelectingDates
	}
	if st == stay.TypeHotel {
		return StageHotelDiverted
	}
	if snap.Unit == "" {
		return StageSelectingUnit
	}
	if Evaluate(table, snap, nil).Valid {
		return StageReadyToSubmit
	}
	return StageCollecting
}
