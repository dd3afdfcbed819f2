// Package applicant models the income/employment questionnaire as a value
// type with pure transitions. Each answer only makes sense under specific
// upstream answers, so every transition clears whatever the new answer makes
// inapplicable; a stale downstream answer can never survive an upstream
// change.
package applicant

// IncomeSufficiency answers "do you earn at least the required multiple of
// the monthly price".
type IncomeSufficiency string

const (
	IncomeUnset        IncomeSufficiency = ""
	IncomeSufficient   IncomeSufficiency = "yes"
	IncomeInsufficient IncomeSufficiency = "no"
)

// WorkerType applies when income is sufficient.
type WorkerType string

const (
	WorkerUnset        WorkerType = ""
	WorkerEmployee     WorkerType = "employee"
	WorkerSelfEmployed WorkerType = "self_employed"
)

// Residency applies to self-employed applicants: inside or outside the EU.
type Residency string

const (
	ResidencyUnset Residency = ""
	ResidencyEU    Residency = "eu"
	ResidencyNonEU Residency = "non_eu"
)

// Backing applies when income is insufficient: present a guarantor or pay
// the stay up front.
type Backing string

const (
	BackingUnset      Backing = ""
	BackingGuarantor  Backing = "guarantor"
	BackingPrepayment Backing = "prepayment"
)

// PaymentPlan is the prepayment schedule, required on the prepayment path
// and for self-employed applicants outside the EU.
type PaymentPlan string

const (
	PlanUnset       PaymentPlan = ""
	PlanFullUpfront PaymentPlan = "full_upfront"
	PlanSixMonths   PaymentPlan = "six_months"
	PlanQuarterly   PaymentPlan = "quarterly"
)

// Situation is the applicant's questionnaire state. The zero value is the
// empty questionnaire. Situations are immutable; transitions return a new
// value.
type Situation struct {
	Income      IncomeSufficiency `json:"income" yaml:"income"`
	Worker      WorkerType        `json:"worker" yaml:"worker"`
	Residency   Residency         `json:"residency" yaml:"residency"`
	Backing     Backing           `json:"backing" yaml:"backing"`
	PaymentPlan PaymentPlan       `json:"payment_plan" yaml:"payment_plan"`
}

// WithIncome answers the income question. Changing the answer resets the
// entire downstream branch: worker type, residency, backing and payment plan
// all depend on which side of this question the applicant is on.
func (s Situation) WithIncome(v IncomeSufficiency) Situation {
	if v == s.Income {
		return s
	}
	return Situation{Income: v}
}

// WithWorker answers the employee/self-employed question. It applies only
// when income is sufficient; otherwise the situation is returned unchanged.
// Moving away from self-employed clears residency and the payment plan that
// depended on it.
func (s Situation) WithWorker(v WorkerType) Situation {
	if s.Income != IncomeSufficient || v == s.Worker {
		return s
	}
	s.Worker = v
	s.Residency = ResidencyUnset
	s.PaymentPlan = PlanUnset
	return s
}

// WithResidency answers the EU/non-EU question for self-employed applicants;
// inapplicable otherwise. Leaving the non-EU path clears the payment plan.
func (s Situation) WithResidency(v Residency) Situation {
	if s.Income != IncomeSufficient || s.Worker != WorkerSelfEmployed || v == s.Residency {
		return s
	}
	s.Residency = v
	s.PaymentPlan = PlanUnset
	return s
}

// WithBacking chooses guarantor versus prepayment for applicants without
// sufficient income; inapplicable otherwise. Switching away from prepayment
// clears the payment plan.
func (s Situation) WithBacking(v Backing) Situation {
	if s.Income != IncomeInsufficient || v == s.Backing {
		return s
	}
	s.Backing = v
	s.PaymentPlan = PlanUnset
	return s
}

// WithPaymentPlan picks the prepayment schedule. It applies only on the two
// paths that require one.
func (s Situation) WithPaymentPlan(v PaymentPlan) Situation {
	if !s.NeedsPaymentPlan() {
		return s
	}
	s.PaymentPlan = v
	return s
}

// NeedsPaymentPlan reports whether the current answers put the applicant on
// a path that requires choosing a prepayment schedule.
func (s Situation) NeedsPaymentPlan() bool {
	if s.Income == IncomeInsufficient && s.Backing == BackingPrepayment {
		return true
	}
	return s.Income == IncomeSufficient &&
		s.Worker == WorkerSelfEmployed &&
		s.Residency == ResidencyNonEU
}
