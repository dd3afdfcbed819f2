package form

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aniolquer/node-smart-form/pkg/applicant"
	"github.com/aniolquer/node-smart-form/pkg/documents"
	"github.com/aniolquer/node-smart-form/pkg/pricing"
	"github.com/aniolquer/node-smart-form/pkg/rates"
	"github.com/aniolquer/node-smart-form/pkg/stay"
)

// Code is a stable diagnostic reason id, resolved to display text by the
// localization layer.
type Code string

const (
	CodeUnitMissing     Code = "unit_missing"
	CodeCheckInMissing  Code = "check_in_missing"
	CodeCheckOutMissing Code = "check_out_missing"
	CodeDatesInvalid    Code = "dates_invalid"

	CodeFirstNameMissing Code = "first_name_missing"
	CodeLastNameMissing  Code = "last_name_missing"
	CodeEmailMissing     Code = "email_missing"
	CodeEmailInvalid     Code = "email_invalid"
	CodePhoneMissing     Code = "phone_missing"

	CodeSecondFirstNameMissing Code = "second_occupant_first_name_missing"
	CodeSecondLastNameMissing  Code = "second_occupant_last_name_missing"

	CodePriceUnavailable Code = "price_unavailable"

	CodeIncomeMissing      Code = "income_question_missing"
	CodeBackingMissing     Code = "backing_choice_missing"
	CodePaymentPlanMissing Code = "payment_plan_missing"
	CodeWorkerMissing      Code = "worker_type_missing"
	CodeResidencyMissing   Code = "residency_missing"

	CodeDocumentMissing Code = "document_missing"
)

// Diagnostic is one reason the snapshot cannot be submitted yet. Category is
// set only for document_missing.
type Diagnostic struct {
	Code     Code               `json:"code"`
	Category documents.Category `json:"category,omitempty"`
	Message  string             `json:"message"`
}

// Report is the outcome of evaluating a snapshot. Valid holds exactly when
// Diagnostics is empty; there is no second validity rule set.
type Report struct {
	Valid       bool         `json:"valid"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Messages resolves diagnostic codes and document-category ids to display
// text. The i18n package provides language bundles; passing nil falls back
// to built-in English.
type Messages interface {
	Reason(code string) string
	DocumentLabel(c documents.Category) string
}

// Matches the original form's check: something, an @, something, a dot,
// something.
var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

// Evaluate recomputes the submission verdict from scratch. Diagnostics come
// out in a fixed order: scalar fields, price availability, questionnaire
// completeness, then missing documents in requirement order.
func Evaluate(table rates.Table, snap Snapshot, msgs Messages) Report {
	if msgs == nil {
		msgs = englishMessages{}
	}

	var diags []Diagnostic
	add := func(code Code) {
		diags = append(diags, Diagnostic{Code: code, Message: msgs.Reason(string(code))})
	}

	if snap.Unit == "" {
		add(CodeUnitMissing)
	}
	if snap.CheckIn.IsZero() {
		add(CodeCheckInMissing)
	}
	if snap.CheckOut.IsZero() {
		add(CodeCheckOutMissing)
	}

	stayType := stay.Type("")
	if !snap.CheckIn.IsZero() && !snap.CheckOut.IsZero() {
		st, err := stay.Classify(snap.CheckIn, snap.CheckOut)
		if err != nil {
			add(CodeDatesInvalid)
		} else {
			stayType = st
		}
	}

	if blank(snap.Contact.FirstName) {
		add(CodeFirstNameMissing)
	}
	if blank(snap.Contact.LastName) {
		add(CodeLastNameMissing)
	}
	switch {
	case blank(snap.Contact.Email):
		add(CodeEmailMissing)
	case !emailShape.MatchString(snap.Contact.Email):
		add(CodeEmailInvalid)
	}
	if blank(snap.Contact.Phone) {
		add(CodePhoneMissing)
	}

	if snap.PartySize == 2 {
		second := snap.SecondOccupant
		if second == nil || blank(second.FirstName) {
			add(CodeSecondFirstNameMissing)
		}
		if second == nil || blank(second.LastName) {
			add(CodeSecondLastNameMissing)
		}
	}

	if est := pricing.Compute(table, snap.Unit, snap.CheckIn, snap.CheckOut); !est.Available {
		add(CodePriceUnavailable)
	}

	if stayType == stay.TypeMid || stayType == stay.TypeLong {
		diags = append(diags, situationDiagnostics(snap.Situation, msgs)...)
	}

	for _, cat := range documents.Required(stayType, snap.Situation) {
		if len(snap.Attached(cat)) == 0 {
			diags = append(diags, Diagnostic{
				Code:     CodeDocumentMissing,
				Category: cat,
				Message:  fmt.Sprintf("%s: %s", msgs.Reason(string(CodeDocumentMissing)), msgs.DocumentLabel(cat)),
			})
		}
	}

	return Report{Valid: len(diags) == 0, Diagnostics: diags}
}

// situationDiagnostics walks the long-stay questionnaire branch and reports
// the first unanswered question of each sub-path. Documents and scalar
// completeness are tracked independently: a prepayment choice without a
// schedule adds no documents yet still blocks here.
func situationDiagnostics(sit applicant.Situation, msgs Messages) []Diagnostic {
	var diags []Diagnostic
	add := func(code Code) {
		diags = append(diags, Diagnostic{Code: code, Message: msgs.Reason(string(code))})
	}

	switch sit.Income {
	case applicant.IncomeUnset:
		add(CodeIncomeMissing)

	case applicant.IncomeInsufficient:
		if sit.Backing == applicant.BackingUnset {
			add(CodeBackingMissing)
		}
		if sit.Backing == applicant.BackingPrepayment && sit.PaymentPlan == applicant.PlanUnset {
			add(CodePaymentPlanMissing)
		}

	case applicant.IncomeSufficient:
		if sit.Worker == applicant.WorkerUnset {
			add(CodeWorkerMissing)
		}
		if sit.Worker == applicant.WorkerSelfEmployed {
			if sit.Residency == applicant.ResidencyUnset {
				add(CodeResidencyMissing)
			}
			if sit.Residency == applicant.ResidencyNonEU && sit.PaymentPlan == applicant.PlanUnset {
				add(CodePaymentPlanMissing)
			}
		}
	}

	return diags
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// englishMessages is the fallback message source when no localization
// provider is wired in.
type englishMessages struct{}

var englishReasons = map[string]string{
	string(CodeUnitMissing):     "Select a unit type",
	string(CodeCheckInMissing):  "Select a check-in date",
	string(CodeCheckOutMissing): "Select a check-out date",
	string(CodeDatesInvalid):    "The stay dates are invalid",

	string(CodeFirstNameMissing): "Enter your first name",
	string(CodeLastNameMissing):  "Enter your last name",
	string(CodeEmailMissing):     "Enter your email",
	string(CodeEmailInvalid):     "Enter a valid email",
	string(CodePhoneMissing):     "Enter your phone number",

	string(CodeSecondFirstNameMissing): "Enter the second occupant's first name",
	string(CodeSecondLastNameMissing):  "Enter the second occupant's last name",

	string(CodePriceUnavailable): "The selected combination is not available",

	string(CodeIncomeMissing):      "Indicate whether your income is sufficient",
	string(CodeBackingMissing):     "Choose a guarantor or advance payment to continue",
	string(CodePaymentPlanMissing): "Choose a payment option",
	string(CodeWorkerMissing):      "Indicate whether you are an employee or self-employed",
	string(CodeResidencyMissing):   "Indicate whether you are self-employed inside or outside the EU",

	string(CodeDocumentMissing): "Attach",
}

func (englishMessages) Reason(code string) string {
	if msg, ok := englishReasons[code]; ok {
		return msg
	}
	return code
}

func (englishMessages) DocumentLabel(c documents.Category) string {
	return string(c)
}
