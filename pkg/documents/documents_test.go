package documents

import (
	"reflect"
	"testing"

	"github.com/aniolquer/node-smart-form/pkg/applicant"
	"github.com/aniolquer/node-smart-form/pkg/stay"
)

func TestRequiredHotelCollectsNothing(t *testing.T) {
	full := applicant.Situation{}.
		WithIncome(applicant.IncomeSufficient).
		WithWorker(applicant.WorkerEmployee)

	for _, sit := range []applicant.Situation{{}, full} {
		if got := Required(stay.TypeHotel, sit); got != nil {
			t.Errorf("Required(hotel, %+v) = %v, want nil", sit, got)
		}
	}
}

func TestRequiredUnclassifiedCollectsNothing(t *testing.T) {
	if got := Required("", applicant.Situation{}); got != nil {
		t.Errorf("Required(unclassified) = %v, want nil", got)
	}
}

func TestRequiredShortIgnoresSituation(t *testing.T) {
	sits := []applicant.Situation{
		{},
		{Income: applicant.IncomeInsufficient, Backing: applicant.BackingGuarantor},
		{Income: applicant.IncomeSufficient, Worker: applicant.WorkerSelfEmployed, Residency: applicant.ResidencyEU},
	}

	for _, sit := range sits {
		got := Required(stay.TypeShort, sit)
		if !reflect.DeepEqual(got, []Category{Identity}) {
			t.Errorf("Required(short, %+v) = %v, want [identity-document]", sit, got)
		}
	}
}

func TestRequiredLongStayBranches(t *testing.T) {
	base := []Category{Identity}

	tests := []struct {
		name string
		sit  applicant.Situation
		want []Category
	}{
		{"unanswered questionnaire", applicant.Situation{}, base},
		{
			"insufficient income, guarantor",
			applicant.Situation{Income: applicant.IncomeInsufficient, Backing: applicant.BackingGuarantor},
			[]Category{Identity, GuarantorIdentity, GuarantorPayslips, GuarantorEmploymentContract},
		},
		{
			"insufficient income, prepayment",
			applicant.Situation{Income: applicant.IncomeInsufficient, Backing: applicant.BackingPrepayment},
			base,
		},
		{
			"insufficient income, backing unanswered",
			applicant.Situation{Income: applicant.IncomeInsufficient},
			base,
		},
		{
			"sufficient income, employee",
			applicant.Situation{Income: applicant.IncomeSufficient, Worker: applicant.WorkerEmployee},
			[]Category{Identity, EmploymentContract, Payslips, BankCertificate},
		},
		{
			"sufficient income, worker unanswered",
			applicant.Situation{Income: applicant.IncomeSufficient},
			base,
		},
		{
			"self-employed, residency unanswered",
			applicant.Situation{Income: applicant.IncomeSufficient, Worker: applicant.WorkerSelfEmployed},
			base,
		},
		{
			"self-employed in the EU",
			applicant.Situation{Income: applicant.IncomeSufficient, Worker: applicant.WorkerSelfEmployed, Residency: applicant.ResidencyEU},
			[]Category{Identity, QuarterlyTaxReturn, AnnualIncomeDeclaration, FreelanceContributionReceipt, BankCertificate},
		},
		{
			"self-employed outside the EU",
			applicant.Situation{Income: applicant.IncomeSufficient, Worker: applicant.WorkerSelfEmployed, Residency: applicant.ResidencyNonEU},
			base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, st := range []stay.Type{stay.TypeMid, stay.TypeLong} {
				got := Required(st, tt.sit)
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("Required(%s) = %v, want %v", st, got, tt.want)
				}
			}
		})
	}
}

// Answering the questionnaire back to front must land in the same place as
// answering it forward: the cascading resets guarantee stale downstream
// answers never leak into the requirement list.
func TestRequiredAfterBranchSwitch(t *testing.T) {
	sit := applicant.Situation{}.
		WithIncome(applicant.IncomeSufficient).
		WithWorker(applicant.WorkerSelfEmployed).
		WithResidency(applicant.ResidencyEU)

	before := Required(stay.TypeLong, sit)
	if !reflect.DeepEqual(before, []Category{Identity, QuarterlyTaxReturn, AnnualIncomeDeclaration, FreelanceContributionReceipt, BankCertificate}) {
		t.Fatalf("unexpected EU freelancer docs: %v", before)
	}

	sit = sit.WithWorker(applicant.WorkerEmployee)
	after := Required(stay.TypeLong, sit)
	if !reflect.DeepEqual(after, []Category{Identity, EmploymentContract, Payslips, BankCertificate}) {
		t.Errorf("docs after switching to employee = %v, stale freelancer docs leaked", after)
	}
}
