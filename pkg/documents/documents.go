// Package documents derives which supporting documents a booking request
// must attach. It works with stable category ids only; display labels come
// from the localization layer.
package documents

import (
	"github.com/aniolquer/node-smart-form/pkg/applicant"
	"github.com/aniolquer/node-smart-form/pkg/stay"
)

// Category is a stable document-category id.
type Category string

const (
	Identity                     Category = "identity-document"
	Payslips                     Category = "payslips"
	EmploymentContract           Category = "employment-contract"
	BankCertificate              Category = "bank-certificate"
	GuarantorIdentity            Category = "guarantor-identity"
	GuarantorPayslips            Category = "guarantor-payslips"
	GuarantorEmploymentContract  Category = "guarantor-employment-contract"
	QuarterlyTaxReturn           Category = "quarterly-tax-return"
	AnnualIncomeDeclaration      Category = "annual-income-declaration"
	FreelanceContributionReceipt Category = "freelance-contribution-receipt"
)

// All lists every category the wizard can ever request.
var All = []Category{
	Identity,
	Payslips,
	EmploymentContract,
	BankCertificate,
	GuarantorIdentity,
	GuarantorPayslips,
	GuarantorEmploymentContract,
	QuarterlyTaxReturn,
	AnnualIncomeDeclaration,
	FreelanceContributionReceipt,
}

// Required returns the ordered document categories for a stay classification
// and questionnaire state.
//
// Hotel-like stays never collect documents: that path is diverted to the
// external booking channel. Short stays need the identity document only.
// Mid and long stays follow the long-stay questionnaire: requirements key
// off the stay exceeding three billed months, which both buckets do.
//
// While a branch is only partially answered the base set is returned; the
// validity evaluator separately blocks on the unanswered question, so an
// incomplete branch is never mistaken for a satisfied one.
func Required(st stay.Type, sit applicant.Situation) []Category {
	switch st {
	case stay.TypeShort:
		return []Category{Identity}
	case stay.TypeMid, stay.TypeLong:
		return longStayDocs(sit)
	default:
		return nil
	}
}

func longStayDocs(sit applicant.Situation) []Category {
	base := []Category{Identity}

	switch sit.Income {
	case applicant.IncomeInsufficient:
		if sit.Backing == applicant.BackingGuarantor {
			return append(base, GuarantorIdentity, GuarantorPayslips, GuarantorEmploymentContract)
		}
		// Prepayment (or an unanswered backing choice) adds no documents;
		// prepayment is a schedule choice, not paperwork.
		return base

	case applicant.IncomeSufficient:
		switch sit.Worker {
		case applicant.WorkerEmployee:
			return append(base, EmploymentContract, Payslips, BankCertificate)
		case applicant.WorkerSelfEmployed:
			if sit.Residency == applicant.ResidencyNonEU {
				return base
			}
			if sit.Residency == applicant.ResidencyEU {
				return append(base, QuarterlyTaxReturn, AnnualIncomeDeclaration, FreelanceContributionReceipt, BankCertificate)
			}
			return base
		default:
			return base
		}

	default:
		return base
	}
}
