package i18n

import "github.com/aniolquer/node-smart-form/pkg/documents"

// Built-in bundles. Spanish is the production language of the site; the
// strings are the ones the leasing team reviewed.
var builtinBundles = map[string]Bundle{
	"es": {
		Documents: map[documents.Category]DocumentText{
			documents.Identity: {
				Label:       "DNI / Pasaporte / NIE",
				Description: "Copia de tu documento de identidad.",
			},
			documents.Payslips: {
				Label:       "3 Últimas Nóminas",
				Description: "Tus tres últimas nóminas.",
			},
			documents.EmploymentContract: {
				Label:       "Contrato Laboral",
				Description: "Contrato laboral con antigüedad mínima de 3-4 meses.",
			},
			documents.BankCertificate: {
				Label:       "Certificado de Titularidad Bancaria",
				Description: "Certificado de tu cuenta bancaria.",
			},
			documents.GuarantorIdentity: {
				Label:       "DNI / Pasaporte / NIE (Avalista)",
				Description: "Documento de identidad del avalista.",
			},
			documents.GuarantorPayslips: {
				Label:       "3 Últimas Nóminas (Avalista)",
				Description: "Tres últimas nóminas del avalista.",
			},
			documents.GuarantorEmploymentContract: {
				Label:       "Contrato Laboral (Avalista)",
				Description: "Contrato laboral del avalista con antigüedad mínima de 1 año.",
			},
			documents.QuarterlyTaxReturn: {
				Label:       "Modelo 303 (IVA) o VAT Tax Returns",
				Description: "Últimos 2 trimestres.",
			},
			documents.AnnualIncomeDeclaration: {
				Label:       "Declaración de la Renta (IRPF) o Income Tax Return",
				Description: "Última declaración de la renta.",
			},
			documents.FreelanceContributionReceipt: {
				Label:       "Recibo Cuota Autónomos o Justificante Status Freelance",
				Description: "Último recibo al día.",
			},
		},
		Reasons: map[string]string{
			"unit_missing":      "Selecciona un tipo de unidad",
			"check_in_missing":  "Selecciona fecha de check-in",
			"check_out_missing": "Selecciona fecha de check-out",
			"dates_invalid":     "Fechas de estancia inválidas",

			"first_name_missing": "Ingresa tu nombre",
			"last_name_missing":  "Ingresa tus apellidos",
			"email_missing":      "Ingresa tu email",
			"email_invalid":      "Ingresa un email válido",
			"phone_missing":      "Ingresa tu teléfono",

			"second_occupant_first_name_missing": "Ingresa el nombre del segundo ocupante",
			"second_occupant_last_name_missing":  "Ingresa los apellidos del segundo ocupante",

			"price_unavailable": "La combinación seleccionada no está disponible",

			"income_question_missing": "Indica si tienes ingresos suficientes",
			"backing_choice_missing":  "Selecciona una opción para continuar",
			"payment_plan_missing":    "Selecciona una opción de pago",
			"worker_type_missing":     "Selecciona si eres trabajador o autónomo",
			"residency_missing":       "Indica si eres autónomo de la UE o fuera de la UE",

			"document_missing": "Adjunta",

			"file_too_large":     "El archivo supera el tamaño máximo",
			"too_many_files":     "Demasiados archivos para este documento",
			"total_size_too_big": "Los adjuntos superan el tamaño total permitido",
		},
	},
	"en": {
		Documents: map[documents.Category]DocumentText{
			documents.Identity: {
				Label:       "ID Card / Passport / NIE",
				Description: "A copy of your identity document.",
			},
			documents.Payslips: {
				Label:       "3 Most Recent Payslips",
				Description: "Your three most recent payslips.",
			},
			documents.EmploymentContract: {
				Label:       "Employment Contract",
				Description: "Employment contract with at least 3-4 months of tenure.",
			},
			documents.BankCertificate: {
				Label:       "Bank Account Ownership Certificate",
				Description: "Certificate of your bank account.",
			},
			documents.GuarantorIdentity: {
				Label:       "ID Card / Passport / NIE (Guarantor)",
				Description: "The guarantor's identity document.",
			},
			documents.GuarantorPayslips: {
				Label:       "3 Most Recent Payslips (Guarantor)",
				Description: "The guarantor's three most recent payslips.",
			},
			documents.GuarantorEmploymentContract: {
				Label:       "Employment Contract (Guarantor)",
				Description: "The guarantor's employment contract with at least 1 year of tenure.",
			},
			documents.QuarterlyTaxReturn: {
				Label:       "Form 303 (VAT) or VAT Tax Returns",
				Description: "The last 2 quarters.",
			},
			documents.AnnualIncomeDeclaration: {
				Label:       "Income Tax Return (IRPF)",
				Description: "Your latest income tax return.",
			},
			documents.FreelanceContributionReceipt: {
				Label:       "Freelance Contribution Receipt or Proof of Freelance Status",
				Description: "Latest receipt, up to date.",
			},
		},
		Reasons: map[string]string{
			"unit_missing":      "Select a unit type",
			"check_in_missing":  "Select a check-in date",
			"check_out_missing": "Select a check-out date",
			"dates_invalid":     "The stay dates are invalid",

			"first_name_missing": "Enter your first name",
			"last_name_missing":  "Enter your last name",
			"email_missing":      "Enter your email",
			"email_invalid":      "Enter a valid email",
			"phone_missing":      "Enter your phone number",

			"second_occupant_first_name_missing": "Enter the second occupant's first name",
			"second_occupant_last_name_missing":  "Enter the second occupant's last name",

			"price_unavailable": "The selected combination is not available",

			"income_question_missing": "Indicate whether your income is sufficient",
			"backing_choice_missing":  "Choose an option to continue",
			"payment_plan_missing":    "Choose a payment option",
			"worker_type_missing":     "Indicate whether you are an employee or self-employed",
			"residency_missing":       "Indicate whether you are self-employed inside or outside the EU",

			"document_missing": "Attach",

			"file_too_large":     "The file exceeds the maximum size",
			"too_many_files":     "Too many files for this document",
			"total_size_too_big": "The attachments exceed the total size allowed",
		},
	},
}
