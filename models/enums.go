package models

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodOther    PaymentMethod = "OTHER"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusIssued    InvoiceStatus = "ISSUED"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

type TaxReportType string

const (
	TaxReportTypeIVA  TaxReportType = "IVA"
	TaxReportTypeIRPF TaxReportType = "IRPF"
	TaxReportTypeIS   TaxReportType = "IS"
)

type TaxReportStatus string

const (
	TaxReportStatusDraft     TaxReportStatus = "DRAFT"
	TaxReportStatusSubmitted TaxReportStatus = "SUBMITTED"
	TaxReportStatusPaid      TaxReportStatus = "PAID"
)

type AccountPlanType string

const (
	AccountPlanTypeAsset     AccountPlanType = "ASSET"
	AccountPlanTypeLiability AccountPlanType = "LIABILITY"
	AccountPlanTypeEquity    AccountPlanType = "EQUITY"
	AccountPlanTypeIncome    AccountPlanType = "INCOME"
	AccountPlanTypeExpense   AccountPlanType = "EXPENSE"
)

type UserCompanyRole string

const (
	UserCompanyRoleAdmin      UserCompanyRole = "ADMIN"
	UserCompanyRoleAccountant UserCompanyRole = "ACCOUNTANT"
)
