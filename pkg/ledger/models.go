package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusModel is the result of pinging the API.
type StatusModel struct {
	UserName             string     `json:"userName,omitempty"             yaml:"user_name,omitempty"`
	AccountName          string     `json:"accountName,omitempty"          yaml:"account_name,omitempty"`
	AccountCompanyID     *uuid.UUID `json:"accountCompanyId,omitempty"     yaml:"account_company_id,omitempty"`
	UserID               *uuid.UUID `json:"userId,omitempty"               yaml:"user_id,omitempty"`
	GroupKey             *uuid.UUID `json:"groupKey,omitempty"             yaml:"group_key,omitempty"`
	LoggedIn             bool       `json:"loggedIn"                       yaml:"logged_in"`
	ErrorMessage         string     `json:"errorMessage,omitempty"         yaml:"error_message,omitempty"`
	Roles                []string   `json:"roles,omitempty"                yaml:"roles,omitempty"`
	LastLoggedIn         *time.Time `json:"lastLoggedIn,omitempty"         yaml:"last_logged_in,omitempty"`
	APIKeyID             *uuid.UUID `json:"apiKeyId,omitempty"             yaml:"api_key_id,omitempty"`
	UserStatus           string     `json:"userStatus,omitempty"           yaml:"user_status,omitempty"`
	Environment          string     `json:"environment,omitempty"          yaml:"environment,omitempty"`
	Version              string     `json:"version,omitempty"              yaml:"version,omitempty"`
	OnboardingScheduled  *time.Time `json:"onboardingScheduled,omitempty"  yaml:"onboarding_scheduled,omitempty"`
	ErpConnectionPending bool       `json:"erpConnectionPending,omitempty" yaml:"erp_connection_pending,omitempty"`
}

// CompanyModel represents a customer, vendor, or the account's own company.
type CompanyModel struct {
	CompanyID           uuid.UUID      `json:"companyId,omitempty"           yaml:"company_id,omitempty"`
	GroupKey            uuid.UUID      `json:"groupKey,omitempty"            yaml:"group_key,omitempty"`
	ErpKey              string         `json:"erpKey,omitempty"              yaml:"erp_key,omitempty"`
	CompanyName         string         `json:"companyName"                   yaml:"company_name"`
	CompanyType         string         `json:"companyType,omitempty"         yaml:"company_type,omitempty"`
	CompanyStatus       string         `json:"companyStatus,omitempty"       yaml:"company_status,omitempty"`
	ParentCompanyID     *uuid.UUID     `json:"parentCompanyId,omitempty"     yaml:"parent_company_id,omitempty"`
	PrimaryContactID    *uuid.UUID     `json:"primaryContactId,omitempty"    yaml:"primary_contact_id,omitempty"`
	IsActive            bool           `json:"isActive"                      yaml:"is_active"`
	DefaultCurrencyCode string         `json:"defaultCurrencyCode,omitempty" yaml:"default_currency_code,omitempty"`
	CompanyLogoURL      string         `json:"companyLogoUrl,omitempty"      yaml:"company_logo_url,omitempty"`
	Address1            string         `json:"address1,omitempty"            yaml:"address1,omitempty"`
	City                string         `json:"city,omitempty"                yaml:"city,omitempty"`
	StateRegion         string         `json:"stateRegion,omitempty"         yaml:"state_region,omitempty"`
	PostalCode          string         `json:"postalCode,omitempty"          yaml:"postal_code,omitempty"`
	Country             string         `json:"country,omitempty"             yaml:"country,omitempty"`
	PhoneNumber         string         `json:"phoneNumber,omitempty"         yaml:"phone_number,omitempty"`
	TaxID               string         `json:"taxId,omitempty"               yaml:"tax_id,omitempty"`
	Created             *time.Time     `json:"created,omitempty"             yaml:"created,omitempty"`
	Modified            *time.Time     `json:"modified,omitempty"            yaml:"modified,omitempty"`
	AppEnrollmentID     *uuid.UUID     `json:"appEnrollmentId,omitempty"     yaml:"app_enrollment_id,omitempty"`
	Contacts            []ContactModel `json:"contacts,omitempty"            yaml:"contacts,omitempty"`
}

// ContactModel is a person at a company.
type ContactModel struct {
	ContactID       uuid.UUID  `json:"contactId,omitempty"       yaml:"contact_id,omitempty"`
	CompanyID       uuid.UUID  `json:"companyId"                 yaml:"company_id"`
	GroupKey        uuid.UUID  `json:"groupKey,omitempty"        yaml:"group_key,omitempty"`
	ErpKey          string     `json:"erpKey,omitempty"          yaml:"erp_key,omitempty"`
	ContactName     string     `json:"contactName,omitempty"     yaml:"contact_name,omitempty"`
	Title           string     `json:"title,omitempty"           yaml:"title,omitempty"`
	RoleCode        string     `json:"roleCode,omitempty"        yaml:"role_code,omitempty"`
	EmailAddress    string     `json:"emailAddress,omitempty"    yaml:"email_address,omitempty"`
	Phone           string     `json:"phone,omitempty"           yaml:"phone,omitempty"`
	IsActive        bool       `json:"isActive"                  yaml:"is_active"`
	Created         *time.Time `json:"created,omitempty"         yaml:"created,omitempty"`
	Modified        *time.Time `json:"modified,omitempty"        yaml:"modified,omitempty"`
	AppEnrollmentID *uuid.UUID `json:"appEnrollmentId,omitempty" yaml:"app_enrollment_id,omitempty"`
}

// InvoiceModel is an accounts receivable or payable document.
type InvoiceModel struct {
	InvoiceID                uuid.UUID          `json:"invoiceId,omitempty"         yaml:"invoice_id,omitempty"`
	GroupKey                 uuid.UUID          `json:"groupKey,omitempty"          yaml:"group_key,omitempty"`
	CompanyID                uuid.UUID          `json:"companyId"                   yaml:"company_id"`
	CustomerID               uuid.UUID          `json:"customerId"                  yaml:"customer_id"`
	ErpKey                   string             `json:"erpKey,omitempty"            yaml:"erp_key,omitempty"`
	PurchaseOrderCode        string             `json:"purchaseOrderCode,omitempty" yaml:"purchase_order_code,omitempty"`
	ReferenceCode            string             `json:"referenceCode,omitempty"     yaml:"reference_code,omitempty"`
	InvoiceTypeCode          string             `json:"invoiceTypeCode,omitempty"   yaml:"invoice_type_code,omitempty"`
	InvoiceStatusCode        string             `json:"invoiceStatusCode,omitempty" yaml:"invoice_status_code,omitempty"`
	CurrencyCode             string             `json:"currencyCode,omitempty"      yaml:"currency_code,omitempty"`
	TotalAmount              decimal.Decimal    `json:"totalAmount"                 yaml:"total_amount"`
	SalesTaxAmount           decimal.Decimal    `json:"salesTaxAmount"              yaml:"sales_tax_amount"`
	DiscountAmount           decimal.Decimal    `json:"discountAmount"              yaml:"discount_amount"`
	OutstandingBalanceAmount decimal.Decimal    `json:"outstandingBalanceAmount"    yaml:"outstanding_balance_amount"`
	InvoiceDate              string             `json:"invoiceDate,omitempty"       yaml:"invoice_date,omitempty"`
	PaymentDueDate           string             `json:"paymentDueDate,omitempty"    yaml:"payment_due_date,omitempty"`
	PostingDate              string             `json:"postingDate,omitempty"       yaml:"posting_date,omitempty"`
	InvoiceClosedDate        string             `json:"invoiceClosedDate,omitempty" yaml:"invoice_closed_date,omitempty"`
	IsVoided                 bool               `json:"isVoided"                    yaml:"is_voided"`
	InDispute                bool               `json:"inDispute"                   yaml:"in_dispute"`
	Created                  *time.Time         `json:"created,omitempty"           yaml:"created,omitempty"`
	Modified                 *time.Time         `json:"modified,omitempty"          yaml:"modified,omitempty"`
	AppEnrollmentID          *uuid.UUID         `json:"appEnrollmentId,omitempty"   yaml:"app_enrollment_id,omitempty"`
	Lines                    []InvoiceLineModel `json:"lines,omitempty"             yaml:"lines,omitempty"`
}

// InvoiceLineModel is one line item on an invoice.
type InvoiceLineModel struct {
	InvoiceLineID   uuid.UUID       `json:"invoiceLineId,omitempty"   yaml:"invoice_line_id,omitempty"`
	InvoiceID       uuid.UUID       `json:"invoiceId,omitempty"       yaml:"invoice_id,omitempty"`
	LineNumber      string          `json:"lineNumber,omitempty"      yaml:"line_number,omitempty"`
	ProductCode     string          `json:"productCode,omitempty"     yaml:"product_code,omitempty"`
	Description     string          `json:"description,omitempty"     yaml:"description,omitempty"`
	UnitMeasureCode string          `json:"unitMeasureCode,omitempty" yaml:"unit_measure_code,omitempty"`
	UnitPrice       decimal.Decimal `json:"unitPrice"                 yaml:"unit_price"`
	Quantity        decimal.Decimal `json:"quantity"                  yaml:"quantity"`
	TotalAmount     decimal.Decimal `json:"totalAmount"               yaml:"total_amount"`
}

// PaymentModel is a payment received or sent.
type PaymentModel struct {
	PaymentID       uuid.UUID       `json:"paymentId,omitempty"       yaml:"payment_id,omitempty"`
	GroupKey        uuid.UUID       `json:"groupKey,omitempty"        yaml:"group_key,omitempty"`
	CompanyID       uuid.UUID       `json:"companyId"                 yaml:"company_id"`
	ErpKey          string          `json:"erpKey,omitempty"          yaml:"erp_key,omitempty"`
	PaymentType     string          `json:"paymentType,omitempty"     yaml:"payment_type,omitempty"`
	TenderType      string          `json:"tenderType,omitempty"      yaml:"tender_type,omitempty"`
	IsOpen          bool            `json:"isOpen"                    yaml:"is_open"`
	MemoText        string          `json:"memoText,omitempty"        yaml:"memo_text,omitempty"`
	PaymentDate     string          `json:"paymentDate,omitempty"     yaml:"payment_date,omitempty"`
	PostDate        string          `json:"postDate,omitempty"        yaml:"post_date,omitempty"`
	PaymentAmount   decimal.Decimal `json:"paymentAmount"             yaml:"payment_amount"`
	UnappliedAmount decimal.Decimal `json:"unappliedAmount"           yaml:"unapplied_amount"`
	CurrencyCode    string          `json:"currencyCode,omitempty"    yaml:"currency_code,omitempty"`
	ReferenceCode   string          `json:"referenceCode,omitempty"   yaml:"reference_code,omitempty"`
	IsVoided        bool            `json:"isVoided"                  yaml:"is_voided"`
	InDispute       bool            `json:"inDispute"                 yaml:"in_dispute"`
	Created         *time.Time      `json:"created,omitempty"         yaml:"created,omitempty"`
	Modified        *time.Time      `json:"modified,omitempty"        yaml:"modified,omitempty"`
	AppEnrollmentID *uuid.UUID      `json:"appEnrollmentId,omitempty" yaml:"app_enrollment_id,omitempty"`
}

// AttachmentModel describes a file attached to a record.
type AttachmentModel struct {
	AttachmentID       uuid.UUID  `json:"attachmentId,omitempty"       yaml:"attachment_id,omitempty"`
	GroupKey           uuid.UUID  `json:"groupKey,omitempty"           yaml:"group_key,omitempty"`
	TableKey           string     `json:"tableKey,omitempty"           yaml:"table_key,omitempty"`
	ObjectKey          uuid.UUID  `json:"objectKey,omitempty"          yaml:"object_key,omitempty"`
	FileName           string     `json:"fileName,omitempty"           yaml:"file_name,omitempty"`
	FileExt            string     `json:"fileExt,omitempty"            yaml:"file_ext,omitempty"`
	AttachmentType     string     `json:"attachmentType,omitempty"     yaml:"attachment_type,omitempty"`
	IsArchived         bool       `json:"isArchived"                   yaml:"is_archived"`
	OriginAttachmentID *uuid.UUID `json:"originAttachmentId,omitempty" yaml:"origin_attachment_id,omitempty"`
	ViewInternal       bool       `json:"viewInternal"                 yaml:"view_internal"`
	ViewExternal       bool       `json:"viewExternal"                 yaml:"view_external"`
	ErpKey             string     `json:"erpKey,omitempty"             yaml:"erp_key,omitempty"`
	Created            *time.Time `json:"created,omitempty"            yaml:"created,omitempty"`
	CreatedUserID      *uuid.UUID `json:"createdUserId,omitempty"      yaml:"created_user_id,omitempty"`
}

// WebhookModel is a subscription that receives change notifications.
type WebhookModel struct {
	WebhookID          uuid.UUID  `json:"webhookId,omitempty"          yaml:"webhook_id,omitempty"`
	GroupKey           uuid.UUID  `json:"groupKey,omitempty"           yaml:"group_key,omitempty"`
	Name               string     `json:"name"                         yaml:"name"`
	StatusCode         string     `json:"statusCode,omitempty"         yaml:"status_code,omitempty"`
	StatusMessage      string     `json:"statusMessage,omitempty"      yaml:"status_message,omitempty"`
	ClientSecret       string     `json:"clientSecret,omitempty"       yaml:"client_secret,omitempty"`
	RequestContentType string     `json:"requestContentType,omitempty" yaml:"request_content_type,omitempty"`
	CallbackHTTPMethod string     `json:"callbackHttpMethod,omitempty" yaml:"callback_http_method,omitempty"`
	CallbackURL        string     `json:"callbackUrl"                  yaml:"callback_url"`
	ExpirationDate     *time.Time `json:"expirationDate,omitempty"     yaml:"expiration_date,omitempty"`
	RetryCount         int        `json:"retryCount"                   yaml:"retry_count"`
	ProcessedCount     *int       `json:"processedCount,omitempty"     yaml:"processed_count,omitempty"`
	Created            *time.Time `json:"created,omitempty"            yaml:"created,omitempty"`
	Modified           *time.Time `json:"modified,omitempty"           yaml:"modified,omitempty"`
}

// SyncSubmitModel requests a new sync run for an app enrollment.
type SyncSubmitModel struct {
	AppEnrollmentID uuid.UUID `json:"appEnrollmentId" yaml:"app_enrollment_id"`
}

// SyncRequestModel tracks one sync run.
type SyncRequestModel struct {
	SyncRequestID        uuid.UUID  `json:"syncRequestId,omitempty"        yaml:"sync_request_id,omitempty"`
	GroupKey             uuid.UUID  `json:"groupKey,omitempty"             yaml:"group_key,omitempty"`
	StatusCode           string     `json:"statusCode,omitempty"           yaml:"status_code,omitempty"`
	ProcessResultMessage string     `json:"processResultMessage,omitempty" yaml:"process_result_message,omitempty"`
	AppEnrollmentID      *uuid.UUID `json:"appEnrollmentId,omitempty"      yaml:"app_enrollment_id,omitempty"`
	Created              *time.Time `json:"created,omitempty"              yaml:"created,omitempty"`
	Modified             *time.Time `json:"modified,omitempty"             yaml:"modified,omitempty"`
}

// ActionResultModel is returned by operations that only report success.
type ActionResultModel struct {
	Messages []string `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// DeleteResult is returned by deletes.
type DeleteResult = ActionResultModel
