package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuthorizationRequest is the canonical, backend agnostic transaction request.
// Callers build it; the compiler only reads it.
type AuthorizationRequest struct {
	TransactionType     TransactionType     `json:"-"`
	TransactionModifier TransactionModifier `json:"-"`
	PaymentMethod       PaymentMethod       `json:"-"`

	Amount              *decimal.Decimal `json:"amount,omitempty"`
	Currency            string           `json:"currency,omitempty"`
	ClientTransactionID string           `json:"client_transaction_id,omitempty"`
	Description         string           `json:"description,omitempty"`
	DynamicDescriptor   string           `json:"dynamic_descriptor,omitempty"`
	CustomerIPAddress   string           `json:"ip_address,omitempty"`

	BillingAddress  *Address     `json:"billing_address,omitempty"`
	ShippingAddress *Address     `json:"shipping_address,omitempty"`
	CustomerID      string       `json:"customer_id,omitempty"`
	Customer        *Customer    `json:"customer,omitempty"`
	HomePhone       *PhoneNumber `json:"home_phone,omitempty"`
	WorkPhone       *PhoneNumber `json:"work_phone,omitempty"`
	MobilePhone     *PhoneNumber `json:"mobile_phone,omitempty"`
	ShippingPhone   *PhoneNumber `json:"shipping_phone,omitempty"`

	StoredCredential *StoredCredential `json:"stored_credential,omitempty"`
	Fraud            *FraudConfig      `json:"fraud,omitempty"`
	LineItems        []LineItem        `json:"line_items,omitempty"`
	OrderDetails     *OrderDetails     `json:"order_details,omitempty"`
	ShippingMethod   string            `json:"shipping_method,omitempty"`
	PayLink          *PayLinkData      `json:"pay_link,omitempty"`
	DccRate          *DccRateData      `json:"dcc_rate,omitempty"`

	RequestMultiUseToken bool      `json:"request_multi_use_token,omitempty"`
	UsageMode            UsageMode `json:"usage_mode,omitempty"`
	MultiCapture         bool      `json:"multi_capture,omitempty"`
	AllowPartialAuth     bool      `json:"allow_partial_auth,omitempty"`
	MaskedDataResponse   bool      `json:"masked_data_response,omitempty"`

	Gratuity          *decimal.Decimal `json:"gratuity,omitempty"`
	CashbackAmount    *decimal.Decimal `json:"cashback_amount,omitempty"`
	SurchargeAmount   *decimal.Decimal `json:"surcharge_amount,omitempty"`
	ConvenienceAmount *decimal.Decimal `json:"convenience_amount,omitempty"`
	ShippingAmount    *decimal.Decimal `json:"shipping_amount,omitempty"`
	ShippingDiscount  *decimal.Decimal `json:"shipping_discount,omitempty"`

	OfflineAuthCode        string        `json:"offline_auth_code,omitempty"`
	TagData                string        `json:"tag_data,omitempty"`
	ChipCondition          ChipCondition `json:"-"`
	CardBrandTransactionID string        `json:"card_brand_transaction_id,omitempty"`
	OrderID                string        `json:"order_id,omitempty"`
	PaymentLinkID          string        `json:"payment_link_id,omitempty"`
}

type Address struct {
	StreetAddress1 string `json:"street_address_1,omitempty"`
	StreetAddress2 string `json:"street_address_2,omitempty"`
	StreetAddress3 string `json:"street_address_3,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	PostalCode     string `json:"postal_code,omitempty"`
	CountryCode    string `json:"country_code,omitempty"`
}

type PhoneNumber struct {
	CountryCode string `json:"country_code,omitempty"`
	Number      string `json:"number,omitempty"`
}

type Customer struct {
	ID                string             `json:"id,omitempty"`
	FirstName         string             `json:"first_name,omitempty"`
	LastName          string             `json:"last_name,omitempty"`
	DateOfBirth       string             `json:"date_of_birth,omitempty"`
	Email             string             `json:"email,omitempty"`
	HomePhone         string             `json:"home_phone,omitempty"`
	MobilePhone       string             `json:"mobile_phone,omitempty"`
	Phone             *PhoneNumber       `json:"phone,omitempty"`
	DeviceFingerPrint string             `json:"device_fingerprint,omitempty"`
	Documents         []CustomerDocument `json:"-"`
}

// FullName joins first and last name with a single space.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

type CustomerDocument struct {
	Type      DocumentType `json:"-"`
	Reference string       `json:"reference,omitempty"`
	Issuer    string       `json:"issuer,omitempty"`
}

type StoredCredential struct {
	Initiator StoredCredentialInitiator `json:"-"`
	Type      StoredCredentialType      `json:"-"`
	Reason    StoredCredentialReason    `json:"-"`
	Sequence  StoredCredentialSequence  `json:"-"`
}

type FraudConfig struct {
	Mode  FraudFilterMode `json:"mode,omitempty"`
	Rules []FraudRule     `json:"rules,omitempty"`
}

type FraudRule struct {
	Key  string        `json:"key,omitempty"`
	Mode FraudRuleMode `json:"mode,omitempty"`
}

// LineItem is one product line of an order. Nil amounts count as zero.
type LineItem struct {
	ProductID        string           `json:"product_id,omitempty"`
	ProductName      string           `json:"product_name,omitempty"`
	Description      string           `json:"description,omitempty"`
	Quantity         *int             `json:"quantity,omitempty"`
	UnitPrice        *decimal.Decimal `json:"unit_price,omitempty"`
	TaxAmount        *decimal.Decimal `json:"tax_amount,omitempty"`
	DiscountAmount   *decimal.Decimal `json:"discount_amount,omitempty"`
	NetUnitAmount    *decimal.Decimal `json:"net_unit_amount,omitempty"`
	TaxPercentage    *decimal.Decimal `json:"tax_percentage,omitempty"`
	UnitCurrency     string           `json:"unit_currency,omitempty"`
	GiftCardCurrency string           `json:"gift_card_currency,omitempty"`
	URL              string           `json:"url,omitempty"`
	ImageURL         string           `json:"image_url,omitempty"`
}

type OrderDetails struct {
	Description     string           `json:"description,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	InsuranceAmount *decimal.Decimal `json:"insurance_amount,omitempty"`
	HandlingAmount  *decimal.Decimal `json:"handling_amount,omitempty"`
	HasInsurance    *bool            `json:"has_insurance,omitempty"`
}

type PayLinkData struct {
	Type                  PayLinkType      `json:"type,omitempty"`
	UsageMode             UsageMode        `json:"usage_mode,omitempty"`
	UsageLimit            *int             `json:"usage_limit,omitempty"`
	Name                  string           `json:"name,omitempty"`
	Shippable             bool             `json:"shippable,omitempty"`
	ShippingAmount        *decimal.Decimal `json:"shipping_amount,omitempty"`
	ExpirationDate        *time.Time       `json:"expiration_date,omitempty"`
	Images                []string         `json:"images,omitempty"`
	AllowedPaymentMethods []string         `json:"allowed_payment_methods,omitempty"`
	CancelURL             string           `json:"cancel_url,omitempty"`
	ReturnURL             string           `json:"return_url,omitempty"`
	StatusUpdateURL       string           `json:"status_update_url,omitempty"`
}

type DccRateData struct {
	DccID string `json:"dcc_id,omitempty"`
}
