package gpapi

import (
	"github.com/cardflow/gpapi/gpapi/models"
	"github.com/cardflow/gpapi/internal/document"
	"github.com/cardflow/gpapi/internal/pan"
)

// assemblePayer builds the payer sub-document for ACH, alternative payment
// and BNPL requests. It returns nil when nothing is known about the payer.
func (c *Compiler) assemblePayer(in *models.AuthorizationRequest) *document.Document {
	payer := document.New().Set("reference", payerReference(in))

	switch in.PaymentMethod.(type) {
	case *models.ACHCheck:
		payer.Set("billing_address", addressDocument(in.BillingAddress, false))
		var home, mobile string
		if cust := in.Customer; cust != nil {
			payer.Set("name", cust.FullName())
			payer.Set("date_of_birth", opt(cust.DateOfBirth))
			home, mobile = cust.HomePhone, cust.MobilePhone
		}
		payer.Set("landline_phone", phoneDigits(home, in.HomePhone))
		payer.Set("mobile_phone", phoneDigits(mobile, in.MobilePhone))

	case *models.AlternativePaymentMethod:
		payer.Set("home_phone", phoneDocument(in.HomePhone))
		payer.Set("work_phone", phoneDocument(in.WorkPhone))

	case *models.BuyNowPayLater:
		cust := in.Customer
		if cust == nil {
			break
		}
		payer.
			Set("email", opt(cust.Email)).
			Set("date_of_birth", opt(cust.DateOfBirth))

		billing := addressDocument(in.BillingAddress, false)
		if billing == nil {
			billing = document.New()
		}
		billing.
			Set("first_name", cust.FirstName).
			Set("last_name", cust.LastName)
		payer.Set("billing_address", billing)

		payer.Set("contact_phone", phoneDocument(cust.Phone))
		payer.Set("documents", c.identityDocuments(cust.Documents))
	}

	return payer.OrNil()
}

// payerReference prefers the explicit customer id over the customer record.
func payerReference(in *models.AuthorizationRequest) any {
	if in.CustomerID != "" {
		return in.CustomerID
	}
	if in.Customer != nil {
		return opt(in.Customer.ID)
	}
	return nil
}

func (c *Compiler) identityDocuments(docs []models.CustomerDocument) []*document.Document {
	var out []*document.Document
	for _, d := range docs {
		out = append(out, document.New().
			Set("type", opt(c.enums.DocumentType(d.Type))).
			Set("reference", opt(d.Reference)).
			Set("issuer", opt(d.Issuer)))
	}
	return out
}

// phoneDigits takes the customer's phone as digits, falling back to the
// structured request phone.
func phoneDigits(phone string, fallback *models.PhoneNumber) any {
	if d := pan.Digits(phone); d != "" {
		return d
	}
	if fallback == nil {
		return nil
	}
	return opt(pan.Digits(fallback.CountryCode + fallback.Number))
}

func phoneDocument(p *models.PhoneNumber) *document.Document {
	if p == nil {
		return nil
	}
	return document.New().
		Set("country_code", opt(p.CountryCode)).
		Set("subscriber_number", opt(p.Number)).
		OrNil()
}

// addressDocument maps an address to GP-API's line_N layout. Bank and
// shipping addresses carry a third street line.
func addressDocument(a *models.Address, withLine3 bool) *document.Document {
	if a == nil {
		return nil
	}
	d := document.New().
		Set("line_1", opt(a.StreetAddress1)).
		Set("line_2", opt(a.StreetAddress2))
	if withLine3 {
		d.Set("line_3", opt(a.StreetAddress3))
	}
	return d.
		Set("city", opt(a.City)).
		Set("postal_code", opt(a.PostalCode)).
		Set("state", opt(a.State)).
		Set("country", opt(a.CountryCode)).
		OrNil()
}
