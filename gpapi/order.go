package gpapi

import (
	"strconv"

	"github.com/cardflow/gpapi/gpapi/models"
	"github.com/cardflow/gpapi/internal/document"
	"github.com/shopspring/decimal"
)

// assembleOrder merges shipping and line item details into order, which may
// be nil or already hold the order reference.
func (c *Compiler) assembleOrder(in *models.AuthorizationRequest, order *document.Document) *document.Document {
	if order == nil {
		order = document.New()
	}

	_, isAPM := in.PaymentMethod.(*models.AlternativePaymentMethod)
	if d := in.OrderDetails; d != nil {
		order.Set("description", opt(d.Description))
		if !isAPM {
			order.Set("amount", toNumeric(d.Amount))
		}
	}

	shipping := addressDocument(in.ShippingAddress, true)
	order.Set("shipping_address", shipping)
	order.Set("shipping_phone", phoneDocument(in.ShippingPhone))

	switch in.PaymentMethod.(type) {
	case *models.AlternativePaymentMethod:
		apmItems(in, order)

	case *models.BuyNowPayLater:
		order.Set("shipping_method", opt(in.ShippingMethod))
		if len(in.LineItems) > 0 {
			order.Set("items", bnplItems(in.LineItems))
		}
		if cust := in.Customer; cust != nil {
			if shipping == nil {
				shipping = document.New()
			}
			shipping.
				Set("first_name", opt(cust.FirstName)).
				Set("last_name", opt(cust.LastName))
		}
	}

	order.Set("shipping_address", shipping.OrNil())

	return order.OrNil()
}

// apmItems writes the item list and totals for an alternative payment order.
// The order amount is always recomputed, with or without items, and the
// caller's order amount is never sent. Missing amounts count as zero.
func apmItems(in *models.AuthorizationRequest, order *document.Document) {
	var (
		items    []*document.Document
		itemsSum = decimal.Zero
		taxSum   = decimal.Zero
	)
	for _, li := range in.LineItems {
		qty := quantity(li.Quantity)
		tax := orZero(li.TaxAmount)
		unit := orZero(li.UnitPrice)
		amount := unit.Mul(decimal.NewFromInt(int64(qty)))

		items = append(items, document.New().
			Set("reference", opt(li.ProductID)).
			Set("label", opt(li.ProductName)).
			Set("description", opt(li.Description)).
			Set("quantity", qty).
			Set("unit_amount", numeric(unit)).
			Set("unit_currency", opt(li.UnitCurrency)).
			Set("tax_amount", numeric(tax)).
			Set("amount", numeric(amount)))

		itemsSum = itemsSum.Add(amount)
		taxSum = taxSum.Add(tax)
	}

	var insurance, handling *decimal.Decimal
	if d := in.OrderDetails; d != nil {
		insurance, handling = d.InsuranceAmount, d.HandlingAmount
		if d.HasInsurance != nil {
			order.Set("insurance_offered", yesNo(*d.HasInsurance))
		}
	}

	total := itemsSum.
		Add(taxSum).
		Add(orZero(handling)).
		Add(orZero(insurance)).
		Add(orZero(in.ShippingAmount))

	order.
		Set("tax_amount", numeric(taxSum)).
		Set("item_amount", numeric(itemsSum)).
		Set("shipping_amount", toNumeric(in.ShippingAmount)).
		Set("shipping_discount", toNumeric(in.ShippingDiscount)).
		Set("insurance_amount", toNumeric(insurance)).
		Set("handling_amount", toNumeric(handling)).
		Set("amount", numeric(total)).
		Set("currency", opt(in.Currency)).
		Set("items", items)
}

func bnplItems(lines []models.LineItem) []*document.Document {
	var items []*document.Document
	for _, li := range lines {
		qty := quantity(li.Quantity)
		unit := orZero(li.UnitPrice)

		items = append(items, document.New().
			Set("reference", opt(li.ProductID)).
			Set("label", opt(li.ProductName)).
			Set("description", opt(li.Description)).
			Set("quantity", strconv.Itoa(qty)).
			Set("unit_amount", numeric(unit)).
			Set("total_amount", numeric(unit.Mul(decimal.NewFromInt(int64(qty))))).
			Set("tax_amount", numeric(orZero(li.TaxAmount))).
			Set("discount_amount", zeroOrNumeric(li.DiscountAmount)).
			Set("tax_percentage", zeroOrNumeric(li.TaxPercentage)).
			Set("net_unit_amount", numeric(orZero(li.NetUnitAmount))).
			Set("gift_card_currency", opt(li.GiftCardCurrency)).
			Set("url", opt(li.URL)).
			Set("image_url", opt(li.ImageURL)))
	}
	return items
}

// zeroOrNumeric sends a bare "0" for missing or zero amounts.
func zeroOrNumeric(d *decimal.Decimal) string {
	if d == nil || d.IsZero() {
		return "0"
	}
	return numeric(*d)
}

func quantity(q *int) int {
	if q == nil {
		return 0
	}
	return *q
}
