package gpapi

import (
	"encoding/json"
	"strings"

	"github.com/cardflow/gpapi/gpapi/models"
	"github.com/cardflow/gpapi/internal/document"
	"github.com/cardflow/gpapi/internal/expiry"
)

// encodePaymentMethod builds the full payment_method sub-document used by
// /transactions: the variant branch followed by the cross-cutting fields.
func (c *Compiler) encodePaymentMethod(in *models.AuthorizationRequest, entry string) (*document.Document, error) {
	pm, err := c.encodeVariant(in, entry)
	if err != nil {
		return nil, err
	}

	if in.RequestMultiUseToken {
		pm.Set("storage_mode", "ON_SUCCESS")
	}

	if p, ok := in.PaymentMethod.(models.PinProtected); ok {
		if card := pm.Doc("card"); card != nil {
			card.Set("pin_block", opt(p.PINBlock()))
		}
	}

	switch m := in.PaymentMethod.(type) {
	case *models.CardData:
		c.encodeCardholder(pm, in, m.CardHolderName, m.ThreeDSecure)
	case *models.TokenizedCard:
		c.encodeCardholder(pm, in, m.CardHolderName, m.ThreeDSecure)
	case *models.DigitalWallet:
		c.encodeCardholder(pm, in, m.CardHolderName, nil)
	}

	if e, ok := in.PaymentMethod.(models.Encryptable); ok {
		pm.Set("encryption", encryption(e.Encryption()))
	}

	return pm, nil
}

// encodeVariant builds entry_mode, narrative, the variant's own fields and
// the token id. Exactly one variant branch runs.
func (c *Compiler) encodeVariant(in *models.AuthorizationRequest, entry string) (*document.Document, error) {
	pm := document.New().
		Set("entry_mode", entry).
		Set("narrative", opt(in.DynamicDescriptor))

	switch m := in.PaymentMethod.(type) {
	case *models.DigitalWallet:
		wallet, err := c.digitalWallet(in, m)
		if err != nil {
			return nil, err
		}
		pm.Set("digital_wallet", wallet)

	case *models.CardData:
		if m.Token == "" {
			pm.Set("card", cardDocument(in, m))
		} else {
			pm.Set("card", brandReference(in))
		}

	case *models.TokenizedCard:
		pm.Set("card", brandReference(in))

	case *models.TrackData:
		card, err := trackDocument(in, m)
		if err != nil {
			return nil, err
		}
		pm.Set("card", card)

	case *models.EBT:
		pm.Set("name", opt(m.CardHolderName))
		pm.Set("card", ebtDocument(m))

	case *models.ACHCheck:
		pm.Set("name", opt(m.CheckHolderName))
		pm.Set("bank_transfer", c.bankTransfer(m))

	case *models.AlternativePaymentMethod:
		pm.Set("name", opt(m.AccountHolderName))
		pm.Set("apm", document.New().
			Set("provider", opt(m.Provider)).
			Set("address_override_mode", opt(m.AddressOverrideMode)))

	case *models.BuyNowPayLater:
		if in.Customer != nil {
			pm.Set("name", in.Customer.FullName())
		}
		pm.Set("bnpl", document.New().
			Set("provider", opt(c.enums.BNPLProvider(m.Provider))))

	default:
		return nil, unsupported(in.TransactionType, in.PaymentMethod, "")
	}

	if t, ok := in.PaymentMethod.(models.Tokenizable); ok {
		pm.Set("id", opt(t.TokenValue()))
	}

	return pm, nil
}

// cardDocument is the card sub-document of a keyed card. Tokenize and Verify
// go to /payment-methods style endpoints that reject cvv_indicator and
// funding.
func cardDocument(in *models.AuthorizationRequest, m *models.CardData) *document.Document {
	card := document.New().
		Set("number", opt(m.Number)).
		Set("expiry_month", expiryMonth(m.ExpMonth)).
		Set("expiry_year", expiryYear(m.ExpYear)).
		Set("tag", opt(in.TagData)).
		Set("cvv", opt(m.Cvn)).
		Set("avs_address", avsAddress(in)).
		Set("avs_postal_code", avsPostalCode(in)).
		Set("authcode", opt(in.OfflineAuthCode)).
		Set("brand_reference", opt(in.CardBrandTransactionID)).
		Set("chip_condition", chipCondition(in.ChipCondition))

	if in.TransactionType != models.Tokenize && in.TransactionType != models.Verify {
		card.Set("cvv_indicator", cvvIndicator(m.CvnPresenceIndicator))
		card.Set("funding", funding(m.Funding))
	}

	return card
}

// brandReference replaces the card once a token exists, so the PAN is never
// sent alongside it.
func brandReference(in *models.AuthorizationRequest) *document.Document {
	return document.New().
		Set("brand_reference", opt(in.CardBrandTransactionID)).
		OrNil()
}

func trackDocument(in *models.AuthorizationRequest, m *models.TrackData) (*document.Document, error) {
	card := document.New().
		Set("track", opt(m.Value)).
		Set("tag", opt(in.TagData)).
		Set("avs_address", avsAddress(in)).
		Set("avs_postal_code", avsPostalCode(in)).
		Set("authcode", opt(in.OfflineAuthCode))

	if in.TransactionType == models.Sale || in.TransactionType == models.Refund {
		if m.Value == "" {
			card.Set("number", opt(m.Pan))
			if m.Expiry != "" {
				mm, yy, err := expiry.SplitYYMM(m.Expiry)
				if err != nil {
					return nil, invalid("track expiry %q: %v", m.Expiry, err)
				}
				card.Set("expiry_month", mm)
				card.Set("expiry_year", yy)
			}
		}
		if in.TagData == "" {
			card.Set("chip_condition", chipCondition(in.ChipCondition))
		}
	}

	if in.TransactionType == models.Sale {
		card.Set("funding", funding(m.Funding))
	}

	return card, nil
}

func ebtDocument(m *models.EBT) *document.Document {
	return document.New().
		Set("number", opt(m.Number)).
		Set("expiry_month", expiryMonth(m.ExpMonth)).
		Set("expiry_year", expiryYear(m.ExpYear)).
		Set("track", opt(m.Track))
}

func (c *Compiler) digitalWallet(in *models.AuthorizationRequest, m *models.DigitalWallet) (*document.Document, error) {
	wallet := document.New()

	switch in.TransactionModifier {
	case models.EncryptedMobile:
		if m.Provider == models.WalletClickToPay {
			wallet.Set("payment_token", document.New().Set("data", opt(m.Token)))
			break
		}
		token := strings.TrimSpace(m.Token)
		if !strings.HasPrefix(token, "{") || !json.Valid([]byte(token)) {
			return nil, invalid("wallet payment token is not a JSON object")
		}
		wallet.Set("payment_token", json.RawMessage(token))

	case models.DecryptedMobile:
		wallet.
			Set("token", opt(m.Token)).
			Set("token_format", "CARD_NUMBER").
			Set("expiry_month", expiryMonth(m.ExpMonth)).
			Set("expiry_year", expiryYear(m.ExpYear)).
			Set("cryptogram", opt(m.Cryptogram)).
			Set("eci", opt(m.Eci))

	default:
		return nil, unsupported(in.TransactionType, m, "transaction modifier must say whether the wallet token is encrypted")
	}

	wallet.Set("provider", opt(c.enums.WalletProvider(m.Provider)))

	return wallet, nil
}

func (c *Compiler) bankTransfer(m *models.ACHCheck) *document.Document {
	bank := document.New().
		Set("code", opt(m.RoutingNumber)).
		Set("name", opt(m.BankName)).
		Set("address", addressDocument(m.BankAddress, true))

	return document.New().
		Set("account_number", opt(m.AccountNumber)).
		Set("account_type", opt(c.enums.AccountType(m.AccountType))).
		Set("check_reference", opt(m.CheckReference)).
		Set("sec_code", opt(m.SecCode)).
		Set("narrative", opt(m.MerchantNotes)).
		Set("bank", bank.OrNil())
}

// encodeCardholder adds the generic card fields: name, device fingerprint and
// the 3-D Secure authentication when present.
func (c *Compiler) encodeCardholder(pm *document.Document, in *models.AuthorizationRequest, name string, secure *models.ThreeDSecure) {
	pm.Set("name", opt(name))
	pm.Set("fingerprint_mode", fingerprint(in))

	if secure == nil {
		return
	}
	threeDS := document.New().Set("exempt_status", opt(secure.ExemptStatus))
	pm.Set("authentication", document.New().
		Set("id", opt(secure.ServerTransactionID)).
		Set("three_ds", []*document.Document{threeDS}))
}

// encryption emits KTB in preference to KSN, and nothing when neither is set.
func encryption(e *models.EncryptionData) *document.Document {
	if e == nil {
		return nil
	}

	var method, info string
	switch {
	case e.KTB != "":
		method, info = "KTB", e.KTB
	case e.KSN != "":
		method, info = "KSN", e.KSN
	default:
		return nil
	}

	return document.New().
		Set("version", opt(e.Version)).
		Set("method", method).
		Set("info", info)
}

func fingerprint(in *models.AuthorizationRequest) any {
	if in.Customer == nil {
		return nil
	}
	return opt(in.Customer.DeviceFingerPrint)
}

// AVS fields are sent as empty strings when there is no billing address.
func avsAddress(in *models.AuthorizationRequest) any {
	if in.BillingAddress == nil {
		return ""
	}
	return opt(in.BillingAddress.StreetAddress1)
}

func avsPostalCode(in *models.AuthorizationRequest) any {
	if in.BillingAddress == nil {
		return ""
	}
	return opt(in.BillingAddress.PostalCode)
}

func expiryMonth(m int) any {
	if m == 0 {
		return nil
	}
	return expiry.Month(m)
}

func expiryYear(y int) any {
	if y == 0 {
		return nil
	}
	return expiry.Year(y)
}

func cvvIndicator(v models.CvnPresenceIndicator) any {
	switch v {
	case models.CvnUnset:
		return nil
	case models.CvnPresent:
		return "PRESENT"
	case models.CvnIllegible:
		return "ILLEGIBLE"
	case models.CvnNotOnCard:
		return "NOT_ON_CARD"
	default:
		return "NOT_PRESENT"
	}
}

func chipCondition(v models.ChipCondition) any {
	switch v {
	case models.ChipFailPreviousSuccess:
		return "PREV_SUCCESS"
	case models.ChipFailPreviousFail:
		return "PREV_FAILED"
	default:
		return nil
	}
}

func funding(f models.Funding) string {
	if f == models.FundingDebit {
		return "DEBIT"
	}
	return "CREDIT"
}
