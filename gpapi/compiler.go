// Package gpapi compiles canonical authorization requests into GP-API wire
// requests.
package gpapi

import (
	"fmt"
	"net/http"

	"github.com/cardflow/gpapi/gpapi/models"
	"github.com/cardflow/gpapi/internal/document"
	"github.com/cardflow/gpapi/internal/emv"
	"github.com/cardflow/gpapi/internal/enummap"
	"github.com/cardflow/gpapi/internal/pan"
	"golang.org/x/exp/slog"
)

// Compiler turns an AuthorizationRequest into a WireRequest. It holds only
// configuration and stateless collaborators and is safe for concurrent use.
type Compiler struct {
	config *Config
	logger *slog.Logger
	refs   ReferenceGenerator
	tags   emv.Parser
	enums  enummap.Mapper
}

type Option func(*Compiler)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

func WithReferenceGenerator(g ReferenceGenerator) Option {
	return func(c *Compiler) {
		c.refs = g
	}
}

func WithTagParser(p emv.Parser) Option {
	return func(c *Compiler) {
		c.tags = p
	}
}

func WithEnumMapper(m enummap.Mapper) Option {
	return func(c *Compiler) {
		c.enums = m
	}
}

func NewCompiler(config *Config, opts ...Option) *Compiler {
	if config == nil {
		config = DefaultConfig()
	}

	c := &Compiler{
		config: config,
		logger: slog.Default(),
		refs:   UUIDGenerator{},
		tags:   emv.NewParser(),
		enums:  enummap.New(),
	}
	for _, o := range opts {
		o(c)
	}
	c.logger = c.logger.With(slog.String("component", "gpapi"))

	return c
}

// Compile routes the request by transaction type and returns exactly one
// wire request. On error the returned WireRequest is the zero value.
func (c *Compiler) Compile(in *models.AuthorizationRequest) (WireRequest, error) {
	if in == nil {
		return WireRequest{}, invalid("nil request")
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return WireRequest{}, invalid("amount %s is negative", in.Amount)
	}

	entry, err := entryMode(c.config.Channel, in, c.tags)
	if err != nil {
		return WireRequest{}, err
	}

	var (
		path string
		body *document.Document
	)
	switch {
	case in.TransactionType == models.Tokenize:
		path, body, err = c.tokenize(in, false)
	case in.TransactionType == models.DccRateLookup:
		path, body, err = c.dccRateLookup(in, entry)
	case in.TransactionType == models.Verify:
		path, body, err = c.verify(in, entry)
	case in.TransactionType == models.Create && in.PayLink != nil:
		path, body = "/links", c.payLink(in)
	default:
		path, body, err = c.transaction(in, entry)
	}
	if err != nil {
		return WireRequest{}, err
	}

	raw, err := body.MarshalJSON()
	if err != nil {
		return WireRequest{}, fmt.Errorf("%w: encoding body: %w", ErrInvalidRequest, err)
	}

	wr := WireRequest{
		Verb:     http.MethodPost,
		Endpoint: c.config.merchantURL() + path,
		Body:     raw,
	}

	c.logger.Debug("compiled request",
		slog.String("type", in.TransactionType.String()),
		slog.String("method", methodName(in.PaymentMethod)),
		slog.String("endpoint", wr.Endpoint),
		slog.String("entry_mode", entry),
		slog.String("pan", pan.Mask(primaryAccountNumber(in.PaymentMethod))),
	)

	return wr, nil
}

// tokenize stores a card at /payment-methods. Verify reuses it, adding the
// device fingerprint, when a multi-use token is requested for an untokenized
// card.
func (c *Compiler) tokenize(in *models.AuthorizationRequest, withFingerprint bool) (string, *document.Document, error) {
	var card *document.Document
	switch m := in.PaymentMethod.(type) {
	case *models.CardData:
		card = cardDocument(in, m)
	case *models.TrackData:
		var err error
		if card, err = trackDocument(in, m); err != nil {
			return "", nil, err
		}
	default:
		return "", nil, unsupported(in.TransactionType, in.PaymentMethod, "only card data can be tokenized")
	}

	body := document.New().
		Set("account_name", opt(c.config.TokenizationAccountName)).
		Set("reference", c.reference(in)).
		Set("usage_mode", opt(string(in.UsageMode)))
	if withFingerprint {
		body.Set("fingerprint_mode", fingerprint(in))
	}
	body.Set("card", card)

	return "/payment-methods", body, nil
}

func (c *Compiler) dccRateLookup(in *models.AuthorizationRequest, entry string) (string, *document.Document, error) {
	switch in.PaymentMethod.(type) {
	case *models.CardData, *models.TrackData, *models.TokenizedCard:
	default:
		return "", nil, unsupported(in.TransactionType, in.PaymentMethod, "")
	}

	pm, err := c.encodeVariant(in, entry)
	if err != nil {
		return "", nil, err
	}

	body := document.New().
		Set("account_name", opt(c.config.TransactionProcessingAccountName)).
		Set("channel", opt(string(c.config.Channel))).
		Set("reference", c.reference(in)).
		Set("amount", toNumeric(in.Amount)).
		Set("currency", opt(in.Currency)).
		Set("country", opt(c.config.Country)).
		Set("payment_method", pm)

	return "/currency-conversions", body, nil
}

func (c *Compiler) verify(in *models.AuthorizationRequest, entry string) (string, *document.Document, error) {
	var token string
	switch m := in.PaymentMethod.(type) {
	case *models.CardData:
		if m.Number == "" && m.Token == "" {
			return "", nil, unsupported(in.TransactionType, m, "card has neither a number nor a token")
		}
		token = m.Token
	case *models.TrackData:
		if m.Value == "" && m.Pan == "" && m.Token == "" {
			return "", nil, unsupported(in.TransactionType, m, "track data has no track, PAN or token")
		}
		token = m.Token
	case *models.TokenizedCard:
		if m.Token == "" {
			return "", nil, unsupported(in.TransactionType, m, "token is empty")
		}
		token = m.Token
	default:
		return "", nil, unsupported(in.TransactionType, in.PaymentMethod, "")
	}

	if in.RequestMultiUseToken && token == "" {
		return c.tokenize(in, true)
	}

	var pm *document.Document
	if token != "" {
		pm = document.New().
			Set("entry_mode", entry).
			Set("id", token)
	} else {
		var err error
		if pm, err = c.encodeVariant(in, entry); err != nil {
			return "", nil, err
		}
	}
	pm.Set("fingerprint_mode", fingerprint(in))

	body := document.New().
		Set("account_name", opt(c.config.TransactionProcessingAccountName)).
		Set("channel", opt(string(c.config.Channel))).
		Set("reference", c.reference(in)).
		Set("currency", opt(in.Currency)).
		Set("country", opt(c.config.Country)).
		Set("payment_method", pm)

	return "/verifications", body, nil
}

func (c *Compiler) payLink(in *models.AuthorizationRequest) *document.Document {
	link := in.PayLink

	var expires any
	if link.ExpirationDate != nil {
		expires = link.ExpirationDate.Format("2006-01-02")
	}

	transactions := document.New().
		Set("amount", toNumeric(in.Amount)).
		Set("channel", opt(string(c.config.Channel))).
		Set("currency", opt(in.Currency)).
		Set("country", opt(c.config.Country)).
		Set("allowed_payment_methods", link.AllowedPaymentMethods)

	notify := document.New().
		Set("cancel_url", opt(link.CancelURL)).
		Set("return_url", opt(link.ReturnURL)).
		Set("status_url", opt(link.StatusUpdateURL))

	return document.New().
		Set("account_name", opt(c.config.TransactionProcessingAccountName)).
		Set("type", opt(string(link.Type))).
		Set("usage_mode", opt(string(link.UsageMode))).
		Set("usage_limit", link.UsageLimit).
		Set("reference", c.reference(in)).
		Set("name", opt(link.Name)).
		Set("description", opt(in.Description)).
		Set("shippable", yesNo(link.Shippable)).
		Set("shipping_amount", toNumeric(link.ShippingAmount)).
		Set("expiration_date", expires).
		Set("status", "ACTIVE").
		Set("images", link.Images).
		Set("transactions", transactions).
		Set("notifications", notify.OrNil())
}

func (c *Compiler) transaction(in *models.AuthorizationRequest, entry string) (string, *document.Document, error) {
	pm, err := c.encodePaymentMethod(in, entry)
	if err != nil {
		return "", nil, err
	}

	kind := "SALE"
	if in.TransactionType == models.Refund {
		kind = "REFUND"
	}

	var authMode any
	if in.AllowPartialAuth {
		authMode = "PARTIAL"
	}

	body := document.New().
		Set("account_name", opt(c.config.TransactionProcessingAccountName)).
		Set("type", kind).
		Set("channel", opt(string(c.config.Channel))).
		Set("capture_mode", captureMode(in)).
		Set("authorization_mode", authMode).
		Set("amount", toNumeric(in.Amount)).
		Set("currency", opt(in.Currency)).
		Set("reference", c.reference(in)).
		Set("description", opt(in.Description)).
		Set("gratuity_amount", toNumeric(in.Gratuity)).
		Set("cashback_amount", toNumeric(in.CashbackAmount)).
		Set("surcharge_amount", toNumeric(in.SurchargeAmount)).
		Set("convenience_amount", toNumeric(in.ConvenienceAmount)).
		Set("country", opt(c.config.Country)).
		Set("ip_address", opt(in.CustomerIPAddress)).
		Set("currency_conversion", currencyConversion(in.DccRate)).
		Set("payment_method", pm).
		Set("risk_assessment", riskAssessment(in.Fraud))

	if in.PaymentLinkID != "" {
		body.Set("link", document.New().Set("id", in.PaymentLinkID))
	}

	if w, ok := in.PaymentMethod.(*models.DigitalWallet); ok && w.Provider == models.WalletClickToPay {
		body.Set("masked", yesNo(in.MaskedDataResponse))
	}

	var order *document.Document
	if in.OrderID != "" {
		order = document.New().Set("reference", in.OrderID)
	}

	switch m := in.PaymentMethod.(type) {
	case *models.ACHCheck:
		body.Set("payer", c.assemblePayer(in))
	case *models.AlternativePaymentMethod:
		body.Set("payer", c.assemblePayer(in))
		order = c.assembleOrder(in, order)
		body.Set("notifications", notifications(m.ReturnURL, m.StatusUpdateURL, m.CancelURL))
	case *models.BuyNowPayLater:
		body.Set("payer", c.assemblePayer(in))
		order = c.assembleOrder(in, order)
		body.Set("notifications", notifications(m.ReturnURL, m.StatusUpdateURL, m.CancelURL))
	}
	body.Set("order", order)

	if sc := in.StoredCredential; sc != nil {
		body.Set("initiator", opt(c.enums.Initiator(sc.Initiator)))
		body.Set("stored_credential", document.New().
			Set("model", opt(c.enums.CredentialType(sc.Type))).
			Set("reason", opt(c.enums.Reason(sc.Reason))).
			Set("sequence", opt(c.enums.Sequence(sc.Sequence))).
			OrNil())
	}

	return "/transactions", body, nil
}

func (c *Compiler) reference(in *models.AuthorizationRequest) string {
	if in.ClientTransactionID != "" {
		return in.ClientTransactionID
	}
	return c.refs.NewReference()
}

func currencyConversion(dcc *models.DccRateData) *document.Document {
	if dcc == nil {
		return nil
	}
	return document.New().Set("id", opt(dcc.DccID)).OrNil()
}

func notifications(returnURL, statusURL, cancelURL string) *document.Document {
	return document.New().
		Set("return_url", opt(returnURL)).
		Set("status_url", opt(statusURL)).
		Set("cancel_url", opt(cancelURL)).
		OrNil()
}

func primaryAccountNumber(pm models.PaymentMethod) string {
	switch m := pm.(type) {
	case *models.CardData:
		return m.Number
	case *models.TrackData:
		return m.Pan
	case *models.EBT:
		return m.Number
	}
	return ""
}
