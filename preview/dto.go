package preview

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cardflow/gpapi/gpapi/models"
)

var ErrBadRequest = errors.New("bad request")

// CompileRequest is the JSON form of an AuthorizationRequest accepted by the
// preview API and the compile CLI. Enumerations travel as lower case names.
// At most one payment method may be set.
type CompileRequest struct {
	models.AuthorizationRequest

	Type             string            `json:"type"`
	Modifier         string            `json:"modifier,omitempty"`
	ChipCondition    string            `json:"chip_condition,omitempty"`
	Customer         *Customer         `json:"customer,omitempty"`
	StoredCredential *StoredCredential `json:"stored_credential,omitempty"`
	PayLink          *PayLink          `json:"pay_link,omitempty"`

	Card          *Card                            `json:"card,omitempty"`
	Track         *Track                           `json:"track,omitempty"`
	TokenizedCard *TokenizedCard                   `json:"tokenized_card,omitempty"`
	Wallet        *Wallet                          `json:"wallet,omitempty"`
	ACH           *ACH                             `json:"ach,omitempty"`
	APM           *models.AlternativePaymentMethod `json:"apm,omitempty"`
	BNPL          *BNPL                            `json:"bnpl,omitempty"`
	EBT           *models.EBT                      `json:"ebt,omitempty"`
}

type Card struct {
	models.CardData
	CvnIndicator string `json:"cvn_indicator,omitempty"`
	Entry        string `json:"entry_method,omitempty"`
	FundingType  string `json:"funding,omitempty"`
}

type Track struct {
	models.TrackData
	Entry       string `json:"entry_method,omitempty"`
	FundingType string `json:"funding,omitempty"`
}

type TokenizedCard struct {
	models.TokenizedCard
	Entry string `json:"entry_method,omitempty"`
}

type Wallet struct {
	models.DigitalWallet
	ProviderName string `json:"provider,omitempty"`
}

type ACH struct {
	models.ACHCheck
	Account string `json:"account_type,omitempty"`
}

type BNPL struct {
	models.BuyNowPayLater
	ProviderName string `json:"provider,omitempty"`
}

type Customer struct {
	models.Customer
	IDDocuments []Document `json:"documents,omitempty"`
}

type Document struct {
	Type      string `json:"type"`
	Reference string `json:"reference"`
	Issuer    string `json:"issuer,omitempty"`
}

type StoredCredential struct {
	Initiator string `json:"initiator,omitempty"`
	Type      string `json:"type,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Sequence  string `json:"sequence,omitempty"`
}

// PayLink takes the expiration as a plain YYYY-MM-DD date.
type PayLink struct {
	models.PayLinkData
	ExpirationDate string `json:"expiration_date,omitempty"`
}

var (
	modifiers = map[string]models.TransactionModifier{
		"":                 models.ModifierNone,
		"encrypted_mobile": models.EncryptedMobile,
		"decrypted_mobile": models.DecryptedMobile,
	}
	entryMethods = map[string]models.EntryMethod{
		"":          models.EntryUnspecified,
		"swipe":     models.EntrySwipe,
		"proximity": models.EntryProximity,
		"phone":     models.EntryPhone,
		"moto":      models.EntryMoto,
		"mail":      models.EntryMail,
	}
	fundings = map[string]models.Funding{
		"":       models.FundingCredit,
		"credit": models.FundingCredit,
		"debit":  models.FundingDebit,
	}
	cvnIndicators = map[string]models.CvnPresenceIndicator{
		"":              models.CvnUnset,
		"present":       models.CvnPresent,
		"illegible":     models.CvnIllegible,
		"not_on_card":   models.CvnNotOnCard,
		"not_requested": models.CvnNotRequested,
	}
	chipConditions = map[string]models.ChipCondition{
		"":             models.ChipConditionUnset,
		"prev_success": models.ChipFailPreviousSuccess,
		"prev_failed":  models.ChipFailPreviousFail,
	}
	wallets = map[string]models.WalletProvider{
		"":             models.WalletUnknown,
		"apple_pay":    models.WalletApplePay,
		"google_pay":   models.WalletGooglePay,
		"click_to_pay": models.WalletClickToPay,
	}
	accountTypes = map[string]models.AccountType{
		"":         models.AccountUnset,
		"checking": models.AccountChecking,
		"savings":  models.AccountSavings,
	}
	bnplProviders = map[string]models.BNPLProvider{
		"":         models.BNPLUnset,
		"affirm":   models.BNPLAffirm,
		"clearpay": models.BNPLClearpay,
		"klarna":   models.BNPLKlarna,
	}
	documentTypes = map[string]models.DocumentType{
		"national":       models.DocumentNational,
		"cpf":            models.DocumentCPF,
		"cpnj":           models.DocumentCPNJ,
		"curp":           models.DocumentCURP,
		"ssn":            models.DocumentSSN,
		"driver_license": models.DocumentDriverLicense,
		"passport":       models.DocumentPassport,
	}
	initiators = map[string]models.StoredCredentialInitiator{
		"":           models.InitiatorUnset,
		"cardholder": models.InitiatorCardholder,
		"merchant":   models.InitiatorMerchant,
	}
	credentialTypes = map[string]models.StoredCredentialType{
		"":             models.CredentialTypeUnset,
		"one_off":      models.CredentialOneOff,
		"installment":  models.CredentialInstallment,
		"recurring":    models.CredentialRecurring,
		"unscheduled":  models.CredentialUnscheduled,
		"subscription": models.CredentialSubscription,
	}
	reasons = map[string]models.StoredCredentialReason{
		"":                models.ReasonUnset,
		"incremental":     models.ReasonIncremental,
		"resubmission":    models.ReasonResubmission,
		"reauthorization": models.ReasonReauthorization,
		"delayed":         models.ReasonDelayed,
		"no_show":         models.ReasonNoShow,
	}
	sequences = map[string]models.StoredCredentialSequence{
		"":           models.SequenceUnset,
		"first":      models.SequenceFirst,
		"subsequent": models.SequenceSubsequent,
		"last":       models.SequenceLast,
	}
)

// lookup resolves a lower case enum name, reporting the field on failure.
func lookup[T any](table map[string]T, field, value string) (T, error) {
	v, ok := table[strings.ToLower(value)]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: unknown %s %q", ErrBadRequest, field, value)
	}
	return v, nil
}

// ToAuthorizationRequest converts the DTO into the canonical request.
func (r *CompileRequest) ToAuthorizationRequest() (*models.AuthorizationRequest, error) {
	txType, ok := models.ParseTransactionType(r.Type)
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrBadRequest, r.Type)
	}

	modifier, err := lookup(modifiers, "modifier", r.Modifier)
	if err != nil {
		return nil, err
	}
	chip, err := lookup(chipConditions, "chip_condition", r.ChipCondition)
	if err != nil {
		return nil, err
	}

	req := r.AuthorizationRequest
	req.TransactionType = txType
	req.TransactionModifier = modifier
	req.ChipCondition = chip
	req.Customer = nil
	req.StoredCredential = nil
	req.PayLink = nil
	req.PaymentMethod = nil

	steps := []func(*models.AuthorizationRequest) error{
		r.customer,
		r.storedCredential,
		r.payLink,
		r.paymentMethod,
	}
	for _, step := range steps {
		if err := step(&req); err != nil {
			return nil, err
		}
	}

	return &req, nil
}

func (r *CompileRequest) customer(req *models.AuthorizationRequest) error {
	if r.Customer == nil {
		return nil
	}
	cust := r.Customer.Customer
	cust.Documents = nil
	for _, d := range r.Customer.IDDocuments {
		t, err := lookup(documentTypes, "document type", d.Type)
		if err != nil {
			return err
		}
		cust.Documents = append(cust.Documents, models.CustomerDocument{Type: t, Reference: d.Reference, Issuer: d.Issuer})
	}
	req.Customer = &cust
	return nil
}

func (r *CompileRequest) storedCredential(req *models.AuthorizationRequest) error {
	sc := r.StoredCredential
	if sc == nil {
		return nil
	}

	var (
		out models.StoredCredential
		err error
	)
	if out.Initiator, err = lookup(initiators, "initiator", sc.Initiator); err != nil {
		return err
	}
	if out.Type, err = lookup(credentialTypes, "stored credential type", sc.Type); err != nil {
		return err
	}
	if out.Reason, err = lookup(reasons, "reason", sc.Reason); err != nil {
		return err
	}
	if out.Sequence, err = lookup(sequences, "sequence", sc.Sequence); err != nil {
		return err
	}
	req.StoredCredential = &out
	return nil
}

func (r *CompileRequest) payLink(req *models.AuthorizationRequest) error {
	pl := r.PayLink
	if pl == nil {
		return nil
	}

	link := pl.PayLinkData
	link.ExpirationDate = nil
	if pl.ExpirationDate != "" {
		exp, err := time.Parse("2006-01-02", pl.ExpirationDate)
		if err != nil {
			return fmt.Errorf("%w: expiration_date: %v", ErrBadRequest, err)
		}
		link.ExpirationDate = &exp
	}
	req.PayLink = &link
	return nil
}

func (r *CompileRequest) paymentMethod(req *models.AuthorizationRequest) error {
	var methods []models.PaymentMethod

	if c := r.Card; c != nil {
		card := c.CardData
		var err error
		if card.EntryMethod, err = lookup(entryMethods, "entry_method", c.Entry); err != nil {
			return err
		}
		if card.Funding, err = lookup(fundings, "funding", c.FundingType); err != nil {
			return err
		}
		if card.CvnPresenceIndicator, err = lookup(cvnIndicators, "cvn_indicator", c.CvnIndicator); err != nil {
			return err
		}
		methods = append(methods, &card)
	}
	if t := r.Track; t != nil {
		track := t.TrackData
		var err error
		if track.EntryMethod, err = lookup(entryMethods, "entry_method", t.Entry); err != nil {
			return err
		}
		if track.Funding, err = lookup(fundings, "funding", t.FundingType); err != nil {
			return err
		}
		methods = append(methods, &track)
	}
	if t := r.TokenizedCard; t != nil {
		token := t.TokenizedCard
		var err error
		if token.EntryMethod, err = lookup(entryMethods, "entry_method", t.Entry); err != nil {
			return err
		}
		methods = append(methods, &token)
	}
	if w := r.Wallet; w != nil {
		wallet := w.DigitalWallet
		var err error
		if wallet.Provider, err = lookup(wallets, "wallet provider", w.ProviderName); err != nil {
			return err
		}
		methods = append(methods, &wallet)
	}
	if a := r.ACH; a != nil {
		ach := a.ACHCheck
		var err error
		if ach.AccountType, err = lookup(accountTypes, "account_type", a.Account); err != nil {
			return err
		}
		methods = append(methods, &ach)
	}
	if r.APM != nil {
		apm := *r.APM
		methods = append(methods, &apm)
	}
	if b := r.BNPL; b != nil {
		bnpl := b.BuyNowPayLater
		var err error
		if bnpl.Provider, err = lookup(bnplProviders, "bnpl provider", b.ProviderName); err != nil {
			return err
		}
		methods = append(methods, &bnpl)
	}
	if r.EBT != nil {
		ebt := *r.EBT
		methods = append(methods, &ebt)
	}

	switch {
	case len(methods) > 1:
		return fmt.Errorf("%w: %d payment methods given, want one", ErrBadRequest, len(methods))
	case len(methods) == 1:
		req.PaymentMethod = methods[0]
	}
	return nil
}
