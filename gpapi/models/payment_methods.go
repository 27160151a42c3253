package models

// PaymentMethod is the closed set of credentials a request can carry. Only the
// types in this package implement it.
type PaymentMethod interface {
	paymentMethod()
}

// Tokenizable is implemented by methods that may reference a stored token.
type Tokenizable interface {
	TokenValue() string
}

// Encryptable is implemented by methods whose data may arrive encrypted at the
// reader.
type Encryptable interface {
	Encryption() *EncryptionData
}

// PinProtected is implemented by methods that may carry a PIN block.
type PinProtected interface {
	PINBlock() string
}

// EncryptionData describes reader-side encryption. KTB wins over KSN when both
// are set.
type EncryptionData struct {
	Version string `json:"version,omitempty"`
	KTB     string `json:"ktb,omitempty"`
	KSN     string `json:"ksn,omitempty"`
}

// ThreeDSecure is the authentication evidence attached to a card.
type ThreeDSecure struct {
	ServerTransactionID string `json:"server_transaction_id,omitempty"`
	ExemptStatus        string `json:"exempt_status,omitempty"`
}

// CardData is a manually keyed card, or a card already replaced by a token.
type CardData struct {
	Number               string               `json:"number,omitempty"`
	ExpMonth             int                  `json:"exp_month,omitempty"`
	ExpYear              int                  `json:"exp_year,omitempty"`
	Cvn                  string               `json:"cvn,omitempty"`
	CvnPresenceIndicator CvnPresenceIndicator `json:"-"`
	CardHolderName       string               `json:"card_holder_name,omitempty"`

	// CardPresent marks a card keyed at a present terminal.
	CardPresent    bool            `json:"card_present,omitempty"`
	ReaderPresent  bool            `json:"reader_present,omitempty"`
	EntryMethod    EntryMethod     `json:"-"`
	Funding        Funding         `json:"-"`
	Token          string          `json:"token,omitempty"`
	ThreeDSecure   *ThreeDSecure   `json:"three_dsecure,omitempty"`
	PinBlock       string          `json:"pin_block,omitempty"`
	EncryptionData *EncryptionData `json:"encryption_data,omitempty"`
}

// TrackData is a card read from a magnetic stripe or chip.
type TrackData struct {
	// Value is the raw track. When empty, Pan and Expiry (YYMM) are used.
	Value          string          `json:"value,omitempty"`
	Pan            string          `json:"pan,omitempty"`
	Expiry         string          `json:"expiry,omitempty"`
	EntryMethod    EntryMethod     `json:"-"`
	Funding        Funding         `json:"-"`
	Token          string          `json:"token,omitempty"`
	PinBlock       string          `json:"pin_block,omitempty"`
	EncryptionData *EncryptionData `json:"encryption_data,omitempty"`
}

// TokenizedCard references a card stored at the gateway.
type TokenizedCard struct {
	Token          string        `json:"token,omitempty"`
	CardHolderName string        `json:"card_holder_name,omitempty"`
	CardPresent    bool          `json:"card_present,omitempty"`
	ReaderPresent  bool          `json:"reader_present,omitempty"`
	EntryMethod    EntryMethod   `json:"-"`
	ThreeDSecure   *ThreeDSecure `json:"three_dsecure,omitempty"`
}

// DigitalWallet is a mobile wallet payment. The request's TransactionModifier
// says whether Token is the encrypted wallet payload or a decrypted DPAN.
type DigitalWallet struct {
	Provider         WalletProvider `json:"-"`
	Token            string         `json:"token,omitempty"`
	ExpMonth         int            `json:"exp_month,omitempty"`
	ExpYear          int            `json:"exp_year,omitempty"`
	Cryptogram       string         `json:"cryptogram,omitempty"`
	Eci              string         `json:"eci,omitempty"`
	CardHolderName   string         `json:"card_holder_name,omitempty"`
	InAppPaymentData bool           `json:"in_app_payment_data,omitempty"`
}

type ACHCheck struct {
	AccountNumber   string      `json:"account_number,omitempty"`
	AccountType     AccountType `json:"-"`
	CheckReference  string      `json:"check_reference,omitempty"`
	SecCode         string      `json:"sec_code,omitempty"`
	MerchantNotes   string      `json:"merchant_notes,omitempty"`
	RoutingNumber   string      `json:"routing_number,omitempty"`
	BankName        string      `json:"bank_name,omitempty"`
	BankAddress     *Address    `json:"bank_address,omitempty"`
	CheckHolderName string      `json:"check_holder_name,omitempty"`
	Token           string      `json:"token,omitempty"`
}

type AlternativePaymentMethod struct {
	// Provider is the backend provider name, e.g. "paypal" or "testpay".
	Provider            string `json:"provider,omitempty"`
	AccountHolderName   string `json:"account_holder_name,omitempty"`
	AddressOverrideMode string `json:"address_override_mode,omitempty"`
	ReturnURL           string `json:"return_url,omitempty"`
	StatusUpdateURL     string `json:"status_update_url,omitempty"`
	CancelURL           string `json:"cancel_url,omitempty"`
}

type BuyNowPayLater struct {
	Provider        BNPLProvider `json:"-"`
	ReturnURL       string       `json:"return_url,omitempty"`
	StatusUpdateURL string       `json:"status_update_url,omitempty"`
	CancelURL       string       `json:"cancel_url,omitempty"`
}

type EBT struct {
	CardHolderName string          `json:"card_holder_name,omitempty"`
	Number         string          `json:"number,omitempty"`
	ExpMonth       int             `json:"exp_month,omitempty"`
	ExpYear        int             `json:"exp_year,omitempty"`
	Track          string          `json:"track,omitempty"`
	PinBlock       string          `json:"pin_block,omitempty"`
	EncryptionData *EncryptionData `json:"encryption_data,omitempty"`
}

func (*CardData) paymentMethod() {}
func (*TrackData) paymentMethod() {}
func (*TokenizedCard) paymentMethod() {}
func (*DigitalWallet) paymentMethod() {}
func (*ACHCheck) paymentMethod() {}
func (*AlternativePaymentMethod) paymentMethod() {}
func (*BuyNowPayLater) paymentMethod() {}
func (*EBT) paymentMethod() {}

func (c *CardData) TokenValue() string { return c.Token }
func (c *CardData) PINBlock() string { return c.PinBlock }
func (c *CardData) Encryption() *EncryptionData { return c.EncryptionData }
func (t *TrackData) TokenValue() string { return t.Token }
func (t *TrackData) PINBlock() string { return t.PinBlock }
func (t *TrackData) Encryption() *EncryptionData { return t.EncryptionData }
func (t *TokenizedCard) TokenValue() string { return t.Token }
func (a *ACHCheck) TokenValue() string { return a.Token }
func (e *EBT) PINBlock() string { return e.PinBlock }
func (e *EBT) Encryption() *EncryptionData { return e.EncryptionData }
