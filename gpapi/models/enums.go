package models

// TransactionType selects what the backend is asked to do.
type TransactionType int

const (
	Sale TransactionType = iota + 1
	Refund
	Auth
	Verify
	Tokenize
	DccRateLookup
	Create
)

var transactionTypeNames = map[TransactionType]string{
	Sale:          "Sale",
	Refund:        "Refund",
	Auth:          "Auth",
	Verify:        "Verify",
	Tokenize:      "Tokenize",
	DccRateLookup: "DccRateLookup",
	Create:        "Create",
}

func (t TransactionType) String() string {
	if s, ok := transactionTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// ParseTransactionType is the inverse of String.
func ParseTransactionType(s string) (TransactionType, bool) {
	for t, name := range transactionTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

type TransactionModifier int

const (
	ModifierNone TransactionModifier = iota
	EncryptedMobile
	DecryptedMobile
)

// Channel is the processing channel of the merchant account.
type Channel string

const (
	CardPresent    Channel = "CP"
	CardNotPresent Channel = "CNP"
)

// EntryMethod is how the credential was captured at the point of interaction.
type EntryMethod int

const (
	EntryUnspecified EntryMethod = iota
	EntrySwipe
	EntryProximity
	EntryPhone
	EntryMoto
	EntryMail
)

type Funding int

const (
	FundingCredit Funding = iota
	FundingDebit
)

type CvnPresenceIndicator int

const (
	CvnUnset CvnPresenceIndicator = iota
	CvnPresent
	CvnIllegible
	CvnNotOnCard
	CvnNotRequested
)

type ChipCondition int

const (
	ChipConditionUnset ChipCondition = iota
	ChipFailPreviousSuccess
	ChipFailPreviousFail
)

type WalletProvider int

const (
	WalletUnknown WalletProvider = iota
	WalletApplePay
	WalletGooglePay
	// WalletClickToPay carries its token as a structured {data: token} payload.
	WalletClickToPay
)

type AccountType int

const (
	AccountUnset AccountType = iota
	AccountChecking
	AccountSavings
)

type BNPLProvider int

const (
	BNPLUnset BNPLProvider = iota
	BNPLAffirm
	BNPLClearpay
	BNPLKlarna
)

type DocumentType int

const (
	DocumentUnset DocumentType = iota
	DocumentNational
	DocumentCPF
	DocumentCPNJ
	DocumentCURP
	DocumentSSN
	DocumentDriverLicense
	DocumentPassport
)

type UsageMode string

const (
	UsageSingle   UsageMode = "SINGLE"
	UsageMultiple UsageMode = "MULTIPLE"
)

type FraudFilterMode string

const (
	FraudNone    FraudFilterMode = "NONE"
	FraudOff     FraudFilterMode = "OFF"
	FraudPassive FraudFilterMode = "PASSIVE"
	FraudActive  FraudFilterMode = "ACTIVE"
)

type FraudRuleMode string

const (
	FraudRuleActive FraudRuleMode = "ACTIVE"
	FraudRuleOff    FraudRuleMode = "OFF"
)

type StoredCredentialInitiator int

const (
	InitiatorUnset StoredCredentialInitiator = iota
	InitiatorCardholder
	InitiatorMerchant
)

type StoredCredentialType int

const (
	CredentialTypeUnset StoredCredentialType = iota
	CredentialOneOff
	CredentialInstallment
	CredentialRecurring
	CredentialUnscheduled
	CredentialSubscription
)

type StoredCredentialReason int

const (
	ReasonUnset StoredCredentialReason = iota
	ReasonIncremental
	ReasonResubmission
	ReasonReauthorization
	ReasonDelayed
	ReasonNoShow
)

type StoredCredentialSequence int

const (
	SequenceUnset StoredCredentialSequence = iota
	SequenceFirst
	SequenceSubsequent
	SequenceLast
)

type PayLinkType string

const (
	PayLinkPayment    PayLinkType = "PAYMENT"
	PayLinkHostedPP   PayLinkType = "HOSTED_PAYMENT_PAGE"
	PayLinkThirdParty PayLinkType = "THIRD_PARTY_PAGE"
)
