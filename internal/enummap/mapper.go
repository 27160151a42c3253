// Package enummap translates request enums into GP-API vocabulary.
package enummap

import "github.com/cardflow/gpapi/gpapi/models"

// Mapper returns the backend value for an enum, or "" when the value has no
// mapping and the field should be omitted.
type Mapper interface {
	AccountType(models.AccountType) string
	Initiator(models.StoredCredentialInitiator) string
	CredentialType(models.StoredCredentialType) string
	Reason(models.StoredCredentialReason) string
	Sequence(models.StoredCredentialSequence) string
	DocumentType(models.DocumentType) string
	BNPLProvider(models.BNPLProvider) string
	WalletProvider(models.WalletProvider) string
}

var (
	accountTypes = map[models.AccountType]string{
		models.AccountChecking: "CHECKING",
		models.AccountSavings:  "SAVING",
	}
	initiators = map[models.StoredCredentialInitiator]string{
		models.InitiatorCardholder: "PAYER",
		models.InitiatorMerchant:   "MERCHANT",
	}
	credentialTypes = map[models.StoredCredentialType]string{
		models.CredentialOneOff:       "ONE_OFF",
		models.CredentialInstallment:  "INSTALLMENT",
		models.CredentialRecurring:    "RECURRING",
		models.CredentialUnscheduled:  "UNSCHEDULED",
		models.CredentialSubscription: "SUBSCRIPTION",
	}
	reasons = map[models.StoredCredentialReason]string{
		models.ReasonIncremental:     "INCREMENTAL",
		models.ReasonResubmission:    "RESUBMISSION",
		models.ReasonReauthorization: "REAUTHORIZATION",
		models.ReasonDelayed:         "DELAYED",
		models.ReasonNoShow:          "NO_SHOW",
	}
	sequences = map[models.StoredCredentialSequence]string{
		models.SequenceFirst:      "FIRST",
		models.SequenceSubsequent: "SUBSEQUENT",
		models.SequenceLast:       "LAST",
	}
	documentTypes = map[models.DocumentType]string{
		models.DocumentNational:      "NATIONAL",
		models.DocumentCPF:           "CPF",
		models.DocumentCPNJ:          "CPNJ",
		models.DocumentCURP:          "CURP",
		models.DocumentSSN:           "SSN",
		models.DocumentDriverLicense: "DRIVER_LICENSE",
		models.DocumentPassport:      "PASSPORT",
	}
	bnplProviders = map[models.BNPLProvider]string{
		models.BNPLAffirm:   "AFFIRM",
		models.BNPLClearpay: "CLEARPAY",
		models.BNPLKlarna:   "KLARNA",
	}
	walletProviders = map[models.WalletProvider]string{
		models.WalletApplePay:   "APPLEPAY",
		models.WalletGooglePay:  "PAY_BY_GOOGLE",
		models.WalletClickToPay: "CLICK_TO_PAY",
	}
)

// GPAPI is the Mapper for the GP-API backend.
type GPAPI struct{}

func New() GPAPI {
	return GPAPI{}
}

func (GPAPI) AccountType(v models.AccountType) string { return accountTypes[v] }
func (GPAPI) Initiator(v models.StoredCredentialInitiator) string { return initiators[v] }
func (GPAPI) CredentialType(v models.StoredCredentialType) string { return credentialTypes[v] }
func (GPAPI) Reason(v models.StoredCredentialReason) string { return reasons[v] }
func (GPAPI) Sequence(v models.StoredCredentialSequence) string { return sequences[v] }
func (GPAPI) DocumentType(v models.DocumentType) string { return documentTypes[v] }
func (GPAPI) BNPLProvider(v models.BNPLProvider) string { return bnplProviders[v] }
func (GPAPI) WalletProvider(v models.WalletProvider) string { return walletProviders[v] }
