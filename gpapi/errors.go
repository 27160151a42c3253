package gpapi

import (
	"errors"
	"fmt"

	"github.com/cardflow/gpapi/gpapi/models"
)

var (
	// ErrUnsupported reports a payment method that cannot serve the requested
	// transaction type. It is a configuration error, not a data error.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrInvalidTagData wraps failures of the EMV tag parser.
	ErrInvalidTagData = errors.New("invalid tag data")

	ErrInvalidRequest = errors.New("invalid request")
)

// UnsupportedError names the transaction type and payment method that could
// not be compiled. It matches ErrUnsupported with errors.Is.
type UnsupportedError struct {
	Op     models.TransactionType
	Method string
	Reason string
}

func (e *UnsupportedError) Error() string {
	msg := fmt.Sprintf("%s is not supported for %s", e.Op, e.Method)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

func unsupported(op models.TransactionType, pm models.PaymentMethod, reason string) error {
	return &UnsupportedError{Op: op, Method: methodName(pm), Reason: reason}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

func methodName(pm models.PaymentMethod) string {
	switch pm.(type) {
	case *models.CardData:
		return "card"
	case *models.TrackData:
		return "track data"
	case *models.TokenizedCard:
		return "tokenized card"
	case *models.DigitalWallet:
		return "digital wallet"
	case *models.ACHCheck:
		return "ACH check"
	case *models.AlternativePaymentMethod:
		return "alternative payment method"
	case *models.BuyNowPayLater:
		return "buy now pay later"
	case *models.EBT:
		return "EBT"
	default:
		return "no payment method"
	}
}
