package gpapi

import (
	"fmt"

	"github.com/cardflow/gpapi/gpapi/models"
	"github.com/cardflow/gpapi/internal/emv"
)

// Entry modes understood by GP-API.
const (
	EntryModeManual           = "MANUAL"
	EntryModeSwipe            = "SWIPE"
	EntryModeChip             = "CHIP"
	EntryModeContactlessChip  = "CONTACTLESS_CHIP"
	EntryModeContactlessSwipe = "CONTACTLESS_SWIPE"
	EntryModeEcom             = "ECOM"
	EntryModeMoto             = "MOTO"
	EntryModePhone            = "PHONE"
	EntryModeMail             = "MAIL"
	EntryModeInApp            = "IN_APP"
)

// entryMode classifies how the credential was captured. Tag data checks run
// before entry method checks, so a swiped card carrying tag data is CHIP.
func entryMode(channel models.Channel, in *models.AuthorizationRequest, tags emv.Parser) (string, error) {
	if channel == models.CardPresent {
		return cardPresentEntryMode(in, tags)
	}
	return cardNotPresentEntryMode(in), nil
}

func cardPresentEntryMode(in *models.AuthorizationRequest, tags emv.Parser) (string, error) {
	switch pm := in.PaymentMethod.(type) {
	case *models.TrackData:
		if in.TagData != "" {
			if pm.EntryMethod == models.EntryProximity {
				return EntryModeContactlessChip, nil
			}
			data, err := tags.Parse(in.TagData)
			if err != nil {
				return "", fmt.Errorf("%w: %w", ErrInvalidTagData, err)
			}
			if data.IsContactlessMSD() {
				return EntryModeContactlessSwipe, nil
			}
			return EntryModeChip, nil
		}
		if pm.EntryMethod == models.EntrySwipe {
			return EntryModeSwipe, nil
		}
	case *models.CardData:
		if pm.CardPresent {
			return EntryModeManual, nil
		}
	case *models.TokenizedCard:
		if pm.CardPresent {
			return EntryModeManual, nil
		}
	}
	return EntryModeSwipe, nil
}

func cardNotPresentEntryMode(in *models.AuthorizationRequest) string {
	var (
		readerPresent bool
		method        models.EntryMethod
	)
	switch pm := in.PaymentMethod.(type) {
	case *models.CardData:
		readerPresent, method = pm.ReaderPresent, pm.EntryMethod
	case *models.TokenizedCard:
		readerPresent, method = pm.ReaderPresent, pm.EntryMethod
	case *models.DigitalWallet:
		if in.TransactionModifier == models.EncryptedMobile && pm.InAppPaymentData {
			return EntryModeInApp
		}
		return EntryModeEcom
	default:
		return EntryModeEcom
	}

	if readerPresent {
		return EntryModeEcom
	}
	switch method {
	case models.EntryPhone:
		return EntryModePhone
	case models.EntryMoto:
		return EntryModeMoto
	case models.EntryMail:
		return EntryModeMail
	}
	return EntryModeEcom
}
