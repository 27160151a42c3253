package gpapi

import (
	"testing"

	"github.com/cardflow/gpapi/gpapi/models"
	"github.com/cardflow/gpapi/internal/emv"
	"github.com/stretchr/testify/require"
)

func TestEntryMode(t *testing.T) {
	const (
		chipTags        = "9F3901059F0206000000002500"
		contactlessMSD  = "9F3901915F2A020840"
		noEntryModeTags = "82021980"
	)

	cases := []struct {
		name     string
		channel  models.Channel
		req      models.AuthorizationRequest
		expected string
	}{
		{
			name:     "swiped track with tag data is chip",
			channel:  models.CardPresent,
			req:      models.AuthorizationRequest{TagData: chipTags, PaymentMethod: &models.TrackData{EntryMethod: models.EntrySwipe}},
			expected: EntryModeChip,
		},
		{
			name:     "proximity track with tag data",
			channel:  models.CardPresent,
			req:      models.AuthorizationRequest{TagData: contactlessMSD, PaymentMethod: &models.TrackData{EntryMethod: models.EntryProximity}},
			expected: EntryModeContactlessChip,
		},
		{
			name:     "contactless magstripe tag",
			channel:  models.CardPresent,
			req:      models.AuthorizationRequest{TagData: contactlessMSD, PaymentMethod: &models.TrackData{}},
			expected: EntryModeContactlessSwipe,
		},
		{
			name:     "tag data without entry mode tag",
			channel:  models.CardPresent,
			req:      models.AuthorizationRequest{TagData: noEntryModeTags, PaymentMethod: &models.TrackData{}},
			expected: EntryModeChip,
		},
		{
			name:     "swiped track",
			channel:  models.CardPresent,
			req:      models.AuthorizationRequest{PaymentMethod: &models.TrackData{EntryMethod: models.EntrySwipe}},
			expected: EntryModeSwipe,
		},
		{
			name:     "keyed card at terminal",
			channel:  models.CardPresent,
			req:      models.AuthorizationRequest{PaymentMethod: &models.CardData{CardPresent: true}},
			expected: EntryModeManual,
		},
		{
			name:     "card present default",
			channel:  models.CardPresent,
			req:      models.AuthorizationRequest{PaymentMethod: &models.CardData{}},
			expected: EntryModeSwipe,
		},
		{
			name:     "reader present online",
			channel:  models.CardNotPresent,
			req:      models.AuthorizationRequest{PaymentMethod: &models.CardData{ReaderPresent: true, EntryMethod: models.EntryPhone}},
			expected: EntryModeEcom,
		},
		{
			name:     "phone order",
			channel:  models.CardNotPresent,
			req:      models.AuthorizationRequest{PaymentMethod: &models.CardData{EntryMethod: models.EntryPhone}},
			expected: EntryModePhone,
		},
		{
			name:     "moto",
			channel:  models.CardNotPresent,
			req:      models.AuthorizationRequest{PaymentMethod: &models.TokenizedCard{EntryMethod: models.EntryMoto}},
			expected: EntryModeMoto,
		},
		{
			name:     "mail order",
			channel:  models.CardNotPresent,
			req:      models.AuthorizationRequest{PaymentMethod: &models.CardData{EntryMethod: models.EntryMail}},
			expected: EntryModeMail,
		},
		{
			name:    "encrypted wallet in app",
			channel: models.CardNotPresent,
			req: models.AuthorizationRequest{
				TransactionModifier: models.EncryptedMobile,
				PaymentMethod:       &models.DigitalWallet{InAppPaymentData: true},
			},
			expected: EntryModeInApp,
		},
		{
			name:    "decrypted wallet is ecom",
			channel: models.CardNotPresent,
			req: models.AuthorizationRequest{
				TransactionModifier: models.DecryptedMobile,
				PaymentMethod:       &models.DigitalWallet{InAppPaymentData: true},
			},
			expected: EntryModeEcom,
		},
		{
			name:     "ach is ecom",
			channel:  models.CardNotPresent,
			req:      models.AuthorizationRequest{PaymentMethod: &models.ACHCheck{}},
			expected: EntryModeEcom,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mode, err := entryMode(c.channel, &c.req, emv.NewParser())
			require.NoError(t, err)
			require.Equal(t, c.expected, mode)
		})
	}
}

func TestEntryMode_InvalidTagData(t *testing.T) {
	req := &models.AuthorizationRequest{
		TagData:       "9F3905",
		PaymentMethod: &models.TrackData{EntryMethod: models.EntrySwipe},
	}

	_, err := entryMode(models.CardPresent, req, emv.NewParser())
	require.ErrorIs(t, err, ErrInvalidTagData)
	require.ErrorIs(t, err, emv.ErrMalformed)
}

func TestCaptureMode(t *testing.T) {
	cases := []struct {
		multiCapture bool
		txType       models.TransactionType
		expected     string
	}{
		{true, models.Auth, CaptureModeMultiple},
		{true, models.Sale, CaptureModeMultiple},
		{false, models.Auth, CaptureModeLater},
		{false, models.Sale, CaptureModeAuto},
		{false, models.Refund, CaptureModeAuto},
	}

	for _, c := range cases {
		req := &models.AuthorizationRequest{MultiCapture: c.multiCapture, TransactionType: c.txType}
		require.Equal(t, c.expected, captureMode(req), "multi=%v type=%s", c.multiCapture, c.txType)
	}
}
