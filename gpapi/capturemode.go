package gpapi

import "github.com/cardflow/gpapi/gpapi/models"

const (
	CaptureModeAuto     = "AUTO"
	CaptureModeLater    = "LATER"
	CaptureModeMultiple = "MULTIPLE"
)

func captureMode(in *models.AuthorizationRequest) string {
	switch {
	case in.MultiCapture:
		return CaptureModeMultiple
	case in.TransactionType == models.Auth:
		return CaptureModeLater
	default:
		return CaptureModeAuto
	}
}
