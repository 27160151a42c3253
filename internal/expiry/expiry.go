// Package expiry formats card expiry dates the way the GP-API wire format
// expects them: two-digit month and two-digit year strings.
package expiry

import (
	"fmt"
)

// Month returns the month zero padded to two digits ("1" -> "01").
func Month(m int) string {
	return fmt.Sprintf("%02d", m)
}

// Year returns the last two digits of a year given as YYYY or YY.
func Year(y int) string {
	return fmt.Sprintf("%04d", y)[2:4]
}

// SplitYYMM splits a track style YYMM expiry into its month and year parts.
func SplitYYMM(yymm string) (mm, yy string, err error) {
	if err := ValidateYYMM(yymm); err != nil {
		return "", "", err
	}
	return yymm[2:4], yymm[0:2], nil
}

// ValidateYYMM checks the expiry is four digits in YYMM form with a month of 01..12.
func ValidateYYMM(yymm string) error {
	if len(yymm) != 4 {
		return fmt.Errorf("expiry must be YYMM (4 digits)")
	}
	for i := 0; i < 4; i++ {
		if yymm[i] < '0' || yymm[i] > '9' {
			return fmt.Errorf("expiry must be digits: YYMM")
		}
	}
	mm := int(yymm[2]-'0')*10 + int(yymm[3]-'0')
	if mm < 1 || mm > 12 {
		return fmt.Errorf("expiry month must be 01..12")
	}
	return nil
}
