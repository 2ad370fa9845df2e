package normalize

import "time"

// DeriveAge computes age in whole completed years between birth and asOf:
// one year is counted only once the anniversary has passed. A nil birthdate
// yields a nil age — never zero, never a guess. A birthdate after asOf also
// yields nil, since a negative age would be fabricated data.
func DeriveAge(birth *time.Time, asOf time.Time) *int {
	if birth == nil {
		return nil
	}
	years := asOf.Year() - birth.Year()
	if asOf.Month() < birth.Month() ||
		(asOf.Month() == birth.Month() && asOf.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return nil
	}
	return &years
}
