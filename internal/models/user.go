package models

import "time"

// User is one registered account. Records are immutable after load; the
// analytics core never mutates its inputs.
type User struct {
	UserID           string
	Region           string
	RegistrationDate time.Time
	// FirstVisitDate is optional; nil means the visit date is unknown and the
	// user never counts as a visitor.
	FirstVisitDate *time.Time
}

// RegionOrOther returns the user's region, bucketing a missing region as "Other".
func (u *User) RegionOrOther() string {
	if u.Region == "" {
		return RegionOther
	}
	return u.Region
}

// RegionOther is the bucket for users without a region value.
const RegionOther = "Other"
