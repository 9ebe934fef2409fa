package domain

import "time"

// AuditFields holds standard audit information for entities that admins edit in place.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // Member ID
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // Member ID
}

// Touch records an edit by the given member.
func (a *AuditFields) Touch(memberID string, at time.Time) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = memberID
}

// NewAuditFields stamps creation and last-update with the same member and time.
func NewAuditFields(memberID string, at time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     at,
		CreatedBy:     memberID,
		LastUpdatedAt: at,
		LastUpdatedBy: memberID,
	}
}
