package models

import "time"

// Seller represents a farmer/seller profile from the seller directory.
// The discovery core reads these records but never mutates them.
type Seller struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	BusinessName    string    `json:"businessName,omitempty"`
	Location        Location  `json:"location"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DisplayName returns the business name when present, otherwise the
// seller's personal name.
func (s Seller) DisplayName() string {
	if s.BusinessName != "" {
		return s.BusinessName
	}
	return s.Name
}
