package application

import "time"

// Status is the review state of a vendor application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Application is one vendor's submitted request to participate in the
// market. JSON field names are camelCase because the public front-end
// depends on this exact shape.
type Application struct {
	ID                    string     `json:"id"`
	BusinessName          string     `json:"businessName"`
	ContactName           string     `json:"contactName"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone"`
	Website               string     `json:"website"`
	VendorType            string     `json:"vendorType"`
	Description           string     `json:"description"`
	ProductsServices      string     `json:"productsServices"`
	Experience            string     `json:"experience"`
	SpecialRequirements   string     `json:"specialRequirements"`
	FoodPermits           string     `json:"foodPermits"`
	AvailabilityStartWeek string     `json:"availabilityStartWeek"`
	Status                Status     `json:"status"`
	SubmittedAt           time.Time  `json:"submittedAt"`
	ReviewedAt            *time.Time `json:"reviewedAt"`
	ReviewedBy            *string    `json:"reviewedBy"`
	Notes                 string     `json:"notes"`
}

// SubmitRequest is the payload for a new application.
type SubmitRequest struct {
	BusinessName          string `json:"businessName"`
	ContactName           string `json:"contactName"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	Website               string `json:"website"`
	VendorType            string `json:"vendorType"`
	Description           string `json:"description"`
	ProductsServices      string `json:"productsServices"`
	Experience            string `json:"experience"`
	SpecialRequirements   string `json:"specialRequirements"`
	FoodPermits           string `json:"foodPermits"`
	AvailabilityStartWeek string `json:"availabilityStartWeek"`
}

// UpdateRequest is the payload for an admin review update. Pointer fields
// distinguish "absent, keep the stored value" from "present, overwrite" —
// an explicitly empty notes string clears the notes.
type UpdateRequest struct {
	Status     *Status `json:"status"`
	Notes      *string `json:"notes"`
	ReviewedBy *string `json:"reviewedBy"`
}

// Stats are the aggregate counts shown on the admin dashboard. Total counts
// index entries, so an id whose record failed to resolve still counts.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
