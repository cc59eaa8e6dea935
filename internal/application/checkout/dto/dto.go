// Package dto defines the response shapes of the checkout and enrollment
// usecases. JSON field names mirror what the storefront client expects.
package dto

import "time"

// OrderResponse is returned by order creation
type OrderResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	OrderID  string `json:"orderId"`
	Receipt  string `json:"receipt"`
}

// EntitlementResponse describes one entitlement record
type EntitlementResponse struct {
	ID               uint       `json:"id"`
	CourseID         string     `json:"courseId"`
	CourseType       string     `json:"courseType"`
	GrantedAt        time.Time  `json:"grantedAt"`
	ExpiryDate       *time.Time `json:"expiryDate"` // null = lifetime access
	PaymentReference string     `json:"paymentReference"`
	AdminGrant       bool       `json:"adminGrant"`
}

// AccessStatusResponse is the result of evaluating access to one course
type AccessStatusResponse struct {
	CourseID         string     `json:"courseId"`
	Granted          bool       `json:"granted"`
	ExpiryDate       *time.Time `json:"expiryDate,omitempty"`
	RemainingSeconds *int64     `json:"remainingSeconds,omitempty"`
	RemainingLabel   string     `json:"remainingLabel,omitempty"`
}
