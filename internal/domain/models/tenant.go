// internal/domain/models/tenant.go
package models

import "strconv"

// TenantUser is the short user record embedded in a tenant.
type TenantUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// Tenant is one jewellery business on the platform.
type Tenant struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	BusinessType       string       `json:"business_type"`
	SubscriptionStatus string       `json:"subscription_status"`
	CreatedAt          string       `json:"created_at"`
	Users              []TenantUser `json:"users"`
}

func (t Tenant) RecordKey() string { return strconv.FormatInt(t.ID, 10) }

// UserCount is the number of users embedded in the tenant.
func (t Tenant) UserCount() int { return len(t.Users) }
