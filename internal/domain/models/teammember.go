// internal/domain/models/teammember.go
package models

import (
	"strconv"
	"strings"
)

// TeamMember is a staff user of a tenant.
type TeamMember struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

func (m TeamMember) RecordKey() string { return strconv.FormatInt(m.ID, 10) }

// DisplayName prefers the full name and falls back to the username.
func (m TeamMember) DisplayName() string {
	if n := strings.TrimSpace(m.FirstName + " " + m.LastName); n != "" {
		return n
	}
	return m.Username
}

// Status is "active" or "inactive".
func (m TeamMember) Status() string {
	if m.IsActive {
		return "active"
	}
	return "inactive"
}

// RoleLabel turns a role code like "inhouse_sales" into "Inhouse Sales".
func (m TeamMember) RoleLabel() string { return Label(m.Role) }
