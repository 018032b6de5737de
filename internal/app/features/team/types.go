// internal/app/features/team/types.go
package team

// Row is one staff member.
type Row struct {
	ID       string
	Name     string
	Username string
	Email    string
	Role     string
	Status   string
}
