// internal/models/user.go
package models

type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       UserRole `json:"role"`
	Password   string   `json:"-"`               // staff only, plaintext
	Phone      string   `json:"phone,omitempty"` // client only
	IsApproved bool     `json:"is_approved"`     // meaningful for vendors; admins and clients are implicitly approved
}

// CanAuthenticate reports whether the identity may enter staff views.
// Vendors must be approved first; admins always can.
func (u *User) CanAuthenticate() bool {
	if u.Role == RoleVendor {
		return u.IsApproved
	}
	return true
}

// CheckPassword compares the submitted password against the stored one.
// Exact plaintext match; identities without a password never match.
func (u *User) CheckPassword(password string) bool {
	return u.Password != "" && u.Password == password
}
