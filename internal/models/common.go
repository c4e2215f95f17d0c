// internal/models/common.go
package models

// Enums shared across the store.

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleVendor UserRole = "vendor"
	RoleClient UserRole = "client"
)

type Category string

const (
	CategoryBikinis     Category = "Bikinis"
	CategoryOnePiece    Category = "Maiôs"
	CategoryCoverUps    Category = "Saídas de Praia"
	CategoryAccessories Category = "Acessórios"
)

// CategoryAll is the filter selector that disables category filtering.
const CategoryAll = "all"

func ValidCategory(c Category) bool {
	switch c {
	case CategoryBikinis, CategoryOnePiece, CategoryCoverUps, CategoryAccessories:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusApproved TransactionStatus = "Aprovado"
	TransactionStatusPending  TransactionStatus = "Pendente"
	TransactionStatusCanceled TransactionStatus = "Cancelado"
)

// Capability is a named permission attached to a role. Every gated operation
// checks a capability through Authorize instead of comparing role strings.
type Capability string

const (
	CapabilityShop             Capability = "shop"
	CapabilityViewDashboard    Capability = "dashboard:view"
	CapabilityPublishProducts  Capability = "products:publish"
	CapabilityDeleteOwnProduct Capability = "products:delete_own"
	CapabilityDeleteAnyProduct Capability = "products:delete_any"
	CapabilityApproveVendors   Capability = "users:approve"
	CapabilityDeleteUsers      Capability = "users:delete"
	CapabilityListUsers        Capability = "users:list"
	CapabilityManageSettings   Capability = "settings:manage"
	CapabilityViewAllReports   Capability = "reports:view_all"
	CapabilityViewOwnReports   Capability = "reports:view_own"
)

var roleCapabilities = map[UserRole][]Capability{
	RoleClient: {
		CapabilityShop,
	},
	RoleVendor: {
		CapabilityShop,
		CapabilityViewDashboard,
		CapabilityPublishProducts,
		CapabilityDeleteOwnProduct,
		CapabilityViewOwnReports,
	},
	RoleAdmin: {
		CapabilityShop,
		CapabilityViewDashboard,
		CapabilityPublishProducts,
		CapabilityDeleteOwnProduct,
		CapabilityDeleteAnyProduct,
		CapabilityApproveVendors,
		CapabilityDeleteUsers,
		CapabilityListUsers,
		CapabilityManageSettings,
		CapabilityViewAllReports,
		CapabilityViewOwnReports,
	},
}

// Authorize reports whether the role grants the capability.
func Authorize(role UserRole, cap Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}

func Capabilities(role UserRole) []Capability {
	caps := roleCapabilities[role]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}
