// internal/i18n/keys.go
package i18n

const (
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthVendorPending      = "auth.vendor_pending"
	KeyAuthNameTaken          = "auth.name_taken"
	KeyAccessDenied           = "auth.access_denied"

	KeyValidationInvalid = "validation.invalid"

	KeyUserNotFound     = "user.not_found"
	KeyUserDeleted      = "user.deleted"
	KeyVendorApproved   = "user.vendor_approved"
	KeyProductNotFound  = "product.not_found"
	KeyProductDeleted   = "product.deleted"
	KeyCartItemNotFound = "cart.item_not_found"
	KeyCartEmpty        = "cart.empty"
	KeySettingsUpdated  = "settings.updated"
	KeyStylistBusy      = "stylist.busy"
)
