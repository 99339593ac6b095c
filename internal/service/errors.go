package service

import "errors"

// Sentinel errors shared across services. Handlers translate these into
// business codes via their error mapping tables.
var (
	ErrNotFound           = errors.New("record not found")
	ErrFactionNotFound    = errors.New("faction not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCategory    = errors.New("invalid product category")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrFactionInUse       = errors.New("faction still has products")
	ErrEmailExists        = errors.New("email already registered")
	ErrEmailInvalid       = errors.New("email address invalid")
	ErrPasswordTooWeak    = errors.New("password does not meet policy")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("current password incorrect")
	ErrUserDisabled       = errors.New("user disabled")
	ErrCaptchaRequired    = errors.New("captcha required")
	ErrCaptchaInvalid     = errors.New("captcha invalid")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrUploadInvalid      = errors.New("uploaded file not acceptable")
)
