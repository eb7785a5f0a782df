package usecases

import "errors"

// Sentinel errors carry the exact messages the frontend keys on, so
// handlers surface them verbatim. ErrProfilePicNotFound maps to 404,
// the rest of these to 400; anything else is a store failure and maps
// to 500.
var (
	ErrProfilePicFieldsRequired = errors.New("User ID and image URL are required")
	ErrProfilePicImageRequired  = errors.New("Image URL is required")
	ErrProfilePicNotFound       = errors.New("Profile picture not found")
	ErrQRCodeFieldsRequired     = errors.New("User ID and QR code are required")
)

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrProfilePicFieldsRequired) ||
		errors.Is(err, ErrProfilePicImageRequired) ||
		errors.Is(err, ErrQRCodeFieldsRequired)
}
