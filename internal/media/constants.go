package media

// Weapon images live under this directory inside the media root
const WeaponDir = "weapons"

// Allowed image extensions and their content types
var allowedTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// Error Messages
const (
	ErrMsgEmptyImage       = "image is empty"
	ErrMsgImageTooLarge    = "image exceeds size limit"
	ErrMsgUnsupportedImage = "unsupported image type"
	ErrMsgInvalidBase64    = "image is not valid base64"
)

// Log Messages
const (
	LogMsgImageSaved   = "Weapon image saved"
	LogMsgImageRemoved = "Weapon image removed"
)
