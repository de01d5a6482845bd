package errors

import (
	"zyn/jsonx"
)

// WalletErrorCode represents standardized error codes for key and signing operations
type WalletErrorCode string

const (
	// General errors
	ErrCodeInternal WalletErrorCode = "internal_error"

	// Capability errors
	ErrCodeEntropyUnavailable = "entropy_unavailable"
	ErrCodeSigningFailed      = "signing_failed"

	// Validation errors
	ErrCodeInvalidPrivateKey = "invalid_private_key"
	ErrCodeInvalidPublicKey  = "invalid_public_key"
	ErrCodeInvalidArgument   = "invalid_argument"

	// Encoding errors
	ErrCodeEncodingOverflow = "encoding_overflow"
)

// WalletError represents a standardized wallet error
type WalletError struct {
	Code    WalletErrorCode `json:"code"`
	Message string          `json:"message"`
}

// Error implements the error interface
func (e *WalletError) Error() string {
	err, _ := jsonx.Marshal(WalletError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(err)
}

// Error message constants - user-friendly and concise
const (
	ErrMsgEntropyUnavailable = "No cryptographically secure entropy source is available"
	ErrMsgInvalidPrivateKey  = "Private key is malformed or outside the curve range"
	ErrMsgInvalidPublicKey   = "Public key is malformed"
	ErrMsgInvalidArgument    = "Argument shape is invalid"
	ErrMsgEncodingOverflow   = "Value exceeds its fixed encoding width"
	ErrMsgSigningFailed      = "Signer could not produce a signature"
	ErrMsgInternal           = "Internal error"
)

// NewError creates a new WalletError and returns it as error interface
func NewError(code WalletErrorCode, message string) error {
	return &WalletError{
		Code:    code,
		Message: message,
	}
}

// CodeOf extracts the error code from an error, or ErrCodeInternal for
// errors raised outside this package.
func CodeOf(err error) WalletErrorCode {
	if werr, ok := err.(*WalletError); ok {
		return werr.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err carries the given wallet error code.
func IsCode(err error, code WalletErrorCode) bool {
	werr, ok := err.(*WalletError)
	return ok && werr.Code == code
}
