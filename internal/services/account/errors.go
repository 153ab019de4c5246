package account

// AccountError is a custom error type for account-related errors
type AccountError string

// Error implements the error interface
func (e AccountError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMissingFields    AccountError = "please fill in every field"
	ErrUserNotFound     AccountError = "user not found"
	ErrWrongPassword    AccountError = "wrong password"
	ErrUsernameTooShort AccountError = "username must have at least 3 characters"
	ErrPasswordTooShort AccountError = "password must have at least 4 characters"
	ErrPasswordMismatch AccountError = "passwords do not match"
	ErrUsernameTaken    AccountError = "username already exists"
	ErrNilConfig        AccountError = "config cannot be nil"
	ErrNilUserRepo      AccountError = "user repository cannot be nil"
)
