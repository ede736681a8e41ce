package apperror

// AppError is a custom error type that includes an HTTP status code and a
// stable machine-readable code clients can branch on without parsing messages.
type AppError struct {
	Status  int    // HTTP status code (e.g., 400, 404, 409)
	Code    string // Stable identifier (e.g., "quota_exceeded")
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is makes two AppErrors match when their codes match, so sentinel values
// still compare equal after being wrapped with extra context.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// New creates a new AppError with a status, code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
