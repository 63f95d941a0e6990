package errs

// Sentinels shared by the command and query sides so handlers map them once.
var (
	// Lookup errors
	ErrBookNotFound        = New("book not found")
	ErrCustomerNotFound    = New("customer not found")
	ErrReservationNotFound = New("reservation not found")
	ErrUserNotFound        = New("user not found")

	// Rule errors
	ErrDomainValidation = New("domain validation error")
	ErrForbidden        = New("forbidden")

	// InvariantViolation marks a post-condition that failed inside a transaction.
	ErrInvariantViolation = New("invariant violation")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
