package domain

// ParseError records one declaration that could not be turned into an entity.
// It is collected on the model instead of aborting the build.
type ParseError struct {
	Err     error
	Message string
	// Entity is the recipe id or factory name, when it could be read
	Entity string
	// Raw is the offending declaration as a generic value
	Raw any
	// Line and Column locate the declaration in the source text
	Line   int
	Column int
}

// Error implements the error interface.
func (e ParseError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e ParseError) Unwrap() error {
	return e.Err
}

// Kind names the sentinel error behind this parse error.
func (e ParseError) Kind() string {
	return ErrorKind(e.Err)
}
