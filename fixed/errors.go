package fixed

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("fixed")

// Error kinds. Every error returned for malformed or out of range input is
// wrapped in Error and also carries one of these classes; test with Has.
var (
	// ErrSyntax is the class of text that is not a valid literal.
	ErrSyntax = errs.Class("invalid syntax")

	// ErrRange is the class of values that do not fit in a Fixed.
	ErrRange = errs.Class("value out of range")
)
