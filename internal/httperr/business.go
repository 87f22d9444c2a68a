package httperr

import "errors"

// BusinessError is a domain-rule violation carried out of the core as a
// stable machine-readable code. Validation failures never mutate state;
// the handler maps the code onto an HTTP response and the form stays open
// for correction.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from any wrapped BusinessError, or ""
// when err is not one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
