package database

import (
	"errors"
	"regexp"
)

// ErrIdentifierNotAllowed is returned when a dynamic identifier is not on
// the caller's allow-list or is not a plain SQL name.
var ErrIdentifierNotAllowed = errors.New("identifier not allowed")

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// QuoteIdent returns name wrapped in backticks when it appears in allowed
// and is a plain identifier.  Values are never interpolated; this is only
// for column and table names that placeholders cannot express.
func QuoteIdent(name string, allowed ...string) (string, error) {
	ok := false
	for _, a := range allowed {
		if a == name {
			ok = true
			break
		}
	}
	if !ok || !identPattern.MatchString(name) {
		return "", ErrIdentifierNotAllowed
	}
	return "`" + name + "`", nil
}
