package urlbuilder

import (
	"net/url"
	"strings"
)

// formFixups adjusts url.QueryEscape output to the classic form-encoding
// character set, which keeps "*" and escapes "~".
var formFixups = strings.NewReplacer("%2A", "*", "~", "%7E")

// Encode form-encodes s per application/x-www-form-urlencoded.
// ASCII letters, digits and ".-*_" are kept, space becomes "+", and every
// other byte of the UTF-8 input is written as %XX with uppercase hex.
func Encode(s string) string {
	if s == "" {
		return ""
	}
	return formFixups.Replace(url.QueryEscape(s))
}
