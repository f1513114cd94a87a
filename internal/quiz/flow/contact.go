package flow

import (
	"regexp"
	"strings"
)

// Contact field validation mirrors what the booking form promises the
// visitor: lenient enough for real-world input, strict enough that the
// practice can actually call back.
var (
	phonePattern = regexp.MustCompile(`^[+]?[\d\s-]{8,}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Italian-facing messages; the frontend renders them verbatim.
const (
	msgNameRequired = "Inserisci il tuo nome"
	msgPhoneInvalid = "Inserisci un numero di telefono valido"
	msgEmailInvalid = "Inserisci un indirizzo email valido"
	msgAgeInvalid   = "Inserisci un'età valida"
)

// ValidateContact checks the contact step fields and returns a map of
// field name to message. An empty map means the draft can be submitted.
func ValidateContact(d Draft) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = msgNameRequired
	}
	if !phonePattern.MatchString(strings.TrimSpace(d.Phone)) {
		errs["phone"] = msgPhoneInvalid
	}
	if !emailPattern.MatchString(strings.TrimSpace(d.Email)) {
		errs["email"] = msgEmailInvalid
	}
	if d.Age != nil && (*d.Age < 1 || *d.Age > 120) {
		errs["age"] = msgAgeInvalid
	}

	return errs
}
