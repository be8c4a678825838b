package util

import (
	"regexp"
	"time"
)

// DateLayout is the only accepted calendar date shape.
const DateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// IsValidEmail reports whether s looks like local@domain.tld. It does not
// normalize or reject oddities such as consecutive dots.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
