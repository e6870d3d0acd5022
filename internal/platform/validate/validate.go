package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLen = 8
	MaxNameLen     = 100
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func Email(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

func Password(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLen
}

// Name accepts a non-blank name of at most MaxNameLen runes.
func Name(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && utf8.RuneCountInString(s) <= MaxNameLen
}
