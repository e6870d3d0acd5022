package assessment

import "strings"

// Category is one of the six RIASEC interest dimensions.
type Category string

const (
	Realistic     Category = "R"
	Investigative Category = "I"
	Artistic      Category = "A"
	Social        Category = "S"
	Enterprising  Category = "E"
	Conventional  Category = "C"
)

// Categories lists the dimensions in vector order.
var Categories = [6]Category{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}

var categoryNames = map[Category]string{
	Realistic:     "Realistic",
	Investigative: "Investigative",
	Artistic:      "Artistic",
	Social:        "Social",
	Enterprising:  "Enterprising",
	Conventional:  "Conventional",
}

func (c Category) Name() string { return categoryNames[c] }

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Index returns the vector position of c, or -1.
func (c Category) Index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// ParseCategory accepts a code ("R") or a full name ("realistic"), case-insensitive.
func ParseCategory(raw string) (Category, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if c := Category(strings.ToUpper(s)); c.Valid() {
		return c, true
	}
	for c, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return c, true
		}
	}
	return "", false
}
