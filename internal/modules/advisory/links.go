package advisory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	LinkModeStatic = "static"
	LinkModeUnique = "unique"

	DefaultMeetingLink = "https://meet.google.com/careerpath-advisory"
)

// MeetingLinkProvider chooses the video-call link handed out for a booking.
type MeetingLinkProvider interface {
	Link(bookingID uuid.UUID) string
}

type staticLink string

func (s staticLink) Link(uuid.UUID) string { return string(s) }

type uniqueLink struct {
	base string
}

func (u uniqueLink) Link(id uuid.UUID) string {
	return u.base + "/" + id.String()
}

// NewMeetingLinkProvider builds the provider for mode. "static" shares one
// link across every booking; "unique" appends the booking id to base.
func NewMeetingLinkProvider(mode, static, base string) (MeetingLinkProvider, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", LinkModeStatic:
		if static = strings.TrimSpace(static); static == "" {
			static = DefaultMeetingLink
		}
		return staticLink(static), nil
	case LinkModeUnique:
		base = strings.TrimRight(strings.TrimSpace(base), "/")
		if base == "" {
			return nil, fmt.Errorf("meeting links: unique mode requires a base url")
		}
		return uniqueLink{base: base}, nil
	default:
		return nil, fmt.Errorf("meeting links: unknown mode %q", mode)
	}
}
