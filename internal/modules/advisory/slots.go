package advisory

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime = errors.New("invalid time, expected HH:MM")
	ErrOffGrid     = errors.New("time is not an available slot")

	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

// Grid describes the daily booking slots: every Interval from StartHour up
// to, but excluding, EndHour.
type Grid struct {
	StartHour int
	EndHour   int
	Interval  time.Duration
}

func DefaultGrid() Grid {
	return Grid{StartHour: 9, EndHour: 17, Interval: 30 * time.Minute}
}

func (g Grid) Validate() error {
	switch {
	case g.StartHour < 0 || g.StartHour > 23:
		return fmt.Errorf("advisory grid: start hour %d out of range", g.StartHour)
	case g.EndHour < 1 || g.EndHour > 24:
		return fmt.Errorf("advisory grid: end hour %d out of range", g.EndHour)
	case g.EndHour <= g.StartHour:
		return fmt.Errorf("advisory grid: end hour %d not after start hour %d", g.EndHour, g.StartHour)
	case g.Interval < time.Minute || g.Interval%time.Minute != 0:
		return fmt.Errorf("advisory grid: interval %s must be a whole number of minutes", g.Interval)
	case time.Duration(g.EndHour-g.StartHour)*time.Hour < g.Interval:
		return fmt.Errorf("advisory grid: interval %s longer than the day window", g.Interval)
	}
	return nil
}

// Slots lists every slot start as "HH:MM", ascending.
func (g Grid) Slots() []string {
	out := []string{}
	if g.Validate() != nil {
		return out
	}
	end := time.Duration(g.EndHour) * time.Hour
	for t := time.Duration(g.StartHour) * time.Hour; t < end; t += g.Interval {
		mins := int(t / time.Minute)
		out = append(out, fmt.Sprintf("%02d:%02d", mins/60, mins%60))
	}
	return out
}

func (g Grid) Contains(hhmm string) bool {
	for _, s := range g.Slots() {
		if s == hhmm {
			return true
		}
	}
	return false
}

// Available returns the grid slots not present in taken, in grid order.
func (g Grid) Available(taken []string) []string {
	busy := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		busy[t] = struct{}{}
	}
	out := []string{}
	for _, s := range g.Slots() {
		if _, ok := busy[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// ParseDate accepts YYYY-MM-DD naming a real calendar day.
func ParseDate(raw string) (string, error) {
	if !dateRe.MatchString(raw) {
		return "", ErrInvalidDate
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", ErrInvalidDate
	}
	return d.Format(DateLayout), nil
}

// NormalizeTime accepts H:MM or HH:MM and returns HH:MM.
func NormalizeTime(raw string) (string, error) {
	m := timeRe.FindStringSubmatch(raw)
	if m == nil {
		return "", ErrInvalidTime
	}
	h, _ := strconv.Atoi(m[1])
	return fmt.Sprintf("%02d:%s", h, m[2]), nil
}
