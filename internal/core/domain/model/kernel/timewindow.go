package kernel

import (
	"errors"
	"fmt"
	"strconv"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// minutesPerHour is the number of minutes in one hour.
	minutesPerHour = 60
	// MinutesPerDay is the number of minutes in one day; all window instants live in [0, MinutesPerDay).
	MinutesPerDay = 24 * minutesPerHour
	// timeWindowTokenLength is the fixed length of the "HH:MM-HH:MM" wire token.
	timeWindowTokenLength = 11
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an improperly initialized TimeWindow.
// Time windows must be created using NewTimeWindow or ParseTimeWindow constructors to ensure validity.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow or ParseTimeWindow constructors")

// TimeWindow represents a daily recurring interval between two times of day.
// It is an immutable value object parsed from the fixed-width "HH:MM-HH:MM" token.
// A window whose start is later than its end wraps past midnight: "22:00-02:00"
// covers [22:00, 24:00) plus [00:00, 02:00).
//
// The interval is half-open: the start instant belongs to the window, the end
// instant does not. Two windows that merely touch ("09:00-10:00" and
// "10:00-11:00") therefore do not overlap.
//
// Example:
//
//	window, err := kernel.ParseTimeWindow("11:35-14:05")
//	if err != nil {
//	    // Handle malformed token
//	}
//	fmt.Println(window) // Output: 11:35-14:05
type TimeWindow struct { //nolint:recvcheck //using for validation
	start int
	end   int
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow from start and end instants expressed as
// minutes since midnight. Both must lie in [0, MinutesPerDay). start > end is
// valid and means the window wraps past midnight.
func NewTimeWindow(start int, end int) (TimeWindow, error) {
	w := TimeWindow{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(w.setStart(start), w.setEnd(end)); err != nil {
		return TimeWindow{}, err
	}

	return w, nil
}

// ParseTimeWindow creates a TimeWindow from its fixed-width "HH:MM-HH:MM" token.
// Hours must be in [0, 23] and minutes in [0, 59]; anything else is rejected.
func ParseTimeWindow(token string) (TimeWindow, error) {
	if len(token) != timeWindowTokenLength || token[5] != '-' {
		return TimeWindow{}, errs.NewValueIsInvalidError("time window token")
	}

	start, err := parseClock(token[:5])
	if err != nil {
		return TimeWindow{}, err
	}

	end, err := parseClock(token[6:])
	if err != nil {
		return TimeWindow{}, err
	}

	return NewTimeWindow(start, end)
}

// ParseTimeWindows converts a slice of "HH:MM-HH:MM" tokens into time windows,
// preserving order. Fails on the first malformed token.
func ParseTimeWindows(tokens []string) ([]TimeWindow, error) {
	windows := make([]TimeWindow, 0, len(tokens))
	for _, token := range tokens {
		w, err := ParseTimeWindow(token)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// FormatTimeWindows converts time windows back to their wire tokens, preserving order.
func FormatTimeWindows(windows []TimeWindow) []string {
	tokens := make([]string, 0, len(windows))
	for _, w := range windows {
		tokens = append(tokens, w.String())
	}
	return tokens
}

// parseClock converts an "HH:MM" half of the token to minutes since midnight.
func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, errs.NewValueIsInvalidError("time window token")
	}

	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("time window token", err)
	}
	if hour < 0 || hour > 23 {
		return 0, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}

	minute, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("time window token", err)
	}
	if minute < 0 || minute > 59 {
		return 0, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}

	return hour*minutesPerHour + minute, nil
}

// setStart assigns the start instant after validating it lies within a day.
func (w *TimeWindow) setStart(start int) error {
	if start < 0 || start >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("start", start, 0, MinutesPerDay-1)
	}
	w.start = start
	return nil
}

// setEnd assigns the end instant after validating it lies within a day.
func (w *TimeWindow) setEnd(end int) error {
	if end < 0 || end >= MinutesPerDay {
		return errs.NewValueIsOutOfRangeError("end", end, 0, MinutesPerDay-1)
	}
	w.end = end
	return nil
}

// Validate checks if the TimeWindow was properly constructed using a constructor.
// The zero value of TimeWindow is invalid and will fail this validation.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the window's start instant in minutes since midnight.
func (w TimeWindow) Start() int {
	return w.start
}

// End returns the window's end instant in minutes since midnight.
func (w TimeWindow) End() int {
	return w.end
}

// WrapsMidnight reports whether the window spans across 00:00.
func (w TimeWindow) WrapsMidnight() bool {
	return w.start > w.end
}

// Contains reports whether the instant (minutes since midnight) falls within
// the window, honoring the half-open interval and midnight wraparound.
func (w TimeWindow) Contains(instant int) bool {
	if w.start <= w.end {
		return w.start <= instant && instant < w.end
	}
	return instant >= w.start || instant < w.end
}

// Overlaps reports whether two windows share at least one instant.
// Overlap is symmetric: either window's start lies within the other's span.
func (w TimeWindow) Overlaps(other TimeWindow) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return w.Contains(other.start) || other.Contains(w.start), nil
}

// AnyOverlap reports whether any window from the first sequence overlaps any
// window from the second. O(len(a)·len(b)), which is fine for the handful of
// windows couriers and orders carry.
func AnyOverlap(a []TimeWindow, b []TimeWindow) (bool, error) {
	for _, wa := range a {
		for _, wb := range b {
			overlaps, err := wa.Overlaps(wb)
			if err != nil {
				return false, err
			}
			if overlaps {
				return true, nil
			}
		}
	}
	return false, nil
}

// String renders the window as its canonical "HH:MM-HH:MM" token.
func (w TimeWindow) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		w.start/minutesPerHour, w.start%minutesPerHour,
		w.end/minutesPerHour, w.end%minutesPerHour)
}

// IsEqual compares two windows by their start and end instants.
func (w TimeWindow) IsEqual(other TimeWindow) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}
	return w.start == other.start && w.end == other.end, nil
}
