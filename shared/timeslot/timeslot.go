// Package timeslot provides clock-time arithmetic for booking windows.
// Clock times are "HH:MM" strings; internally they are minutes since midnight.
package timeslot

import (
	"fmt"
	"time"

	"tablebook/shared/constant"
	"tablebook/shared/failure"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
	minutesPerDay  = hoursPerDay * minutesPerHour
)

// ToMinutes parses an "HH:MM" clock string into minutes since midnight.
func ToMinutes(clock string) (int, error) {
	if !IsClock(clock) {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid time format: %s, expected HH:MM", clock))
	}

	parsed, err := time.Parse(constant.ClockFormat, clock)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid time format: %s, expected HH:MM", clock))
	}

	return parsed.Hour()*minutesPerHour + parsed.Minute(), nil
}

// ToClock converts minutes since midnight into a zero-padded "HH:MM" string.
func ToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

// Overlaps reports whether two half-open intervals [existingStart, existingEnd)
// and [candidateStart, candidateEnd) share any instant. Touching intervals do
// not overlap, which keeps back-to-back bookings legal.
func Overlaps(existingStart, existingEnd, candidateStart, candidateEnd int) bool {
	return existingStart < candidateEnd && existingEnd > candidateStart
}

// WithinHours reports whether [start, end) fits entirely inside the operating
// window [opening, closing].
func WithinHours(opening, closing, start, end int) bool {
	return start >= opening && end <= closing
}

// EndTime returns the clock string duration minutes after start.
func EndTime(start string, durationMinutes int) (string, error) {
	startMinutes, err := ToMinutes(start)
	if err != nil {
		return "", err
	}

	return ToClock((startMinutes + durationMinutes) % minutesPerDay), nil
}

// IsClock reports whether s is a well-formed "HH:MM" clock string.
func IsClock(s string) bool {
	if len(s) != len(constant.ClockFormat) {
		return false
	}

	_, err := time.Parse(constant.ClockFormat, s)

	return err == nil
}

// IsDate reports whether s is a well-formed "YYYY-MM-DD" date string.
func IsDate(s string) bool {
	if len(s) != len(constant.DateOnly) {
		return false
	}

	_, err := time.Parse(constant.DateOnly, s)

	return err == nil
}
