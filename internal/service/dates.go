package service

import (
	"fmt"
	"time"

	"staffhub/pkg/apperror"
)

const dateLayout = "2006-01-02"

// parseDate normalizes a calendar-day string to midnight UTC so that the
// (employee, date) uniqueness check compares whole days, not instants.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperror.ErrValidation, value)
	}
	return t.UTC(), nil
}
