package utils

import (
	"abdm-link-service/internal/pkg/constvars"
	"fmt"
	"strings"
	"time"
)

// FormatAppointmentTimeRange renders start and end as "03:04 PM - 04:04 PM".
// An unparseable side is replaced by a marker; when both sides fail the whole
// range is reported invalid.
func FormatAppointmentTimeRange(start, end string) string {
	startTime, startErr := ParseAppointmentTime(start)
	endTime, endErr := ParseAppointmentTime(end)

	switch {
	case startErr != nil && endErr != nil:
		return constvars.AppointmentInvalidDateRange
	case startErr != nil:
		return fmt.Sprintf(constvars.AppointmentTimeRangeFormat, constvars.AppointmentInvalidStartTime, endTime.Format(constvars.AppointmentTimeLayout))
	case endErr != nil:
		return fmt.Sprintf(constvars.AppointmentTimeRangeFormat, startTime.Format(constvars.AppointmentTimeLayout), constvars.AppointmentInvalidEndTime)
	default:
		return fmt.Sprintf(constvars.AppointmentTimeRangeFormat, startTime.Format(constvars.AppointmentTimeLayout), endTime.Format(constvars.AppointmentTimeLayout))
	}
}

// ParseAppointmentTime reads an offset date-time, with or without seconds,
// falling back to a bare date anchored at midnight UTC.
func ParseAppointmentTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, nil
	}

	parsed, minuteErr := time.Parse(constvars.AppointmentNoSecondsLayout, value)
	if minuteErr == nil {
		return parsed, nil
	}

	date, dateErr := time.ParseInLocation(constvars.AppointmentDateOnlyLayout, value, time.UTC)
	if dateErr != nil {
		return time.Time{}, err
	}
	return date, nil
}
