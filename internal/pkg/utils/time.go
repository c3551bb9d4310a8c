package utils

import (
	"mindcare-service/internal/pkg/constvars"
	"time"
)

// CalendarDate formats the calendar date of t as seen in loc.
func CalendarDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(constvars.DashboardDateLayout)
}
