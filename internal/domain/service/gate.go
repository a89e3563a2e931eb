package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain"
)

// ShouldSend decides whether an automatic send should fire at now.
//
// It returns false whenever lastSentDate equals now's calendar date, so at
// most one automatic send happens per day no matter how often it is polled.
// Otherwise it returns true once now has reached or passed scheduledTime and
// stays true for the rest of the day until a successful send stamps the day
// marker. A malformed scheduledTime yields false; the function never panics.
func ShouldSend(scheduledTime, lastSentDate string, now time.Time) bool {
	if lastSentDate != "" && lastSentDate == now.Format(domain.DateLayout) {
		return false
	}

	scheduled, ok := parseClockMinutes(scheduledTime)
	if !ok {
		return false
	}

	return now.Hour()*60+now.Minute() >= scheduled
}

// parseClockMinutes converts an "HH:MM" 24-hour string into minutes since
// midnight. ok is false for anything that is not a valid clock time.
func parseClockMinutes(clock string) (minutes int, ok bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}
