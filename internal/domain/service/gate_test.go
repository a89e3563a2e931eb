package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ShouldSend(t *testing.T) {
	day := func(hour, minute int) time.Time {
		return time.Date(2024, 6, 10, hour, minute, 0, 0, time.UTC)
	}

	type args struct {
		scheduledTime string
		lastSentDate  string
		now           time.Time
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "Should not fire before the scheduled time",
			args: args{scheduledTime: "18:30", lastSentDate: "", now: day(18, 29)},
			want: false,
		},
		{
			name: "Should fire exactly at the scheduled minute",
			args: args{scheduledTime: "18:30", lastSentDate: "", now: day(18, 30)},
			want: true,
		},
		{
			name: "Should keep firing any time later the same day",
			args: args{scheduledTime: "18:30", lastSentDate: "", now: day(23, 59)},
			want: true,
		},
		{
			name: "Should not fire when already sent today",
			args: args{scheduledTime: "18:30", lastSentDate: "2024-06-10", now: day(23, 59)},
			want: false,
		},
		{
			name: "Should not fire when already sent today even at the scheduled minute",
			args: args{scheduledTime: "00:00", lastSentDate: "2024-06-10", now: day(0, 0)},
			want: false,
		},
		{
			name: "Should fire again the next day",
			args: args{scheduledTime: "18:30", lastSentDate: "2024-06-09", now: day(18, 30)},
			want: true,
		},
		{
			name: "Should not fire for malformed scheduled time",
			args: args{scheduledTime: "invalid", lastSentDate: "", now: day(23, 59)},
			want: false,
		},
		{
			name: "Should not fire for out-of-range hour",
			args: args{scheduledTime: "24:00", lastSentDate: "", now: day(23, 59)},
			want: false,
		},
		{
			name: "Should not fire for out-of-range minute",
			args: args{scheduledTime: "10:60", lastSentDate: "", now: day(23, 59)},
			want: false,
		},
		{
			name: "Should not fire for empty scheduled time",
			args: args{scheduledTime: "", lastSentDate: "", now: day(23, 59)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldSend(tt.args.scheduledTime, tt.args.lastSentDate, tt.args.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The gate only looks at wall-clock fields, so the same instant can gate
// differently depending on the zone it is evaluated in. This pins down the
// behavior around DST-style offset changes.
func Test_ShouldSend_wallClockSemantics(t *testing.T) {
	instant := time.Date(2024, 6, 10, 17, 30, 0, 0, time.UTC)

	east := time.FixedZone("UTC+2", 2*60*60)
	west := time.FixedZone("UTC-2", -2*60*60)

	// 19:30 local in the east, 15:30 local in the west.
	assert.True(t, ShouldSend("18:30", "", instant.In(east)))
	assert.False(t, ShouldSend("18:30", "", instant.In(west)))

	// A clock stepping backwards across midnight re-opens the gate only
	// because the calendar date changed; same-day backward steps stay closed.
	assert.False(t, ShouldSend("18:30", "2024-06-10", instant.In(west)))
	assert.True(t, ShouldSend("12:00", "2024-06-09", instant.In(west)))
}
