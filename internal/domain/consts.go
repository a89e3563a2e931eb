package domain

// Task status values as stored in the tasks table.
const (
	TaskStatusTodo      = "todo"
	TaskStatusActive    = "active"
	TaskStatusBlocked   = "blocked"
	TaskStatusCompleted = "completed"
)

// Task priority values, highest first.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// PriorityGlyphs maps a task priority to the glyph shown before the task name.
var PriorityGlyphs = map[string]string{
	PriorityUrgent: "🚨",
	PriorityHigh:   "🔴",
	PriorityMedium: "🟡",
	PriorityLow:    "🟢",
}

// PriorityRank orders priorities for report output (urgent > high > medium > low).
var PriorityRank = map[string]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

// Routine completion-rate tiers. Boundaries are inclusive.
const (
	RoutineRateCelebrate = 80
	RoutineRatePositive  = 50
)

// Send log status values.
const (
	SendStatusSent   = "sent"
	SendStatusFailed = "failed"
)

// DefaultScheduledTime is used when an organization has no saved settings yet.
const DefaultScheduledTime = "18:30"

// Date and time layouts shared across the report, gate and repositories.
const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DateTimeLayout = "2006-01-02 15:04:05"
)
