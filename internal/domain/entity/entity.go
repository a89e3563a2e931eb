package entity

import "time"

// NotificationSettings holds the daily report configuration for one
// organization. There is exactly one record per organization and it is
// overwritten in place.
type NotificationSettings struct {
	ID               int64     `json:"id"`
	OrgID            string    `json:"org_id"`
	Enabled          bool      `json:"enabled"`
	ScheduledTime    string    `json:"scheduled_time"` // HH:MM, 24-hour
	Recipients       []string  `json:"recipients"`
	Credential       string    `json:"credential"`
	Destination      string    `json:"destination"`
	LastSentDate     string    `json:"last_sent_date,omitempty"` // YYYY-MM-DD, empty when never sent
	LastSentDateTime string    `json:"last_sent_datetime,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Member struct {
	ID        int64     `json:"id"`
	OrgID     string    `json:"org_id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID        int64     `json:"id"`
	OrgID     string    `json:"org_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Progress  int       `json:"progress"` // 0-100, maintained by the dashboard, never recomputed from tasks
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Task struct {
	ID            int64     `json:"id"`
	OrgID         string    `json:"org_id"`
	ProjectID     int64     `json:"project_id"`
	Name          string    `json:"name"`
	Assignee      string    `json:"assignee"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	Progress      int       `json:"progress"`
	DueDate       string    `json:"due_date,omitempty"`       // YYYY-MM-DD
	CompletedDate string    `json:"completed_date,omitempty"` // YYYY-MM-DD
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Populated from the projects table on read.
	ProjectName     string `json:"project_name,omitempty"`
	ProjectColor    string `json:"project_color,omitempty"`
	ProjectProgress int    `json:"project_progress,omitempty"`
}

// Routine is one dated instance of a recurring activity.
type Routine struct {
	ID              int64      `json:"id"`
	OrgID           string     `json:"org_id"`
	Name            string     `json:"name"`
	Assignee        string     `json:"assignee"`
	Category        string     `json:"category"`
	ScheduledTime   string     `json:"scheduled_time"` // HH:MM
	DurationMinutes int        `json:"duration_minutes"`
	Date            string     `json:"date"` // YYYY-MM-DD
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	SkipReason      string     `json:"skip_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SendLog records one delivery attempt of a daily report.
type SendLog struct {
	ID     string    `json:"id"`
	OrgID  string    `json:"org_id"`
	Status string    `json:"status"`
	Error  string    `json:"error,omitempty"`
	SentAt time.Time `json:"sent_at"`
}
