package contract

import (
	"context"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Settings() SettingsRepo
	Member() MemberRepo
	Project() ProjectRepo
	Task() TaskRepo
	Routine() RoutineRepo
	SendLog() SendLogRepo
}

// SettingsRepo defines the contract for the notification settings repository
type SettingsRepo interface {
	GetByOrg(orgID string) (*entity.NotificationSettings, error)
	Upsert(settings *entity.NotificationSettings) error
	MarkSent(orgID, sentDate, sentDateTime string) error
}

// MemberRepo defines the contract for the member repository
type MemberRepo interface {
	Create(member *entity.Member) error
	GetActiveByOrg(orgID string) ([]*entity.Member, error)
}

// ProjectRepo defines the contract for the project repository
type ProjectRepo interface {
	Create(project *entity.Project) error
	GetByOrg(orgID string) ([]*entity.Project, error)
}

// TaskRepo defines the contract for the task repository
type TaskRepo interface {
	Create(task *entity.Task) error
	GetByOrg(orgID string) ([]*entity.Task, error)
}

// RoutineRepo defines the contract for the routine repository
type RoutineRepo interface {
	Create(routine *entity.Routine) error
	GetByOrg(orgID string) ([]*entity.Routine, error)
}

// SendLogRepo defines the contract for the send log repository
type SendLogRepo interface {
	Create(log *entity.SendLog) error
	GetRecentByOrg(orgID string, limit int) ([]*entity.SendLog, error)
}
