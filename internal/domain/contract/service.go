package contract

import (
	"context"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
)

type NotificationService interface {
	GetSettings(ctx context.Context, orgID string) (*entity.NotificationSettings, error)
	SaveSettings(ctx context.Context, settings *entity.NotificationSettings) error
	SendNow(ctx context.Context, orgID string) error
	GetSendLogs(ctx context.Context, orgID string, limit int) ([]*entity.SendLog, error)
}
