package service

import (
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
	"github.com/sirupsen/logrus"
)

type Services struct {
	Notification *notificationService
	Scheduler    *scheduler
}

// New wires the notification service and its per-organization scheduler.
// legacyPath points at the pre-multi-tenant settings file imported on first
// read; pass "" to disable the migration.
func New(dm contract.DataManager, notifier contract.Notifier, log *logrus.Logger, orgID, legacyPath string) *Services {
	notification := newNotification(dm, notifier, log, legacyPath)

	return &Services{
		Notification: notification,
		Scheduler:    newScheduler(orgID, notification, dm, log),
	}
}
