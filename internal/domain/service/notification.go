package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/report"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Configuration errors reported synchronously, before any network attempt.
var (
	ErrMissingCredential    = errors.New("LINE credential is not configured")
	ErrMissingDestination   = errors.New("LINE destination is not configured")
	ErrNoRecipients         = errors.New("no report recipients configured")
	ErrInvalidScheduledTime = errors.New("scheduled time must be in HH:MM format")
)

type notificationService struct {
	dm         contract.DataManager
	notifier   contract.Notifier
	log        *logrus.Logger
	legacyPath string
}

func newNotification(dm contract.DataManager, notifier contract.Notifier, log *logrus.Logger, legacyPath string) *notificationService {
	return &notificationService{
		dm:         dm,
		notifier:   notifier,
		log:        log,
		legacyPath: legacyPath,
	}
}

// GetSettings loads the organization's notification settings. When no record
// exists it tries a one-shot import of the legacy single-tenant settings
// file; when that is absent too, it returns (without persisting) defaults.
func (s *notificationService) GetSettings(ctx context.Context, orgID string) (*entity.NotificationSettings, error) {
	settings, err := s.dm.Settings().GetByOrg(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}
	if settings != nil {
		return settings, nil
	}

	migrated, err := s.migrateLegacySettings(orgID)
	if err != nil {
		s.log.WithField("org_id", orgID).Warnf("Legacy settings migration failed: %v", err)
	}
	if migrated != nil {
		return migrated, nil
	}

	return defaultSettings(orgID), nil
}

func defaultSettings(orgID string) *entity.NotificationSettings {
	return &entity.NotificationSettings{
		OrgID:         orgID,
		Enabled:       false,
		ScheduledTime: domain.DefaultScheduledTime,
		Recipients:    []string{},
	}
}

// legacySettings mirrors the JSON layout written by the pre-multi-tenant
// build, which kept a single settings blob on the client.
type legacySettings struct {
	Enabled       bool     `json:"enabled"`
	ScheduledTime string   `json:"scheduledTime"`
	Recipients    []string `json:"recipients"`
	Token         string   `json:"token"`
	GroupID       string   `json:"groupId"`
	LastSentDate  string   `json:"lastSentDate"`
}

// migrateLegacySettings imports the legacy settings file into the
// organization-scoped store. Once the record exists, GetSettings never calls
// this again, so the import runs at most once.
func (s *notificationService) migrateLegacySettings(orgID string) (*entity.NotificationSettings, error) {
	if s.legacyPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(s.legacyPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy settings file: %w", err)
	}

	var legacy legacySettings
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("failed to parse legacy settings file: %w", err)
	}

	settings := &entity.NotificationSettings{
		OrgID:         orgID,
		Enabled:       legacy.Enabled,
		ScheduledTime: legacy.ScheduledTime,
		Recipients:    legacy.Recipients,
		Credential:    legacy.Token,
		Destination:   legacy.GroupID,
		LastSentDate:  legacy.LastSentDate,
	}
	if settings.ScheduledTime == "" {
		settings.ScheduledTime = domain.DefaultScheduledTime
	}
	if settings.Recipients == nil {
		settings.Recipients = []string{}
	}

	if err := s.dm.Settings().Upsert(settings); err != nil {
		return nil, fmt.Errorf("failed to store migrated settings: %w", err)
	}

	s.log.WithField("org_id", orgID).Info("Migrated legacy notification settings")
	return settings, nil
}

// SaveSettings validates and overwrites the organization's settings record.
func (s *notificationService) SaveSettings(ctx context.Context, settings *entity.NotificationSettings) error {
	if settings.OrgID == "" {
		return errors.New("organization id is required")
	}
	if _, ok := parseClockMinutes(settings.ScheduledTime); !ok {
		return ErrInvalidScheduledTime
	}
	if settings.Recipients == nil {
		settings.Recipients = []string{}
	}

	if err := s.dm.Settings().Upsert(settings); err != nil {
		return fmt.Errorf("failed to save notification settings: %w", err)
	}

	return nil
}

// SendNow delivers a report immediately, bypassing the daily gate. It is the
// backend of the dashboard's test-send button. The day marker is not updated,
// so a manual send never suppresses that day's automatic one.
func (s *notificationService) SendNow(ctx context.Context, orgID string) error {
	settings, err := s.GetSettings(ctx, orgID)
	if err != nil {
		return err
	}

	recipients, err := s.resolveRecipients(settings)
	if err != nil {
		return err
	}

	return s.deliver(ctx, settings, recipients, time.Now())
}

// resolveRecipients validates the send configuration. An empty recipient
// selection falls back to every active member of the organization.
func (s *notificationService) resolveRecipients(settings *entity.NotificationSettings) ([]string, error) {
	if settings.Credential == "" {
		return nil, ErrMissingCredential
	}
	if settings.Destination == "" {
		return nil, ErrMissingDestination
	}

	if len(settings.Recipients) > 0 {
		return settings.Recipients, nil
	}

	members, err := s.dm.Member().GetActiveByOrg(settings.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	var names []string
	for _, m := range members {
		names = append(names, m.Name)
	}
	if len(names) == 0 {
		return nil, ErrNoRecipients
	}

	return names, nil
}

// deliver generates today's report for the recipients and pushes it through
// the relay. Every attempt is appended to the send log; the last-sent marker
// is the caller's responsibility.
func (s *notificationService) deliver(ctx context.Context, settings *entity.NotificationSettings, recipients []string, now time.Time) error {
	date := now.Format(domain.DateLayout)

	tasks, err := s.dm.Task().GetByOrg(settings.OrgID)
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	routines, err := s.dm.Routine().GetByOrg(settings.OrgID)
	if err != nil {
		return fmt.Errorf("failed to get routines: %w", err)
	}

	text := report.Generate(recipients, date, tasks, routines, now)

	if err := s.notifier.Send(ctx, settings.Credential, settings.Destination, text); err != nil {
		s.recordSend(settings.OrgID, domain.SendStatusFailed, err, now)
		return fmt.Errorf("failed to send report: %w", err)
	}

	s.recordSend(settings.OrgID, domain.SendStatusSent, nil, now)
	s.log.WithField("org_id", settings.OrgID).Infof("Report sent to %d recipients", len(recipients))
	return nil
}

func (s *notificationService) recordSend(orgID, status string, sendErr error, now time.Time) {
	log := &entity.SendLog{
		ID:     uuid.NewString(),
		OrgID:  orgID,
		Status: status,
		SentAt: now,
	}
	if sendErr != nil {
		log.Error = sendErr.Error()
	}

	if err := s.dm.SendLog().Create(log); err != nil {
		s.log.WithField("org_id", orgID).Warnf("Failed to record send log: %v", err)
	}
}

// GetSendLogs returns the most recent delivery attempts for the organization.
func (s *notificationService) GetSendLogs(ctx context.Context, orgID string, limit int) ([]*entity.SendLog, error) {
	logs, err := s.dm.SendLog().GetRecentByOrg(orgID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get send logs: %w", err)
	}
	return logs, nil
}
