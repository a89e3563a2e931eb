package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
)

type settingsRepo struct {
	db dbConn
}

func newSettingsRepo(db dbConn) contract.SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetByOrg(orgID string) (*entity.NotificationSettings, error) {
	settings := &entity.NotificationSettings{}
	query := `
		SELECT id, org_id, enabled, scheduled_time, recipients, credential,
			destination, last_sent_date, last_sent_datetime, created_at, updated_at
		FROM notification_settings
		WHERE org_id = ?
	`

	var recipientsJSON string
	var lastSentDate, lastSentDateTime sql.NullString
	err := r.db.QueryRow(query, orgID).Scan(
		&settings.ID,
		&settings.OrgID,
		&settings.Enabled,
		&settings.ScheduledTime,
		&recipientsJSON,
		&settings.Credential,
		&settings.Destination,
		&lastSentDate,
		&lastSentDateTime,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}

	if err := json.Unmarshal([]byte(recipientsJSON), &settings.Recipients); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipients: %w", err)
	}
	settings.LastSentDate = lastSentDate.String
	settings.LastSentDateTime = lastSentDateTime.String

	return settings, nil
}

func (r *settingsRepo) Upsert(settings *entity.NotificationSettings) error {
	query := `
		INSERT INTO notification_settings
			(org_id, enabled, scheduled_time, recipients, credential, destination, last_sent_date, last_sent_datetime)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(org_id) DO UPDATE SET
			enabled = excluded.enabled,
			scheduled_time = excluded.scheduled_time,
			recipients = excluded.recipients,
			credential = excluded.credential,
			destination = excluded.destination,
			last_sent_date = excluded.last_sent_date,
			last_sent_datetime = excluded.last_sent_datetime,
			updated_at = CURRENT_TIMESTAMP
	`

	recipientsJSON, err := json.Marshal(settings.Recipients)
	if err != nil {
		return fmt.Errorf("failed to marshal recipients: %w", err)
	}

	result, err := r.db.Exec(query,
		settings.OrgID,
		settings.Enabled,
		settings.ScheduledTime,
		string(recipientsJSON),
		settings.Credential,
		settings.Destination,
		nullableString(settings.LastSentDate),
		nullableString(settings.LastSentDateTime),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert notification settings: %w", err)
	}

	if settings.ID == 0 {
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		settings.ID = id
	}

	return nil
}

// MarkSent stamps the idempotency markers after a confirmed successful send.
func (r *settingsRepo) MarkSent(orgID, sentDate, sentDateTime string) error {
	query := `
		UPDATE notification_settings SET
			last_sent_date = ?,
			last_sent_datetime = ?,
			updated_at = ?
		WHERE org_id = ?
	`

	_, err := r.db.Exec(query, sentDate, sentDateTime, time.Now(), orgID)
	if err != nil {
		return fmt.Errorf("failed to mark settings as sent: %w", err)
	}

	return nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
