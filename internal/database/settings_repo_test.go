package database

import (
	"testing"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_UpsertAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSettingsRepo(db.conn)

	settings := &entity.NotificationSettings{
		OrgID:         "org-123",
		Enabled:       true,
		ScheduledTime: "09:00",
		Recipients:    []string{"Alice", "Bob"},
		Credential:    "line-token",
		Destination:   "group-42",
	}

	err := repo.Upsert(settings)
	require.NoError(t, err, "Failed to upsert settings")
	assert.NotZero(t, settings.ID, "Expected settings ID to be set after creation")

	found, err := repo.GetByOrg("org-123")
	require.NoError(t, err, "Failed to get settings by org")
	require.NotNil(t, found, "Expected to find settings")

	assert.Equal(t, settings.OrgID, found.OrgID)
	assert.True(t, found.Enabled)
	assert.Equal(t, "09:00", found.ScheduledTime)
	assert.Equal(t, []string{"Alice", "Bob"}, found.Recipients)
	assert.Equal(t, "line-token", found.Credential)
	assert.Equal(t, "group-42", found.Destination)
	assert.Empty(t, found.LastSentDate)
}

func TestSettingsRepo_GetByOrg_notFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSettingsRepo(db.conn)

	found, err := repo.GetByOrg("nonexistent")
	require.NoError(t, err, "Unexpected error when settings not found")
	assert.Nil(t, found, "Expected nil when settings not found")
}

func TestSettingsRepo_Upsert_overwritesInPlace(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSettingsRepo(db.conn)

	original := &entity.NotificationSettings{
		OrgID:         "org-123",
		Enabled:       false,
		ScheduledTime: "18:30",
		Recipients:    []string{},
	}
	require.NoError(t, repo.Upsert(original))

	updated := &entity.NotificationSettings{
		OrgID:         "org-123",
		Enabled:       true,
		ScheduledTime: "07:45",
		Recipients:    []string{"Carol"},
		Credential:    "new-token",
		Destination:   "group-7",
	}
	require.NoError(t, repo.Upsert(updated))

	found, err := repo.GetByOrg("org-123")
	require.NoError(t, err)
	require.NotNil(t, found)

	// Still a single record, overwritten in place.
	assert.Equal(t, original.ID, found.ID)
	assert.True(t, found.Enabled)
	assert.Equal(t, "07:45", found.ScheduledTime)
	assert.Equal(t, []string{"Carol"}, found.Recipients)
}

func TestSettingsRepo_MarkSent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSettingsRepo(db.conn)

	settings := &entity.NotificationSettings{
		OrgID:         "org-123",
		Enabled:       true,
		ScheduledTime: "09:00",
		Recipients:    []string{"Alice"},
		Credential:    "line-token",
		Destination:   "group-42",
	}
	require.NoError(t, repo.Upsert(settings))

	err := repo.MarkSent("org-123", "2024-06-10", "2024-06-10 09:01:00")
	require.NoError(t, err, "Failed to mark settings as sent")

	found, err := repo.GetByOrg("org-123")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "2024-06-10", found.LastSentDate)
	assert.Equal(t, "2024-06-10 09:01:00", found.LastSentDateTime)
	// Other fields stay untouched.
	assert.Equal(t, []string{"Alice"}, found.Recipients)
	assert.Equal(t, "line-token", found.Credential)
}
