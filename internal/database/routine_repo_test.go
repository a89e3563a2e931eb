package database

import (
	"testing"
	"time"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRoutineRepo(db.conn)

	completedAt := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	routine := &entity.Routine{
		OrgID:           "org-123",
		Name:            "朝会",
		Assignee:        "Alice",
		Category:        "meeting",
		ScheduledTime:   "09:30",
		DurationMinutes: 15,
		Date:            "2024-06-10",
		Completed:       true,
		CompletedAt:     &completedAt,
	}
	require.NoError(t, repo.Create(routine), "Failed to create routine")
	assert.NotZero(t, routine.ID)

	skipped := &entity.Routine{
		OrgID:      "org-123",
		Name:       "受信箱整理",
		Assignee:   "Alice",
		Date:       "2024-06-10",
		SkipReason: "外出のため",
	}
	require.NoError(t, repo.Create(skipped))

	routines, err := repo.GetByOrg("org-123")
	require.NoError(t, err, "Failed to get routines")
	require.Len(t, routines, 2)

	assert.Equal(t, "朝会", routines[0].Name)
	assert.True(t, routines[0].Completed)
	require.NotNil(t, routines[0].CompletedAt)
	assert.True(t, completedAt.Equal(*routines[0].CompletedAt))

	assert.Equal(t, "受信箱整理", routines[1].Name)
	assert.False(t, routines[1].Completed)
	assert.Nil(t, routines[1].CompletedAt)
	assert.Equal(t, "外出のため", routines[1].SkipReason)
}

func TestMemberRepo_CreateAndGetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	alice := &entity.Member{OrgID: "org-123", Name: "Alice", IsActive: true}
	require.NoError(t, repo.Create(alice), "Failed to create member")
	assert.NotZero(t, alice.ID)

	inactive := &entity.Member{OrgID: "org-123", Name: "Bob", IsActive: false}
	require.NoError(t, repo.Create(inactive))

	members, err := repo.GetActiveByOrg("org-123")
	require.NoError(t, err, "Failed to get active members")
	require.Len(t, members, 1)
	assert.Equal(t, "Alice", members[0].Name)
}

func TestSendLogRepo_CreateAndGetRecent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSendLogRepo(db.conn)

	older := &entity.SendLog{
		ID:     "log-1",
		OrgID:  "org-123",
		Status: domain.SendStatusFailed,
		Error:  "relay returned status 502",
		SentAt: time.Date(2024, 6, 9, 18, 30, 0, 0, time.UTC),
	}
	newer := &entity.SendLog{
		ID:     "log-2",
		OrgID:  "org-123",
		Status: domain.SendStatusSent,
		SentAt: time.Date(2024, 6, 10, 18, 30, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(older), "Failed to create send log")
	require.NoError(t, repo.Create(newer))

	logs, err := repo.GetRecentByOrg("org-123", 10)
	require.NoError(t, err, "Failed to get send logs")
	require.Len(t, logs, 2)

	// Most recent first.
	assert.Equal(t, "log-2", logs[0].ID)
	assert.Equal(t, domain.SendStatusSent, logs[0].Status)
	assert.Equal(t, "log-1", logs[1].ID)
	assert.Equal(t, "relay returned status 502", logs[1].Error)

	limited, err := repo.GetRecentByOrg("org-123", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "log-2", limited[0].ID)
}
