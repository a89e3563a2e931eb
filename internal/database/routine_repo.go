package database

import (
	"database/sql"
	"fmt"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
)

type routineRepo struct {
	db dbConn
}

func newRoutineRepo(db dbConn) contract.RoutineRepo {
	return &routineRepo{db: db}
}

func (r *routineRepo) Create(routine *entity.Routine) error {
	query := `
		INSERT INTO routines (org_id, name, assignee, category, scheduled_time, duration_minutes, date, completed, completed_at, skip_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		routine.OrgID,
		routine.Name,
		routine.Assignee,
		routine.Category,
		routine.ScheduledTime,
		routine.DurationMinutes,
		routine.Date,
		routine.Completed,
		routine.CompletedAt,
		routine.SkipReason,
	)
	if err != nil {
		return fmt.Errorf("failed to create routine: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	routine.ID = id
	return nil
}

func (r *routineRepo) GetByOrg(orgID string) ([]*entity.Routine, error) {
	query := `
		SELECT id, org_id, name, assignee, category, scheduled_time,
			duration_minutes, date, completed, completed_at, skip_reason, created_at
		FROM routines
		WHERE org_id = ?
		ORDER BY date, id
	`

	rows, err := r.db.Query(query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get routines: %w", err)
	}
	defer rows.Close()

	var routines []*entity.Routine
	for rows.Next() {
		routine := &entity.Routine{}
		var completedAt sql.NullTime
		err := rows.Scan(
			&routine.ID,
			&routine.OrgID,
			&routine.Name,
			&routine.Assignee,
			&routine.Category,
			&routine.ScheduledTime,
			&routine.DurationMinutes,
			&routine.Date,
			&routine.Completed,
			&completedAt,
			&routine.SkipReason,
			&routine.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan routine: %w", err)
		}
		if completedAt.Valid {
			t := completedAt.Time
			routine.CompletedAt = &t
		}
		routines = append(routines, routine)
	}

	return routines, nil
}
