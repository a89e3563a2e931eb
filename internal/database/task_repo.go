package database

import (
	"database/sql"
	"fmt"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
)

type taskRepo struct {
	db dbConn
}

func newTaskRepo(db dbConn) contract.TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(task *entity.Task) error {
	query := `
		INSERT INTO tasks (org_id, project_id, name, assignee, status, priority, progress, due_date, completed_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		task.OrgID,
		task.ProjectID,
		task.Name,
		task.Assignee,
		task.Status,
		task.Priority,
		task.Progress,
		nullableString(task.DueDate),
		nullableString(task.CompletedDate),
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	task.ID = id
	return nil
}

// GetByOrg returns the organization's tasks with the owning project's name,
// color and progress joined in for report rendering.
func (r *taskRepo) GetByOrg(orgID string) ([]*entity.Task, error) {
	query := `
		SELECT t.id, t.org_id, t.project_id, t.name, t.assignee, t.status,
			t.priority, t.progress, t.due_date, t.completed_date,
			t.created_at, t.updated_at,
			p.name, p.color, p.progress
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE t.org_id = ?
		ORDER BY t.id
	`

	rows, err := r.db.Query(query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*entity.Task
	for rows.Next() {
		task := &entity.Task{}
		var dueDate, completedDate sql.NullString
		err := rows.Scan(
			&task.ID,
			&task.OrgID,
			&task.ProjectID,
			&task.Name,
			&task.Assignee,
			&task.Status,
			&task.Priority,
			&task.Progress,
			&dueDate,
			&completedDate,
			&task.CreatedAt,
			&task.UpdatedAt,
			&task.ProjectName,
			&task.ProjectColor,
			&task.ProjectProgress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		task.DueDate = dueDate.String
		task.CompletedDate = completedDate.String
		tasks = append(tasks, task)
	}

	return tasks, nil
}
