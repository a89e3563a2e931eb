package database

import (
	"fmt"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
)

type projectRepo struct {
	db dbConn
}

func newProjectRepo(db dbConn) contract.ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (org_id, name, color, progress)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		project.OrgID,
		project.Name,
		project.Color,
		project.Progress,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	project.ID = id
	return nil
}

func (r *projectRepo) GetByOrg(orgID string) ([]*entity.Project, error) {
	query := `
		SELECT id, org_id, name, color, progress, created_at, updated_at
		FROM projects
		WHERE org_id = ?
		ORDER BY id
	`

	rows, err := r.db.Query(query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	var projects []*entity.Project
	for rows.Next() {
		project := &entity.Project{}
		err := rows.Scan(
			&project.ID,
			&project.OrgID,
			&project.Name,
			&project.Color,
			&project.Progress,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}
