package database

import (
	"fmt"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
)

type memberRepo struct {
	db dbConn
}

func newMemberRepo(db dbConn) contract.MemberRepo {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(member *entity.Member) error {
	query := `
		INSERT INTO members (org_id, name, is_active)
		VALUES (?, ?, ?)
	`

	result, err := r.db.Exec(query, member.OrgID, member.Name, member.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	member.ID = id
	return nil
}

func (r *memberRepo) GetActiveByOrg(orgID string) ([]*entity.Member, error) {
	query := `
		SELECT id, org_id, name, is_active, created_at
		FROM members
		WHERE org_id = ? AND is_active = 1
		ORDER BY id
	`

	rows, err := r.db.Query(query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		member := &entity.Member{}
		err := rows.Scan(
			&member.ID,
			&member.OrgID,
			&member.Name,
			&member.IsActive,
			&member.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}
