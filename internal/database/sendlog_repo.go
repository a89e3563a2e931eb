package database

import (
	"fmt"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/entity"
)

type sendLogRepo struct {
	db dbConn
}

func newSendLogRepo(db dbConn) contract.SendLogRepo {
	return &sendLogRepo{db: db}
}

func (r *sendLogRepo) Create(log *entity.SendLog) error {
	query := `
		INSERT INTO send_logs (id, org_id, status, error, sent_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, log.ID, log.OrgID, log.Status, log.Error, log.SentAt)
	if err != nil {
		return fmt.Errorf("failed to create send log: %w", err)
	}

	return nil
}

func (r *sendLogRepo) GetRecentByOrg(orgID string, limit int) ([]*entity.SendLog, error) {
	query := `
		SELECT id, org_id, status, error, sent_at
		FROM send_logs
		WHERE org_id = ?
		ORDER BY sent_at DESC, id
		LIMIT ?
	`

	rows, err := r.db.Query(query, orgID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get send logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.SendLog
	for rows.Next() {
		log := &entity.SendLog{}
		err := rows.Scan(
			&log.ID,
			&log.OrgID,
			&log.Status,
			&log.Error,
			&log.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan send log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, nil
}
