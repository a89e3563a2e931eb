package database

import (
	"context"
	"fmt"

	"github.com/IKEMENLTD/taskmanagement-sub001/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	settingsRepo contract.SettingsRepo
	memberRepo   contract.MemberRepo
	projectRepo  contract.ProjectRepo
	taskRepo     contract.TaskRepo
	routineRepo  contract.RoutineRepo
	sendLogRepo  contract.SendLogRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.repoInstances()
	return i
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.settingsRepo = newSettingsRepo(i.db.conn)
	i.memberRepo = newMemberRepo(i.db.conn)
	i.projectRepo = newProjectRepo(i.db.conn)
	i.taskRepo = newTaskRepo(i.db.conn)
	i.routineRepo = newRoutineRepo(i.db.conn)
	i.sendLogRepo = newSendLogRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		settingsRepo: newSettingsRepo(db),
		memberRepo:   newMemberRepo(db),
		projectRepo:  newProjectRepo(db),
		taskRepo:     newTaskRepo(db),
		routineRepo:  newRoutineRepo(db),
		sendLogRepo:  newSendLogRepo(db),
	}
}

func (i *instance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

func (i *instance) Member() contract.MemberRepo {
	return i.memberRepo
}

func (i *instance) Project() contract.ProjectRepo {
	return i.projectRepo
}

func (i *instance) Task() contract.TaskRepo {
	return i.taskRepo
}

func (i *instance) Routine() contract.RoutineRepo {
	return i.routineRepo
}

func (i *instance) SendLog() contract.SendLogRepo {
	return i.sendLogRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
