package service

import (
	"io"
	"testing"

	"github.com/IKEMENLTD/taskmanagement-sub001/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockSettingsRepo *mocks.MockSettingsRepo
	mockMemberRepo   *mocks.MockMemberRepo
	mockProjectRepo  *mocks.MockProjectRepo
	mockTaskRepo     *mocks.MockTaskRepo
	mockRoutineRepo  *mocks.MockRoutineRepo
	mockSendLogRepo  *mocks.MockSendLogRepo
	mockNotifier     *mocks.MockNotifier
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	memberRepo := mocks.NewMockMemberRepo(ctrl)
	dm.EXPECT().Member().Return(memberRepo).AnyTimes()

	projectRepo := mocks.NewMockProjectRepo(ctrl)
	dm.EXPECT().Project().Return(projectRepo).AnyTimes()

	taskRepo := mocks.NewMockTaskRepo(ctrl)
	dm.EXPECT().Task().Return(taskRepo).AnyTimes()

	routineRepo := mocks.NewMockRoutineRepo(ctrl)
	dm.EXPECT().Routine().Return(routineRepo).AnyTimes()

	sendLogRepo := mocks.NewMockSendLogRepo(ctrl)
	dm.EXPECT().SendLog().Return(sendLogRepo).AnyTimes()

	notifier := mocks.NewMockNotifier(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockSettingsRepo: settingsRepo,
		mockMemberRepo:   memberRepo,
		mockProjectRepo:  projectRepo,
		mockTaskRepo:     taskRepo,
		mockRoutineRepo:  routineRepo,
		mockSendLogRepo:  sendLogRepo,
		mockNotifier:     notifier,
	}

	// validate service creation
	notification := newNotification(dm, notifier, testLogger(), "")
	require.NotNil(t, notification)

	return
}
