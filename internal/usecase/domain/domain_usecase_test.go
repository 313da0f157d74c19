package domain

import (
	"context"
	"testing"
	"time"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/repository"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/pkg/hasher"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *repoMock) ListUsers(ctx context.Context) ([]entities.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TeamMember), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateUser(ctx context.Context, u entities.NewUser) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) UpdateUser(ctx context.Context, id int64, u entities.UserUpdate) error {
	args := m.Called(ctx, id, u)
	return args.Error(0)
}

func (m *repoMock) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) UpdateDigest(ctx context.Context, id int64, digest string) error {
	args := m.Called(ctx, id, digest)
	return args.Error(0)
}

func (m *repoMock) EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *repoMock) ListProjects(ctx context.Context, actingUser *int64) ([]entities.Project, error) {
	args := m.Called(ctx, actingUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) CreateProject(ctx context.Context, p entities.NewProject) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) UpdateProject(ctx context.Context, id int64, p entities.NewProject) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *repoMock) DeleteProject(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) AddProjectMember(ctx context.Context, projectID, userID int64, roleID *int64) (int64, error) {
	args := m.Called(ctx, projectID, userID, roleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) RemoveProjectMember(ctx context.Context, projectID, userID int64) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

func (m *repoMock) ListTasks(ctx context.Context, actingUser *int64) ([]entities.Task, error) {
	args := m.Called(ctx, actingUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) CreateTask(ctx context.Context, t entities.NewTask) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) UpdateTask(ctx context.Context, id int64, t entities.NewTask) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}

func (m *repoMock) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *repoMock) AssignTask(ctx context.Context, taskID, userID int64) (int64, error) {
	args := m.Called(ctx, taskID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) UnassignTask(ctx context.Context, taskID, userID int64) error {
	args := m.Called(ctx, taskID, userID)
	return args.Error(0)
}

func (m *repoMock) ListTeam(ctx context.Context, actingUser *int64) ([]entities.TeamMember, error) {
	args := m.Called(ctx, actingUser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TeamMember), args.Error(1)
}

func (m *repoMock) ListTaskComments(ctx context.Context, taskID int64) ([]entities.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Comment), args.Error(1)
}

func (m *repoMock) CreateComment(ctx context.Context, c entities.NewComment) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) GetProfile(ctx context.Context, userID int64) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *repoMock) ListAssignedTasks(ctx context.Context, userID int64) ([]entities.AssignedTask, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.AssignedTask), args.Error(1)
}

func (m *repoMock) ListMemberProjects(ctx context.Context, userID int64) ([]entities.MemberProject, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MemberProject), args.Error(1)
}

func (m *repoMock) ListStatuses(ctx context.Context) ([]entities.Lookup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Lookup), args.Error(1)
}

func (m *repoMock) ListPriorities(ctx context.Context) ([]entities.Lookup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Lookup), args.Error(1)
}

func (m *repoMock) ListRoles(ctx context.Context) ([]entities.Lookup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Lookup), args.Error(1)
}

func newTestUsecase(repo *repoMock) *Usecase {
	h, _ := hasher.New("sha256", 0)
	return New(zap.NewNop().Sugar(), context.Background(), repo, h, time.Second)
}

func TestUsecase_RegisterValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.Register(context.Background(), "Ada", "", "ada@example.com", "secret")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_RegisterHashesCredential(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	h, _ := hasher.New("sha256", 0)
	digest, _ := h.Hash("secret")

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u entities.NewUser) bool {
		return u.Email == "ada@example.com" && u.Digest == digest
	})).Return(int64(1), nil)

	id, err := uc.Register(context.Background(), "Ada", "Lovelace", "ada@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	repo.AssertExpectations(t)
}

func TestUsecase_LoginRoundTrip(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	h, _ := hasher.New("sha256", 0)
	digest, _ := h.Hash("secret")

	stored := &entities.User{ID: 1, FirstName: "Ada", Email: "ada@example.com", Digest: digest}
	repo.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(stored, nil)

	usr, err := uc.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, int64(1), usr.ID)

	_, err = uc.Login(context.Background(), "ada@example.com", "wrong")
	require.ErrorIs(t, err, entities.ErrWrongCredential)
}

func TestUsecase_LoginUnknownEmail(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").
		Return(nil, entities.ErrUserNotFound)

	_, err := uc.Login(context.Background(), "ghost@example.com", "secret")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestUsecase_ChangePasswordWrongOld(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	h, _ := hasher.New("sha256", 0)
	digest, _ := h.Hash("current")

	repo.On("GetUser", mock.Anything, int64(1)).
		Return(&entities.User{ID: 1, Digest: digest}, nil)

	err := uc.ChangePassword(context.Background(), 1, "wrong", "next")
	require.ErrorIs(t, err, entities.ErrWrongCredential)
	repo.AssertNotCalled(t, "UpdateDigest", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_ChangePasswordRotatesDigest(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	h, _ := hasher.New("sha256", 0)
	oldDigest, _ := h.Hash("current")
	newDigest, _ := h.Hash("next")

	repo.On("GetUser", mock.Anything, int64(1)).
		Return(&entities.User{ID: 1, Digest: oldDigest}, nil)
	repo.On("UpdateDigest", mock.Anything, int64(1), newDigest).Return(nil)

	require.NoError(t, uc.ChangePassword(context.Background(), 1, "current", "next"))
	repo.AssertExpectations(t)
}

func TestUsecase_CreateProjectValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateProject(context.Background(), entities.NewProject{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTaskAppliesDefaults(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(nt entities.NewTask) bool {
		return nt.StatusID == entities.DefaultStatusID && nt.PriorityID == entities.DefaultPriorityID
	})).Return(int64(9), nil)

	id, err := uc.CreateTask(context.Background(), entities.NewTask{
		Name:      "demo",
		DueDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ProjectID: 1,
	})
	require.NoError(t, err)
	require.Equal(t, int64(9), id)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateProfileRejectsTakenEmail(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("EmailInUse", mock.Anything, "taken@example.com", int64(1)).Return(true, nil)

	err := uc.UpdateProfile(context.Background(), 1, entities.UserUpdate{
		FirstName: "Ada", LastName: "Lovelace", Email: "taken@example.com",
	})
	require.ErrorIs(t, err, entities.ErrEmailExists)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_ListProjectsPassesActingUser(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	acting := int64(4)
	repo.On("ListProjects", mock.Anything, &acting).Return([]entities.Project{}, nil)

	projects, err := uc.ListProjects(context.Background(), &acting)
	require.NoError(t, err)
	require.Empty(t, projects)
	repo.AssertExpectations(t)
}

func TestUsecase_DeleteTaskDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("DeleteTask", mock.Anything, int64(12)).Return(nil)
	require.NoError(t, uc.DeleteTask(context.Background(), 12))
	repo.AssertExpectations(t)
}

func TestUsecase_CreateCommentValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateComment(context.Background(), entities.NewComment{TaskID: 1})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}
