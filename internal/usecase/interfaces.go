package usecase

import (
	"context"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

// AuthUsecaseInterface abstracts registration, login and credential change.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (int64, error)
	Login(ctx context.Context, email, password string) (*entities.User, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
}

// UserUsecaseInterface abstracts user CRUD for the delivery layer.
type UserUsecaseInterface interface {
	ListUsers(ctx context.Context) ([]entities.TeamMember, error)
	User(ctx context.Context, id int64) (*entities.User, error)
	CreateUser(ctx context.Context, firstName, lastName, email, password string) (int64, error)
	UpdateUser(ctx context.Context, id int64, upd entities.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
}

// ProjectUsecaseInterface abstracts project and membership operations.
type ProjectUsecaseInterface interface {
	ListProjects(ctx context.Context, actingUser *int64) ([]entities.Project, error)
	Project(ctx context.Context, id int64) (*entities.Project, error)
	CreateProject(ctx context.Context, p entities.NewProject) (int64, error)
	UpdateProject(ctx context.Context, id int64, p entities.NewProject) error
	DeleteProject(ctx context.Context, id int64) error
	AddMember(ctx context.Context, projectID, userID int64, roleID *int64) (int64, error)
	RemoveMember(ctx context.Context, projectID, userID int64) error
}

// TaskUsecaseInterface abstracts task and assignment operations.
type TaskUsecaseInterface interface {
	ListTasks(ctx context.Context, actingUser *int64) ([]entities.Task, error)
	Task(ctx context.Context, id int64) (*entities.Task, error)
	CreateTask(ctx context.Context, t entities.NewTask) (int64, error)
	UpdateTask(ctx context.Context, id int64, t entities.NewTask) error
	DeleteTask(ctx context.Context, id int64) error
	Assign(ctx context.Context, taskID, userID int64) (int64, error)
	Unassign(ctx context.Context, taskID, userID int64) error
}

// TeamUsecaseInterface abstracts the scoped roster read.
type TeamUsecaseInterface interface {
	ListTeam(ctx context.Context, actingUser *int64) ([]entities.TeamMember, error)
}

// CommentUsecaseInterface abstracts comment operations.
type CommentUsecaseInterface interface {
	ListTaskComments(ctx context.Context, taskID int64) ([]entities.Comment, error)
	CreateComment(ctx context.Context, c entities.NewComment) (int64, error)
}

// ProfileUsecaseInterface abstracts profile aggregate operations.
type ProfileUsecaseInterface interface {
	Profile(ctx context.Context, userID int64) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, upd entities.UserUpdate) error
	AssignedTasks(ctx context.Context, userID int64) ([]entities.AssignedTask, error)
	MemberProjects(ctx context.Context, userID int64) ([]entities.MemberProject, error)
}

// LookupUsecaseInterface abstracts the static lookup reads.
type LookupUsecaseInterface interface {
	Statuses(ctx context.Context) ([]entities.Lookup, error)
	Priorities(ctx context.Context) ([]entities.Lookup, error)
	Roles(ctx context.Context) ([]entities.Lookup, error)
}

// HealthUsecaseInterface abstracts the store reachability probe.
type HealthUsecaseInterface interface {
	Health(ctx context.Context) error
}
