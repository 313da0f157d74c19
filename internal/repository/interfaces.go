// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
	Ping(ctx context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.TeamMember, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, u entities.NewUser) (int64, error)
	UpdateUser(ctx context.Context, id int64, u entities.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
	UpdateDigest(ctx context.Context, id int64, digest string) error
	EmailInUse(ctx context.Context, email string, excludeID int64) (bool, error)
}

// ProjectInterface exposes project and membership operations.
type ProjectInterface interface {
	ListProjects(ctx context.Context, actingUser *int64) ([]entities.Project, error)
	GetProject(ctx context.Context, id int64) (*entities.Project, error)
	CreateProject(ctx context.Context, p entities.NewProject) (int64, error)
	UpdateProject(ctx context.Context, id int64, p entities.NewProject) error
	DeleteProject(ctx context.Context, id int64) error
	AddProjectMember(ctx context.Context, projectID, userID int64, roleID *int64) (int64, error)
	RemoveProjectMember(ctx context.Context, projectID, userID int64) error
}

// TaskInterface exposes task and assignment operations.
type TaskInterface interface {
	ListTasks(ctx context.Context, actingUser *int64) ([]entities.Task, error)
	GetTask(ctx context.Context, id int64) (*entities.Task, error)
	CreateTask(ctx context.Context, t entities.NewTask) (int64, error)
	UpdateTask(ctx context.Context, id int64, t entities.NewTask) error
	DeleteTask(ctx context.Context, id int64) error
	AssignTask(ctx context.Context, taskID, userID int64) (int64, error)
	UnassignTask(ctx context.Context, taskID, userID int64) error
}

// TeamInterface exposes the scoped team roster read.
type TeamInterface interface {
	ListTeam(ctx context.Context, actingUser *int64) ([]entities.TeamMember, error)
}

// CommentInterface exposes comment operations.
type CommentInterface interface {
	ListTaskComments(ctx context.Context, taskID int64) ([]entities.Comment, error)
	CreateComment(ctx context.Context, c entities.NewComment) (int64, error)
}

// ProfileInterface exposes profile aggregate reads.
type ProfileInterface interface {
	GetProfile(ctx context.Context, userID int64) (*entities.Profile, error)
	ListAssignedTasks(ctx context.Context, userID int64) ([]entities.AssignedTask, error)
	ListMemberProjects(ctx context.Context, userID int64) ([]entities.MemberProject, error)
}

// LookupInterface exposes the static lookup sets.
type LookupInterface interface {
	ListStatuses(ctx context.Context) ([]entities.Lookup, error)
	ListPriorities(ctx context.Context) ([]entities.Lookup, error)
	ListRoles(ctx context.Context) ([]entities.Lookup, error)
}
