package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/config"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=proje_gorev_yonetim_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 5000, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "proje_gorev_yonetim_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=proje_gorev_yonetim_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createUser(t *testing.T, repo *Postgres, first, last, email string) int64 {
	t.Helper()

	id, err := repo.CreateUser(context.Background(), entities.NewUser{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Digest:    "digest-" + email,
	})
	require.NoError(t, err)
	return id
}

func projectIDs(projects []entities.Project) []int64 {
	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestRepositoryVisibilityIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	u1 := createUser(t, repo, "Ulrike", "Manager", "u1@example.com")
	u2 := createUser(t, repo, "Mara", "Member", "u2@example.com")
	u3 := createUser(t, repo, "Arda", "Assignee", "u3@example.com")

	// P1 is managed by u1 and has no memberships; P2 has no manager and
	// one member, u2.
	p1, err := repo.CreateProject(ctx, entities.NewProject{
		Name: "infra", StartDate: date(2026, 1, 10), ManagerID: &u1,
	})
	require.NoError(t, err)
	p2, err := repo.CreateProject(ctx, entities.NewProject{
		Name: "website", StartDate: date(2026, 2, 1),
	})
	require.NoError(t, err)

	_, err = repo.AddProjectMember(ctx, p2, u2, nil)
	require.NoError(t, err)

	// Manager without membership still sees the project; member sees only
	// theirs; the unscoped view returns both.
	visible, err := repo.ListProjects(ctx, &u1)
	require.NoError(t, err)
	require.Equal(t, []int64{p1}, projectIDs(visible))

	visible, err = repo.ListProjects(ctx, &u2)
	require.NoError(t, err)
	require.Equal(t, []int64{p2}, projectIDs(visible))

	all, err := repo.ListProjects(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Task in P2 assigned to u3, who holds no membership anywhere.
	task, err := repo.CreateTask(ctx, entities.NewTask{
		Name: "launch checklist", DueDate: date(2026, 2, 20),
		ProjectID: p2, StatusID: 1, PriorityID: 3,
	})
	require.NoError(t, err)
	_, err = repo.AssignTask(ctx, task, u3)
	require.NoError(t, err)

	tasks, err := repo.ListTasks(ctx, &u3)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, task, tasks[0].ID)
	require.Equal(t, "website", tasks[0].ProjectName)
	require.Equal(t, "To Do", tasks[0].StatusName)
	require.Equal(t, "Low", tasks[0].PriorityName)

	tasks, err = repo.ListTasks(ctx, &u1)
	require.NoError(t, err)
	require.Empty(t, tasks)

	tasks, err = repo.ListTasks(ctx, &u2)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	// Roster closure: u2's visible projects contain only P2, whose single
	// membership row is u2's own. Assignment alone does not put u3 on the
	// roster.
	roster, err := repo.ListTeam(ctx, &u2)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	require.Equal(t, u2, roster[0].ID)
	require.Equal(t, entities.DefaultRoleLabel, roster[0].Role)

	roster, err = repo.ListTeam(ctx, nil)
	require.NoError(t, err)
	require.Len(t, roster, 3)

	// Second registration with the same email is refused.
	_, err = repo.CreateUser(ctx, entities.NewUser{
		FirstName: "Dup", LastName: "User", Email: "u1@example.com", Digest: "x",
	})
	require.ErrorIs(t, err, entities.ErrEmailExists)

	taken, err := repo.EmailInUse(ctx, "u1@example.com", u2)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.EmailInUse(ctx, "u1@example.com", u1)
	require.NoError(t, err)
	require.False(t, taken)

	// Membership inserts against absent rows map to the missing resource.
	_, err = repo.AddProjectMember(ctx, p2, 9999, nil)
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	_, err = repo.AddProjectMember(ctx, 9999, u2, nil)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	// Deletes are idempotent: absent ids succeed.
	require.NoError(t, repo.DeleteTask(ctx, 9999))
	require.NoError(t, repo.DeleteProject(ctx, 9999))
	require.NoError(t, repo.RemoveProjectMember(ctx, p2, 9999))
	require.NoError(t, repo.UnassignTask(ctx, task, 9999))
}

func TestRepositoryProfileAndCommentsIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	u1 := createUser(t, repo, "Mara", "Member", "m@example.com")
	u2 := createUser(t, repo, "Arda", "Assignee", "a@example.com")

	p1, err := repo.CreateProject(ctx, entities.NewProject{
		Name: "website", StartDate: date(2026, 2, 1),
	})
	require.NoError(t, err)
	_, err = repo.AddProjectMember(ctx, p1, u1, nil)
	require.NoError(t, err)

	task, err := repo.CreateTask(ctx, entities.NewTask{
		Name: "draft copy", DueDate: date(2026, 2, 20),
		ProjectID: p1, StatusID: 1, PriorityID: 3,
	})
	require.NoError(t, err)
	_, err = repo.AssignTask(ctx, task, u2)
	require.NoError(t, err)

	profile, err := repo.GetProfile(ctx, u1)
	require.NoError(t, err)
	require.Equal(t, int64(1), profile.ProjectCount)
	require.Equal(t, int64(0), profile.TaskCount)

	profile, err = repo.GetProfile(ctx, u2)
	require.NoError(t, err)
	require.Equal(t, int64(0), profile.ProjectCount)
	require.Equal(t, int64(1), profile.TaskCount)

	assigned, err := repo.ListAssignedTasks(ctx, u2)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	require.Equal(t, "draft copy", assigned[0].Name)

	member, err := repo.ListMemberProjects(ctx, u1)
	require.NoError(t, err)
	require.Len(t, member, 1)
	require.Equal(t, "website", member[0].Name)
	require.Equal(t, entities.DefaultRoleLabel, member[0].Role)

	// Comments list newest first with author names from the join.
	first, err := repo.CreateComment(ctx, entities.NewComment{
		TaskID: task, AuthorID: u1, Text: "draft ready",
	})
	require.NoError(t, err)
	second, err := repo.CreateComment(ctx, entities.NewComment{
		TaskID: task, AuthorID: u2, Text: "reviewing now",
	})
	require.NoError(t, err)
	require.Greater(t, second, first)

	comments, err := repo.ListTaskComments(ctx, task)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.False(t, comments[0].CreatedAt.Before(comments[1].CreatedAt))

	_, err = repo.CreateComment(ctx, entities.NewComment{
		TaskID: 9999, AuthorID: u1, Text: "lost",
	})
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	// Credential rotation round trip.
	require.NoError(t, repo.UpdateDigest(ctx, u1, "rotated"))
	usr, err := repo.GetUserByEmail(ctx, "m@example.com")
	require.NoError(t, err)
	require.Equal(t, "rotated", usr.Digest)

	statuses, err := repo.ListStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	priorities, err := repo.ListPriorities(ctx)
	require.NoError(t, err)
	require.Len(t, priorities, 3)
	roles, err := repo.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 3)
}
