package mapper

import (
	"testing"
	"time"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestToProjectFormatsDates(t *testing.T) {
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	p := entities.Project{
		ID:        1,
		Name:      "site relaunch",
		StartDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}

	out := ToProject(p)
	require.Equal(t, "2026-01-15", out.StartDate)
	require.NotNil(t, out.EndDate)
	require.Equal(t, "2026-06-30", *out.EndDate)
}

func TestToProjectNilEndDate(t *testing.T) {
	out := ToProject(entities.Project{StartDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)})
	require.Nil(t, out.EndDate)
}

func TestToNewProjectParsesDates(t *testing.T) {
	end := "2026-06-30"
	np, err := ToNewProject(dto.ProjectRequest{
		Name:      "site relaunch",
		StartDate: "2026-01-15",
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), np.StartDate)
	require.NotNil(t, np.EndDate)
}

func TestToNewProjectRejectsBadDate(t *testing.T) {
	_, err := ToNewProject(dto.ProjectRequest{Name: "x", StartDate: "15/01/2026"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestToNewProjectRequiresStartDate(t *testing.T) {
	_, err := ToNewProject(dto.ProjectRequest{Name: "x"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestToCommentTimestampFormat(t *testing.T) {
	c := entities.Comment{
		ID:        1,
		TaskID:    2,
		Text:      "looks good",
		CreatedAt: time.Date(2026, 2, 3, 14, 5, 6, 0, time.UTC),
	}
	require.Equal(t, "2026-02-03 14:05:06", ToComment(c).CreatedAt)
}

func TestEmptySlicesNeverNil(t *testing.T) {
	require.NotNil(t, ToProjects(nil))
	require.NotNil(t, ToTasks(nil))
	require.NotNil(t, ToTeamMembers(nil))
	require.NotNil(t, ToComments(nil))
	require.NotNil(t, ToAssignedTasks(nil))
	require.NotNil(t, ToMemberProjects(nil))
	require.NotNil(t, ToLookups(nil))
}
