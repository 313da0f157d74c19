// Package mapper converts between transport DTOs and domain entities.
package mapper

import (
	"fmt"
	"time"

	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/dto"
	"github.com/feyza-inl/proje-gorev-yonetimsistemi/internal/entities"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", entities.ErrInvalidArgument, field)
	}
	return t, nil
}

func parseDatePtr(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ToUser maps a domain user to its transport shape, dropping the digest.
func ToUser(u entities.User) dto.User {
	return dto.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// ToTeamMember maps a roster row.
func ToTeamMember(m entities.TeamMember) dto.TeamMember {
	return dto.TeamMember{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Role:      m.Role,
	}
}

// ToTeamMembers maps a roster slice; never returns nil so empty lists
// serialize as [].
func ToTeamMembers(in []entities.TeamMember) []dto.TeamMember {
	out := make([]dto.TeamMember, 0, len(in))
	for _, m := range in {
		out = append(out, ToTeamMember(m))
	}
	return out
}

// ToProject maps a project with formatted dates.
func ToProject(p entities.Project) dto.Project {
	return dto.Project{
		ID:               p.ID,
		Name:             p.Name,
		StartDate:        formatDate(p.StartDate),
		EndDate:          formatDatePtr(p.EndDate),
		Budget:           p.Budget,
		ManagerID:        p.ManagerID,
		ManagerFirstName: p.ManagerFirstName,
		ManagerLastName:  p.ManagerLastName,
	}
}

// ToProjects maps a project slice.
func ToProjects(in []entities.Project) []dto.Project {
	out := make([]dto.Project, 0, len(in))
	for _, p := range in {
		out = append(out, ToProject(p))
	}
	return out
}

// ToNewProject parses a project request into the domain creation shape.
func ToNewProject(req dto.ProjectRequest) (entities.NewProject, error) {
	if req.StartDate == "" {
		return entities.NewProject{}, fmt.Errorf("%w: start_date is required", entities.ErrInvalidArgument)
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return entities.NewProject{}, err
	}
	end, err := parseDatePtr("end_date", req.EndDate)
	if err != nil {
		return entities.NewProject{}, err
	}
	return entities.NewProject{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Budget:    req.Budget,
		ManagerID: req.ManagerID,
	}, nil
}

// ToTask maps a task with its formatted due date.
func ToTask(t entities.Task) dto.Task {
	return dto.Task{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		DueDate:      formatDate(t.DueDate),
		ProjectID:    t.ProjectID,
		ProjectName:  t.ProjectName,
		StatusID:     t.StatusID,
		StatusName:   t.StatusName,
		PriorityID:   t.PriorityID,
		PriorityName: t.PriorityName,
	}
}

// ToTasks maps a task slice.
func ToTasks(in []entities.Task) []dto.Task {
	out := make([]dto.Task, 0, len(in))
	for _, t := range in {
		out = append(out, ToTask(t))
	}
	return out
}

// ToNewTask parses a task request into the domain creation shape.
func ToNewTask(req dto.TaskRequest) (entities.NewTask, error) {
	if req.DueDate == "" {
		return entities.NewTask{}, fmt.Errorf("%w: due_date is required", entities.ErrInvalidArgument)
	}
	due, err := parseDate("due_date", req.DueDate)
	if err != nil {
		return entities.NewTask{}, err
	}
	return entities.NewTask{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     due,
		ProjectID:   req.ProjectID,
		StatusID:    req.StatusID,
		PriorityID:  req.PriorityID,
	}, nil
}

// ToComment maps a comment with its formatted creation timestamp.
func ToComment(c entities.Comment) dto.Comment {
	return dto.Comment{
		ID:              c.ID,
		TaskID:          c.TaskID,
		Text:            c.Text,
		CreatedAt:       c.CreatedAt.Format(timestampLayout),
		AuthorFirstName: c.AuthorFirstName,
		AuthorLastName:  c.AuthorLastName,
	}
}

// ToComments maps a comment slice.
func ToComments(in []entities.Comment) []dto.Comment {
	out := make([]dto.Comment, 0, len(in))
	for _, c := range in {
		out = append(out, ToComment(c))
	}
	return out
}

// ToProfile maps the profile aggregate.
func ToProfile(p entities.Profile) dto.Profile {
	return dto.Profile{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		ProjectCount: p.ProjectCount,
		TaskCount:    p.TaskCount,
	}
}

// ToAssignedTasks maps the assignment-list projection.
func ToAssignedTasks(in []entities.AssignedTask) []dto.AssignedTask {
	out := make([]dto.AssignedTask, 0, len(in))
	for _, t := range in {
		out = append(out, dto.AssignedTask{
			ID:           t.ID,
			Name:         t.Name,
			DueDate:      formatDate(t.DueDate),
			ProjectName:  t.ProjectName,
			StatusName:   t.StatusName,
			PriorityName: t.PriorityName,
		})
	}
	return out
}

// ToMemberProjects maps the membership-side project projection.
func ToMemberProjects(in []entities.MemberProject) []dto.MemberProject {
	out := make([]dto.MemberProject, 0, len(in))
	for _, p := range in {
		out = append(out, dto.MemberProject{
			ID:        p.ID,
			Name:      p.Name,
			StartDate: formatDate(p.StartDate),
			EndDate:   formatDatePtr(p.EndDate),
			Role:      p.Role,
		})
	}
	return out
}

// ToLookups maps a lookup slice.
func ToLookups(in []entities.Lookup) []dto.Lookup {
	out := make([]dto.Lookup, 0, len(in))
	for _, l := range in {
		out = append(out, dto.Lookup{ID: l.ID, Name: l.Name})
	}
	return out
}
