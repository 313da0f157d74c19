// Package dto defines the JSON types exchanged over HTTP.
package dto

// User is the user representation returned to callers; the stored digest
// is never part of it.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// TeamMember is a user row with its membership role label.
type TeamMember struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Project is the denormalized project representation. Dates are rendered
// as YYYY-MM-DD.
type Project struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	StartDate        string   `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	Budget           *float64 `json:"budget"`
	ManagerID        *int64   `json:"manager_id"`
	ManagerFirstName string   `json:"manager_first_name"`
	ManagerLastName  string   `json:"manager_last_name"`
}

// Task is the denormalized task representation.
type Task struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DueDate      string  `json:"due_date"`
	ProjectID    int64   `json:"project_id"`
	ProjectName  string  `json:"project_name"`
	StatusID     int64   `json:"status_id"`
	StatusName   string  `json:"status_name"`
	PriorityID   int64   `json:"priority_id"`
	PriorityName string  `json:"priority_name"`
}

// Comment is a task comment with author names.
type Comment struct {
	ID              int64  `json:"id"`
	TaskID          int64  `json:"task_id"`
	Text            string `json:"text"`
	CreatedAt       string `json:"created_at"`
	AuthorFirstName string `json:"author_first_name"`
	AuthorLastName  string `json:"author_last_name"`
}

// Profile is the user aggregate with participation counts.
type Profile struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	ProjectCount int64  `json:"project_count"`
	TaskCount    int64  `json:"task_count"`
}

// AssignedTask is the compact assignment-list row.
type AssignedTask struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DueDate      string `json:"due_date"`
	ProjectName  string `json:"project_name"`
	StatusName   string `json:"status_name"`
	PriorityName string `json:"priority_name"`
}

// MemberProject is the membership-side project row.
type MemberProject struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Role      string  `json:"role"`
}

// Lookup is a static lookup row.
type Lookup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RegisterRequest is the self-registration body.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse wraps the authenticated user.
type LoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UserUpdateRequest carries the mutable identity fields.
type UserUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ProjectRequest is the project create/update body.
type ProjectRequest struct {
	Name      string   `json:"name"`
	StartDate string   `json:"start_date"`
	EndDate   *string  `json:"end_date"`
	Budget    *float64 `json:"budget"`
	ManagerID *int64   `json:"manager_id"`
}

// TaskRequest is the task create/update body. Status and priority are
// optional on create and fall back to the lookup defaults.
type TaskRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date"`
	ProjectID   int64   `json:"project_id"`
	StatusID    int64   `json:"status_id"`
	PriorityID  int64   `json:"priority_id"`
}

// CommentRequest is the comment create body.
type CommentRequest struct {
	TaskID   int64  `json:"task_id"`
	AuthorID int64  `json:"author_id"`
	Text     string `json:"text"`
}

// MemberRequest adds a user to a project; role_id may be omitted.
type MemberRequest struct {
	UserID int64  `json:"user_id"`
	RoleID *int64 `json:"role_id"`
}

// AssigneeRequest adds a user to a task.
type AssigneeRequest struct {
	UserID int64 `json:"user_id"`
}

// PasswordChangeRequest carries the old and new credentials.
type PasswordChangeRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// CreateResponse acknowledges a create with the generated id.
type CreateResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// MessageResponse acknowledges an update or delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports store reachability.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
