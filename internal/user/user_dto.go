package user

// Profile is the slim view other modules need when they record who acted.
type Profile struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Designation  string `json:"designation"`
	Role         string `json:"role"`
	WingID       string `json:"wing_id"`
	SupervisorID string `json:"supervisor_id,omitempty"`
}

type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Designation  string `json:"designation"`
	Role         string `json:"role"`
	WingID       string `json:"wing_id"`
	SupervisorID string `json:"supervisor_id,omitempty"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
}

type SupervisorResponse struct {
	UserID     string  `json:"user_id"`
	Supervisor Profile `json:"supervisor"`
}
