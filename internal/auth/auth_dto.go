package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID          string `json:"id"`
	WingID      string `json:"wing_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
}
