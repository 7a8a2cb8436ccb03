package fiber

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	MemberID *int64 `json:"member_id"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type CheckAuthRequest struct {
	Username string `json:"username"`
}

type CheckAuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

type LogoutRequest struct {
	Username string `json:"username"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse mirrors MessageResponse with Success=false; kept as its
// own type so swagger documents failures separately.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
