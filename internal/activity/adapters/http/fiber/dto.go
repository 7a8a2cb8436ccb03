package fiber

// ActivityLogResponse is one audit entry as served to clients.
type ActivityLogResponse struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Activity     string `json:"activity"`
	ActivityDate string `json:"activity_date"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"internal_server_error"`
}
