package request

type LoginRequest struct {
	UserID string `json:"user_id" binding:"required"`
}
