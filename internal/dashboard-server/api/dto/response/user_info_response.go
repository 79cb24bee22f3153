package response

import "NYA_Service_Dashboard/internal/dashboard-server/model"

type UserInfoResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

func NewUserInfoResponse(u model.User) UserInfoResponse {
	return UserInfoResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Status:   u.Status,
	}
}
