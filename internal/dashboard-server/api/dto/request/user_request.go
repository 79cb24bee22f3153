package request

import "NYA_Service_Dashboard/internal/dashboard-server/model"

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
	Status   string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// UpdateUserRequest cannot change the username.
type UpdateUserRequest struct {
	Password *string `json:"password" binding:"omitempty,min=1"`
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user"`
	Status   *string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

func (r UpdateUserRequest) ToPatch() model.UserPatch {
	return model.UserPatch{
		Password: r.Password,
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		Status:   r.Status,
	}
}
