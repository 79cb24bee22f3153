package model

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

func (u User) IsActive() bool {
	return u.Status == "" || u.Status == UserStatusActive
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserPatch struct {
	Password *string
	Name     *string
	Email    *string
	Role     *string
	Status   *string
}

// Apply copies the set fields onto u. Password must already be hashed.
func (p UserPatch) Apply(u User) User {
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	return u
}
