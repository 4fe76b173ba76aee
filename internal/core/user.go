package core

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
	RoleUser  Role = "USER"
)

type AdminUser struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone,omitempty"`
	Role        Role       `json:"role"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   Timestamp  `json:"createdAt"`
	LastLoginAt *Timestamp `json:"lastLoginAt,omitempty"`
}

type UserCreate struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	Phone    string `json:"phone,omitempty" yaml:"phone"`
	Role     Role   `json:"role" yaml:"role"`
	IsActive *bool  `json:"isActive,omitempty" yaml:"is_active"`
}

type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Role     *Role   `json:"role,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type PasswordReset struct {
	TempPassword string     `json:"tempPassword,omitempty"`
	ResetToken   string     `json:"resetToken,omitempty"`
	ExpiresAt    *Timestamp `json:"expiresAt,omitempty"`
}

// Page is the optional pagination block of list responses.
type Page struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}
