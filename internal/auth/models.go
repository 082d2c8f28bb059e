package auth

import "time"

type Session struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;index" json:"-"`
	Role      string    `json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"-"`
}

type User struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	Email          string     `gorm:"uniqueIndex" json:"email"`
	Password       string     `gorm:"-" json:"password,omitempty"`
	HashedPassword string     `json:"-"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	BadgeNumber    string     `json:"badgeNumber"`
	Role           string     `gorm:"default:'user'" json:"role"`
	IsActive       bool       `gorm:"default:true" json:"isActive"`
	LastLogin      *time.Time `json:"lastLogin"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// PasswordReset is a single-use, short-lived token row. Deleted on use.
type PasswordReset struct {
	Token     string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"-"`
}

func (Session) TableName() string       { return "sessions" }
func (User) TableName() string          { return "users" }
func (PasswordReset) TableName() string { return "password_resets" }

// UserResponse is the external user shape. Credential material never has a
// field here, so no code path can leak it.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	BadgeNumber string     `json:"badgeNumber"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLogin   *time.Time `json:"lastLogin"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		BadgeNumber: u.BadgeNumber,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
