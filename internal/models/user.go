package models

import "time"

// User is a single identity row for both login methods. Which credential
// columns are populated depends on the role: workers carry Phone, employers
// carry Username + PasswordHash. The invariant is enforced at registration
// (see services.AuthService), not by the schema.
type User struct {
	BaseModel
	Username     *string  `gorm:"uniqueIndex" json:"username,omitempty"`
	PasswordHash *string  `gorm:"column:password_hash" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Phone        *string  `gorm:"uniqueIndex" json:"phone,omitempty"`
	Email        *string  `json:"email,omitempty"`

	// OTP fields are transient: written by send-otp, cleared by the first
	// successful verification.
	OTP          *string    `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`

	// Relations
	Profile  *Profile      `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Settings *UserSettings `gorm:"foreignKey:UserID" json:"settings,omitempty"`
}

// UserSettings holds per-user preferences created alongside the user row.
type UserSettings struct {
	BaseModel
	UserID            uint   `gorm:"uniqueIndex;not null" json:"userId"`
	PreferredLanguage string `gorm:"default:'en'" json:"preferredLanguage"`
	Region            string `json:"region"`
}

// Sanitize blanks credential material before the user goes on the wire.
func (u *User) Sanitize() *User {
	u.PasswordHash = nil
	u.OTP = nil
	u.OTPExpiresAt = nil
	return u
}

// IsEmployer reports whether the user may manage jobs.
func (u *User) IsEmployer() bool {
	return u.Role == UserRoleEmployer || u.Role == UserRoleAdmin
}
