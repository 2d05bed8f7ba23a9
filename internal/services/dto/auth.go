package dto

// RegisterRequest is role-discriminated: employers must carry username and
// password, workers must carry phone. The service enforces the branch; the
// tags here only cover the shared shape.
type RegisterRequest struct {
	Role              string `json:"role" binding:"required" validate:"required,is-user-role"`
	Username          string `json:"username,omitempty"`
	Password          string `json:"password,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Email             string `json:"email,omitempty" validate:"omitempty,email"`
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
	Region            string `json:"region,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	// Phone is accepted so clients posting a phone here get pointed at the
	// OTP flow instead of a generic validation failure.
	Phone string `json:"phone,omitempty"`
}

type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}
