package dto

// RegisterRequest starts a pending registration. CompanyName is required
// for recruiters only; the role is fixed by the endpoint, not the body.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=3,max=30"`
	Password    string `json:"password" validate:"required,min=8"`
	Fullname    string `json:"fullname" validate:"required,min=2,max=100"`
	Age         int    `json:"age" validate:"omitempty,min=16,max=100"`
	CompanyName string `json:"company_name" validate:"omitempty,max=100"`
}

type VerifyEmailRequest struct {
	Code string `json:"code" validate:"required,len=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type RecoverRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyRecoveryRequest struct {
	Code string `json:"code" validate:"required,len=6"`
}
