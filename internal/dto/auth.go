package dto

type RegisterRequestDTO struct {
	Login        string `json:"login" validate:"required,min=3,max=50"`
	Password     string `json:"password" validate:"required,min=8"`
	ReferralCode string `json:"referralCode,omitempty" example:"1234567897"`
}

type RegisterResponseDTO struct {
	Message      string `json:"message"`
	ReferralCode string `json:"referralCode" example:"1234567897"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
