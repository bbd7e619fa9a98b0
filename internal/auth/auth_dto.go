package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"nomeEmpregado" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"senha" binding:"required,min=6,max=72"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type MeResponse struct {
	ID     int64  `json:"idEmpregado"`
	Name   string `json:"nomeEmpregado"`
	Email  string `json:"email"`
	RoleID int64  `json:"idCargo"`
	Active bool   `json:"ativo"`
}
