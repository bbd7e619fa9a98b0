package employee

type CreateEmployeeRequest struct {
	Name     string `json:"nomeEmpregado" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"senha" binding:"required,min=6,max=72"`
	RoleID   *int64 `json:"idCargo" binding:"omitempty,gt=0"`
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"nomeEmpregado" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=100"`
	Password *string `json:"senha" binding:"omitempty,min=6,max=72"`
	RoleID   *int64  `json:"idCargo" binding:"omitempty,gt=0"`
	Active   *bool   `json:"ativo"`
}

type EmployeeResponse struct {
	ID     int64  `json:"idEmpregado"`
	Name   string `json:"nomeEmpregado"`
	Email  string `json:"email"`
	RoleID int64  `json:"idCargo"`
	Active bool   `json:"ativo"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:     e.ID,
		Name:   e.Name,
		Email:  e.Email,
		RoleID: e.RoleID,
		Active: e.Active,
	}
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		resp[i] = mapToResponse(e)
	}
	return resp
}
