package role

type CreateRoleRequest struct {
	Name string `json:"NomeCargo" binding:"required,max=45"`
}

type UpdateRoleRequest struct {
	Name   *string `json:"NomeCargo" binding:"omitempty,max=45"`
	Active *bool   `json:"ativo"`
}

type RoleResponse struct {
	ID     int64  `json:"idCargo"`
	Name   string `json:"NomeCargo"`
	Active bool   `json:"ativo"`
}

func mapToResponse(r Role) RoleResponse {
	return RoleResponse{
		ID:     r.ID,
		Name:   r.Name,
		Active: r.Active,
	}
}

func mapToListResponse(roles []Role) []RoleResponse {
	resp := make([]RoleResponse, len(roles))
	for i, r := range roles {
		resp[i] = mapToResponse(r)
	}
	return resp
}
