package federativeunit

type CreateFederativeUnitRequest struct {
	Abbreviation string `json:"SiglaUnidadeFederativa" binding:"required,len=2"`
	Name         string `json:"NomeUnidadeFederativa" binding:"required,max=45"`
}

type UpdateFederativeUnitRequest struct {
	Abbreviation *string `json:"SiglaUnidadeFederativa" binding:"omitempty,len=2"`
	Name         *string `json:"NomeUnidadeFederativa" binding:"omitempty,max=45"`
	Active       *bool   `json:"ativo"`
}

type FederativeUnitResponse struct {
	ID           int64  `json:"idUnidadeFederativa"`
	Abbreviation string `json:"SiglaUnidadeFederativa"`
	Name         string `json:"NomeUnidadeFederativa"`
	Active       bool   `json:"ativo"`
}

func mapToResponse(u FederativeUnit) FederativeUnitResponse {
	return FederativeUnitResponse{
		ID:           u.ID,
		Abbreviation: u.Abbreviation,
		Name:         u.Name,
		Active:       u.Active,
	}
}

func mapToListResponse(units []FederativeUnit) []FederativeUnitResponse {
	resp := make([]FederativeUnitResponse, len(units))
	for i, u := range units {
		resp[i] = mapToResponse(u)
	}
	return resp
}
