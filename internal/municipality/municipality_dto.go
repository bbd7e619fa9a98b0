package municipality

type CreateMunicipalityRequest struct {
	Name             string `json:"NomeMunicipio" binding:"required,max=100"`
	FederativeUnitID int64  `json:"unidadeFederativaId" binding:"required,gt=0"`
}

type UpdateMunicipalityRequest struct {
	Name             *string `json:"NomeMunicipio" binding:"omitempty,max=100"`
	FederativeUnitID *int64  `json:"unidadeFederativaId" binding:"omitempty,gt=0"`
	Active           *bool   `json:"ativo"`
}

type MunicipalityResponse struct {
	ID               int64  `json:"idMunicipio"`
	Name             string `json:"NomeMunicipio"`
	FederativeUnitID int64  `json:"unidadeFederativaId"`
	Active           bool   `json:"ativo"`
}

func mapToResponse(m Municipality) MunicipalityResponse {
	return MunicipalityResponse{
		ID:               m.ID,
		Name:             m.Name,
		FederativeUnitID: m.FederativeUnitID,
		Active:           m.Active,
	}
}

func mapToListResponse(rows []Municipality) []MunicipalityResponse {
	resp := make([]MunicipalityResponse, len(rows))
	for i, m := range rows {
		resp[i] = mapToResponse(m)
	}
	return resp
}
