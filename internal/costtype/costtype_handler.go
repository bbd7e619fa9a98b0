package costtype

import (
	"errors"
	"net/http"
	"strconv"

	"go-viagens/internal/shared/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CostTypeResponse struct {
	ID     int64  `json:"idTipoCusto"`
	Name   string `json:"NomeTipoCusto"`
	Active bool   `json:"ativo"`
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list cost types", nil)
		return
	}

	resp := make([]CostTypeResponse, len(rows))
	for i, ct := range rows {
		resp[i] = CostTypeResponse{ID: ct.ID, Name: ct.Name, Active: ct.Active}
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid id", nil)
		return
	}

	ct, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "cost type not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load cost type", nil)
		return
	}

	response.Success(c, http.StatusOK, CostTypeResponse{ID: ct.ID, Name: ct.Name, Active: ct.Active}, nil)
}
