package tripstatus

import (
	"errors"
	"net/http"
	"strconv"

	"go-viagens/internal/shared/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatusResponse struct {
	ID     int64  `json:"idStatusViagem"`
	Name   string `json:"NomeStatusViagem"`
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
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list trip statuses", nil)
		return
	}

	resp := make([]StatusResponse, len(rows))
	for i, s := range rows {
		resp[i] = StatusResponse{ID: s.ID, Name: s.Name, Active: s.Active}
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid id", nil)
		return
	}

	s, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "trip status not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load trip status", nil)
		return
	}

	response.Success(c, http.StatusOK, StatusResponse{ID: s.ID, Name: s.Name, Active: s.Active}, nil)
}
