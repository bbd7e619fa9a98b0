package trip

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-viagens/internal/middleware"
	"go-viagens/internal/shared/apperror"
	"go-viagens/internal/shared/response"
	triperrors "go-viagens/internal/trip/errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyResponseTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("trip.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("trip.handler")
	}
	return &Handler{service: service, logger: l}
}

// NewHandlerWithRedis wires the redis client used to release idempotency
// locks and cache successful create responses for replay.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("trip request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid id", nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get(middleware.CtxIdempotencyLockKey)
	cacheKey, _ := c.Get(middleware.CtxIdempotencyCacheKey)
	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, "VALIDATION_ERROR", mapped.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, idempotencyResponseTTL).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// GetById keeps the legacy contract: an unknown trip id answers 200 with the
// null-filled view, not 404.
func (h *Handler) GetById(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, triperrors.ErrTripNotFound) {
			response.Success(c, http.StatusOK, NotFoundView(), nil)
			return
		}
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.service.GetByEmployee(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, "VALIDATION_ERROR", mapped.Message, nil)
		return
	}

	view, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	actorID := c.GetInt64(middleware.CtxEmployeeID)

	if err := h.service.Delete(c.Request.Context(), id, actorID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Approve(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"approved": true}, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Reject(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rejected": true}, nil)
}

func (h *Handler) ExportVoucher(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pdf, err := h.service.ExportVoucher(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=viagem_%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
