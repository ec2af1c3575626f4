package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kapu/member-directory-go/internal/service"
	"github.com/kapu/member-directory-go/pkg/errors"
)

// ErrorResponse is the standardized error payload.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// Handler exposes the extraction engine over HTTP. Request-parameter
// validation and the range-size cap live here, outside the engine.
type Handler struct {
	engine       *service.ExtractorEngine
	maxRangeSize int
}

func NewHandler(engine *service.ExtractorEngine, maxRangeSize int) *Handler {
	return &Handler{engine: engine, maxRangeSize: maxRangeSize}
}

func (h *Handler) respondError(c *gin.Context, status int, message, code string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

// GetMember handles GET /api/members/:id.
func (h *Handler) GetMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("id"))
	if err != nil || memberID <= 0 {
		h.respondError(c, http.StatusBadRequest, "member id must be a positive integer", errors.CodeValidation)
		return
	}

	record, err := h.engine.ExtractOne(c.Request.Context(), memberID)
	if err != nil {
		h.respondError(c, http.StatusBadGateway, err.Error(), errors.CodeExtraction)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetMemberRange handles GET /api/members/range?start=&end=&chunkSize=&delayMs=.
func (h *Handler) GetMemberRange(c *gin.Context) {
	startID, err := strconv.Atoi(c.Query("start"))
	if err != nil || startID <= 0 {
		h.respondError(c, http.StatusBadRequest, "start must be a positive integer", errors.CodeValidation)
		return
	}

	endID, err := strconv.Atoi(c.Query("end"))
	if err != nil || endID <= 0 {
		h.respondError(c, http.StatusBadRequest, "end must be a positive integer", errors.CodeValidation)
		return
	}

	if startID > endID {
		h.respondError(c, http.StatusBadRequest, "start must not exceed end", errors.CodeValidation)
		return
	}

	if rangeSize := endID - startID + 1; rangeSize > h.maxRangeSize {
		h.respondError(c, http.StatusBadRequest,
			"range size exceeds the maximum of "+strconv.Itoa(h.maxRangeSize)+" members", errors.CodeValidation)
		return
	}

	opts := service.BatchOptions{}
	if raw := c.Query("chunkSize"); raw != "" {
		chunkSize, err := strconv.Atoi(raw)
		if err != nil || chunkSize < 1 {
			h.respondError(c, http.StatusBadRequest, "chunkSize must be a positive integer", errors.CodeValidation)
			return
		}
		opts.ChunkSize = chunkSize
	}
	if raw := c.Query("delayMs"); raw != "" {
		delayMs, err := strconv.Atoi(raw)
		if err != nil || delayMs < 0 {
			h.respondError(c, http.StatusBadRequest, "delayMs must be a non-negative integer", errors.CodeValidation)
			return
		}
		opts.InterChunkDelay = time.Duration(delayMs) * time.Millisecond
		if delayMs == 0 {
			opts.InterChunkDelay = service.NoInterChunkDelay
		}
	}

	result, err := h.engine.ExtractRange(c.Request.Context(), startID, endID, opts)
	if err != nil {
		if errors.IsValidationError(err) {
			h.respondError(c, http.StatusBadRequest, err.Error(), errors.CodeValidation)
			return
		}
		h.respondError(c, http.StatusInternalServerError, err.Error(), errors.CodeExtraction)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMetrics handles GET /api/extractor/metrics.
func (h *Handler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Metrics())
}
