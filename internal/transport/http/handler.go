package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/ports"
)

// Тексты ошибок клиенту: внутренние сообщения (SQL, DSN) наружу не уходят.
const (
	errNotFound        = "Not Found"
	errServer          = "Server error"
	msgNotFound        = "The requested resource was not found"
	msgDataUnavailable = "Database connection or query failed"
	msgUnexpected      = "An unexpected error occurred"
)

type topProductsResponse struct {
	Success bool                `json:"success"`
	Data    []domain.CacheEntry `json:"data"`
	Message string              `json:"message"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Handler — HTTP-обработчики ресурса рейтинга.
type Handler struct {
	reader  ports.TopProductsReader
	log     ports.Logger
	timeout time.Duration
	maxAge  time.Duration // публичный срок жизни ответа = окно свежести
	clock   clockwork.Clock
}

// NewHandler — timeout <= 0 отключает собственный таймаут обработчика.
func NewHandler(reader ports.TopProductsReader, log ports.Logger, timeout, maxAge time.Duration) *Handler {
	return &Handler{reader: reader, log: log, timeout: timeout, maxAge: maxAge, clock: clockwork.NewRealClock()}
}

// WithClock — часы для заголовка Expires (тесты).
func (h *Handler) WithClock(clock clockwork.Clock) *Handler {
	h.clock = clock
	return h
}

func (h *Handler) getTopProducts(c *gin.Context) {
	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	res, err := h.reader.GetTopProducts(ctx)
	if err != nil {
		h.log.Errorf(ctx, "get top products failed: %v", err)
		h.serverError(c, errorMessage(err))
		return
	}

	maxAge := int(h.maxAge / time.Second)
	c.Header("Cache-Control", "public, max-age="+strconv.Itoa(maxAge))
	c.Header("Expires", h.clock.Now().Add(h.maxAge).UTC().Format(http.TimeFormat))
	c.JSON(http.StatusOK, topProductsResponse{
		Success: true,
		Data:    res.Entries,
		Message: res.Message,
	})
}

func (h *Handler) notFound(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusNotFound, errorResponse{Error: errNotFound, Message: msgNotFound})
}

func (h *Handler) recovered(c *gin.Context, rec any) {
	h.log.Errorf(c.Request.Context(), "panic recovered: %v", rec)
	h.serverError(c, msgUnexpected)
}

func (h *Handler) serverError(c *gin.Context, msg string) {
	c.Header("Cache-Control", "no-store")
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: errServer, Message: msg})
}

// errorMessage — ошибки хранилища и истёкший таймаут запроса считаются недоступностью данных.
func errorMessage(err error) string {
	if domain.IsStoreError(err) || errors.Is(err, context.DeadlineExceeded) {
		return msgDataUnavailable
	}
	return msgUnexpected
}
