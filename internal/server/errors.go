package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	dashboarddomain "github.com/slzdigital/catalogo/internal/dashboard/domain"
	obslogger "github.com/slzdigital/catalogo/internal/observability/logger"
	reviewdomain "github.com/slzdigital/catalogo/internal/review/domain"
	systemdomain "github.com/slzdigital/catalogo/internal/system/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Every error response shares the shape {success:false, message, error?}.
// The request layer is the only place errors become HTTP responses; lower
// layers return domain sentinels or raw storage errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrRateLimited    = errors.New("rate_limited")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		if status >= http.StatusInternalServerError {
			// Storage detail stays server-side; clients get the generic message.
			obslogger.FromContext(c.Request.Context()).Error("request failed", zap.Error(lastErr.Err))
		}
		c.AbortWithStatusJSON(status, payload)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorResponse) {
	if code, message, ok := validationDetail(err); ok {
		return http.StatusBadRequest, errorResponse{
			Success: false,
			Message: message,
			Error:   code,
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse{
			Success: false,
			Message: "Não autorizado",
			Error:   "unauthorized",
		}
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, errorResponse{
			Success: false,
			Message: "Muitas requisições. Tente novamente em instantes",
			Error:   "rate_limited",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorResponse{
			Success: false,
			Message: "Sistema não encontrado",
			Error:   "not_found",
		}
	default:
		return http.StatusInternalServerError, errorResponse{
			Success: false,
			Message: "Erro interno do servidor",
		}
	}
}

func isNotFoundError(err error) bool {
	return errors.Is(err, systemdomain.ErrNotFound) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}

func validationDetail(err error) (code, message string, ok bool) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request", "Requisição inválida", true
	case errors.Is(err, systemdomain.ErrInvalidID):
		return "invalid_id", "ID do sistema inválido", true
	case errors.Is(err, systemdomain.ErrInvalidName):
		return "invalid_name", "Nome do sistema é obrigatório", true
	case errors.Is(err, systemdomain.ErrInvalidDescription):
		return "invalid_description", "Descrição do sistema é obrigatória", true
	case errors.Is(err, systemdomain.ErrInvalidSecretary):
		return "invalid_secretary", "Secretaria é obrigatória", true
	case errors.Is(err, systemdomain.ErrInvalidCategory):
		return "invalid_category", "Categoria é obrigatória", true
	case errors.Is(err, systemdomain.ErrInvalidQuery):
		return "invalid_query", "O campo query é obrigatório", true
	case errors.Is(err, reviewdomain.ErrInvalidUserName):
		return "invalid_user_name", "Nome do usuário é obrigatório", true
	case errors.Is(err, reviewdomain.ErrInvalidRating):
		return "invalid_rating", "Avaliação deve ser um número inteiro entre 1 e 5", true
	case errors.Is(err, reviewdomain.ErrInvalidComment):
		return "invalid_comment", "Comentário é obrigatório", true
	case errors.Is(err, reviewdomain.ErrInvalidAge):
		return "invalid_age", "Idade inválida", true
	case errors.Is(err, dashboarddomain.ErrInvalidDepartment):
		return "invalid_department", "Departamento inválido", true
	default:
		return "", "", false
	}
}

// classifyErrorForLog feeds the request logger with a stable type/code pair.
func classifyErrorForLog(err error) (string, string) {
	if code, _, ok := validationDetail(err); ok {
		return "validation_error", code
	}
	if errors.Is(err, ErrUnauthorized) {
		return "unauthorized", "unauthorized"
	}
	if errors.Is(err, ErrRateLimited) {
		return "rate_limited", "rate_limited"
	}
	if isNotFoundError(err) {
		return "not_found", "not_found"
	}
	return "storage_error", "internal_error"
}
