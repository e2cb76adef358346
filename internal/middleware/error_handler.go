package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/dukapos/payment-engine/internal/payment"
	"github.com/dukapos/payment-engine/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MapError translates engine and database failures into HTTP responses.
// Engine errors carry operator-facing messages and are returned verbatim.
func MapError(err error) (int, ErrorResponse) {
	if errors.Is(err, service.ErrCheckoutNotFound) {
		return http.StatusNotFound, ErrorResponse{Error: err.Error()}
	}

	var engineErr *payment.Error
	if errors.As(err, &engineErr) {
		switch engineErr.Kind {
		case payment.ErrValidation:
			return http.StatusBadRequest, ErrorResponse{Error: engineErr.Message}
		case payment.ErrState:
			return http.StatusConflict, ErrorResponse{Error: engineErr.Message}
		case payment.ErrPrecondition:
			return http.StatusServiceUnavailable, ErrorResponse{Error: engineErr.Message}
		}
	}

	return MapDBError(err)
}

func MapDBError(err error) (int, ErrorResponse) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "23503": // foreign_key_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "referenced resource does not exist",
				Details: pgErr.Detail,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		case "23P01": // exclusion_violation
			return http.StatusConflict, ErrorResponse{
				Error:   "overlapping resource",
				Details: pgErr.Detail,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
