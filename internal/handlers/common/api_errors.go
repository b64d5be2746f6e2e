package common

import (
	"net/http"
	"strings"

	apperrors "chatproxy-go/internal/errors"
	"github.com/gin-gonic/gin"
)

// AbortWithAPIError serializes the provided APIError and aborts the request.
// This is only used for proxy-originated errors; upstream error payloads are
// relayed verbatim and never pass through here.
func AbortWithAPIError(c *gin.Context, err *apperrors.APIError) {
	if err == nil {
		err = apperrors.New(http.StatusInternalServerError, "server_error", "server_error", "unknown error")
	}

	payload, marshalErr := err.ToJSON()
	if marshalErr != nil {
		c.JSON(apperrors.SafeStatus(err.HTTPStatus), gin.H{
			"error": gin.H{
				"message": err.Message,
				"type":    err.Type,
				"code":    err.Code,
			},
		})
		c.Abort()
		return
	}

	c.Data(apperrors.SafeStatus(err.HTTPStatus), "application/json", payload)
	c.Abort()
}

// AbortWithError constructs an APIError from the provided fields and aborts the request.
func AbortWithError(c *gin.Context, status int, typ, message string) {
	typ = normalizeType(typ)
	err := apperrors.New(apperrors.SafeStatus(status), typ, typ, firstNonEmpty(message, "internal error"))
	AbortWithAPIError(c, err)
}

func normalizeType(typ string) string {
	if strings.TrimSpace(typ) == "" {
		return "server_error"
	}
	return typ
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
