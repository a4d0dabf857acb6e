package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"internhub/board-api/internal/utils/platformerrors"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError translates an error into an HTTP response. PlatformErrors map
// to their category's status; anything else is treated as internal and its
// detail is withheld from the caller.
func HandleError(c *gin.Context, log zerolog.Logger, err error) {
	if platformErr := platformerrors.GetPlatformError(err); platformErr != nil {
		platformerrors.LogError(log, platformErr)
		c.JSON(platformerrors.ErrorTypeToHTTPStatus(platformErr.Type), ErrorResponse{
			Error:     platformErr.Message,
			Code:      platformErr.Code,
			RequestID: platformErr.RequestID,
		})
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
	})
}

// HandleValidationError answers a request binding failure.
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "invalid request: " + err.Error(),
	})
}
