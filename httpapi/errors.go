package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"menucart/logic"
)

var errMenuItemNotFound = errors.New(logic.ErrMsgMenuItemNotFound)

// httpStatus maps an error to the HTTP status, the machine-readable code and
// the client message.
func httpStatus(err error) (int, string, string) {
	if errors.Is(err, errMenuItemNotFound) {
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	}

	var cmdErr *logic.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == logic.StatusInvalidArgument {
		return http.StatusBadRequest, cmdErr.Code.String(), cmdErr.Message
	}
	return http.StatusInternalServerError, "INTERNAL", "internal error"
}

func writeError(c *gin.Context, err error) {
	status, code, msg := httpStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg, "code": code})
}

func badRequest(c *gin.Context, msg string) {
	writeError(c, logic.NewInvalidArgument(msg))
}
