package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the body of every failed request: {"error": "..."} plus optional fields.
type Response struct {
	Status    int    `json:"-"`
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

// AbortWithError records err on the context for the error middleware and
// writes the client-facing message. err never reaches the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}
	if id, ok := c.Get(RequestIDKey); ok {
		resp.RequestID, _ = id.(string)
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// RequestIDKey is where the logging middleware stores the request id.
const RequestIDKey = "request_id"
