package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body wallets receive: {"error":{"message":...}}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, RequestID: c.GetString("request_id"), Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes msg to the client and keeps err on the context for
// the error middleware to log.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func Abort(c *gin.Context, status int, err error, msg string) {
	AbortWithError(c, status, err, msg, nil)
}
