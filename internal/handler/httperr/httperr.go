package httperr

import (
	"github.com/gin-gonic/gin"
)

// Body is the payload under the "error" key of every failed response.
type Body struct {
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Body{Message: msg}, Detail: detail}
}

// AbortWithError records err on the context for the request log and sends only msg to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Written reports the response recorded by the last AbortWithError on c.
func Written(c *gin.Context) (Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := e.Meta.(Response); ok {
			return resp, true
		}
	}
	return Response{}, false
}
