// Package response writes the uniform JSON envelope every API endpoint returns.
package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body shape of every API response
type Envelope struct {
	Status    bool   `json:"status"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	ExtraData any    `json:"extraData,omitempty"`
}

// OK writes a successful envelope
func OK(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{Status: true, Message: message, Data: data})
}

// OKWithExtra writes a successful envelope with extraData, e.g. list totals
func OKWithExtra(c *gin.Context, code int, message string, data, extra any) {
	c.JSON(code, Envelope{Status: true, Message: message, Data: data, ExtraData: extra})
}

// Fail writes a failed envelope with empty data
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{Status: false, Message: message, Data: []any{}})
}

// FailWithExtra writes a failed envelope carrying details such as per-field errors
func FailWithExtra(c *gin.Context, code int, message string, extra any) {
	c.JSON(code, Envelope{Status: false, Message: message, Data: []any{}, ExtraData: extra})
}

// Abort writes a failed envelope and stops the handler chain
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Envelope{Status: false, Message: message, Data: []any{}})
}
