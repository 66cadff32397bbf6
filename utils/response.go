package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape: the HTTP status repeated as a
// string, a human message, and the payload. Success and error responses
// share it; only the two delete confirmations bypass it.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func Respond(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Envelope{
		Status:  strconv.Itoa(code),
		Message: message,
		Data:    data,
	})
}

// RespondText renders the plain-text delete confirmations
// ("Article deleted", "User deleted").
func RespondText(c *gin.Context, code int, body string) {
	c.String(code, body)
}
