package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gfdmit/blogdesk/internal/service"
	"github.com/gin-gonic/gin"
)

type envelope struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
	Msg  string      `json:"msg"`
}

func respond(c *gin.Context, code int, data interface{}, msg string) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(code, envelope{Code: code, Data: data, Msg: msg})
}

func ok(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, data, "success")
}

func created(c *gin.Context, data interface{}, msg string) {
	respond(c, http.StatusCreated, data, msg)
}

func fail(c *gin.Context, code int, msg string) {
	respond(c, code, nil, msg)
}

// renderError maps service errors to envelope codes. Anything unrecognized
// becomes a 500 with a generic message; the real error is only logged.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrParentNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrForbidden):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInUse), errors.Is(err, service.ErrInvalid):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		fail(c, http.StatusInternalServerError, "internal server error")
	}
}
