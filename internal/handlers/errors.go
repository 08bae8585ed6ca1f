package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"foodorder/internal/apperr"
)

// writeError maps a service error onto an HTTP response. Storage detail is
// always logged; it only reaches the body outside production.
func writeError(c *gin.Context, err error, production bool) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Wrap(apperr.Storage, "Something went wrong!", err)
	}

	body := gin.H{"message": ae.Message}
	if ae.Kind == apperr.Storage {
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, ae)
		if !production && ae.Err != nil {
			body["error"] = ae.Err.Error()
		}
	}

	c.JSON(ae.HTTPStatus(), body)
}
