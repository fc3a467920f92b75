package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/R3Claimers/InsiderJobs/models"
	"github.com/R3Claimers/InsiderJobs/storage"
)

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, models.MessageResponse{Success: false, Message: message})
}

// failInternal logs err and answers 500 with its message
func failInternal(c *gin.Context, component string, err error) {
	log.Printf("[%s] %s %s: %v", component, c.Request.Method, c.FullPath(), err)
	fail(c, http.StatusInternalServerError, err.Error())
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
