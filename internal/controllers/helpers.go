package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads a positive integer path parameter
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// respondInternalError logs an unexpected failure and aborts with a 500
func respondInternalError(ctx *gin.Context, err error, message string) {
	_ = ctx.Error(err)
	log.WithError(err).WithField("path", ctx.FullPath()).Error(message)
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgInternalServer))
}
