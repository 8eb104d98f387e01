package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

const internalErrorMessage = "Internal server error"

type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error пишет {"error": ...}. Причина ошибки уходит только в лог.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logError(c, err)
		}
		c.JSON(appErr.HTTPStatus, ErrorBody{Error: appErr.Message})
		return
	}

	logError(c, err)
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: internalErrorMessage})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorBody{Error: message})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorBody{Error: message})
}

func logError(c *gin.Context, err error) {
	entry := logger.WithComponent("http").WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	})
	if id, ok := c.Get("request_id"); ok {
		entry = entry.WithField("request_id", id)
	}
	entry.WithError(err).Error("ошибка обработки запроса")
}
