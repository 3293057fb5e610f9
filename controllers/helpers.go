package controllers

import (
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/mayaya-dev/3awan-caferesto-api/pkg/resp"
	"github.com/mayaya-dev/3awan-caferesto-api/serializers"
	"github.com/mayaya-dev/3awan-caferesto-api/services"
	"github.com/mayaya-dev/3awan-caferesto-api/validation"

	"github.com/gin-gonic/gin"
)

// utcFormat renders timestamps of resources that take no tz parameters.
var utcFormat = serializers.NewTimeFormat("", "")

// bindPayload decodes the body as a JSON object. An empty body counts as
// an empty object.
func bindPayload(c *gin.Context) (map[string]any, bool) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, true
		}
		resp.BadRequest(c, "Invalid JSON body")
		return nil, false
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, true
}

// paramID parses :id. Ids that cannot name a row answer 404 like a
// missing row would.
func paramID(c *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		resp.NotFound(c, entity+" not found")
		return 0, false
	}
	return uint(id), true
}

func deleteMode(c *gin.Context) (services.DeleteMode, bool) {
	mode, err := services.ParseDeleteMode(c.Param("mode"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return 0, false
	}
	return mode, true
}

// requestTimeFormat reads the tz and tz_style query parameters.
func requestTimeFormat(c *gin.Context) serializers.TimeFormat {
	return serializers.NewTimeFormat(c.Query("tz"), c.Query("tz_style"))
}

// respondError maps service errors to status codes. Unclassified errors
// are logged and answered with a generic message.
func respondError(c *gin.Context, log *slog.Logger, action string, err error) {
	var ve *validation.ValidationError
	var nf *services.NotFoundError
	switch {
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Message)
	case errors.As(err, &nf):
		resp.NotFound(c, nf.Message)
	case errors.Is(err, services.ErrInvalidDeleteType):
		resp.BadRequest(c, err.Error())
	default:
		log.Error("request failed",
			slog.String("action", action),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
		resp.ServerError(c, "Failed to "+action)
	}
}
