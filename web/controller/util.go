package controller

import (
	"strconv"

	"postboard/logger"
	"postboard/web/entity"
	"postboard/web/middleware"

	"github.com/gin-gonic/gin"
)

// jsonSuccess sends the success envelope with the given status code.
func jsonSuccess(c *gin.Context, statusCode int, msg string, data any) {
	c.JSON(statusCode, entity.ApiResponse{
		Status:  true,
		Message: msg,
		Data:    data,
	})
}

// jsonError maps a failure through the closed taxonomy. Unclassified errors
// become a generic fault; their detail is logged, never sent to the client.
func jsonError(c *gin.Context, err error) {
	apiErr, ok := err.(*entity.ApiError)
	if !ok {
		logger.Error("unhandled fault:", err, "id="+middleware.GetRequestID(c))
		apiErr = entity.Fault()
	}
	c.JSON(apiErr.HTTPStatus(), apiErr.Response())
}

// pathId parses the :id path parameter. A non-numeric id is treated the
// same as a missing resource by the callers.
func pathId(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, entity.NotFound("Resource not found")
	}
	return id, nil
}
