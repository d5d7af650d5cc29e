package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Sofzenix/neurowell/config"
	"github.com/Sofzenix/neurowell/services"
	"github.com/gin-gonic/gin"
)

// userIDParam 从查询参数取用户ID，解析成功的值原样透传，
// 缺省或无法解析时取1，负数在无符号域内按0处理（查不到任何记录）
func userIDParam(c *gin.Context) uint {
	userID, err := strconv.Atoi(c.DefaultQuery("user_id", "1"))
	if err != nil {
		return 1
	}
	if userID < 0 {
		return 0
	}
	return uint(userID)
}

// respondError 按错误类型决定HTTP状态码：
// 校验错误返回400，其余返回500并打日志
func respondError(c *gin.Context, err error, message string) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   validationErr.Message,
		})
		return
	}

	config.Logger.Errorw(message, "error", err, "path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   message,
	})
}
