package services

import "fmt"

// ValidationError 请求数据校验错误，边界层据此返回400
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError 创建校验错误
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError 上游情绪分类服务错误，不向外层抛异常，
// 以结构化错误字段返回给前端
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
