package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Backend domain codes surfaced in the response envelope.
const (
	codeDuplicateSubmit = 3002
)

var (
	// ErrUnauthorized means the token was rejected; the session must be
	// torn down and the user sent back to login.
	ErrUnauthorized = errors.New("认证失败，请重新登录")

	// ErrNotFound is a normal branch for fetch-or-create flows, not a
	// failure.
	ErrNotFound = errors.New("资源不存在")

	// ErrAlreadySubmitted is the duplicate-submission domain conflict. It
	// must never be retried blindly.
	ErrAlreadySubmitted = errors.New("您已经提交过简历，无法重复提交")
)

// Error carries the backend's HTTP status, domain code and message.
type Error struct {
	Status  int
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("请求失败 (HTTP %d)", e.Status)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrAlreadySubmitted:
		return e.Code == codeDuplicateSubmit
	}
	return false
}

// normalizeMessage maps common backend phrasings to friendlier ones. The
// raw message wins when nothing matches.
func normalizeMessage(msg string) string {
	switch {
	case msg == "":
		return "系统异常，请稍后重试"
	case strings.Contains(msg, "密码") || strings.Contains(msg, "password"):
		return "密码错误，请重新输入"
	case strings.Contains(msg, "验证码") || strings.Contains(msg, "code"):
		return "验证码错误或已过期"
	case strings.Contains(msg, "邮箱") || strings.Contains(msg, "email"):
		return "邮箱格式错误或未注册"
	}
	return msg
}
