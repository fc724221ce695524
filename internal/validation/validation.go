// File: internal/validation/validation.go
package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	twitterHandleRe  = regexp.MustCompile(`^[a-zA-Z0-9_]{1,15}$`)
	linkedinHandleRe = regexp.MustCompile(`^[a-zA-Z0-9-]{3,100}$`)
)

// 自訂 tag 對應的錯誤訊息
var tagMessages = map[string]string{
	"gh_username":     "Please enter a valid GitHub username.",
	"twitter_handle":  "Please enter a valid Twitter username.",
	"linkedin_handle": "Please enter a valid LinkedIn username.",
}

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// New 註冊自訂 tag 後回傳
func New() *CustomValidator {
	v := validator.New()
	// tag 名稱固定，註冊失敗只可能是程式錯誤
	must(v.RegisterValidation("gh_username", func(fl validator.FieldLevel) bool {
		return IsGitHubUsername(fl.Field().String())
	}))
	must(v.RegisterValidation("twitter_handle", func(fl validator.FieldLevel) bool {
		return twitterHandleRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("linkedin_handle", func(fl validator.FieldLevel) bool {
		return linkedinHandleRe.MatchString(fl.Field().String())
	}))
	return &CustomValidator{validator: v}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// IsGitHubUsername 1~39 個英數字或 -，不可以 - 開頭、結尾或連續
func IsGitHubUsername(s string) bool {
	if len(s) == 0 || len(s) > 39 {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case isAlnum(ch):
		case ch == '-':
			if i == 0 || i+1 >= len(s) || !isAlnum(s[i+1]) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func isAlnum(ch byte) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

// Message 轉成可顯示給使用者的第一則錯誤
func Message(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	fe := errs[0]
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not be longer than %s characters.", fe.Field(), fe.Param())
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s.", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid.", fe.Field())
}
