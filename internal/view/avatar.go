package view

import (
	"strings"

	"github.com/duke-git/lancet/v2/cryptor"
)

// AvatarURL 依模板產生頭像網址
// 模板引用的欄位為空，或展開後仍有未知 placeholder 時回傳 fallback
func AvatarURL(tmpl, fallback, username, email string) string {
	if tmpl == "" {
		return fallback
	}
	if (strings.Contains(tmpl, "{username") && username == "") ||
		(strings.Contains(tmpl, "{email") && email == "") {
		return fallback
	}
	url := strings.NewReplacer(
		"{username}", username,
		"{email}", email,
		"{username_hash}", cryptor.Md5String(username),
		"{email_hash}", cryptor.Md5String(email),
	).Replace(tmpl)
	if strings.Contains(url, "{") {
		return fallback
	}
	return url
}
