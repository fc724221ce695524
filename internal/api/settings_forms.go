package api

// ProfileForm 空字串的社群帳號不檢查格式
type ProfileForm struct {
	Name             string `form:"name" validate:"min=2"`
	Username         string `form:"username" validate:"min=2"`
	Bio              string `form:"bio" validate:"max=160"`
	Location         string `form:"location"`
	GithubHandle     string `form:"github_handle" validate:"omitempty,gh_username"`
	TwitterHandle    string `form:"twitter_handle" validate:"omitempty,twitter_handle"`
	LinkedInHandle   string `form:"linked_in_handle" validate:"omitempty,linkedin_handle"`
	KeyStrokeTimeout int    `form:"key_stroke_timeout" validate:"omitempty,min=120"`
}

// Fields 轉為 PUT /api/v1/profile 的 body
func (f ProfileForm) Fields() map[string]any {
	fields := map[string]any{
		"name":             f.Name,
		"username":         f.Username,
		"bio":              f.Bio,
		"location":         f.Location,
		"github_handle":    f.GithubHandle,
		"twitter_handle":   f.TwitterHandle,
		"linked_in_handle": f.LinkedInHandle,
	}
	if f.KeyStrokeTimeout > 0 {
		fields["heartbeats_timeout_sec"] = f.KeyStrokeTimeout
	}
	return fields
}

// PreferenceForm 一次只更新一個偏好設定
type PreferenceForm struct {
	Field string `form:"field" validate:"oneof=hireable show_email_in_public public_leaderboard heartbeats_timeout_sec"`
	Value string `form:"value"`
}

type WakatimeForm struct {
	APIKey string `form:"api_key"`
	APIURL string `form:"api_url" validate:"omitempty,url"`
}
