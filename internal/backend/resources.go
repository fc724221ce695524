// File: internal/backend/resources.go
package backend

import (
	"context"
	"net/http"
	"net/url"

	"wakatimer/internal/model"
)

const (
	compatPrefix = "/api/compat/wakatime/v1/users/current"
	v1Current    = "/api/v1/users/current"
)

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// Summaries start/end 為 yyyy-MM-dd；project 為空時不過濾
func (c *Client) Summaries(ctx context.Context, token, start, end, project string) (model.SummariesResponse, error) {
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)
	if project != "" {
		q.Set("project", project)
	}
	var out model.SummariesResponse
	err := c.Do(ctx, http.MethodGet, compatPrefix+"/summaries?"+q.Encode(), token, nil, &out)
	return out, err
}

// Leaders 不需登入
func (c *Client) Leaders(ctx context.Context, query url.Values) (model.LeadersResponse, error) {
	path := "/api/v1/leaders"
	if enc := query.Encode(); enc != "" {
		path += "?" + enc
	}
	var out model.LeadersResponse
	err := c.Do(ctx, http.MethodGet, path, "", nil, &out)
	return out, err
}

func (c *Client) Profile(ctx context.Context, token string) (model.Profile, error) {
	var out dataEnvelope[model.Profile]
	err := c.Do(ctx, http.MethodGet, "/api/v1/profile", token, nil, &out)
	return out.Data, err
}

// UpdateProfile 只送出 fields 內的欄位
func (c *Client) UpdateProfile(ctx context.Context, token string, fields map[string]any) (model.Profile, error) {
	var out dataEnvelope[model.Profile]
	err := c.Do(ctx, http.MethodPut, "/api/v1/profile", token, fields, &out)
	return out.Data, err
}

func (c *Client) UpdateSettings(ctx context.Context, token string, payload map[string]any) error {
	return c.Do(ctx, http.MethodPost, "/api/v1/settings", token, payload, nil)
}

func (c *Client) APIKey(ctx context.Context, token string) (model.APIKey, error) {
	var out model.APIKey
	err := c.Do(ctx, http.MethodGet, "/api/v1/auth/api-key", token, nil, &out)
	return out, err
}

func (c *Client) RefreshAPIKey(ctx context.Context, token string) (model.APIKey, error) {
	var out model.APIKey
	err := c.Do(ctx, http.MethodPost, "/api/v1/auth/api-key/refresh", token, nil, &out)
	return out, err
}

func (c *Client) Clients(ctx context.Context, token string) ([]model.Client, error) {
	var out dataEnvelope[[]model.Client]
	err := c.Do(ctx, http.MethodGet, v1Current+"/clients", token, nil, &out)
	return out.Data, err
}

func (c *Client) CreateClient(ctx context.Context, token string, in model.ClientInput) (model.Client, error) {
	var out dataEnvelope[model.Client]
	err := c.Do(ctx, http.MethodPost, v1Current+"/clients", token, in, &out)
	return out.Data, err
}

func (c *Client) UpdateClient(ctx context.Context, token, id string, in model.ClientInput) (model.Client, error) {
	var out dataEnvelope[model.Client]
	err := c.Do(ctx, http.MethodPut, v1Current+"/clients/"+url.PathEscape(id), token, in, &out)
	return out.Data, err
}

func (c *Client) DeleteClient(ctx context.Context, token, id string) error {
	return c.Do(ctx, http.MethodDelete, v1Current+"/clients/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) Invoices(ctx context.Context, token string) ([]model.Invoice, error) {
	var out dataEnvelope[[]model.Invoice]
	err := c.Do(ctx, http.MethodGet, v1Current+"/invoices", token, nil, &out)
	return out.Data, err
}

func (c *Client) CreateInvoice(ctx context.Context, token string, in model.InvoiceInput) (model.Invoice, error) {
	var out dataEnvelope[model.Invoice]
	err := c.Do(ctx, http.MethodPost, v1Current+"/invoices", token, in, &out)
	return out.Data, err
}

func (c *Client) DeleteInvoice(ctx context.Context, token, id string) error {
	return c.Do(ctx, http.MethodDelete, compatPrefix+"/invoices/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) Goals(ctx context.Context, token string) ([]model.Goal, error) {
	var out dataEnvelope[[]model.Goal]
	err := c.Do(ctx, http.MethodGet, compatPrefix+"/goals", token, nil, &out)
	return out.Data, err
}

func (c *Client) CreateGoal(ctx context.Context, token string, in model.GoalInput) (model.Goal, error) {
	var out dataEnvelope[model.Goal]
	err := c.Do(ctx, http.MethodPost, v1Current+"/goals", token, in, &out)
	return out.Data, err
}

func (c *Client) DeleteGoal(ctx context.Context, token, id string) error {
	return c.Do(ctx, http.MethodDelete, compatPrefix+"/goals/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) UserAgents(ctx context.Context, token string) ([]model.UserAgent, error) {
	var out dataEnvelope[[]model.UserAgent]
	err := c.Do(ctx, http.MethodGet, v1Current+"/user-agents", token, nil, &out)
	return out.Data, err
}

// BadgeURL 專案總時數徽章
func (c *Client) BadgeURL(userID, projectID, token string) string {
	q := url.Values{}
	q.Set("label", "total")
	q.Set("token", token)
	return c.baseURL + "/api/badge/" + url.PathEscape(userID) + "/project:" + url.PathEscape(projectID) + "/interval:all_time?" + q.Encode()
}
