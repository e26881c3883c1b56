// Package adminapi es el cliente remoto de las rutas /api/admin, usado por petadmin.
package adminapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pet-adoption-workflow/internal/domain/adoptions"
	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/platform/httpclient"
)

type Client struct {
	http *httpclient.Client
}

type Options struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration

	Transport http.RoundTripper // opcional
}

func New(opts Options) (*Client, error) {
	hc, err := httpclient.New(opts.BaseURL,
		httpclient.WithTimeout(opts.Timeout),
		httpclient.WithTransport(opts.Transport),
		httpclient.WithBasicAuth(opts.Username, opts.Password),
	)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// Questionnaire es la vista de un cuestionario tal como la devuelve la API.
type Questionnaire struct {
	ID        int64                  `json:"id"`
	Username  string                 `json:"username"`
	UserID    int64                  `json:"user_id,omitempty"`
	Status    workflow.Status        `json:"status"`
	Answers   questionnaires.Answers `json:"answers"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type Approval struct {
	Message       string        `json:"message"`
	ApprovedPets  []int64       `json:"approved_pets"`
	Questionnaire Questionnaire `json:"questionnaire"`
}

type Rejection struct {
	Message       string        `json:"message"`
	Questionnaire Questionnaire `json:"questionnaire"`
}

func (c *Client) PendingQuestionnaires(ctx context.Context) ([]Questionnaire, error) {
	var out []Questionnaire
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/admin/questionnaires", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApproveQuestionnaire(ctx context.Context, id int64, petIDs []int64) (Approval, error) {
	var out Approval
	in := map[string]any{"pet_ids": petIDs}
	err := c.http.DoJSON(ctx, http.MethodPost, fmt.Sprintf("/api/admin/questionnaires/%d/approve", id), in, &out)
	return out, err
}

// RejectQuestionnaire: expected vacío = sin token de concurrencia.
func (c *Client) RejectQuestionnaire(ctx context.Context, id int64, expected string) (Rejection, error) {
	var out Rejection
	err := c.http.DoJSON(ctx, http.MethodPost, fmt.Sprintf("/api/admin/questionnaires/%d/reject", id), expectedBody(expected), &out)
	return out, err
}

func (c *Client) Adoptions(ctx context.Context) ([]adoptions.Response, error) {
	var out []adoptions.Response
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/admin/adoptions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateAdoption(ctx context.Context, id int64, action, expected string) (adoptions.Response, error) {
	var out adoptions.Response
	path := fmt.Sprintf("/api/admin/adoptions/%d/%s", id, url.PathEscape(action))
	err := c.http.DoJSON(ctx, http.MethodPost, path, expectedBody(expected), &out)
	return out, err
}

func expectedBody(expected string) any {
	if expected == "" {
		return nil
	}
	return map[string]string{"expected_status": expected}
}
