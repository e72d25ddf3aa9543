// Package api is the HTTP transport used by the client-side synchronization
// controller. It wraps the server's JSON resource endpoints in typed calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/luisf2211/kanban-project/internal/kanban"
	"github.com/luisf2211/kanban-project/internal/models"
)

// Client talks to the dashboard server.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError is the {"error": "..."} body returned on failures.
type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e apiError
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, e.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %s", method, path, resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var list []models.Client
	if err := c.do(ctx, http.MethodGet, "/clients", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateClient(ctx context.Context, fields map[string]any) (*models.Client, error) {
	var created models.Client
	if err := c.do(ctx, http.MethodPost, "/clients", fields, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, fields map[string]any) (*models.Client, error) {
	var updated models.Client
	if err := c.do(ctx, http.MethodPatch, "/clients/"+id, fields, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+id, nil, nil)
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var list []models.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	var created models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProjectStatus patches the status field only; no other field is
// touched by a board move.
func (c *Client) UpdateProjectStatus(ctx context.Context, id string, status kanban.Status) error {
	return c.do(ctx, http.MethodPatch, "/projects/"+id, map[string]any{"status": string(status)}, nil)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil)
}

func (c *Client) ListFiles(ctx context.Context) ([]models.File, error) {
	var list []models.File
	if err := c.do(ctx, http.MethodGet, "/upload", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UploadFile sends a multipart payload: the file content plus the optional
// display name and description fields.
func (c *Client) UploadFile(ctx context.Context, filename string, content []byte, name, description string) (*models.File, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if name != "" {
		if err := w.WriteField("name", name); err != nil {
			return nil, err
		}
	}
	if description != "" {
		if err := w.WriteField("description", description); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e apiError
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			return nil, fmt.Errorf("upload: %s", e.Error)
		}
		return nil, fmt.Errorf("upload: unexpected status %s", resp.Status)
	}

	var created models.File
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &created, nil
}

func (c *Client) DeleteFile(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/upload/"+id, nil, nil)
}

// FileDownloadURL asks the server for a signed, time-limited download URL.
func (c *Client) FileDownloadURL(ctx context.Context, id string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/upload/"+id+"/download", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
