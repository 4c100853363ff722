package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/models"
)

// HTTPClientConfig holds the connection settings of the API client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient constructs a resty-backed [APIClient]. It normalises and
// validates the base URL and configures the request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(cfg HTTPClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the path of all subsequent frame requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient]. It returns the bearer token currently held by
// the client, or an empty string if none has been set.
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [APIClient]. It POSTs the user credentials to /user and
// decodes the assigned user ID from the response body.
func (h *httpAPIClient) Register(ctx context.Context, user models.User) (models.RegisterResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/user")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	var registered models.RegisterResponse
	if err := json.Unmarshal(resp.Body(), &registered); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register decode response: %w", err)
	}

	return registered, nil
}

// Login implements [APIClient]. It POSTs the credentials to /login, stores
// the issued token via SetToken and returns the response body.
func (h *httpAPIClient) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var login models.LoginResponse
	if err := json.Unmarshal(resp.Body(), &login); err != nil {
		return models.LoginResponse{}, fmt.Errorf("login decode response: %w", err)
	}

	h.SetToken(login.AuthToken)
	return login, nil
}

// UploadFrames implements [APIClient]. Each file travels as one repeated
// "files" part of a multipart request.
func (h *httpAPIClient) UploadFrames(ctx context.Context, files []models.FrameUpload) (models.BatchResponse, error) {
	request := h.client.R().SetContext(ctx)
	for _, file := range files {
		request.SetFileReader("files", file.Name, bytes.NewReader(file.Content))
	}

	resp, err := request.Post("/frames/" + h.Token())
	if err != nil {
		return nil, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var batch models.BatchResponse
	if err := json.Unmarshal(resp.Body(), &batch); err != nil {
		return nil, fmt.Errorf("upload decode response: %w", err)
	}

	return batch, nil
}

// GetFrames implements [APIClient].
func (h *httpAPIClient) GetFrames(ctx context.Context, code string) (models.BatchResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/frames/" + h.Token() + "/" + code)
	if err != nil {
		return nil, fmt.Errorf("get frames request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var batch models.BatchResponse
	if err := json.Unmarshal(resp.Body(), &batch); err != nil {
		return nil, fmt.Errorf("get frames decode response: %w", err)
	}

	return batch, nil
}

// DeleteFrames implements [APIClient].
func (h *httpAPIClient) DeleteFrames(ctx context.Context, code string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/frames/" + h.Token() + "/" + code)
	if err != nil {
		return fmt.Errorf("delete frames request: %w", err)
	}

	return mapHTTPError(resp)
}
