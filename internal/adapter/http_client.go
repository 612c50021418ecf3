package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/itemkeeper/itemkeeper/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var tokenResp models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(tokenResp.Token)
	return tokenResp.Token, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, req models.ItemRequest) (models.Item, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var item models.Item
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.Item{}, fmt.Errorf("decode create item response: %w", err)
	}

	return item, nil
}

func (h *httpServerAdapter) GetItem(ctx context.Context, id int64) (models.Item, error) {
	resp, err := h.authedRequest(ctx).Get("/items/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var item models.Item
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.Item{}, fmt.Errorf("decode get item response: %w", err)
	}

	return item, nil
}

func (h *httpServerAdapter) GetAllItems(ctx context.Context) ([]models.Item, error) {
	resp, err := h.authedRequest(ctx).Get("/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Item
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list items response: %w", err)
	}

	return items, nil
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, id int64, req models.ItemRequest) (models.Item, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/items/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Item{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var item models.Item
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.Item{}, fmt.Errorf("decode update item response: %w", err)
	}

	return item, nil
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete("/items/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	resp, err := h.authedRequest(ctx).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.UserSummary
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode list users response: %w", err)
	}

	return users, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.ProfileResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/profile")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	var profile models.ProfileResponse
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.ProfileResponse{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
