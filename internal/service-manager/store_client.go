package service_manager

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -source=store_client.go -destination=mock_store_client.go -package=service_manager

type StoreClient interface {
	Login(ctx context.Context) error
	ListServices(ctx context.Context) ([]model.Service, error)
	CreateService(ctx context.Context, patch model.ServicePatch) (model.Service, error)
	UpdateService(ctx context.Context, id string, patch model.ServicePatch) (model.Service, error)
	DeleteService(ctx context.Context, id string) error
	GetIntegrations(ctx context.Context) (model.Integrations, error)
}

type storeClient struct {
	client   *http.Client
	baseURL  string
	username string
	password string

	mu    sync.RWMutex
	token string
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges the configured credentials for an access token used by later calls.
func (s *storeClient) Login(ctx context.Context) error {
	body := map[string]string{
		"username": s.username,
		"password": s.password,
	}
	var res loginResponse
	if err := s.send(ctx, "StoreClient.Login", http.MethodPost, "/api/login", body, &res, false); err != nil {
		return err
	}
	if res.AccessToken == "" {
		return fmt.Errorf("StoreClient.Login: %w: empty access token", ErrUnauthorized)
	}
	s.mu.Lock()
	s.token = res.AccessToken
	s.mu.Unlock()
	return nil
}

func (s *storeClient) ListServices(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	if err := s.do(ctx, "StoreClient.ListServices", http.MethodGet, "/api/services", nil, &services); err != nil {
		return nil, err
	}
	if services == nil {
		services = []model.Service{}
	}
	return services, nil
}

func (s *storeClient) CreateService(ctx context.Context, patch model.ServicePatch) (model.Service, error) {
	var service model.Service
	if err := s.do(ctx, "StoreClient.CreateService", http.MethodPost, "/api/services", patch, &service); err != nil {
		return model.Service{}, err
	}
	return service, nil
}

// UpdateService sends only the fields set in patch.
func (s *storeClient) UpdateService(ctx context.Context, id string, patch model.ServicePatch) (model.Service, error) {
	var service model.Service
	path := "/api/services/" + url.PathEscape(id)
	if err := s.do(ctx, "StoreClient.UpdateService", http.MethodPut, path, patch, &service); err != nil {
		return model.Service{}, err
	}
	return service, nil
}

func (s *storeClient) DeleteService(ctx context.Context, id string) error {
	path := "/api/services/" + url.PathEscape(id)
	return s.do(ctx, "StoreClient.DeleteService", http.MethodDelete, path, nil, nil)
}

func (s *storeClient) GetIntegrations(ctx context.Context) (model.Integrations, error) {
	var integrations model.Integrations
	if err := s.do(ctx, "StoreClient.GetIntegrations", http.MethodGet, "/api/integrations", nil, &integrations); err != nil {
		return model.Integrations{}, err
	}
	return integrations, nil
}

// do sends an authenticated request. An expired access token is replaced by logging in again once.
func (s *storeClient) do(ctx context.Context, op, method, path string, in, out any) error {
	err := s.send(ctx, op, method, path, in, out, true)
	if !errors.Is(err, ErrUnauthorized) || s.username == "" {
		return err
	}
	if loginErr := s.Login(ctx); loginErr != nil {
		return err
	}
	return s.send(ctx, op, method, path, in, out, true)
}

func (s *storeClient) send(ctx context.Context, op, method, path string, in, out any, auth bool) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s creating request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		s.mu.RLock()
		token := s.token
		s.mu.RUnlock()
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg messageResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return &StoreError{Op: op, StatusCode: resp.StatusCode, Message: msg.Message}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s decoding response: %w: %w", op, ErrStoreUnavailable, err)
	}
	return nil
}

func NewStoreClient(baseURL, username, password string, requestTimeout time.Duration) StoreClient {
	return &storeClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
	}
}
