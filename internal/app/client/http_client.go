package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"plantkeeper/internal/app/client/config"
	"plantkeeper/internal/domain/garden"
	"plantkeeper/internal/domain/plant"
	"plantkeeper/internal/domain/user"
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "PlantKeeper-Client/" + config.AppVersion,
	}
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("создание запроса: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: сервер недоступен: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: сервер вернул статус %d", ErrNetwork, resp.StatusCode)
	}
	return nil
}

// Register регистрирует пользователя и возвращает токен сессии
func (h *httpClient) Register(ctx context.Context, login, password string) (string, error) {
	return h.authRequest(ctx, "/api/v1/auth/register", login, password)
}

// Login выполняет вход и возвращает токен сессии
func (h *httpClient) Login(ctx context.Context, login, password string) (string, error) {
	return h.authRequest(ctx, "/api/v1/auth/login", login, password)
}

func (h *httpClient) authRequest(ctx context.Context, path, login, password string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, path, user.BaseRequest{
		Login:    login,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var authResp struct {
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &authResp); err != nil {
		return "", err
	}
	if authResp.Token == "" {
		return "", fmt.Errorf("%w: сервер не вернул токен", ErrParse)
	}
	return authResp.Token, nil
}

// GetGarden забирает снапшот коллекции с сервера.
// Второй результат false — у пользователя еще нет снапшота (это не ошибка).
func (h *httpClient) GetGarden(ctx context.Context) (*garden.GetResponse, bool, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/garden", nil)
	if err != nil {
		return nil, false, err
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, false, nil
	}

	var snapshot garden.GetResponse
	if err := h.parseResponse(resp, &snapshot); err != nil {
		return nil, false, err
	}
	return &snapshot, true, nil
}

// PutGarden заливает всю коллекцию на сервер и возвращает назначенную
// сервером метку времени.
func (h *httpClient) PutGarden(ctx context.Context, records plant.Collection) (time.Time, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/v1/garden", garden.PutRequest{Records: records})
	if err != nil {
		return time.Time{}, err
	}

	var putResp garden.PutResponse
	if err := h.parseResponse(resp, &putResp); err != nil {
		return time.Time{}, err
	}
	if putResp.LastUpdated.IsZero() {
		return time.Time{}, fmt.Errorf("%w: сервер не вернул метку времени", ErrParse)
	}
	return putResp.LastUpdated, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("маршалинг тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("создание запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return resp, nil
}

// parseResponse превращает HTTP-статусы в типизированные ошибки ядра.
func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: чтение ответа: %v", ErrNetwork, err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		serverMsg := ""
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			serverMsg = ": " + errResp.Error
		}

		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w%s", ErrAuth, serverMsg)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w%s", ErrQuota, serverMsg)
		default:
			return fmt.Errorf("%w: статус %d%s", ErrNetwork, resp.StatusCode, serverMsg)
		}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
	}
	return nil
}
