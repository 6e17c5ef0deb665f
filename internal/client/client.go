// Package client обращается к удалённому сервису сокращения ссылок.
//
// Все сбои транспорта, статуса и разбора ответа сводятся к двум ошибкам:
// ErrInvalidURL и ErrGeneric.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Totarae/URLShortenerClient/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// ShortenPath путь эндпоинта сокращения относительно базового адреса.
	ShortenPath = "/api/urls"
	// HealthPath путь проверки доступности сервиса.
	HealthPath = "/health"

	requestIDHeader = "X-Request-ID"
	healthTimeout   = 2 * time.Second
)

// Client клиент сервиса сокращения. Состояния между вызовами не хранит.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New создаёт клиента для сервиса по адресу baseURL.
func New(baseURL string, logger *zap.Logger) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: c, logger: logger}
}

// Shorten отправляет url в сервис и возвращает короткую ссылку.
// Вход не проверяется. Ошибка всегда ErrInvalidURL или ErrGeneric.
func (c *Client) Shorten(ctx context.Context, url string) (string, error) {
	reqID := uuid.NewString()
	log := c.logger.With(zap.String("request_id", reqID))

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, reqID).
		SetBody(model.ShortenRequest{URL: url}).
		Post(ShortenPath)
	if err != nil {
		log.Debug("shorten request failed", zap.Error(err))
		return "", ErrGeneric
	}

	var body model.ShortenResponse
	decodeErr := json.Unmarshal(resp.Body(), &body)

	if decodeErr == nil && body.Error == invalidURLMessage {
		log.Debug("service rejected url", zap.Int("status", resp.StatusCode()))
		return "", ErrInvalidURL
	}
	if !resp.IsSuccess() {
		log.Debug("unexpected status",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return "", ErrGeneric
	}
	if decodeErr != nil {
		log.Debug("decode response", zap.Error(decodeErr))
		return "", ErrGeneric
	}

	link := body.Link()
	if link == "" {
		log.Debug("response has no short url", zap.String("body", resp.String()))
		return "", ErrGeneric
	}

	log.Debug("url shortened", zap.String("short_url", link))
	return link, nil
}

// Health опрашивает /health сервиса. Ожидание ограничено двумя секундами.
func (c *Client) Health(ctx context.Context) (*model.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var health model.HealthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, uuid.NewString()).
		SetResult(&health).
		Get(HealthPath)
	if err != nil {
		return nil, fmt.Errorf("health request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("health status %d", resp.StatusCode())
	}
	return &health, nil
}
