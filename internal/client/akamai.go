// Package client отправляет подписанные EdgeGrid запросы в Akamai Fast Purge API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/akamai/AkamaiOPEN-edgegrid-golang/v8/pkg/edgegrid"
	"go.uber.org/zap"

	"github.com/Totarae/akamai-purge/internal/config"
	"github.com/Totarae/akamai-purge/internal/middleware"
	"github.com/Totarae/akamai-purge/internal/model"
)

// PurgePath задаёт адрес удаления объектов по URL в production-сети.
const PurgePath = "/ccu/v3/delete/url/production"

// maxSignedBody задаёт, сколько байт тела учитывается в подписи EdgeGrid.
const maxSignedBody = 131072

// ErrRequestFailed возвращается при любой ошибке отправки или ответе не 2xx.
// Подробности пишутся только в лог.
var ErrRequestFailed = errors.New("request failed")

// AkamaiClient реализует отправку запроса на очистку кеша.
type AkamaiClient struct {
	baseURL string
	signer  edgegrid.Config
	http    *http.Client
	logger  *zap.Logger
}

// NewAkamaiClient создаёт клиент. Сетевых вызовов не выполняет.
func NewAkamaiClient(cfg *config.Config, logger *zap.Logger) *AkamaiClient {
	baseURL := BaseURL(cfg.Host)
	return &AkamaiClient{
		baseURL: baseURL,
		signer: edgegrid.Config{
			Host:         strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://"),
			ClientToken:  cfg.ClientToken.Reveal(),
			ClientSecret: cfg.ClientSecret.Reveal(),
			AccessToken:  cfg.AccessToken.Reveal(),
			MaxBody:      maxSignedBody,
		},
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: middleware.LoggingTransport(logger, http.DefaultTransport),
		},
		logger: logger,
	}
}

// BaseURL приводит HOST к виду scheme://host без завершающего слеша.
// Хост без схемы дополняется https://.
func BaseURL(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if strings.HasPrefix(host, "https://") || strings.HasPrefix(host, "http://") {
		return host
	}
	return "https://" + host
}

// Purge отправляет один запрос на очистку и возвращает тело ответа как есть.
func (c *AkamaiClient) Purge(ctx context.Context, targets []string) (string, error) {
	if targets == nil {
		targets = []string{}
	}
	body, err := json.Marshal(model.PurgeRequest{Objects: targets})
	if err != nil {
		return "", fmt.Errorf("marshal purge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PurgePath, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("failed to build purge request", zap.Error(err))
		return "", ErrRequestFailed
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.signer.SignRequest(req)
	// подпись вычитывает тело
	req.Body = io.NopCloser(bytes.NewReader(body))

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("purge request failed", zap.Error(err))
		return "", ErrRequestFailed
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read purge response", zap.Int("status", resp.StatusCode), zap.Error(err))
		return "", ErrRequestFailed
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("purge request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(data)),
		)
		return "", ErrRequestFailed
	}

	c.logger.Debug("purge response", zap.Int("status", resp.StatusCode), zap.String("body", string(data)))
	return string(data), nil
}
