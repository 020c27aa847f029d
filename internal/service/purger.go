package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Totarae/akamai-purge/internal/config"
	"github.com/Totarae/akamai-purge/internal/model"
	"github.com/Totarae/akamai-purge/internal/util"
)

// MaxRequestBodySize задаёт ограничение Fast Purge API на размер тела запроса.
const MaxRequestBodySize = 50000

// ErrTooManyTargets возвращается, если список URL не помещается в один запрос.
var ErrTooManyTargets = errors.New("too many purge targets")

//go:generate mockgen -source=purger.go -destination=mocks/mock_purger.go -package=mocks

// PurgeClient отправляет один запрос на очистку и возвращает тело ответа.
type PurgeClient interface {
	Purge(ctx context.Context, targets []string) (string, error)
}

type PurgeService struct {
	Client      PurgeClient
	Logger      *zap.Logger
	MaxBodySize int
}

func NewPurgeService(client PurgeClient, logger *zap.Logger) *PurgeService {
	return &PurgeService{
		Client:      client,
		Logger:      logger,
		MaxBodySize: MaxRequestBodySize,
	}
}

// Run проверяет конфигурацию, готовит список URL и отправляет запрос.
// При ошибке конфигурации клиент не вызывается.
func (s *PurgeService) Run(ctx context.Context, cfg *config.Config) (*model.PurgeResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	targets := util.BuildPurgeTargets(cfg.URLs)
	s.Logger.Info("purge targets prepared",
		zap.Int("count", len(targets)),
		zap.Strings("urls", targets),
	)
	if len(targets) == 0 {
		// запрос всё равно уходит, Akamai сам решит, что делать с пустым списком
		s.Logger.Warn("no valid URLs in input, submitting empty purge request")
	}

	if err := CheckTargets(targets, s.MaxBodySize); err != nil {
		return nil, err
	}

	body, err := s.Client.Purge(ctx, targets)
	if err != nil {
		return nil, err
	}

	result := &model.PurgeResult{
		Targets: targets,
		Body:    body,
		Ack:     model.ParseAcknowledgement(body),
	}
	if result.Ack != nil {
		s.Logger.Info("purge request accepted",
			zap.String("purge_id", result.Ack.PurgeID),
			zap.String("support_id", result.Ack.SupportID),
			zap.Int("estimated_seconds", result.Ack.EstimatedSeconds),
		)
	} else {
		s.Logger.Info("purge request accepted", zap.String("body", body))
	}
	return result, nil
}

// CheckTargets проверяет, что тело запроса не превышает maxBody байт.
// maxBody <= 0 отключает проверку.
func CheckTargets(targets []string, maxBody int) error {
	if maxBody <= 0 {
		return nil
	}
	if targets == nil {
		targets = []string{}
	}
	body, err := json.Marshal(model.PurgeRequest{Objects: targets})
	if err != nil {
		return fmt.Errorf("marshal purge request: %w", err)
	}
	if len(body) > maxBody {
		return fmt.Errorf("%w: %d URLs encode to %d bytes, limit is %d",
			ErrTooManyTargets, len(targets), len(body), maxBody)
	}
	return nil
}
