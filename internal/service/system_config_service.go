package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/featureflag"
)

// ── 系统配置模块业务错误 ──

var (
	ErrIAConfigWriteFailed = errors.New("No se pudo guardar la configuración de IA")
)

// SystemConfigService 全局功能开关业务接口
type SystemConfigService interface {
	// GetIA 读取失败时返回默认值（启用），不向调用方报错
	GetIA(ctx context.Context) *dto.IAConfigResponse
	SetIA(ctx context.Context, req *dto.IAConfigRequest) (*dto.IAConfigResponse, error)
	// IAEnabled 供中间件判断 IA 接口是否可用
	IAEnabled(ctx context.Context) bool
}

type systemConfigService struct {
	flags  featureflag.Provider
	logger *zap.Logger
}

// NewSystemConfigService 创建 SystemConfigService 实例
func NewSystemConfigService(flags featureflag.Provider, logger *zap.Logger) SystemConfigService {
	return &systemConfigService{flags: flags, logger: logger}
}

// ────────────────────── Get ──────────────────────

func (s *systemConfigService) GetIA(ctx context.Context) *dto.IAConfigResponse {
	return &dto.IAConfigResponse{IAEnabled: s.IAEnabled(ctx)}
}

func (s *systemConfigService) IAEnabled(ctx context.Context) bool {
	enabled, err := s.flags.IAEnabled(ctx)
	if err != nil {
		s.logger.Warn("读取 IA 开关失败，使用默认值",
			zap.Bool("default", enabled),
			zap.Error(err),
		)
	}
	return enabled
}

// ────────────────────── Update ──────────────────────

func (s *systemConfigService) SetIA(ctx context.Context, req *dto.IAConfigRequest) (*dto.IAConfigResponse, error) {
	enabled := featureflag.DefaultIAEnabled
	if req.IAEnabled != nil {
		enabled = *req.IAEnabled
	}

	if err := s.flags.SetIAEnabled(ctx, enabled); err != nil {
		s.logger.Error("保存 IA 开关失败", zap.Bool("ia_enabled", enabled), zap.Error(err))
		return nil, ErrIAConfigWriteFailed
	}

	s.logger.Info("IA 开关已更新", zap.Bool("ia_enabled", enabled))
	return &dto.IAConfigResponse{IAEnabled: enabled}, nil
}
