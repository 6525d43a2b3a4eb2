package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
)

// ── 乐器模块业务错误 ──

var (
	ErrInstrumentNotFound = errors.New("Instrumento no encontrado")
)

// InstrumentService 乐器业务接口（只有列表与创建）
type InstrumentService interface {
	Create(ctx context.Context, req *dto.InstrumentRequest) (*dto.InstrumentResponse, error)
	List(ctx context.Context) ([]dto.InstrumentResponse, error)
}

type instrumentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInstrumentService 创建 InstrumentService 实例
func NewInstrumentService(repo *repository.Repository, logger *zap.Logger) InstrumentService {
	return &instrumentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *instrumentService) Create(ctx context.Context, req *dto.InstrumentRequest) (*dto.InstrumentResponse, error) {
	inst := &model.Instrument{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Instrument.Create(ctx, inst); err != nil {
		s.logger.Error("创建乐器失败", zap.Error(err))
		return nil, err
	}
	return toInstrumentResponse(inst), nil
}

// ────────────────────── List ──────────────────────

func (s *instrumentService) List(ctx context.Context) ([]dto.InstrumentResponse, error) {
	instruments, err := s.repo.Instrument.List(ctx)
	if err != nil {
		s.logger.Error("列出乐器失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.InstrumentResponse, 0, len(instruments))
	for i := range instruments {
		result = append(result, *toInstrumentResponse(&instruments[i]))
	}
	return result, nil
}

func toInstrumentResponse(inst *model.Instrument) *dto.InstrumentResponse {
	return &dto.InstrumentResponse{
		ID:          inst.ID,
		Name:        inst.Name,
		Description: inst.Description,
	}
}
