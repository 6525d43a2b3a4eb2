package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
)

// ── 观察记录模块业务错误 ──

var (
	ErrObservationNotFound = errors.New("Observación no encontrada")
)

const (
	msgCourseMissing    = "El curso indicado no existe"
	msgProfessorMissing = "El profesor indicado no existe"
)

// ObservationService 观察记录业务接口
type ObservationService interface {
	// Create date 取创建当天，之后不可修改
	Create(ctx context.Context, req *dto.ObservationRequest) (*dto.ObservationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ObservationResponse, error)
	List(ctx context.Context, req *dto.ObservationListRequest) ([]dto.ObservationResponse, error)
	Replace(ctx context.Context, id uint, req *dto.ObservationRequest) (*dto.ObservationResponse, error)
	Delete(ctx context.Context, id uint) error
}

type observationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewObservationService 创建 ObservationService 实例
func NewObservationService(repo *repository.Repository, logger *zap.Logger) ObservationService {
	return &observationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *observationService) Create(ctx context.Context, req *dto.ObservationRequest) (*dto.ObservationResponse, error) {
	obs := &model.Observation{Date: today()}
	if err := s.apply(ctx, obs, req); err != nil {
		return nil, err
	}

	if err := s.repo.Observation.Create(ctx, obs); err != nil {
		s.logger.Error("创建观察记录失败", zap.Error(err))
		return nil, err
	}
	return toObservationResponse(obs), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *observationService) GetByID(ctx context.Context, id uint) (*dto.ObservationResponse, error) {
	obs, err := s.repo.Observation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrObservationNotFound
		}
		s.logger.Error("查询观察记录失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toObservationResponse(obs), nil
}

// ────────────────────── List ──────────────────────

func (s *observationService) List(ctx context.Context, req *dto.ObservationListRequest) ([]dto.ObservationResponse, error) {
	filter := model.ObservationFilter{
		StudentID:   req.Student,
		CourseID:    req.Course,
		ProfessorID: req.Professor,
	}
	list, err := s.repo.Observation.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出观察记录失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ObservationResponse, 0, len(list))
	for i := range list {
		result = append(result, *toObservationResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Replace ──────────────────────

func (s *observationService) Replace(ctx context.Context, id uint, req *dto.ObservationRequest) (*dto.ObservationResponse, error) {
	obs, err := s.repo.Observation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrObservationNotFound
		}
		s.logger.Error("查询观察记录失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.apply(ctx, obs, req); err != nil {
		return nil, err
	}

	if err := s.repo.Observation.Update(ctx, obs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrObservationNotFound
		}
		s.logger.Error("更新观察记录失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toObservationResponse(obs), nil
}

// ────────────────────── Delete ──────────────────────

func (s *observationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Observation.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrObservationNotFound
		}
		s.logger.Error("删除观察记录失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

// apply 不修改 Date
func (s *observationService) apply(ctx context.Context, obs *model.Observation, req *dto.ObservationRequest) error {
	ve := &pkgerrors.ValidationError{}

	refs := []struct {
		field, msg string
		lookup     func() error
	}{
		{"student_id", msgStudentMissing, func() error { _, err := s.repo.Student.GetByID(ctx, req.StudentID); return err }},
		{"course_id", msgCourseMissing, func() error { _, err := s.repo.Course.GetByID(ctx, req.CourseID); return err }},
		{"professor_id", msgProfessorMissing, func() error { _, err := s.repo.Professor.GetByID(ctx, req.ProfessorID); return err }},
	}
	for _, ref := range refs {
		if err := checkRef(ve, ref.field, ref.msg, ref.lookup); err != nil {
			s.logger.Error("校验观察记录引用失败", zap.String("field", ref.field), zap.Error(err))
			return err
		}
	}
	if err := ve.OrNil(); err != nil {
		return err
	}

	obs.StudentID = req.StudentID
	obs.CourseID = req.CourseID
	obs.ProfessorID = req.ProfessorID
	obs.Text = req.Text
	return nil
}

// today 当天零点（UTC 存储，只保留日期部分）
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toObservationResponse(o *model.Observation) *dto.ObservationResponse {
	return &dto.ObservationResponse{
		ID:          o.ID,
		StudentID:   o.StudentID,
		CourseID:    o.CourseID,
		ProfessorID: o.ProfessorID,
		Date:        formatDate(o.Date),
		Text:        o.Text,
		CreatedAt:   formatTimestamp(o.CreatedAt),
		UpdatedAt:   formatTimestamp(o.UpdatedAt),
	}
}
