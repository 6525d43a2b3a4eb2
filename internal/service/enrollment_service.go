package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
	pkgerrors "github.com/twistin/xestion-conservatorio-rsp/pkg/errors"
)

// ── 报名模块业务错误 ──

var (
	ErrEnrollmentNotFound = errors.New("Matrícula no encontrada")
)

// EnrollmentService 报名业务接口
type EnrollmentService interface {
	Create(ctx context.Context, req *dto.EnrollmentRequest) (*dto.EnrollmentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.EnrollmentResponse, error)
	List(ctx context.Context) ([]dto.EnrollmentResponse, error)
	Replace(ctx context.Context, id uint, req *dto.EnrollmentRequest) (*dto.EnrollmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *enrollmentService) Create(ctx context.Context, req *dto.EnrollmentRequest) (*dto.EnrollmentResponse, error) {
	enrollment := &model.Enrollment{}
	if err := s.apply(ctx, enrollment, req); err != nil {
		return nil, err
	}

	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		s.logger.Error("创建报名失败", zap.Error(err))
		return nil, err
	}
	return toEnrollmentResponse(enrollment), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *enrollmentService) GetByID(ctx context.Context, id uint) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.repo.Enrollment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		s.logger.Error("查询报名失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toEnrollmentResponse(enrollment), nil
}

// ────────────────────── List ──────────────────────

func (s *enrollmentService) List(ctx context.Context) ([]dto.EnrollmentResponse, error) {
	list, err := s.repo.Enrollment.List(ctx)
	if err != nil {
		s.logger.Error("列出报名失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EnrollmentResponse, 0, len(list))
	for i := range list {
		result = append(result, *toEnrollmentResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Replace ──────────────────────

func (s *enrollmentService) Replace(ctx context.Context, id uint, req *dto.EnrollmentRequest) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.repo.Enrollment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		s.logger.Error("查询报名失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.apply(ctx, enrollment, req); err != nil {
		return nil, err
	}

	if err := s.repo.Enrollment.Update(ctx, enrollment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		s.logger.Error("更新报名失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toEnrollmentResponse(enrollment), nil
}

// ────────────────────── Delete ──────────────────────

func (s *enrollmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Enrollment.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnrollmentNotFound
		}
		s.logger.Error("删除报名失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *enrollmentService) apply(ctx context.Context, enrollment *model.Enrollment, req *dto.EnrollmentRequest) error {
	ve := &pkgerrors.ValidationError{}
	date := parseDate(ve, "enrollment_date", req.EnrollmentDate)

	if err := checkRef(ve, "student_id", msgStudentMissing, func() error {
		_, err := s.repo.Student.GetByID(ctx, req.StudentID)
		return err
	}); err != nil {
		s.logger.Error("查询学生失败", zap.Uint("student_id", req.StudentID), zap.Error(err))
		return err
	}
	if err := checkRef(ve, "course_id", msgCourseMissing, func() error {
		_, err := s.repo.Course.GetByID(ctx, req.CourseID)
		return err
	}); err != nil {
		s.logger.Error("查询课程失败", zap.Uint("course_id", req.CourseID), zap.Error(err))
		return err
	}
	if err := ve.OrNil(); err != nil {
		return err
	}

	status := req.Status
	if status == "" {
		status = model.EnrollmentStatusActive
	}

	enrollment.StudentID = req.StudentID
	enrollment.CourseID = req.CourseID
	enrollment.EnrollmentDate = date
	enrollment.Status = status
	return nil
}

func toEnrollmentResponse(e *model.Enrollment) *dto.EnrollmentResponse {
	return &dto.EnrollmentResponse{
		ID:             e.ID,
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		EnrollmentDate: formatDate(e.EnrollmentDate),
		Status:         e.Status,
		CreatedAt:      formatTimestamp(e.CreatedAt),
		UpdatedAt:      formatTimestamp(e.UpdatedAt),
	}
}
