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

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound = errors.New("Curso no encontrado")
)

const msgTeacherMissing = "El profesor indicado no existe"

// CourseService 课程业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Replace(ctx context.Context, id uint, req *dto.CourseRequest) (*dto.CourseResponse, error)
	// Delete 观察记录与报名级联删除
	Delete(ctx context.Context, id uint) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	course := &model.Course{}
	if err := s.apply(ctx, course, req); err != nil {
		return nil, err
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}
	return toCourseResponse(course), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *courseService) GetByID(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toCourseResponse(course), nil
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *toCourseResponse(&courses[i]))
	}
	return result, nil
}

// ────────────────────── Replace ──────────────────────

func (s *courseService) Replace(ctx context.Context, id uint, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.apply(ctx, course, req); err != nil {
		return nil, err
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("更新课程失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toCourseResponse(course), nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("删除课程失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

// apply 结束日期早于开始日期时不报错（只作为预期，不强制）
func (s *courseService) apply(ctx context.Context, course *model.Course, req *dto.CourseRequest) error {
	ve := &pkgerrors.ValidationError{}
	start := parseDatePtr(ve, "start_date", req.StartDate)
	end := parseDatePtr(ve, "end_date", req.EndDate)

	if req.TeacherID != nil {
		if err := checkRef(ve, "teacher_id", msgTeacherMissing, func() error {
			_, err := s.repo.Professor.GetByID(ctx, *req.TeacherID)
			return err
		}); err != nil {
			s.logger.Error("查询教师失败", zap.Uint("teacher_id", *req.TeacherID), zap.Error(err))
			return err
		}
	}
	if err := ve.OrNil(); err != nil {
		return err
	}

	course.Name = req.Name
	course.Description = req.Description
	course.Level = req.Level
	course.TeacherID = req.TeacherID
	course.StartDate = start
	course.EndDate = end
	course.Room = req.Room
	return nil
}

func toCourseResponse(c *model.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Level:       c.Level,
		TeacherID:   c.TeacherID,
		StartDate:   formatDatePtr(c.StartDate),
		EndDate:     formatDatePtr(c.EndDate),
		Room:        c.Room,
		CreatedAt:   formatTimestamp(c.CreatedAt),
		UpdatedAt:   formatTimestamp(c.UpdatedAt),
	}
}
