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

// ── 教师模块业务错误 ──

var (
	ErrProfessorNotFound = errors.New("Profesor no encontrado")
)

// ProfessorService 教师业务接口
type ProfessorService interface {
	Create(ctx context.Context, req *dto.ProfessorRequest) (*dto.ProfessorResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProfessorResponse, error)
	List(ctx context.Context) ([]dto.ProfessorResponse, error)
	Replace(ctx context.Context, id uint, req *dto.ProfessorRequest) (*dto.ProfessorResponse, error)
	// Delete 课程的 teacher 置空，观察记录级联删除
	Delete(ctx context.Context, id uint) error
}

type professorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProfessorService 创建 ProfessorService 实例
func NewProfessorService(repo *repository.Repository, logger *zap.Logger) ProfessorService {
	return &professorService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *professorService) Create(ctx context.Context, req *dto.ProfessorRequest) (*dto.ProfessorResponse, error) {
	prof := &model.Professor{}
	if err := applyProfessor(prof, req); err != nil {
		return nil, err
	}

	if err := s.repo.Professor.Create(ctx, prof); err != nil {
		s.logger.Error("创建教师失败", zap.Error(err))
		return nil, err
	}
	return toProfessorResponse(prof), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *professorService) GetByID(ctx context.Context, id uint) (*dto.ProfessorResponse, error) {
	prof, err := s.repo.Professor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		s.logger.Error("查询教师失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toProfessorResponse(prof), nil
}

// ────────────────────── List ──────────────────────

func (s *professorService) List(ctx context.Context) ([]dto.ProfessorResponse, error) {
	profs, err := s.repo.Professor.List(ctx)
	if err != nil {
		s.logger.Error("列出教师失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProfessorResponse, 0, len(profs))
	for i := range profs {
		result = append(result, *toProfessorResponse(&profs[i]))
	}
	return result, nil
}

// ────────────────────── Replace ──────────────────────

func (s *professorService) Replace(ctx context.Context, id uint, req *dto.ProfessorRequest) (*dto.ProfessorResponse, error) {
	prof, err := s.repo.Professor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		s.logger.Error("查询教师失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if err := applyProfessor(prof, req); err != nil {
		return nil, err
	}

	if err := s.repo.Professor.Update(ctx, prof); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		s.logger.Error("更新教师失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toProfessorResponse(prof), nil
}

// ────────────────────── Delete ──────────────────────

func (s *professorService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Professor.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfessorNotFound
		}
		s.logger.Error("删除教师失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func applyProfessor(prof *model.Professor, req *dto.ProfessorRequest) error {
	ve := &pkgerrors.ValidationError{}
	hired := parseDate(ve, "hire_date", req.HireDate)
	if err := ve.OrNil(); err != nil {
		return err
	}

	prof.UserID = req.UserID
	prof.FirstName = req.FirstName
	prof.LastName = req.LastName
	prof.Email = req.Email
	prof.Specialty = req.Specialty
	prof.HireDate = hired
	prof.PhoneNumber = req.PhoneNumber
	prof.TutoringSchedule = req.TutoringSchedule
	prof.Classrooms = req.Classrooms
	return nil
}

func toProfessorResponse(p *model.Professor) *dto.ProfessorResponse {
	return &dto.ProfessorResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Email:            p.Email,
		Specialty:        p.Specialty,
		HireDate:         formatDate(p.HireDate),
		PhoneNumber:      p.PhoneNumber,
		TutoringSchedule: p.TutoringSchedule,
		Classrooms:       p.Classrooms,
		CreatedAt:        formatTimestamp(p.CreatedAt),
		UpdatedAt:        formatTimestamp(p.UpdatedAt),
	}
}
