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

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("Alumno no encontrado")
)

const msgInstrumentMissing = "El instrumento indicado no existe"

// StudentService 学生业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.StudentResponse, error)
	GetByUserID(ctx context.Context, userID string) (*dto.StudentResponse, error)
	List(ctx context.Context) ([]dto.StudentResponse, error)
	// Replace 整体替换所有可变字段
	Replace(ctx context.Context, id uint, req *dto.StudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	student := &model.Student{}
	if err := s.apply(ctx, student, req); err != nil {
		return nil, err
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}
	return toStudentResponse(student), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *studentService) GetByID(ctx context.Context, id uint) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toStudentResponse(student), nil
}

// ────────────────────── GetByUserID ──────────────────────

func (s *studentService) GetByUserID(ctx context.Context, userID string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("按用户查询学生失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return toStudentResponse(student), nil
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("列出学生失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *toStudentResponse(&students[i]))
	}
	return result, nil
}

// ────────────────────── Replace ──────────────────────

func (s *studentService) Replace(ctx context.Context, id uint, req *dto.StudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.apply(ctx, student, req); err != nil {
		return nil, err
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("更新学生失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toStudentResponse(student), nil
}

// ────────────────────── Delete ──────────────────────

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Student.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("删除学生失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

// apply 校验请求并写入 student 的全部可变字段
func (s *studentService) apply(ctx context.Context, student *model.Student, req *dto.StudentRequest) error {
	ve := &pkgerrors.ValidationError{}
	dob := parseDate(ve, "date_of_birth", req.DateOfBirth)
	enrolled := parseDate(ve, "enrollment_date", req.EnrollmentDate)

	if err := checkRef(ve, "instrument_id", msgInstrumentMissing, func() error {
		_, err := s.repo.Instrument.GetByID(ctx, req.InstrumentID)
		return err
	}); err != nil {
		s.logger.Error("查询乐器失败", zap.Uint("instrument_id", req.InstrumentID), zap.Error(err))
		return err
	}
	if err := ve.OrNil(); err != nil {
		return err
	}

	instrumentID := req.InstrumentID
	student.UserID = req.UserID
	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.DateOfBirth = dob
	student.InstrumentID = &instrumentID
	student.LegacyInstrumentRef = nil
	student.EnrollmentDate = enrolled
	student.Address = req.Address
	student.PhoneNumber = req.PhoneNumber
	return nil
}

func toStudentResponse(st *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:             st.ID,
		UserID:         st.UserID,
		FirstName:      st.FirstName,
		LastName:       st.LastName,
		Email:          st.Email,
		DateOfBirth:    formatDate(st.DateOfBirth),
		InstrumentID:   st.InstrumentID,
		EnrollmentDate: formatDate(st.EnrollmentDate),
		Address:        st.Address,
		PhoneNumber:    st.PhoneNumber,
		CreatedAt:      formatTimestamp(st.CreatedAt),
		UpdatedAt:      formatTimestamp(st.UpdatedAt),
	}
}
