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

// ── 缴费模块业务错误 ──

var (
	ErrPaymentNotFound = errors.New("Pago no encontrado")
)

const msgStudentMissing = "El alumno indicado no existe"

// PaymentService 缴费业务接口
type PaymentService interface {
	Create(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PaymentResponse, error)
	List(ctx context.Context) ([]dto.PaymentResponse, error)
	Replace(ctx context.Context, id uint, req *dto.PaymentRequest) (*dto.PaymentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type paymentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPaymentService 创建 PaymentService 实例
func NewPaymentService(repo *repository.Repository, logger *zap.Logger) PaymentService {
	return &paymentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *paymentService) Create(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	payment := &model.Payment{}
	if err := s.apply(ctx, payment, req); err != nil {
		return nil, err
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.logger.Error("创建缴费失败", zap.Error(err))
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *paymentService) GetByID(ctx context.Context, id uint) (*dto.PaymentResponse, error) {
	payment, err := s.repo.Payment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("查询缴费失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// ────────────────────── List ──────────────────────

func (s *paymentService) List(ctx context.Context) ([]dto.PaymentResponse, error) {
	payments, err := s.repo.Payment.List(ctx)
	if err != nil {
		s.logger.Error("列出缴费失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		result = append(result, *toPaymentResponse(&payments[i]))
	}
	return result, nil
}

// ────────────────────── Replace ──────────────────────

func (s *paymentService) Replace(ctx context.Context, id uint, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := s.repo.Payment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("查询缴费失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.apply(ctx, payment, req); err != nil {
		return nil, err
	}

	if err := s.repo.Payment.Update(ctx, payment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("更新缴费失败", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// ────────────────────── Delete ──────────────────────

func (s *paymentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Payment.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		s.logger.Error("删除缴费失败", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *paymentService) apply(ctx context.Context, payment *model.Payment, req *dto.PaymentRequest) error {
	ve := &pkgerrors.ValidationError{}
	paid := parseDatePtr(ve, "payment_date", req.PaymentDate)
	due := parseDate(ve, "due_date", req.DueDate)
	if req.Amount == nil {
		ve.Add("amount", "Este campo es obligatorio")
	}

	if err := checkRef(ve, "student_id", msgStudentMissing, func() error {
		_, err := s.repo.Student.GetByID(ctx, req.StudentID)
		return err
	}); err != nil {
		s.logger.Error("查询学生失败", zap.Uint("student_id", req.StudentID), zap.Error(err))
		return err
	}
	if err := ve.OrNil(); err != nil {
		return err
	}

	payment.StudentID = req.StudentID
	payment.Amount = *req.Amount
	payment.PaymentDate = paid
	payment.DueDate = due
	payment.Status = req.Status
	payment.Description = req.Description
	payment.InvoiceURL = req.InvoiceURL
	return nil
}

func toPaymentResponse(p *model.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:          p.ID,
		StudentID:   p.StudentID,
		Amount:      p.Amount,
		PaymentDate: formatDatePtr(p.PaymentDate),
		DueDate:     formatDate(p.DueDate),
		Status:      p.Status,
		Description: p.Description,
		InvoiceURL:  p.InvoiceURL,
		CreatedAt:   formatTimestamp(p.CreatedAt),
		UpdatedAt:   formatTimestamp(p.UpdatedAt),
	}
}
