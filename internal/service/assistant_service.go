package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/internal/analytics"
	"github.com/twistin/xestion-conservatorio-rsp/internal/assistant"
	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
)

// AssistantService “IA” 接口业务：数据统计来自数据库，文字应答来自规则表
//
// 说明：
//   - 统计类接口（报名分析、排期建议、需求预测）每次请求全量读取课程与报名
//   - 文字类接口（FAQ、资源建议、家长消息、文档审核）不访问数据库
type AssistantService interface {
	EnrollmentAnalysis(ctx context.Context) (*analytics.EnrollmentAnalysis, error)
	ScheduleOptimization(ctx context.Context) (*dto.ScheduleOptimizationResponse, error)
	DemandPrediction(ctx context.Context) (*dto.DemandPredictionResponse, error)
	ProfessorFAQ(ctx context.Context, req *dto.FAQRequest) *dto.FAQResponse
	ReviewDocument(ctx context.Context, filename string, size int64) *dto.DocumentReviewResponse
	MonthlyReport(ctx context.Context) (*assistant.MonthlyReport, error)
	ResourceSuggestions(ctx context.Context, req *dto.ResourceSuggestionRequest) *dto.ResourceSuggestionResponse
	FamilyMessage(ctx context.Context, req *dto.FamilyMessageRequest) *dto.FamilyMessageResponse
}

type assistantService struct {
	repo   *repository.Repository
	rules  *assistant.Assistant
	logger *zap.Logger
}

// NewAssistantService 创建 AssistantService 实例
func NewAssistantService(repo *repository.Repository, rules *assistant.Assistant, logger *zap.Logger) AssistantService {
	return &assistantService{repo: repo, rules: rules, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// 统计类
// ═══════════════════════════════════════════════════════════

func (s *assistantService) EnrollmentAnalysis(ctx context.Context) (*analytics.EnrollmentAnalysis, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}
	counts, err := s.repo.Enrollment.CountByCourse(ctx)
	if err != nil {
		s.logger.Error("统计课程报名失败", zap.Error(err))
		return nil, err
	}

	result := analytics.AnalyzeEnrollment(courses, counts)
	return &result, nil
}

func (s *assistantService) ScheduleOptimization(ctx context.Context) (*dto.ScheduleOptimizationResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}
	return &dto.ScheduleOptimizationResponse{Optimizations: analytics.DetectOverlaps(courses)}, nil
}

func (s *assistantService) DemandPrediction(ctx context.Context) (*dto.DemandPredictionResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}
	enrollments, err := s.repo.Enrollment.ListWithStudents(ctx)
	if err != nil {
		s.logger.Error("列出报名失败", zap.Error(err))
		return nil, err
	}
	return &dto.DemandPredictionResponse{Predictions: analytics.ProjectDemand(courses, enrollments)}, nil
}

func (s *assistantService) MonthlyReport(ctx context.Context) (*assistant.MonthlyReport, error) {
	var counts assistant.ReportCounts
	var err error

	if counts.Students, err = s.repo.Student.Count(ctx); err != nil {
		s.logger.Error("统计学生失败", zap.Error(err))
		return nil, err
	}
	if counts.Courses, err = s.repo.Course.Count(ctx); err != nil {
		s.logger.Error("统计课程失败", zap.Error(err))
		return nil, err
	}
	if counts.ActiveEnrollments, err = s.repo.Enrollment.CountByStatus(ctx, model.EnrollmentStatusActive); err != nil {
		s.logger.Error("统计有效报名失败", zap.Error(err))
		return nil, err
	}
	if counts.PendingPayments, err = s.repo.Payment.CountByStatus(ctx, model.PaymentStatusPending); err != nil {
		s.logger.Error("统计待缴费用失败", zap.Error(err))
		return nil, err
	}

	report := assistant.BuildMonthlyReport(time.Now(), counts)
	return &report, nil
}

// ═══════════════════════════════════════════════════════════
// 规则应答类
// ═══════════════════════════════════════════════════════════

func (s *assistantService) ProfessorFAQ(_ context.Context, req *dto.FAQRequest) *dto.FAQResponse {
	return &dto.FAQResponse{Answer: s.rules.AnswerFAQ(req.Question)}
}

func (s *assistantService) ReviewDocument(_ context.Context, filename string, size int64) *dto.DocumentReviewResponse {
	review := s.rules.ReviewDocument(filename, size)
	s.logger.Debug("文档审核",
		zap.String("filename", filename),
		zap.Int64("size", size),
		zap.String("status", review.Status),
	)
	return &dto.DocumentReviewResponse{
		Result:   review.Result,
		Status:   review.Status,
		Filename: filename,
		Size:     size,
	}
}

func (s *assistantService) ResourceSuggestions(_ context.Context, req *dto.ResourceSuggestionRequest) *dto.ResourceSuggestionResponse {
	return &dto.ResourceSuggestionResponse{
		Suggestions: s.rules.SuggestResources(assistant.SuggestionInput{
			Level:      req.Level,
			Instrument: req.Instrument,
			Topic:      req.Topic,
		}),
	}
}

func (s *assistantService) FamilyMessage(_ context.Context, req *dto.FamilyMessageRequest) *dto.FamilyMessageResponse {
	return &dto.FamilyMessageResponse{Mensaje: s.rules.FamilyMessage(req.Motivo, req.Alumno)}
}
