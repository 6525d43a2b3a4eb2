package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/internal/assistant"
	"github.com/twistin/xestion-conservatorio-rsp/internal/dto"
	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
)

func newTestAssistant(t *testing.T) *assistant.Assistant {
	t.Helper()
	rules, err := assistant.DefaultRules()
	if err != nil {
		t.Fatalf("加载默认规则失败: %v", err)
	}
	return assistant.New(rules)
}

func setupTestAssistantService(t *testing.T) (AssistantService, *repository.Repository, *mockRepos) {
	repo, mocks := newMockRepository()
	return NewAssistantService(repo, newTestAssistant(t), zap.NewNop()), repo, mocks
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAssistantService_EnrollmentAnalysis(t *testing.T) {
	svc, _, mocks := setupTestAssistantService(t)
	ctx := context.Background()
	room := "A1"
	mocks.course.Create(ctx, &model.Course{Name: "Piano I", Room: &room, StartDate: day(2024, 9, 10)})
	mocks.course.Create(ctx, &model.Course{Name: "Coro", Room: &room, StartDate: day(2024, 9, 10)})
	mocks.enrollment.Create(ctx, &model.Enrollment{StudentID: 1, CourseID: 2, Status: model.EnrollmentStatusActive})

	result, err := svc.EnrollmentAnalysis(ctx)
	if err != nil {
		t.Fatalf("EnrollmentAnalysis 应成功: %v", err)
	}
	if len(result.TopCourses) != 2 || result.TopCourses[0].CourseName != "Coro" {
		t.Errorf("期望报名最多的课程在前，实际: %+v", result.TopCourses)
	}
	if len(result.RoomConflicts) != 1 || result.RoomConflicts[0].Count != 2 {
		t.Errorf("期望 A1 在 2024-09-10 冲突，实际: %+v", result.RoomConflicts)
	}
}

func TestAssistantService_ScheduleOptimization(t *testing.T) {
	svc, _, mocks := setupTestAssistantService(t)
	ctx := context.Background()
	r1, r2 := "R1", "R2"
	mocks.course.Create(ctx, &model.Course{Name: "A", Room: &r1, StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 10)})
	mocks.course.Create(ctx, &model.Course{Name: "B", Room: &r1, StartDate: day(2024, 1, 5), EndDate: day(2024, 1, 20)})
	mocks.course.Create(ctx, &model.Course{Name: "C", Room: &r2, StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 10)})

	result, err := svc.ScheduleOptimization(ctx)
	if err != nil {
		t.Fatalf("ScheduleOptimization 应成功: %v", err)
	}
	if len(result.Optimizations) != 1 || result.Optimizations[0].Room != "R1" {
		t.Errorf("期望仅 R1 出现重叠，实际: %+v", result.Optimizations)
	}
}

func TestAssistantService_DemandPrediction(t *testing.T) {
	svc, _, mocks := setupTestAssistantService(t)
	ctx := context.Background()
	mocks.course.Create(ctx, &model.Course{Name: "Piano I"})
	for i, year := range []int{2022, 2022, 2022, 2023, 2023, 2023, 2023, 2023} {
		st := &model.Student{UserID: "u", EnrollmentDate: *day(year, 9, 1)}
		mocks.student.Create(ctx, st)
		mocks.enrollment.Create(ctx, &model.Enrollment{StudentID: st.ID, CourseID: 1, EnrollmentDate: *day(year, 9, 1+i)})
	}

	result, err := svc.DemandPrediction(ctx)
	if err != nil {
		t.Fatalf("DemandPrediction 应成功: %v", err)
	}
	if len(result.Predictions) != 1 {
		t.Fatalf("期望 1 条预测，实际=%d", len(result.Predictions))
	}
	p := result.Predictions[0]
	if p.Trend != 2 || p.Prediction != 7 {
		t.Errorf("期望 trend=2 prediction=7，实际: %+v", p)
	}
}

func TestAssistantService_MonthlyReport(t *testing.T) {
	svc, _, mocks := setupTestAssistantService(t)
	ctx := context.Background()
	mocks.student.Create(ctx, &model.Student{UserID: "u"})
	mocks.course.Create(ctx, &model.Course{Name: "Coro"})
	mocks.enrollment.Create(ctx, &model.Enrollment{StudentID: 1, CourseID: 1, Status: model.EnrollmentStatusActive})
	mocks.enrollment.Create(ctx, &model.Enrollment{StudentID: 1, CourseID: 1, Status: "Cancelled"})
	mocks.payment.Create(ctx, &model.Payment{StudentID: 1, Status: model.PaymentStatusPending})
	mocks.payment.Create(ctx, &model.Payment{StudentID: 1, Status: model.PaymentStatusPaid})

	report, err := svc.MonthlyReport(ctx)
	if err != nil {
		t.Fatalf("MonthlyReport 应成功: %v", err)
	}
	if report.Students != 1 || report.Courses != 1 || report.ActiveEnrollments != 1 || report.PendingPayments != 1 {
		t.Errorf("统计不符: %+v", report)
	}
	if report.Period != time.Now().Format("2006-01") {
		t.Errorf("期望当前月份，实际=%s", report.Period)
	}
}

func TestAssistantService_RuleBasedAnswers(t *testing.T) {
	svc, _, _ := setupTestAssistantService(t)
	ctx := context.Background()

	faq := svc.ProfessorFAQ(ctx, &dto.FAQRequest{Question: "¿Dónde veo un PAGO PENDIENTE?"})
	if !strings.Contains(faq.Answer, "«Pagos»") {
		t.Errorf("期望命中 pago pendiente，实际: %s", faq.Answer)
	}

	msg := svc.FamilyMessage(ctx, &dto.FamilyMessageRequest{Motivo: "Ausencia reiterada", Alumno: "Brais"})
	if !strings.Contains(msg.Mensaje, "Brais") || !strings.Contains(msg.Mensaje, "ausencia") {
		t.Errorf("期望缺勤模板，实际: %s", msg.Mensaje)
	}

	suggestions := svc.ResourceSuggestions(ctx, &dto.ResourceSuggestionRequest{Instrument: "Piano"})
	if len(suggestions.Suggestions) != 1 || !strings.Contains(suggestions.Suggestions[0], "Czerny") {
		t.Errorf("期望钢琴建议，实际: %v", suggestions.Suggestions)
	}

	review := svc.ReviewDocument(ctx, "autorizacion_firma.pdf", 1024)
	if review.Status != assistant.ReviewSigned || review.Filename != "autorizacion_firma.pdf" || review.Size != 1024 {
		t.Errorf("期望签名文档通过，实际: %+v", review)
	}
}
