package service

import (
	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/internal/assistant"
	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/featureflag"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Student      StudentService
	Professor    ProfessorService
	Course       CourseService
	Payment      PaymentService
	Instrument   InstrumentService
	Observation  ObservationService
	Enrollment   EnrollmentService
	Notification NotificationService
	SystemConfig SystemConfigService
	Assistant    AssistantService
	Export       ExportService
	Maintenance  MaintenanceService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	flags featureflag.Provider,
	rules *assistant.Assistant,
	logger *zap.Logger,
) *Service {
	assistantSvc := NewAssistantService(repo, rules, logger)
	return &Service{
		Student:      NewStudentService(repo, logger),
		Professor:    NewProfessorService(repo, logger),
		Course:       NewCourseService(repo, logger),
		Payment:      NewPaymentService(repo, logger),
		Instrument:   NewInstrumentService(repo, logger),
		Observation:  NewObservationService(repo, logger),
		Enrollment:   NewEnrollmentService(repo, logger),
		Notification: NewNotificationService(repo, logger),
		SystemConfig: NewSystemConfigService(flags, logger),
		Assistant:    assistantSvc,
		Export:       NewExportService(repo, assistantSvc, logger),
		Maintenance:  NewMaintenanceService(repo, logger),
	}
}
