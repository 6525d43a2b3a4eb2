package handler

import "github.com/twistin/xestion-conservatorio-rsp/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Student      *StudentHandler
	Professor    *ProfessorHandler
	Course       *CourseHandler
	Payment      *PaymentHandler
	Instrument   *InstrumentHandler
	Observation  *ObservationHandler
	Enrollment   *EnrollmentHandler
	Notification *NotificationHandler
	IA           *IAHandler
	SystemConfig *SystemConfigHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Student:      NewStudentHandler(svc.Student),
		Professor:    NewProfessorHandler(svc.Professor),
		Course:       NewCourseHandler(svc.Course),
		Payment:      NewPaymentHandler(svc.Payment),
		Instrument:   NewInstrumentHandler(svc.Instrument),
		Observation:  NewObservationHandler(svc.Observation),
		Enrollment:   NewEnrollmentHandler(svc.Enrollment),
		Notification: NewNotificationHandler(svc.Notification),
		IA:           NewIAHandler(svc.Assistant, svc.Export),
		SystemConfig: NewSystemConfigHandler(svc.SystemConfig),
		Export:       NewExportHandler(svc.Export),
	}
}
