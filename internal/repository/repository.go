package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Student      StudentRepository
	Professor    ProfessorRepository
	Course       CourseRepository
	Payment      PaymentRepository
	Instrument   InstrumentRepository
	Observation  ObservationRepository
	Enrollment   EnrollmentRepository
	Notification NotificationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		Student:      NewStudentRepo(db),
		Professor:    NewProfessorRepo(db),
		Course:       NewCourseRepo(db),
		Payment:      NewPaymentRepo(db),
		Instrument:   NewInstrumentRepo(db),
		Observation:  NewObservationRepo(db),
		Enrollment:   NewEnrollmentRepo(db),
		Notification: NewNotificationRepo(db),
	}
}

// BeginTx 开启事务
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回绑定到事务连接的 Repository 副本
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
