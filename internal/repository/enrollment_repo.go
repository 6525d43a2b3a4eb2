package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

// EnrollmentRepository 报名数据访问接口
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	GetByID(ctx context.Context, id uint) (*model.Enrollment, error)
	List(ctx context.Context) ([]model.Enrollment, error)
	// ListWithStudents 预加载学生，供需求预测按入学年份分组
	ListWithStudents(ctx context.Context) ([]model.Enrollment, error)
	Update(ctx context.Context, enrollment *model.Enrollment) error
	Delete(ctx context.Context, id uint) error
	// CountByCourse 每门课程的报名数（仅包含有报名的课程）
	CountByCourse(ctx context.Context) ([]model.CourseEnrollmentCount, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(enrollment).Error
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	if err := r.db.WithContext(ctx).First(&enrollment, id).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) List(ctx context.Context) ([]model.Enrollment, error) {
	var list []model.Enrollment
	err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *enrollmentRepo) ListWithStudents(ctx context.Context) ([]model.Enrollment, error) {
	var list []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *enrollmentRepo) Update(ctx context.Context, enrollment *model.Enrollment) error {
	res := r.db.WithContext(ctx).
		Model(enrollment).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(enrollment)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *enrollmentRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Enrollment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *enrollmentRepo) CountByCourse(ctx context.Context) ([]model.CourseEnrollmentCount, error) {
	var rows []model.CourseEnrollmentCount
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Select("course_id, COUNT(*) AS total").
		Group("course_id").
		Order("course_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *enrollmentRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}
