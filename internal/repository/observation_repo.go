package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

// ObservationRepository 观察记录数据访问接口
type ObservationRepository interface {
	Create(ctx context.Context, obs *model.Observation) error
	GetByID(ctx context.Context, id uint) (*model.Observation, error)
	List(ctx context.Context, filter model.ObservationFilter) ([]model.Observation, error)
	// Update 不修改 date 列
	Update(ctx context.Context, obs *model.Observation) error
	Delete(ctx context.Context, id uint) error
}

type observationRepo struct {
	db *gorm.DB
}

// NewObservationRepo 创建 ObservationRepository 实例
func NewObservationRepo(db *gorm.DB) ObservationRepository {
	return &observationRepo{db: db}
}

func (r *observationRepo) Create(ctx context.Context, obs *model.Observation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(obs).Error
}

func (r *observationRepo) GetByID(ctx context.Context, id uint) (*model.Observation, error) {
	var obs model.Observation
	if err := r.db.WithContext(ctx).First(&obs, id).Error; err != nil {
		return nil, err
	}
	return &obs, nil
}

func (r *observationRepo) List(ctx context.Context, filter model.ObservationFilter) ([]model.Observation, error) {
	query := r.db.WithContext(ctx).Model(&model.Observation{})
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	if filter.ProfessorID != nil {
		query = query.Where("professor_id = ?", *filter.ProfessorID)
	}

	var list []model.Observation
	err := query.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *observationRepo) Update(ctx context.Context, obs *model.Observation) error {
	res := r.db.WithContext(ctx).
		Model(obs).
		Select("*").
		Omit("created_at", "date", clause.Associations).
		Updates(obs)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *observationRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Observation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
