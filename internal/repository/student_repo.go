package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	// GetByUserID 按外部用户标识查询（id 空间之外的身份查找）
	GetByUserID(ctx context.Context, userID string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	// Delete 硬删除，缴费/观察/报名由外键级联删除
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	// ListWithLegacyRef 仍带有历史 instr-N 占位符的学生
	ListWithLegacyRef(ctx context.Context) ([]model.Student, error)
	// ResolveLegacyRef 写入真实乐器 ID 并清空占位符
	ResolveLegacyRef(ctx context.Context, studentID, instrumentID uint) error
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByUserID(ctx context.Context, userID string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).Order("id ASC").Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	res := r.db.WithContext(ctx).
		Model(student).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(student)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *studentRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Student{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *studentRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&total).Error
	return total, err
}

func (r *studentRepo) ListWithLegacyRef(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("legacy_instrument_ref IS NOT NULL").
		Order("id ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) ResolveLegacyRef(ctx context.Context, studentID, instrumentID uint) error {
	return r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("id = ?", studentID).
		Updates(map[string]interface{}{
			"instrument_id":         instrumentID,
			"legacy_instrument_ref": gorm.Expr("NULL"),
		}).Error
}
