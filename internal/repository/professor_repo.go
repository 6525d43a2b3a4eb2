package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

// ProfessorRepository 教师数据访问接口
type ProfessorRepository interface {
	Create(ctx context.Context, prof *model.Professor) error
	GetByID(ctx context.Context, id uint) (*model.Professor, error)
	List(ctx context.Context) ([]model.Professor, error)
	Update(ctx context.Context, prof *model.Professor) error
	// Delete 硬删除：课程的 teacher_id 置空，观察记录级联删除
	Delete(ctx context.Context, id uint) error
}

type professorRepo struct {
	db *gorm.DB
}

// NewProfessorRepo 创建 ProfessorRepository 实例
func NewProfessorRepo(db *gorm.DB) ProfessorRepository {
	return &professorRepo{db: db}
}

func (r *professorRepo) Create(ctx context.Context, prof *model.Professor) error {
	return r.db.WithContext(ctx).Create(prof).Error
}

func (r *professorRepo) GetByID(ctx context.Context, id uint) (*model.Professor, error) {
	var prof model.Professor
	if err := r.db.WithContext(ctx).First(&prof, id).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *professorRepo) List(ctx context.Context) ([]model.Professor, error) {
	var profs []model.Professor
	err := r.db.WithContext(ctx).Order("id ASC").Find(&profs).Error
	return profs, err
}

func (r *professorRepo) Update(ctx context.Context, prof *model.Professor) error {
	res := r.db.WithContext(ctx).
		Model(prof).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(prof)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *professorRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Professor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
