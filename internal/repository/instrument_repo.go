package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

// InstrumentRepository 乐器数据访问接口
type InstrumentRepository interface {
	Create(ctx context.Context, inst *model.Instrument) error
	GetByID(ctx context.Context, id uint) (*model.Instrument, error)
	List(ctx context.Context) ([]model.Instrument, error)
}

type instrumentRepo struct {
	db *gorm.DB
}

// NewInstrumentRepo 创建 InstrumentRepository 实例
func NewInstrumentRepo(db *gorm.DB) InstrumentRepository {
	return &instrumentRepo{db: db}
}

func (r *instrumentRepo) Create(ctx context.Context, inst *model.Instrument) error {
	return r.db.WithContext(ctx).Create(inst).Error
}

func (r *instrumentRepo) GetByID(ctx context.Context, id uint) (*model.Instrument, error) {
	var inst model.Instrument
	if err := r.db.WithContext(ctx).First(&inst, id).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *instrumentRepo) List(ctx context.Context) ([]model.Instrument, error) {
	var instruments []model.Instrument
	err := r.db.WithContext(ctx).Order("id ASC").Find(&instruments).Error
	return instruments, err
}
