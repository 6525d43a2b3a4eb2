package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/textutil"
)

// legacyInstrumentTokens 历史 instr-N 占位符 → 乐器名称（按名称不区分大小写匹配）
var legacyInstrumentTokens = map[string]string{
	"instr-1": "piano",
	"instr-2": "guitarra",
	"instr-3": "violín",
	"instr-4": "flauta",
	"instr-5": "clarinete",
	"instr-6": "saxofón",
	"instr-7": "trompeta",
	"instr-8": "percusión",
}

// DefaultInstruments 基础乐器目录
var DefaultInstruments = []model.Instrument{
	{Name: "Piano", Description: strPtr("Instrumento de teclado")},
	{Name: "Violín", Description: strPtr("Instrumento de cuerda frotada")},
	{Name: "Guitarra", Description: strPtr("Instrumento de cuerda pulsada")},
	{Name: "Flauta", Description: strPtr("Instrumento de viento madera")},
	{Name: "Clarinete", Description: strPtr("Instrumento de viento madera")},
	{Name: "Saxofón", Description: strPtr("Instrumento de viento madera")},
	{Name: "Trompeta", Description: strPtr("Instrumento de viento metal")},
	{Name: "Percusión", Description: strPtr("Familia de instrumentos de percusión")},
}

// RepairReport 乐器引用修复结果
type RepairReport struct {
	Scanned int    `json:"scanned"`
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
	DryRun  bool   `json:"dry_run"`
	Pending []uint `json:"pending,omitempty"` // 无法解析的学生 ID
}

// SeedReport 乐器初始化结果
type SeedReport struct {
	Created  []string `json:"created"`
	Existing []string `json:"existing"`
}

// MaintenanceService 一次性数据维护任务（命令行调用，不暴露为 HTTP 接口）
type MaintenanceService interface {
	// RepairInstrumentRefs 将学生的 instr-N 占位符替换为真实乐器 ID；收敛后重复执行无副作用
	RepairInstrumentRefs(ctx context.Context, dryRun bool) (*RepairReport, error)
	// SeedInstruments 按名称（不区分大小写）补齐基础乐器
	SeedInstruments(ctx context.Context) (*SeedReport, error)
}

type maintenanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMaintenanceService 创建 MaintenanceService 实例
func NewMaintenanceService(repo *repository.Repository, logger *zap.Logger) MaintenanceService {
	return &maintenanceService{repo: repo, logger: logger}
}

// ────────────────────── RepairInstrumentRefs ──────────────────────

func (s *maintenanceService) RepairInstrumentRefs(ctx context.Context, dryRun bool) (*RepairReport, error) {
	instruments, err := s.repo.Instrument.List(ctx)
	if err != nil {
		s.logger.Error("列出乐器失败", zap.Error(err))
		return nil, err
	}
	byName := make(map[string]uint, len(instruments))
	for _, inst := range instruments {
		key := textutil.Fold(inst.Name)
		if _, exists := byName[key]; !exists {
			byName[key] = inst.ID
		}
	}

	students, err := s.repo.Student.ListWithLegacyRef(ctx)
	if err != nil {
		s.logger.Error("列出待修复学生失败", zap.Error(err))
		return nil, err
	}

	report := &RepairReport{Scanned: len(students), DryRun: dryRun}
	type fix struct{ studentID, instrumentID uint }
	var fixes []fix

	for _, st := range students {
		name, ok := legacyInstrumentTokens[strings.TrimSpace(*st.LegacyInstrumentRef)]
		if !ok {
			s.logger.Warn("未知的乐器占位符",
				zap.Uint("student_id", st.ID),
				zap.String("ref", *st.LegacyInstrumentRef),
			)
			report.Skipped++
			report.Pending = append(report.Pending, st.ID)
			continue
		}
		instrumentID, ok := byName[textutil.Fold(name)]
		if !ok {
			s.logger.Warn("占位符对应的乐器不存在",
				zap.Uint("student_id", st.ID),
				zap.String("instrument", name),
			)
			report.Skipped++
			report.Pending = append(report.Pending, st.ID)
			continue
		}
		fixes = append(fixes, fix{studentID: st.ID, instrumentID: instrumentID})
	}

	if dryRun || len(fixes) == 0 {
		report.Updated = len(fixes)
		return report, nil
	}

	// 使用事务保证一批修复全部生效或全部回滚
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)
	for _, f := range fixes {
		if err := txRepo.Student.ResolveLegacyRef(ctx, f.studentID, f.instrumentID); err != nil {
			tx.Rollback()
			s.logger.Error("修复学生乐器失败", zap.Uint("student_id", f.studentID), zap.Error(err))
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		s.logger.Error("提交事务失败", zap.Error(err))
		return nil, err
	}

	report.Updated = len(fixes)
	s.logger.Info("乐器引用修复完成",
		zap.Int("scanned", report.Scanned),
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}

// ────────────────────── SeedInstruments ──────────────────────

func (s *maintenanceService) SeedInstruments(ctx context.Context) (*SeedReport, error) {
	instruments, err := s.repo.Instrument.List(ctx)
	if err != nil {
		s.logger.Error("列出乐器失败", zap.Error(err))
		return nil, err
	}
	existing := make(map[string]bool, len(instruments))
	for _, inst := range instruments {
		existing[textutil.Fold(inst.Name)] = true
	}

	report := &SeedReport{Created: []string{}, Existing: []string{}}
	for _, def := range DefaultInstruments {
		if existing[textutil.Fold(def.Name)] {
			report.Existing = append(report.Existing, def.Name)
			continue
		}
		inst := def
		if err := s.repo.Instrument.Create(ctx, &inst); err != nil {
			s.logger.Error("创建乐器失败", zap.String("name", def.Name), zap.Error(err))
			return nil, err
		}
		existing[textutil.Fold(def.Name)] = true
		report.Created = append(report.Created, def.Name)
	}
	return report, nil
}

func strPtr(s string) *string { return &s }
