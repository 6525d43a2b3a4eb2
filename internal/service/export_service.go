package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("No se pudo generar el archivo")
)

const (
	reportSheetName   = "Informe"
	calendarProductID = "-//Conservatorio//Cursos//ES"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 月度报告导出为 Excel (.xlsx)，内容与 JSON 报告一致
//   - 课程日历导出为 iCalendar，每门有开始日期的课程一个全天事件
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportReport 导出月度报告为 Excel
	ExportReport(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportCourseCalendar 导出课程日历
	ExportCourseCalendar(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo      *repository.Repository
	assistant AssistantService
	logger    *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, assistant AssistantService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, assistant: assistant, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportReport — 导出月度报告为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Informe"
//   - 第 1 行标题，随后每行一个指标（A 列标签，B 列数值）
//   - 指标之后空一行列出要点

func (s *exportService) ExportReport(ctx context.Context) (*bytes.Buffer, string, error) {
	report, err := s.assistant.MonthlyReport(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(reportSheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	f.SetColWidth(reportSheetName, "A", "A", 24)
	f.SetColWidth(reportSheetName, "B", "B", 60)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(reportSheetName, "A1", fmt.Sprintf("Informe mensual: %s", report.Month))
	f.MergeCell(reportSheetName, "A1", "B1")
	f.SetCellStyle(reportSheetName, "A1", "B1", headerStyle)

	// 指标
	row := 2
	for _, r := range report.Rows() {
		f.SetCellValue(reportSheetName, cell("A", row), r.Label)
		f.SetCellValue(reportSheetName, cell("B", row), r.Value)
		row++
	}

	// 要点
	row++
	f.SetCellValue(reportSheetName, cell("A", row), "Aspectos destacados")
	f.SetCellStyle(reportSheetName, cell("A", row), cell("A", row), headerStyle)
	for _, h := range report.Highlights {
		f.SetCellValue(reportSheetName, cell("B", row), h)
		row++
	}
	f.SetCellValue(reportSheetName, cell("A", row+1), "Resumen")
	f.SetCellValue(reportSheetName, cell("B", row+1), report.Summary)

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("informe_%s.xlsx", report.Period)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCourseCalendar — 导出课程日历
// ═══════════════════════════════════════════════════════════
//
// 每门有开始日期的课程生成一个全天 VEVENT：
//   - DTEND 为结束日期的次日（RFC 5545 全天事件不含结束日）；无结束日期时为开始日期次日
//   - LOCATION 为教室，DESCRIPTION 为级别 + 描述

func (s *exportService) ExportCourseCalendar(ctx context.Context) (*bytes.Buffer, string, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetProductId(calendarProductID)
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName("Cursos del conservatorio")

	stamp := time.Now().UTC()
	for _, c := range courses {
		if c.StartDate == nil {
			continue
		}

		end := c.StartDate.AddDate(0, 0, 1)
		if c.EndDate != nil && !c.EndDate.Before(*c.StartDate) {
			end = c.EndDate.AddDate(0, 0, 1)
		}

		event := cal.AddEvent(fmt.Sprintf("course-%d@conservatorio", c.ID))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(*c.StartDate)
		event.SetAllDayEndAt(end)
		event.SetSummary(c.Name)
		event.SetDescription(fmt.Sprintf("%s. %s", c.Level, c.Description))
		if c.Room != nil && *c.Room != "" {
			event.SetLocation(*c.Room)
		}
	}

	buf := new(bytes.Buffer)
	if err := cal.SerializeTo(buf); err != nil {
		s.logger.Error("生成日历失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, "cursos.ics", nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
