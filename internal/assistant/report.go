package assistant

import (
	"fmt"
	"time"
)

// 报告中的模拟指标（尚无考勤与成绩数据来源）
const (
	simulatedAttendanceRate = 0.92
	simulatedAverageGrade   = 7.8
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var reportHighlights = []string{
	"Audiciones trimestrales programadas en el auditorio.",
	"Se mantiene la ocupación de aulas en horario de tarde.",
	"Recordatorio de pagos enviado a las familias con recibos pendientes.",
}

// ReportCounts 报告所需的实时统计
type ReportCounts struct {
	Students          int64
	Courses           int64
	ActiveEnrollments int64
	PendingPayments   int64
}

// MonthlyReport 月度报告，字段固定
type MonthlyReport struct {
	Month             string    `json:"month"`
	Period            string    `json:"period"`
	GeneratedAt       time.Time `json:"generated_at"`
	Students          int64     `json:"students"`
	Courses           int64     `json:"courses"`
	ActiveEnrollments int64     `json:"active_enrollments"`
	PendingPayments   int64     `json:"pending_payments"`
	AttendanceRate    float64   `json:"attendance_rate"`
	AverageGrade      float64   `json:"average_grade"`
	Highlights        []string  `json:"highlights"`
	Summary           string    `json:"summary"`
}

// ReportRow 报告的一行（标签, 值），用于表格导出
type ReportRow struct {
	Label string
	Value interface{}
}

// BuildMonthlyReport 以 now 所在月份生成报告
func BuildMonthlyReport(now time.Time, counts ReportCounts) MonthlyReport {
	month := fmt.Sprintf("%s %d", monthNames[now.Month()-1], now.Year())
	highlights := make([]string, len(reportHighlights))
	copy(highlights, reportHighlights)

	return MonthlyReport{
		Month:             month,
		Period:            now.Format("2006-01"),
		GeneratedAt:       now,
		Students:          counts.Students,
		Courses:           counts.Courses,
		ActiveEnrollments: counts.ActiveEnrollments,
		PendingPayments:   counts.PendingPayments,
		AttendanceRate:    simulatedAttendanceRate,
		AverageGrade:      simulatedAverageGrade,
		Highlights:        highlights,
		Summary: fmt.Sprintf(
			"Informe de %s: %d alumnos, %d cursos, %d matrículas activas y %d pagos pendientes.",
			month, counts.Students, counts.Courses, counts.ActiveEnrollments, counts.PendingPayments),
	}
}

// Rows 报告的表格形式
func (r MonthlyReport) Rows() []ReportRow {
	return []ReportRow{
		{"Mes", r.Month},
		{"Periodo", r.Period},
		{"Generado", r.GeneratedAt.Format(time.RFC3339)},
		{"Alumnos", r.Students},
		{"Cursos", r.Courses},
		{"Matrículas activas", r.ActiveEnrollments},
		{"Pagos pendientes", r.PendingPayments},
		{"Asistencia media", r.AttendanceRate},
		{"Nota media", r.AverageGrade},
	}
}
