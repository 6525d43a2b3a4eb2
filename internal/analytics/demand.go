package analytics

import (
	"sort"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

// DemandPrediction 单门课程的需求预测
type DemandPrediction struct {
	CourseID      uint   `json:"course_id"`
	CourseName    string `json:"course"`
	LastYear      *int   `json:"last_year"`
	LastYearCount int    `json:"last_year_count"`
	Trend         int    `json:"trend"`
	Prediction    int    `json:"prediction"`
}

// ProjectDemand 按学生入学年份统计每门课程的人数，并用最近两年的差值做一步线性外推。
//
// 同一学生在同一课程的多次报名只计一次。少于两年数据时 trend 与 prediction 均为 0；
// 没有数据时 last_year 为 nil。结果顺序与 courses 一致。
func ProjectDemand(courses []model.Course, enrollments []model.Enrollment) []DemandPrediction {
	// course → student → 入学年份
	students := make(map[uint]map[uint]int)
	for _, e := range enrollments {
		year := e.EnrollmentDate.Year()
		if e.Student != nil {
			year = e.Student.EnrollmentDate.Year()
		}
		if students[e.CourseID] == nil {
			students[e.CourseID] = make(map[uint]int)
		}
		if _, seen := students[e.CourseID][e.StudentID]; !seen {
			students[e.CourseID][e.StudentID] = year
		}
	}

	result := make([]DemandPrediction, 0, len(courses))
	for _, c := range courses {
		p := DemandPrediction{CourseID: c.ID, CourseName: c.Name}

		perYear := make(map[int]int)
		for _, year := range students[c.ID] {
			perYear[year]++
		}
		if len(perYear) == 0 {
			result = append(result, p)
			continue
		}

		years := make([]int, 0, len(perYear))
		for y := range perYear {
			years = append(years, y)
		}
		sort.Ints(years)

		last := years[len(years)-1]
		p.LastYear = &last
		p.LastYearCount = perYear[last]

		if len(years) >= 2 {
			p.Trend = perYear[last] - perYear[years[len(years)-2]]
			p.Prediction = p.LastYearCount + p.Trend
		}
		result = append(result, p)
	}
	return result
}
