package analytics

import (
	"sort"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

// TopCoursesLimit 报名分析返回的热门课程数量
const TopCoursesLimit = 5

// CourseRank 课程报名人数排名
type CourseRank struct {
	CourseID    uint   `json:"course_id"`
	CourseName  string `json:"course"`
	Enrollments int64  `json:"enrollments"`
}

// RoomConflict 同一教室同一开课日期被多门课程占用
type RoomConflict struct {
	Room  string `json:"room"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// EnrollmentAnalysis 报名分析结果
type EnrollmentAnalysis struct {
	TopCourses    []CourseRank   `json:"top_courses"`
	RoomConflicts []RoomConflict `json:"room_conflicts"`
}

// AnalyzeEnrollment 统计报名最多的课程，以及 (教室, 开课日期) 被多门课程共用的情况。
// 没有报名的课程按 0 参与排名；人数相同按课程 ID 升序。
func AnalyzeEnrollment(courses []model.Course, counts []model.CourseEnrollmentCount) EnrollmentAnalysis {
	totals := make(map[uint]int64, len(counts))
	for _, c := range counts {
		totals[c.CourseID] = c.Total
	}

	ranks := make([]CourseRank, 0, len(courses))
	for _, c := range courses {
		ranks = append(ranks, CourseRank{CourseID: c.ID, CourseName: c.Name, Enrollments: totals[c.ID]})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Enrollments != ranks[j].Enrollments {
			return ranks[i].Enrollments > ranks[j].Enrollments
		}
		return ranks[i].CourseID < ranks[j].CourseID
	})
	if len(ranks) > TopCoursesLimit {
		ranks = ranks[:TopCoursesLimit]
	}

	type slot struct{ room, date string }
	usage := make(map[slot]int)
	for _, c := range courses {
		if c.Room == nil || c.StartDate == nil {
			continue
		}
		usage[slot{*c.Room, c.StartDate.Format(model.DateLayout)}]++
	}

	conflicts := make([]RoomConflict, 0)
	for s, n := range usage {
		if n > 1 {
			conflicts = append(conflicts, RoomConflict{Room: s.room, Date: s.date, Count: n})
		}
	}
	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Room != conflicts[j].Room {
			return conflicts[i].Room < conflicts[j].Room
		}
		return conflicts[i].Date < conflicts[j].Date
	})

	return EnrollmentAnalysis{TopCourses: ranks, RoomConflicts: conflicts}
}
