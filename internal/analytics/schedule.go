package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

// ScheduleOverlap 同一教室内相邻两门课程的时间重叠
type ScheduleOverlap struct {
	Room         string `json:"room"`
	CourseID     uint   `json:"course_id"`
	CourseName   string `json:"course"`
	NextCourseID uint   `json:"next_course_id"`
	NextCourse   string `json:"next_course"`
	Suggestion   string `json:"suggestion"`
}

// DetectOverlaps 按教室分组、按开始日期稳定排序后，只比较相邻的两门课程。
// 结束日期 >= 下一门开始日期即视为重叠；没有结束日期的课程不会被标记。
// 被相邻课程隔开的包含关系不会被发现。
func DetectOverlaps(courses []model.Course) []ScheduleOverlap {
	byRoom := make(map[string][]model.Course)
	for _, c := range courses {
		if c.Room == nil || c.StartDate == nil {
			continue
		}
		byRoom[*c.Room] = append(byRoom[*c.Room], c)
	}

	rooms := make([]string, 0, len(byRoom))
	for room := range byRoom {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	result := make([]ScheduleOverlap, 0)
	for _, room := range rooms {
		group := byRoom[room]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].StartDate.Equal(*group[j].StartDate) {
				return group[i].ID < group[j].ID
			}
			return group[i].StartDate.Before(*group[j].StartDate)
		})

		for i := 0; i+1 < len(group); i++ {
			cur, next := group[i], group[i+1]
			if !overlaps(cur.EndDate, *next.StartDate) {
				continue
			}
			result = append(result, ScheduleOverlap{
				Room:         room,
				CourseID:     cur.ID,
				CourseName:   cur.Name,
				NextCourseID: next.ID,
				NextCourse:   next.Name,
				Suggestion: fmt.Sprintf(
					"Los cursos '%s' y '%s' se solapan en el aula %s. Considera mover uno de ellos a otra aula o fecha.",
					cur.Name, next.Name, room),
			})
		}
	}
	return result
}

func overlaps(end *time.Time, nextStart time.Time) bool {
	if end == nil {
		return false
	}
	return !end.Before(nextStart)
}
