package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func room(s string) *string { return &s }

func course(id uint, name string, r *string, start, end *time.Time) model.Course {
	return model.Course{ID: id, Name: name, Room: r, StartDate: start, EndDate: end}
}

// ────────────────────── DetectOverlaps ──────────────────────

func TestDetectOverlaps(t *testing.T) {
	tests := []struct {
		name    string
		courses []model.Course
		want    [][2]uint
	}{
		{
			name: "same room overlapping pair is flagged, other room is not",
			courses: []model.Course{
				course(1, "A", room("R1"), day(2024, 1, 1), day(2024, 1, 10)),
				course(2, "B", room("R1"), day(2024, 1, 5), day(2024, 1, 20)),
				course(3, "C", room("R2"), day(2024, 1, 1), day(2024, 1, 10)),
			},
			want: [][2]uint{{1, 2}},
		},
		{
			name: "end equal to next start counts as overlap",
			courses: []model.Course{
				course(1, "A", room("R1"), day(2024, 1, 1), day(2024, 1, 5)),
				course(2, "B", room("R1"), day(2024, 1, 5), nil),
			},
			want: [][2]uint{{1, 2}},
		},
		{
			name: "sorted by start regardless of input order",
			courses: []model.Course{
				course(5, "late", room("R1"), day(2024, 3, 1), day(2024, 3, 2)),
				course(4, "early", room("R1"), day(2024, 1, 1), day(2024, 3, 1)),
			},
			want: [][2]uint{{4, 5}},
		},
		{
			name: "only adjacent pairs are compared",
			courses: []model.Course{
				course(1, "long", room("R1"), day(2024, 1, 1), day(2024, 12, 31)),
				course(2, "short", room("R1"), day(2024, 2, 1), day(2024, 2, 2)),
				course(3, "inner", room("R1"), day(2024, 3, 1), day(2024, 3, 2)),
			},
			want: [][2]uint{{1, 2}},
		},
		{
			name: "missing end never flags",
			courses: []model.Course{
				course(1, "A", room("R1"), day(2024, 1, 1), nil),
				course(2, "B", room("R1"), day(2024, 1, 2), nil),
			},
			want: nil,
		},
		{
			name: "courses without room or start are ignored",
			courses: []model.Course{
				course(1, "A", nil, day(2024, 1, 1), day(2024, 1, 10)),
				course(2, "B", room("R1"), nil, day(2024, 1, 10)),
				course(3, "C", room("R1"), day(2024, 1, 2), day(2024, 1, 3)),
			},
			want: nil,
		},
		{
			name: "equal start keeps id order",
			courses: []model.Course{
				course(9, "Z", room("R1"), day(2024, 1, 1), day(2024, 1, 3)),
				course(7, "Y", room("R1"), day(2024, 1, 1), day(2024, 1, 3)),
			},
			want: [][2]uint{{7, 9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectOverlaps(tt.courses)
			require.Len(t, got, len(tt.want))
			for i, pair := range tt.want {
				assert.Equal(t, pair[0], got[i].CourseID)
				assert.Equal(t, pair[1], got[i].NextCourseID)
				assert.NotEmpty(t, got[i].Suggestion)
			}
		})
	}
}

func TestDetectOverlaps_SuggestionNamesCoursesAndRoom(t *testing.T) {
	got := DetectOverlaps([]model.Course{
		course(1, "Piano I", room("Aula 3"), day(2024, 1, 1), day(2024, 1, 10)),
		course(2, "Coro", room("Aula 3"), day(2024, 1, 5), day(2024, 1, 20)),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Aula 3", got[0].Room)
	assert.Contains(t, got[0].Suggestion, "Piano I")
	assert.Contains(t, got[0].Suggestion, "Coro")
	assert.Contains(t, got[0].Suggestion, "Aula 3")
}

// ────────────────────── ProjectDemand ──────────────────────

func enrolled(courseID, studentID uint, year int) model.Enrollment {
	return model.Enrollment{
		CourseID:  courseID,
		StudentID: studentID,
		Student: &model.Student{
			ID:             studentID,
			EnrollmentDate: time.Date(year, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		EnrollmentDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProjectDemand(t *testing.T) {
	courses := []model.Course{{ID: 1, Name: "Piano"}, {ID: 2, Name: "Violín"}, {ID: 3, Name: "Coro"}}

	var enrollments []model.Enrollment
	var sid uint
	for i := 0; i < 3; i++ {
		sid++
		enrollments = append(enrollments, enrolled(1, sid, 2022))
	}
	for i := 0; i < 5; i++ {
		sid++
		enrollments = append(enrollments, enrolled(1, sid, 2023))
	}
	for i := 0; i < 4; i++ {
		sid++
		enrollments = append(enrollments, enrolled(2, sid, 2023))
	}

	got := ProjectDemand(courses, enrollments)
	require.Len(t, got, 3)

	piano := got[0]
	require.NotNil(t, piano.LastYear)
	assert.Equal(t, 2023, *piano.LastYear)
	assert.Equal(t, 5, piano.LastYearCount)
	assert.Equal(t, 2, piano.Trend)
	assert.Equal(t, 7, piano.Prediction)

	violin := got[1]
	require.NotNil(t, violin.LastYear)
	assert.Equal(t, 2023, *violin.LastYear)
	assert.Equal(t, 4, violin.LastYearCount)
	assert.Equal(t, 0, violin.Prediction)

	coro := got[2]
	assert.Nil(t, coro.LastYear)
	assert.Equal(t, 0, coro.Prediction)
}

func TestProjectDemand_CountsStudentOncePerCourse(t *testing.T) {
	courses := []model.Course{{ID: 1, Name: "Piano"}}
	enrollments := []model.Enrollment{
		enrolled(1, 1, 2022),
		enrolled(1, 1, 2022),
		enrolled(1, 2, 2023),
	}

	got := ProjectDemand(courses, enrollments)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].LastYearCount)
	assert.Equal(t, 0, got[0].Trend)
	assert.Equal(t, 1, got[0].Prediction)
}

func TestProjectDemand_FallsBackToEnrollmentDate(t *testing.T) {
	courses := []model.Course{{ID: 1, Name: "Piano"}}
	enrollments := []model.Enrollment{
		{CourseID: 1, StudentID: 1, EnrollmentDate: time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC)},
		{CourseID: 1, StudentID: 2, EnrollmentDate: time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)},
		{CourseID: 1, StudentID: 3, EnrollmentDate: time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := ProjectDemand(courses, enrollments)
	require.NotNil(t, got[0].LastYear)
	assert.Equal(t, 2022, *got[0].LastYear)
	assert.Equal(t, 1, got[0].Trend)
	assert.Equal(t, 3, got[0].Prediction)
}

func TestProjectDemand_NegativeTrend(t *testing.T) {
	courses := []model.Course{{ID: 1, Name: "Piano"}}
	enrollments := []model.Enrollment{
		enrolled(1, 1, 2020), enrolled(1, 2, 2020), enrolled(1, 3, 2020),
		enrolled(1, 4, 2022),
	}

	got := ProjectDemand(courses, enrollments)
	assert.Equal(t, -2, got[0].Trend)
	assert.Equal(t, -1, got[0].Prediction)
}

// ────────────────────── AnalyzeEnrollment ──────────────────────

func TestAnalyzeEnrollment_TopCourses(t *testing.T) {
	var courses []model.Course
	for i := uint(1); i <= 7; i++ {
		courses = append(courses, model.Course{ID: i, Name: "C"})
	}
	counts := []model.CourseEnrollmentCount{
		{CourseID: 2, Total: 10},
		{CourseID: 5, Total: 3},
		{CourseID: 6, Total: 3},
		{CourseID: 7, Total: 8},
	}

	got := AnalyzeEnrollment(courses, counts)
	require.Len(t, got.TopCourses, TopCoursesLimit)

	ids := make([]uint, 0, len(got.TopCourses))
	for _, r := range got.TopCourses {
		ids = append(ids, r.CourseID)
	}
	assert.Equal(t, []uint{2, 7, 5, 6, 1}, ids)
	assert.EqualValues(t, 0, got.TopCourses[4].Enrollments)
}

func TestAnalyzeEnrollment_RoomConflicts(t *testing.T) {
	courses := []model.Course{
		course(1, "A", room("R2"), day(2024, 9, 1), nil),
		course(2, "B", room("R2"), day(2024, 9, 1), nil),
		course(3, "C", room("R1"), day(2024, 9, 1), nil),
		course(4, "D", room("R1"), day(2024, 9, 1), nil),
		course(5, "E", room("R1"), day(2024, 9, 1), nil),
		course(6, "F", room("R1"), day(2024, 10, 1), nil),
		course(7, "G", nil, day(2024, 9, 1), nil),
	}

	got := AnalyzeEnrollment(courses, nil)
	assert.Equal(t, []RoomConflict{
		{Room: "R1", Date: "2024-09-01", Count: 3},
		{Room: "R2", Date: "2024-09-01", Count: 2},
	}, got.RoomConflicts)
}

func TestAnalyzeEnrollment_Empty(t *testing.T) {
	got := AnalyzeEnrollment(nil, nil)
	assert.Empty(t, got.TopCourses)
	assert.NotNil(t, got.RoomConflicts)
	assert.Empty(t, got.RoomConflicts)
}
