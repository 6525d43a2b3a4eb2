package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
)

// newTestRepo 每个测试独立的 SQLite 文件库，开启外键约束
func newTestRepo(t *testing.T) (*repository.Repository, *gorm.DB) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Instrument{},
		&model.Student{},
		&model.Professor{},
		&model.Course{},
		&model.Payment{},
		&model.Observation{},
		&model.Enrollment{},
		&model.Notification{},
	))
	return repository.NewRepository(db), db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

type fixture struct {
	student   *model.Student
	professor *model.Professor
	course    *model.Course
}

func seed(t *testing.T, repo *repository.Repository) fixture {
	t.Helper()
	ctx := context.Background()

	student := &model.Student{
		UserID:         "u-100",
		FirstName:      "Uxía",
		LastName:       "Pereira",
		Email:          "uxia@example.org",
		DateOfBirth:    date(2010, 3, 4),
		EnrollmentDate: date(2024, 9, 1),
	}
	require.NoError(t, repo.Student.Create(ctx, student))

	professor := &model.Professor{
		UserID:    "p-1",
		FirstName: "Xoán",
		LastName:  "Castro",
		Email:     "xoan@example.org",
		Specialty: "Piano",
		HireDate:  date(2015, 9, 1),
	}
	require.NoError(t, repo.Professor.Create(ctx, professor))

	course := &model.Course{
		Name:        "Piano I",
		Description: "Iniciación",
		Level:       "Elemental",
		TeacherID:   &professor.ID,
		StartDate:   ptr(date(2024, 9, 10)),
		Room:        ptr("A1"),
	}
	require.NoError(t, repo.Course.Create(ctx, course))

	return fixture{student: student, professor: professor, course: course}
}

// ────────────────────── 级联 ──────────────────────

func TestStudentDelete_CascadesDependents(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	f := seed(t, repo)

	require.NoError(t, repo.Payment.Create(ctx, &model.Payment{
		StudentID: f.student.ID, Amount: 45.5, DueDate: date(2024, 10, 1),
		Status: model.PaymentStatusPending, Description: "Outubro",
	}))
	require.NoError(t, repo.Observation.Create(ctx, &model.Observation{
		StudentID: f.student.ID, CourseID: f.course.ID, ProfessorID: f.professor.ID,
		Date: date(2024, 10, 2), Text: "Bo progreso",
	}))
	require.NoError(t, repo.Enrollment.Create(ctx, &model.Enrollment{
		StudentID: f.student.ID, CourseID: f.course.ID, EnrollmentDate: date(2024, 9, 1),
	}))

	require.NoError(t, repo.Student.Delete(ctx, f.student.ID))

	for _, m := range []interface{}{&model.Payment{}, &model.Observation{}, &model.Enrollment{}} {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		assert.Zero(t, n, "%T 应随学生删除", m)
	}

	// 课程与教师不受影响
	_, err := repo.Course.GetByID(ctx, f.course.ID)
	assert.NoError(t, err)
}

func TestProfessorDelete_NullsCourseTeacher(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	f := seed(t, repo)

	require.NoError(t, repo.Observation.Create(ctx, &model.Observation{
		StudentID: f.student.ID, CourseID: f.course.ID, ProfessorID: f.professor.ID,
		Date: date(2024, 10, 2), Text: "Revisar escalas",
	}))

	require.NoError(t, repo.Professor.Delete(ctx, f.professor.ID))

	course, err := repo.Course.GetByID(ctx, f.course.ID)
	require.NoError(t, err)
	assert.Nil(t, course.TeacherID)

	obs, err := repo.Observation.List(ctx, model.ObservationFilter{})
	require.NoError(t, err)
	assert.Empty(t, obs)
}

func TestCourseDelete_CascadesEnrollments(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	f := seed(t, repo)

	require.NoError(t, repo.Enrollment.Create(ctx, &model.Enrollment{
		StudentID: f.student.ID, CourseID: f.course.ID, EnrollmentDate: date(2024, 9, 1),
	}))
	require.NoError(t, repo.Course.Delete(ctx, f.course.ID))

	list, err := repo.Enrollment.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.Student.GetByID(ctx, f.student.ID)
	assert.NoError(t, err)
}

func TestInstrumentDelete_NullsStudentInstrument(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	inst := &model.Instrument{Name: "Violín"}
	require.NoError(t, repo.Instrument.Create(ctx, inst))

	student := &model.Student{
		UserID: "u-1", FirstName: "Ana", LastName: "Souto", Email: "ana@example.org",
		DateOfBirth: date(2012, 1, 1), EnrollmentDate: date(2023, 9, 1), InstrumentID: &inst.ID,
	}
	require.NoError(t, repo.Student.Create(ctx, student))

	require.NoError(t, db.Delete(&model.Instrument{}, inst.ID).Error)

	got, err := repo.Student.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Nil(t, got.InstrumentID)
}

// ────────────────────── Update / Delete ──────────────────────

func TestUpdate_MissingRowReturnsNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	err := repo.Professor.Update(ctx, &model.Professor{
		ID: 999, UserID: "x", FirstName: "x", LastName: "x", Email: "x@example.org",
		Specialty: "x", HireDate: date(2020, 1, 1),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Course.Delete(ctx, 999), gorm.ErrRecordNotFound)
}

func TestCourseUpdate_ClearsOptionalFields(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	f := seed(t, repo)

	f.course.Room = nil
	f.course.TeacherID = nil
	f.course.Name = "Piano II"
	require.NoError(t, repo.Course.Update(ctx, f.course))

	got, err := repo.Course.GetByID(ctx, f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Piano II", got.Name)
	assert.Nil(t, got.Room)
	assert.Nil(t, got.TeacherID)
}

func TestObservationUpdate_KeepsDate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	f := seed(t, repo)

	obs := &model.Observation{
		StudentID: f.student.ID, CourseID: f.course.ID, ProfessorID: f.professor.ID,
		Date: date(2024, 10, 2), Text: "Primeira",
	}
	require.NoError(t, repo.Observation.Create(ctx, obs))

	obs.Text = "Corrixida"
	obs.Date = date(2030, 1, 1)
	require.NoError(t, repo.Observation.Update(ctx, obs))

	got, err := repo.Observation.GetByID(ctx, obs.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corrixida", got.Text)
	assert.Equal(t, "2024-10-02", got.Date.Format(model.DateLayout))
}

// ────────────────────── 查询 ──────────────────────

func TestStudentGetByUserID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	f := seed(t, repo)

	got, err := repo.Student.GetByUserID(ctx, "u-100")
	require.NoError(t, err)
	assert.Equal(t, f.student.ID, got.ID)

	_, err = repo.Student.GetByUserID(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestObservationList_Filters(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	f := seed(t, repo)

	other := &model.Course{Name: "Solfexo", Description: "-", Level: "Elemental"}
	require.NoError(t, repo.Course.Create(ctx, other))

	for _, courseID := range []uint{f.course.ID, other.ID, other.ID} {
		require.NoError(t, repo.Observation.Create(ctx, &model.Observation{
			StudentID: f.student.ID, CourseID: courseID, ProfessorID: f.professor.ID,
			Date: date(2024, 11, 1), Text: "nota",
		}))
	}

	all, err := repo.Observation.List(ctx, model.ObservationFilter{StudentID: &f.student.ID})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCourse, err := repo.Observation.List(ctx, model.ObservationFilter{
		StudentID: &f.student.ID,
		CourseID:  &other.ID,
	})
	require.NoError(t, err)
	assert.Len(t, byCourse, 2)

	none, err := repo.Observation.List(ctx, model.ObservationFilter{ProfessorID: ptr(uint(42))})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEnrollmentCounts(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	f := seed(t, repo)

	other := &model.Course{Name: "Coro", Description: "-", Level: "Medio"}
	require.NoError(t, repo.Course.Create(ctx, other))

	require.NoError(t, repo.Enrollment.Create(ctx, &model.Enrollment{
		StudentID: f.student.ID, CourseID: other.ID, EnrollmentDate: date(2024, 9, 1),
	}))
	require.NoError(t, repo.Enrollment.Create(ctx, &model.Enrollment{
		StudentID: f.student.ID, CourseID: other.ID, EnrollmentDate: date(2024, 9, 2),
		Status: "Dropped",
	}))

	counts, err := repo.Enrollment.CountByCourse(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, other.ID, counts[0].CourseID)
	assert.EqualValues(t, 2, counts[0].Total)

	active, err := repo.Enrollment.CountByStatus(ctx, model.EnrollmentStatusActive)
	require.NoError(t, err)
	assert.EqualValues(t, 1, active)

	withStudents, err := repo.Enrollment.ListWithStudents(ctx)
	require.NoError(t, err)
	require.Len(t, withStudents, 2)
	require.NotNil(t, withStudents[0].Student)
	assert.Equal(t, 2024, withStudents[0].Student.EnrollmentDate.Year())
}

// ────────────────────── 历史乐器引用 ──────────────────────

func TestLegacyInstrumentRef(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	inst := &model.Instrument{Name: "Guitarra"}
	require.NoError(t, repo.Instrument.Create(ctx, inst))

	legacy := &model.Student{
		UserID: "u-2", FirstName: "Brais", LastName: "Lema", Email: "brais@example.org",
		DateOfBirth: date(2011, 5, 5), EnrollmentDate: date(2022, 9, 1),
		LegacyInstrumentRef: ptr("instr-3"),
	}
	require.NoError(t, repo.Student.Create(ctx, legacy))
	seed(t, repo)

	pending, err := repo.Student.ListWithLegacyRef(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "instr-3", *pending[0].LegacyInstrumentRef)

	require.NoError(t, repo.Student.ResolveLegacyRef(ctx, legacy.ID, inst.ID))

	got, err := repo.Student.GetByID(ctx, legacy.ID)
	require.NoError(t, err)
	require.NotNil(t, got.InstrumentID)
	assert.Equal(t, inst.ID, *got.InstrumentID)
	assert.Nil(t, got.LegacyInstrumentRef)

	pending, err = repo.Student.ListWithLegacyRef(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

// ────────────────────── 通知 ──────────────────────

func TestNotificationMarkRead_KeepsFirstReadAt(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	n := &model.Notification{
		Title: "Audición", Message: "Venres ás 18:00", SentAt: time.Now().UTC(),
		Category: model.NotificationCategoryGeneral,
	}
	require.NoError(t, repo.Notification.Create(ctx, n))

	first := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Notification.MarkRead(ctx, n.ID, first))
	require.NoError(t, repo.Notification.MarkRead(ctx, n.ID, first.Add(time.Hour)))

	got, err := repo.Notification.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)
	require.NotNil(t, got.ReadAt)
	assert.True(t, got.ReadAt.Equal(first))

	assert.ErrorIs(t, repo.Notification.MarkRead(ctx, 999, first), gorm.ErrRecordNotFound)
}

func TestNotificationList_ByTargetUser(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, target := range []*string{ptr("u-1"), ptr("u-2"), ptr("u-1"), nil} {
		require.NoError(t, repo.Notification.Create(ctx, &model.Notification{
			Title: "t", Message: "m", SentAt: base.Add(time.Duration(i) * time.Hour),
			TargetUser: target, Category: model.NotificationCategoryAutomatic,
		}))
	}

	mine, err := repo.Notification.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, mine[0].SentAt.After(mine[1].SentAt))

	all, err := repo.Notification.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

// ────────────────────── 事务 ──────────────────────

func TestTransaction_Rollback(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)

	inst := &model.Instrument{Name: "Frauta"}
	require.NoError(t, repo.WithTx(tx).Instrument.Create(ctx, inst))
	require.NoError(t, tx.Rollback().Error)

	_, err = repo.Instrument.GetByID(ctx, inst.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
