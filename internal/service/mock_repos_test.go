package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/twistin/xestion-conservatorio-rsp/internal/model"
	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
)

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[uint]*model.Student
	nextID   uint
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[uint]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	m.nextID++
	student.ID = m.nextID
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByUserID(_ context.Context, userID string) (*model.Student, error) {
	for _, s := range m.sorted() {
		if s.UserID == userID {
			cp := s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	return m.sorted(), nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	if _, ok := m.students[student.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *student
	m.students[student.ID] = &cp
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.students[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

func (m *mockStudentRepo) ListWithLegacyRef(_ context.Context) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.sorted() {
		if s.LegacyInstrumentRef != nil {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockStudentRepo) ResolveLegacyRef(_ context.Context, studentID, instrumentID uint) error {
	s, ok := m.students[studentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.InstrumentID = &instrumentID
	s.LegacyInstrumentRef = nil
	return nil
}

func (m *mockStudentRepo) sorted() []model.Student {
	result := make([]model.Student, 0, len(m.students))
	for _, s := range m.students {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// ── Mock InstrumentRepository ──

type mockInstrumentRepo struct {
	instruments map[uint]*model.Instrument
	nextID      uint
}

func newMockInstrumentRepo() *mockInstrumentRepo {
	return &mockInstrumentRepo{instruments: make(map[uint]*model.Instrument)}
}

func (m *mockInstrumentRepo) Create(_ context.Context, inst *model.Instrument) error {
	m.nextID++
	inst.ID = m.nextID
	m.instruments[inst.ID] = inst
	return nil
}

func (m *mockInstrumentRepo) GetByID(_ context.Context, id uint) (*model.Instrument, error) {
	if i, ok := m.instruments[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstrumentRepo) List(_ context.Context) ([]model.Instrument, error) {
	result := make([]model.Instrument, 0, len(m.instruments))
	for _, i := range m.instruments {
		result = append(result, *i)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock ProfessorRepository ──

type mockProfessorRepo struct {
	professors map[uint]*model.Professor
	nextID     uint
}

func newMockProfessorRepo() *mockProfessorRepo {
	return &mockProfessorRepo{professors: make(map[uint]*model.Professor)}
}

func (m *mockProfessorRepo) Create(_ context.Context, prof *model.Professor) error {
	m.nextID++
	prof.ID = m.nextID
	m.professors[prof.ID] = prof
	return nil
}

func (m *mockProfessorRepo) GetByID(_ context.Context, id uint) (*model.Professor, error) {
	if p, ok := m.professors[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessorRepo) List(_ context.Context) ([]model.Professor, error) {
	result := make([]model.Professor, 0, len(m.professors))
	for _, p := range m.professors {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProfessorRepo) Update(_ context.Context, prof *model.Professor) error {
	if _, ok := m.professors[prof.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.professors[prof.ID] = prof
	return nil
}

func (m *mockProfessorRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.professors[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.professors, id)
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[uint]*model.Course
	nextID  uint
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[uint]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	m.nextID++
	course.ID = m.nextID
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	result := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	if _, ok := m.courses[course.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.courses[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.courses, id)
	return nil
}

func (m *mockCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.courses)), nil
}

// ── Mock PaymentRepository ──

type mockPaymentRepo struct {
	payments map[uint]*model.Payment
	nextID   uint
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[uint]*model.Payment)}
}

func (m *mockPaymentRepo) Create(_ context.Context, payment *model.Payment) error {
	m.nextID++
	payment.ID = m.nextID
	m.payments[payment.ID] = payment
	return nil
}

func (m *mockPaymentRepo) GetByID(_ context.Context, id uint) (*model.Payment, error) {
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPaymentRepo) List(_ context.Context) ([]model.Payment, error) {
	result := make([]model.Payment, 0, len(m.payments))
	for _, p := range m.payments {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockPaymentRepo) Update(_ context.Context, payment *model.Payment) error {
	if _, ok := m.payments[payment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.payments[payment.ID] = payment
	return nil
}

func (m *mockPaymentRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.payments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.payments, id)
	return nil
}

func (m *mockPaymentRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, p := range m.payments {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

// ── Mock ObservationRepository ──

type mockObservationRepo struct {
	observations map[uint]*model.Observation
	nextID       uint
}

func newMockObservationRepo() *mockObservationRepo {
	return &mockObservationRepo{observations: make(map[uint]*model.Observation)}
}

func (m *mockObservationRepo) Create(_ context.Context, obs *model.Observation) error {
	m.nextID++
	obs.ID = m.nextID
	cp := *obs
	m.observations[obs.ID] = &cp
	return nil
}

func (m *mockObservationRepo) GetByID(_ context.Context, id uint) (*model.Observation, error) {
	if o, ok := m.observations[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockObservationRepo) List(_ context.Context, filter model.ObservationFilter) ([]model.Observation, error) {
	var result []model.Observation
	for _, o := range m.observations {
		if filter.StudentID != nil && o.StudentID != *filter.StudentID {
			continue
		}
		if filter.CourseID != nil && o.CourseID != *filter.CourseID {
			continue
		}
		if filter.ProfessorID != nil && o.ProfessorID != *filter.ProfessorID {
			continue
		}
		result = append(result, *o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update 与真实实现一致：不覆盖 date
func (m *mockObservationRepo) Update(_ context.Context, obs *model.Observation) error {
	stored, ok := m.observations[obs.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *obs
	cp.Date = stored.Date
	m.observations[obs.ID] = &cp
	return nil
}

func (m *mockObservationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.observations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.observations, id)
	return nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments map[uint]*model.Enrollment
	nextID      uint
	students    *mockStudentRepo // ListWithStudents 预加载来源
}

func newMockEnrollmentRepo(students *mockStudentRepo) *mockEnrollmentRepo {
	return &mockEnrollmentRepo{enrollments: make(map[uint]*model.Enrollment), students: students}
}

func (m *mockEnrollmentRepo) Create(_ context.Context, enrollment *model.Enrollment) error {
	m.nextID++
	enrollment.ID = m.nextID
	m.enrollments[enrollment.ID] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) GetByID(_ context.Context, id uint) (*model.Enrollment, error) {
	if e, ok := m.enrollments[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) List(_ context.Context) ([]model.Enrollment, error) {
	result := make([]model.Enrollment, 0, len(m.enrollments))
	for _, e := range m.enrollments {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockEnrollmentRepo) ListWithStudents(ctx context.Context) ([]model.Enrollment, error) {
	result, _ := m.List(ctx)
	for i := range result {
		if s, ok := m.students.students[result[i].StudentID]; ok {
			result[i].Student = s
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) Update(_ context.Context, enrollment *model.Enrollment) error {
	if _, ok := m.enrollments[enrollment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.enrollments[enrollment.ID] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.enrollments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.enrollments, id)
	return nil
}

func (m *mockEnrollmentRepo) CountByCourse(_ context.Context) ([]model.CourseEnrollmentCount, error) {
	totals := make(map[uint]int64)
	for _, e := range m.enrollments {
		totals[e.CourseID]++
	}
	result := make([]model.CourseEnrollmentCount, 0, len(totals))
	for id, n := range totals {
		result = append(result, model.CourseEnrollmentCount{CourseID: id, Total: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseID < result[j].CourseID })
	return result, nil
}

func (m *mockEnrollmentRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, e := range m.enrollments {
		if e.Status == status {
			n++
		}
	}
	return n, nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications map[uint]*model.Notification
	nextID        uint
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{notifications: make(map[uint]*model.Notification)}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	m.nextID++
	n.ID = m.nextID
	cp := *n
	m.notifications[n.ID] = &cp
	return nil
}

func (m *mockNotificationRepo) GetByID(_ context.Context, id uint) (*model.Notification, error) {
	if n, ok := m.notifications[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) List(_ context.Context, targetUser string) ([]model.Notification, error) {
	var result []model.Notification
	for _, n := range m.notifications {
		if targetUser != "" && (n.TargetUser == nil || *n.TargetUser != targetUser) {
			continue
		}
		result = append(result, *n)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].SentAt.Equal(result[j].SentAt) {
			return result[i].SentAt.After(result[j].SentAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (m *mockNotificationRepo) Update(_ context.Context, n *model.Notification) error {
	if _, ok := m.notifications[n.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *n
	m.notifications[n.ID] = &cp
	return nil
}

func (m *mockNotificationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.notifications[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.notifications, id)
	return nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id uint, at time.Time) error {
	n, ok := m.notifications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if !n.Read {
		n.Read = true
		n.ReadAt = &at
	}
	return nil
}

// ── 聚合 ──

type mockRepos struct {
	student      *mockStudentRepo
	instrument   *mockInstrumentRepo
	professor    *mockProfessorRepo
	course       *mockCourseRepo
	payment      *mockPaymentRepo
	observation  *mockObservationRepo
	enrollment   *mockEnrollmentRepo
	notification *mockNotificationRepo
}

// newMockRepository 返回不含数据库连接的 Repository（不能调用 BeginTx）
func newMockRepository() (*repository.Repository, *mockRepos) {
	students := newMockStudentRepo()
	m := &mockRepos{
		student:      students,
		instrument:   newMockInstrumentRepo(),
		professor:    newMockProfessorRepo(),
		course:       newMockCourseRepo(),
		payment:      newMockPaymentRepo(),
		observation:  newMockObservationRepo(),
		enrollment:   newMockEnrollmentRepo(students),
		notification: newMockNotificationRepo(),
	}
	repo := &repository.Repository{
		Student:      m.student,
		Instrument:   m.instrument,
		Professor:    m.professor,
		Course:       m.course,
		Payment:      m.payment,
		Observation:  m.observation,
		Enrollment:   m.enrollment,
		Notification: m.notification,
	}
	return repo, m
}
