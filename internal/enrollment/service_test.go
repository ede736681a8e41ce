package enrollment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/scheduling-backend/internal/group"
	"github.com/campuskit/scheduling-backend/internal/semester"
)

type memStore struct {
	mu          sync.Mutex
	enrollments map[string]*Enrollment
	theory      map[string]*group.TheoryGroup
	labs        map[string]*group.LabGroup
}

func newMemStore() *memStore {
	return &memStore{
		enrollments: map[string]*Enrollment{},
		theory:      map[string]*group.TheoryGroup{},
		labs:        map[string]*group.LabGroup{},
	}
}

func (s *memStore) addTheory(courseID string) *group.TheoryGroup {
	g := &group.TheoryGroup{ID: uuid.NewString(), CourseID: courseID, Semester: semester.Semester("2025-I")}
	s.theory[g.ID] = g
	return g
}

func (s *memStore) addLab(courseID string, capacity, enrolled int) *group.LabGroup {
	g := &group.LabGroup{ID: uuid.NewString(), CourseID: courseID, Semester: semester.Semester("2025-I"), Capacity: capacity, Enrolled: enrolled}
	s.labs[g.ID] = g
	return g
}

func (s *memStore) addEnrollment(studentID, theoryGroupID string) *Enrollment {
	e := &Enrollment{ID: uuid.NewString(), StudentID: studentID, TheoryGroupID: theoryGroupID}
	s.enrollments[e.ID] = e
	return e
}

type fakeEnrollmentRepo struct{ store *memStore }

func (f *fakeEnrollmentRepo) Create(_ context.Context, e *Enrollment) error {
	for _, other := range f.store.enrollments {
		if other.StudentID == e.StudentID && other.TheoryGroupID == e.TheoryGroupID {
			return ErrDuplicate
		}
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	f.store.enrollments[e.ID] = e
	return nil
}

func (f *fakeEnrollmentRepo) GetByID(_ context.Context, id string) (*Enrollment, error) {
	e, ok := f.store.enrollments[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEnrollmentRepo) ListByStudent(_ context.Context, studentID string) ([]*Enrollment, error) {
	var out []*Enrollment
	for _, e := range f.store.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) SetLabGroup(_ context.Context, id string, labGroupID *string) error {
	e, ok := f.store.enrollments[id]
	if !ok {
		return ErrNotFound
	}
	e.LabGroupID = labGroupID
	return nil
}

type fakeGroupRepo struct{ store *memStore }

func (f *fakeGroupRepo) CreateTheory(_ context.Context, _ *group.TheoryGroup) error { return nil }
func (f *fakeGroupRepo) CreateLab(_ context.Context, _ *group.LabGroup) error       { return nil }

func (f *fakeGroupRepo) GetTheoryByID(_ context.Context, id string) (*group.TheoryGroup, error) {
	g, ok := f.store.theory[id]
	if !ok {
		return nil, group.ErrTheoryNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGroupRepo) GetLabByID(_ context.Context, id string) (*group.LabGroup, error) {
	g, ok := f.store.labs[id]
	if !ok {
		return nil, group.ErrLabNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGroupRepo) ListLabsBySemester(_ context.Context, sem semester.Semester) ([]*group.LabGroup, error) {
	var out []*group.LabGroup
	for _, g := range f.store.labs {
		if g.Semester == sem {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) IncrementLabEnrolled(_ context.Context, id string) (bool, error) {
	g, ok := f.store.labs[id]
	if !ok || g.Enrolled >= g.Capacity {
		return false, nil
	}
	g.Enrolled++
	return true, nil
}

func (f *fakeGroupRepo) DecrementLabEnrolled(_ context.Context, id string) (bool, error) {
	g, ok := f.store.labs[id]
	if !ok || g.Enrolled <= 0 {
		return false, nil
	}
	g.Enrolled--
	return true, nil
}

// fakeTxManager serializes transactions with a mutex and restores both
// tables on error, mirroring commit/rollback.
type fakeTxManager struct{ store *memStore }

func (m *fakeTxManager) InTx(ctx context.Context, fn func(ctx context.Context, repos TxRepos) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	enrollBackup := make(map[string]*Enrollment, len(m.store.enrollments))
	for id, e := range m.store.enrollments {
		cp := *e
		enrollBackup[id] = &cp
	}
	labBackup := make(map[string]*group.LabGroup, len(m.store.labs))
	for id, g := range m.store.labs {
		cp := *g
		labBackup[id] = &cp
	}

	repos := TxRepos{
		Enrollments: &fakeEnrollmentRepo{store: m.store},
		Groups:      &fakeGroupRepo{store: m.store},
	}
	if err := fn(ctx, repos); err != nil {
		m.store.enrollments = enrollBackup
		m.store.labs = labBackup
		return err
	}
	return nil
}

func newTestService(store *memStore) Service {
	return NewService(
		&fakeTxManager{store: store},
		&fakeEnrollmentRepo{store: store},
		&fakeGroupRepo{store: store},
	)
}

const (
	studentIan = "student-ian"
	studentMei = "student-mei"
	courseDB   = "course-databases"
	courseOS   = "course-operating-systems"
)

func TestAssignLabGroup(t *testing.T) {
	store := newMemStore()
	theory := store.addTheory(courseDB)
	lab := store.addLab(courseDB, 2, 0)
	e := store.addEnrollment(studentIan, theory.ID)
	svc := newTestService(store)

	assigned, err := svc.AssignLabGroup(context.Background(), studentIan, Selection{EnrollmentID: e.ID, LabGroupID: lab.ID})
	require.NoError(t, err)

	require.NotNil(t, assigned.LabGroupID)
	assert.Equal(t, lab.ID, *assigned.LabGroupID)
	assert.Equal(t, 1, store.labs[lab.ID].Enrolled)
	require.NotNil(t, store.enrollments[e.ID].LabGroupID)
	assert.Equal(t, lab.ID, *store.enrollments[e.ID].LabGroupID)
}

func TestAssignLabGroupFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("enrollment not found", func(t *testing.T) {
		store := newMemStore()
		lab := store.addLab(courseDB, 1, 0)
		svc := newTestService(store)

		_, err := svc.AssignLabGroup(ctx, studentIan, Selection{EnrollmentID: uuid.NewString(), LabGroupID: lab.ID})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wrong student", func(t *testing.T) {
		store := newMemStore()
		theory := store.addTheory(courseDB)
		lab := store.addLab(courseDB, 1, 0)
		e := store.addEnrollment(studentIan, theory.ID)
		svc := newTestService(store)

		_, err := svc.AssignLabGroup(ctx, studentMei, Selection{EnrollmentID: e.ID, LabGroupID: lab.ID})
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, 0, store.labs[lab.ID].Enrolled)
	})

	t.Run("already assigned", func(t *testing.T) {
		store := newMemStore()
		theory := store.addTheory(courseDB)
		labA := store.addLab(courseDB, 1, 0)
		labB := store.addLab(courseDB, 1, 0)
		e := store.addEnrollment(studentIan, theory.ID)
		svc := newTestService(store)

		_, err := svc.AssignLabGroup(ctx, studentIan, Selection{EnrollmentID: e.ID, LabGroupID: labA.ID})
		require.NoError(t, err)

		_, err = svc.AssignLabGroup(ctx, studentIan, Selection{EnrollmentID: e.ID, LabGroupID: labB.ID})
		assert.ErrorIs(t, err, ErrLabAlreadyAssigned)
		assert.Equal(t, 0, store.labs[labB.ID].Enrolled)
	})

	t.Run("lab group not found", func(t *testing.T) {
		store := newMemStore()
		theory := store.addTheory(courseDB)
		e := store.addEnrollment(studentIan, theory.ID)
		svc := newTestService(store)

		_, err := svc.AssignLabGroup(ctx, studentIan, Selection{EnrollmentID: e.ID, LabGroupID: uuid.NewString()})
		assert.ErrorIs(t, err, group.ErrLabNotFound)
	})

	t.Run("group full", func(t *testing.T) {
		store := newMemStore()
		theory := store.addTheory(courseDB)
		lab := store.addLab(courseDB, 1, 1)
		e := store.addEnrollment(studentIan, theory.ID)
		svc := newTestService(store)

		_, err := svc.AssignLabGroup(ctx, studentIan, Selection{EnrollmentID: e.ID, LabGroupID: lab.ID})
		assert.ErrorIs(t, err, group.ErrGroupFull)
		assert.Equal(t, 1, store.labs[lab.ID].Enrolled)
		assert.Nil(t, store.enrollments[e.ID].LabGroupID)
	})

	t.Run("course mismatch beats capacity", func(t *testing.T) {
		store := newMemStore()
		theory := store.addTheory(courseDB)
		lab := store.addLab(courseOS, 10, 0)
		e := store.addEnrollment(studentIan, theory.ID)
		svc := newTestService(store)

		_, err := svc.AssignLabGroup(ctx, studentIan, Selection{EnrollmentID: e.ID, LabGroupID: lab.ID})
		assert.ErrorIs(t, err, ErrCourseMismatch)
		assert.Equal(t, 0, store.labs[lab.ID].Enrolled)
	})
}

func TestAssignLabGroupsBulkAllOrNothing(t *testing.T) {
	store := newMemStore()
	theoryA := store.addTheory(courseDB)
	theoryB := store.addTheory(courseOS)
	theoryC := store.addTheory("course-networks")
	labA := store.addLab(courseDB, 5, 0)
	labB := store.addLab(courseOS, 5, 0)
	labC := store.addLab("course-networks", 1, 1) // full
	eA := store.addEnrollment(studentIan, theoryA.ID)
	eB := store.addEnrollment(studentIan, theoryB.ID)
	eC := store.addEnrollment(studentIan, theoryC.ID)
	svc := newTestService(store)

	err := svc.AssignLabGroupsBulk(context.Background(), studentIan, []Selection{
		{EnrollmentID: eA.ID, LabGroupID: labA.ID},
		{EnrollmentID: eB.ID, LabGroupID: labB.ID},
		{EnrollmentID: eC.ID, LabGroupID: labC.ID},
	})
	assert.ErrorIs(t, err, group.ErrGroupFull)

	// The two valid selections rolled back with the failing one.
	assert.Equal(t, 0, store.labs[labA.ID].Enrolled)
	assert.Equal(t, 0, store.labs[labB.ID].Enrolled)
	assert.Nil(t, store.enrollments[eA.ID].LabGroupID)
	assert.Nil(t, store.enrollments[eB.ID].LabGroupID)
	assert.Nil(t, store.enrollments[eC.ID].LabGroupID)
}

func TestAssignLabGroupsBulkSuccess(t *testing.T) {
	store := newMemStore()
	theoryA := store.addTheory(courseDB)
	theoryB := store.addTheory(courseOS)
	labA := store.addLab(courseDB, 5, 0)
	labB := store.addLab(courseOS, 5, 0)
	eA := store.addEnrollment(studentIan, theoryA.ID)
	eB := store.addEnrollment(studentIan, theoryB.ID)
	svc := newTestService(store)

	err := svc.AssignLabGroupsBulk(context.Background(), studentIan, []Selection{
		{EnrollmentID: eA.ID, LabGroupID: labA.ID},
		{EnrollmentID: eB.ID, LabGroupID: labB.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.labs[labA.ID].Enrolled)
	assert.Equal(t, 1, store.labs[labB.ID].Enrolled)
}

func TestConcurrentLastSeatExactlyOneWins(t *testing.T) {
	store := newMemStore()
	theory := store.addTheory(courseDB)
	lab := store.addLab(courseDB, 1, 0)
	eIan := store.addEnrollment(studentIan, theory.ID)
	eMei := store.addEnrollment(studentMei, theory.ID)
	svc := newTestService(store)

	type attempt struct {
		student      string
		enrollmentID string
	}
	attempts := []attempt{
		{studentIan, eIan.ID},
		{studentMei, eMei.ID},
	}

	errs := make([]error, len(attempts))
	var wg sync.WaitGroup
	for i, a := range attempts {
		wg.Add(1)
		go func(i int, a attempt) {
			defer wg.Done()
			_, errs[i] = svc.AssignLabGroup(context.Background(), a.student, Selection{
				EnrollmentID: a.enrollmentID,
				LabGroupID:   lab.ID,
			})
		}(i, a)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, group.ErrGroupFull)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)
	assert.Equal(t, 1, store.labs[lab.ID].Enrolled)
}

func TestWithdrawFromLabGroup(t *testing.T) {
	store := newMemStore()
	theory := store.addTheory(courseDB)
	lab := store.addLab(courseDB, 1, 0)
	e := store.addEnrollment(studentIan, theory.ID)
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.AssignLabGroup(ctx, studentIan, Selection{EnrollmentID: e.ID, LabGroupID: lab.ID})
	require.NoError(t, err)

	_, err = svc.WithdrawFromLabGroup(ctx, studentMei, e.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	withdrawn, err := svc.WithdrawFromLabGroup(ctx, studentIan, e.ID)
	require.NoError(t, err)
	assert.Nil(t, withdrawn.LabGroupID)
	assert.Equal(t, 0, store.labs[lab.ID].Enrolled)

	_, err = svc.WithdrawFromLabGroup(ctx, studentIan, e.ID)
	assert.ErrorIs(t, err, ErrNoLabAssigned)
}

func TestCreateEnrollment(t *testing.T) {
	store := newMemStore()
	theory := store.addTheory(courseDB)
	svc := newTestService(store)
	ctx := context.Background()

	e, err := svc.Create(ctx, CreateRequest{StudentID: studentIan, TheoryGroupID: theory.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Nil(t, e.LabGroupID)

	// One enrollment per student per theory group.
	_, err = svc.Create(ctx, CreateRequest{StudentID: studentIan, TheoryGroupID: theory.ID})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = svc.Create(ctx, CreateRequest{StudentID: studentIan, TheoryGroupID: uuid.NewString()})
	assert.ErrorIs(t, err, group.ErrTheoryNotFound)
}

func TestEntityAssignLabInvariant(t *testing.T) {
	e := &Enrollment{ID: "e1", StudentID: studentIan, TheoryGroupID: "tg1"}

	require.NoError(t, e.AssignLab("lab1"))

	// The entity itself refuses an overwrite, independent of any use case.
	err := e.AssignLab("lab2")
	assert.ErrorIs(t, err, ErrLabAlreadyAssigned)
	assert.Equal(t, "lab1", *e.LabGroupID)

	require.NoError(t, e.ClearLab())
	assert.ErrorIs(t, e.ClearLab(), ErrNoLabAssigned)
}
