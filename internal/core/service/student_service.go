package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusdesk/portal/internal/core/domain"
	"github.com/campusdesk/portal/internal/core/ports"
)

// StudentService is the student entity store.
type StudentService struct {
	*Collection[domain.Student]
	now func() time.Time
}

var _ ports.StudentService = (*StudentService)(nil)

func NewStudentService(ctx context.Context, store ports.DurableStore, initial []domain.Student, ids IDGenerator, log zerolog.Logger) *StudentService {
	return &StudentService{
		Collection: NewCollection(ctx, store, KeyStudents, initial, ids, log),
		now:        time.Now,
	}
}

// Create stores s under a fresh id. A blank student number is filled in as
// STU<year><3 digits>; numbers are not checked for uniqueness.
func (s *StudentService) Create(ctx context.Context, st domain.Student) domain.Student {
	if st.StudentID == "" {
		st.StudentID = fmt.Sprintf("STU%d%03d", s.now().Year(), rand.IntN(1000))
	}
	return s.Collection.Create(ctx, st)
}

// FindByEmail returns the student whose email matches exactly. When none
// does it falls back to the first student, which is what the student
// dashboard shows; ok is false only for an empty collection.
func (s *StudentService) FindByEmail(email string) (domain.Student, bool) {
	students := s.All()
	if len(students) == 0 {
		return domain.Student{}, false
	}
	for _, st := range students {
		if st.Email == email {
			return st, true
		}
	}
	return students[0], true
}

// Stats computes the lecturer and admin dashboard figures. The average GPA
// is rounded to two decimals.
func (s *StudentService) Stats() ports.StudentStats {
	students := s.All()
	stats := ports.StudentStats{
		Total:  len(students),
		ByYear: make(map[int]int),
	}

	gpas := make([]float64, 0, len(students))
	for _, st := range students {
		switch st.Status {
		case domain.StudentEnrolled:
			stats.Enrolled++
		case domain.StudentGraduated:
			stats.Graduated++
		case domain.StudentSuspended:
			stats.Suspended++
		}
		stats.ByYear[st.Year]++
		gpas = append(gpas, st.GPA)
	}
	stats.AverageGPA = average(gpas, 2)
	return stats
}
