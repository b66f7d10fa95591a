package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cgabhane/author-website/internal/model"
	"github.com/google/uuid"
)

// table is a mutex-guarded map keyed by record id
type table[T any] struct {
	mu   sync.RWMutex
	rows map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) put(id string, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[id] = v
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		out = append(out, v)
	}
	return out
}

// In-memory repositories are used for tests and when no database is
// configured. Records are lost on restart.

type memoryAppointmentRepo struct {
	rows *table[model.Appointment]
}

// NewMemoryAppointmentRepo creates an in-memory appointment repository
func NewMemoryAppointmentRepo() AppointmentRepo {
	return &memoryAppointmentRepo{rows: newTable[model.Appointment]()}
}

func (r *memoryAppointmentRepo) Create(_ context.Context, appt *model.Appointment) error {
	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now().UTC()
	}
	r.rows.put(appt.ID, *appt)
	return nil
}

func (r *memoryAppointmentRepo) GetByID(_ context.Context, id string) (*model.Appointment, error) {
	appt, ok := r.rows.get(id)
	if !ok {
		return nil, nil
	}
	return &appt, nil
}

func (r *memoryAppointmentRepo) List(_ context.Context) ([]*model.Appointment, error) {
	rows := r.rows.all()
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	out := make([]*model.Appointment, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

type memorySubscriberRepo struct {
	mu      sync.Mutex
	rows    *table[model.Subscriber]
	byEmail map[string]string
}

// NewMemorySubscriberRepo creates an in-memory subscriber repository
func NewMemorySubscriberRepo() SubscriberRepo {
	return &memorySubscriberRepo{
		rows:    newTable[model.Subscriber](),
		byEmail: make(map[string]string),
	}
}

func (r *memorySubscriberRepo) Create(_ context.Context, sub *model.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[sub.Email]; exists {
		return ErrDuplicateEmail
	}
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.SubscribedAt.IsZero() {
		sub.SubscribedAt = time.Now().UTC()
	}
	r.byEmail[sub.Email] = sub.ID
	r.rows.put(sub.ID, *sub)
	return nil
}

func (r *memorySubscriberRepo) GetByEmail(_ context.Context, email string) (*model.Subscriber, error) {
	r.mu.Lock()
	id, ok := r.byEmail[email]
	r.mu.Unlock()
	if !ok {
		return nil, nil
	}
	sub, ok := r.rows.get(id)
	if !ok {
		return nil, nil
	}
	return &sub, nil
}

func (r *memorySubscriberRepo) List(_ context.Context) ([]*model.Subscriber, error) {
	rows := r.rows.all()
	sort.Slice(rows, func(i, j int) bool { return rows[i].SubscribedAt.After(rows[j].SubscribedAt) })
	out := make([]*model.Subscriber, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (r *memorySubscriberRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byEmail)), nil
}

type memoryAssessmentRepo struct {
	rows *table[model.AssessmentRecord]
}

// NewMemoryAssessmentRepo creates an in-memory assessment repository
func NewMemoryAssessmentRepo() AssessmentRepo {
	return &memoryAssessmentRepo{rows: newTable[model.AssessmentRecord]()}
}

func (r *memoryAssessmentRepo) Create(_ context.Context, rec *model.AssessmentRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	r.rows.put(rec.ID, *rec)
	return nil
}

func (r *memoryAssessmentRepo) GetByID(_ context.Context, id string) (*model.AssessmentRecord, error) {
	rec, ok := r.rows.get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *memoryAssessmentRepo) List(_ context.Context) ([]*model.AssessmentRecord, error) {
	rows := r.rows.all()
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	out := make([]*model.AssessmentRecord, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}
