package testfixtures

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Profiles is an in-memory profile store.
type Profiles struct {
	mu       sync.Mutex
	items    map[uuid.UUID]*domain.Profile
	Err      error
	Failures int // GetByID fails with ErrProfileNotFound this many times before succeeding
	Gets     int
}

// NewProfiles seeds the store with the given profiles.
func NewProfiles(items ...*domain.Profile) *Profiles {
	p := &Profiles{items: make(map[uuid.UUID]*domain.Profile)}
	for _, item := range items {
		p.items[item.ID] = item
	}
	return p
}

func (p *Profiles) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Gets++
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Failures > 0 {
		p.Failures--
		return nil, profile.ErrProfileNotFound
	}
	item, ok := p.items[id]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	cp := *item
	return &cp, nil
}

func (p *Profiles) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return false, p.Err
	}
	_, ok := p.items[id]
	return ok, nil
}

func (p *Profiles) CreateIfMissing(ctx context.Context, item *domain.Profile) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return false, p.Err
	}
	if _, ok := p.items[item.ID]; ok {
		return false, nil
	}
	for _, existing := range p.items {
		if existing.Email == item.Email {
			return false, profile.ErrEmailTaken
		}
	}
	cp := *item
	p.items[item.ID] = &cp
	return true, nil
}

func (p *Profiles) UpdateContact(ctx context.Context, id uuid.UUID, update domain.ContactUpdate, updatedAt time.Time) (*domain.Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	item, ok := p.items[id]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	item.FullName = update.FullName
	item.Phone = update.Phone
	item.UpdatedAt = updatedAt
	cp := *item
	return &cp, nil
}

func (p *Profiles) ListCustomers(ctx context.Context) ([]*domain.Profile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	out := make([]*domain.Profile, 0, len(p.items))
	for _, item := range p.items {
		if item.IsAdmin {
			continue
		}
		cp := *item
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (p *Profiles) CountCustomers(ctx context.Context) (int, error) {
	list, err := p.ListCustomers(ctx)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// Catalog is an in-memory service catalog.
type Catalog struct {
	items []*domain.Service
	Err   error
}

// NewCatalog seeds the catalog.
func NewCatalog(items ...*domain.Service) *Catalog {
	return &Catalog{items: items}
}

func (c *Catalog) ListActive(ctx context.Context) ([]*domain.Service, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	out := make([]*domain.Service, 0, len(c.items))
	for _, s := range c.items {
		if s.Active {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (c *Catalog) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	for _, s := range c.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, catalog.ErrServiceNotFound
}

// Appointments is an in-memory appointment store that enforces the
// one-scheduled-appointment-per-slot rule the way the partial unique index does.
type Appointments struct {
	mu       sync.Mutex
	items    []*domain.Appointment
	services map[uuid.UUID]*domain.Service
	profiles *Profiles
	Err      error

	// BeforeInsert runs right before the conditional insert; tests use it to
	// book the slot from "another request" after the pre-check passed.
	BeforeInsert func()
}

// NewAppointments creates an empty store. Services and profiles are used for joins.
func NewAppointments(profiles *Profiles, services ...*domain.Service) *Appointments {
	a := &Appointments{services: make(map[uuid.UUID]*domain.Service), profiles: profiles}
	for _, s := range services {
		a.services[s.ID] = s
	}
	return a
}

// Seed inserts an appointment without any checks and returns it.
func (a *Appointments) Seed(item *domain.Appointment) *domain.Appointment {
	a.mu.Lock()
	defer a.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	a.items = append(a.items, item)
	return item
}

// All returns a snapshot of stored appointments.
func (a *Appointments) All() []domain.Appointment {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Appointment, 0, len(a.items))
	for _, item := range a.items {
		out = append(out, *item)
	}
	return out
}

func (a *Appointments) FindScheduledAt(ctx context.Context, date time.Time, at types.TimeString) ([]uuid.UUID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	ids := make([]uuid.UUID, 0)
	for _, item := range a.items {
		if item.IsScheduled() && sameSlot(item, date, at) {
			ids = append(ids, item.ID)
		}
	}
	return ids, nil
}

func (a *Appointments) ListScheduledTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	out := make([]types.TimeString, 0)
	for _, item := range a.items {
		if item.IsScheduled() && item.Date.Format(domain.DateFormat) == date.Format(domain.DateFormat) {
			out = append(out, item.Time)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IsBefore(out[j]) })
	return out, nil
}

func (a *Appointments) CreateIfSlotFree(ctx context.Context, item *domain.Appointment) (*domain.Appointment, error) {
	if a.BeforeInsert != nil {
		a.BeforeInsert()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	if _, ok := a.services[item.ServiceID]; !ok {
		return nil, appointment.ErrInvalidReference
	}
	if item.Status == domain.StatusScheduled {
		for _, existing := range a.items {
			if existing.IsScheduled() && sameSlot(existing, item.Date, item.Time) {
				return nil, appointment.ErrSlotTaken
			}
		}
	}

	cp := *item
	cp.ID = uuid.New()
	cp.CreatedAt = ReferenceTime()
	cp.UpdatedAt = cp.CreatedAt
	a.items = append(a.items, &cp)
	out := cp
	return &out, nil
}

func (a *Appointments) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	for _, item := range a.items {
		if item.ID == id {
			cp := *item
			return &cp, nil
		}
	}
	return nil, appointment.ErrAppointmentNotFound
}

func (a *Appointments) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.AppointmentDetails, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	out := make([]*domain.AppointmentDetails, 0)
	for _, item := range a.items {
		if item.UserID == userID {
			out = append(out, a.details(item, false))
		}
	}
	sort.Slice(out, func(i, j int) bool { return before(out[i], out[j]) })
	return out, nil
}

func (a *Appointments) ListAll(ctx context.Context) ([]*domain.AppointmentDetails, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	out := make([]*domain.AppointmentDetails, 0, len(a.items))
	for _, item := range a.items {
		out = append(out, a.details(item, true))
	}
	sort.Slice(out, func(i, j int) bool { return before(out[j], out[i]) })
	return out, nil
}

func (a *Appointments) ListStatuses(ctx context.Context) ([]domain.AppointmentStatus, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return nil, a.Err
	}
	out := make([]domain.AppointmentStatus, 0, len(a.items))
	for _, item := range a.items {
		out = append(out, item.Status)
	}
	return out, nil
}

func (a *Appointments) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus, updatedAt time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Err != nil {
		return a.Err
	}

	var target *domain.Appointment
	for _, item := range a.items {
		if item.ID == id {
			target = item
		}
	}
	if target == nil {
		return appointment.ErrAppointmentNotFound
	}

	if status == domain.StatusScheduled {
		for _, other := range a.items {
			if other.ID != id && other.IsScheduled() && sameSlot(other, target.Date, target.Time) {
				return appointment.ErrSlotTaken
			}
		}
	}

	target.Status = status
	target.UpdatedAt = updatedAt
	return nil
}

func (a *Appointments) details(item *domain.Appointment, withCustomer bool) *domain.AppointmentDetails {
	d := &domain.AppointmentDetails{Appointment: *item}
	if s, ok := a.services[item.ServiceID]; ok {
		d.Service = domain.ServiceSummary{Name: s.Name, Duration: s.Duration, Price: s.Price}
	}
	if withCustomer && a.profiles != nil {
		a.profiles.mu.Lock()
		if p, ok := a.profiles.items[item.UserID]; ok {
			d.Customer = &domain.CustomerSummary{FullName: p.FullName, Email: p.Email, Phone: p.Phone}
		}
		a.profiles.mu.Unlock()
	}
	return d
}

func sameSlot(item *domain.Appointment, date time.Time, at types.TimeString) bool {
	return item.Date.Format(domain.DateFormat) == date.Format(domain.DateFormat) && item.Time == at
}

func before(x, y *domain.AppointmentDetails) bool {
	if !x.Date.Equal(y.Date) {
		return x.Date.Before(y.Date)
	}
	return x.Time.IsBefore(y.Time)
}
