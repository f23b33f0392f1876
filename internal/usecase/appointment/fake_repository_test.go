package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

// fakeScheduleRepo mirrors the store's contract in memory, including
// the conflict check on create and move.
type fakeScheduleRepo struct {
	barbers      map[uint]*models.Barber
	serviceTypes map[uint]*models.ServiceType
	users        map[uint]*models.User
	workingHours map[uint]map[int]*models.WorkingHours

	appointments []models.Appointment
	nextID       uint
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		barbers:      make(map[uint]*models.Barber),
		serviceTypes: make(map[uint]*models.ServiceType),
		users:        make(map[uint]*models.User),
		workingHours: make(map[uint]map[int]*models.WorkingHours),
		nextID:       1,
	}
}

func (f *fakeScheduleRepo) addBarber(b models.Barber) {
	f.barbers[b.ID] = &b
}

func (f *fakeScheduleRepo) addServiceType(s models.ServiceType) {
	f.serviceTypes[s.ID] = &s
}

func (f *fakeScheduleRepo) addUser(u models.User) {
	f.users[u.ID] = &u
}

func (f *fakeScheduleRepo) setWorkingHours(barberID uint, wh models.WorkingHours) {
	if f.workingHours[barberID] == nil {
		f.workingHours[barberID] = make(map[int]*models.WorkingHours)
	}
	for wd := 0; wd < 7; wd++ {
		cp := wh
		cp.BarberID = barberID
		cp.Weekday = wd
		f.workingHours[barberID][wd] = &cp
	}
}

func (f *fakeScheduleRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return b, nil
}

func (f *fakeScheduleRepo) GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error) {
	s, ok := f.serviceTypes[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return s, nil
}

func (f *fakeScheduleRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return u, nil
}

func (f *fakeScheduleRepo) GetWorkingHours(ctx context.Context, barberID uint, weekday int) (*models.WorkingHours, error) {
	wh, ok := f.workingHours[barberID][weekday]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return wh, nil
}

func (f *fakeScheduleRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := f.AssertNoTimeConflict(ctx, ap.BarberID, ap.StartTime, ap.EndTime, 0); err != nil {
		return err
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeScheduleRepo) MoveAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := f.AssertNoTimeConflict(ctx, ap.BarberID, ap.StartTime, ap.EndTime, ap.ID); err != nil {
		return err
	}
	return f.UpdateAppointment(ctx, ap)
}

func (f *fakeScheduleRepo) AssertNoTimeConflict(ctx context.Context, barberID uint, start, end time.Time, excludeID uint) error {
	for i := range f.appointments {
		ap := &f.appointments[i]
		if ap.BarberID != barberID {
			continue
		}
		if ap.ID == excludeID {
			continue
		}
		if !domain.Blocking(domain.Status(ap.Status)) {
			continue
		}
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return httperr.ErrBusiness(httperr.CodeConflict)
		}
	}
	return nil
}

func (f *fakeScheduleRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			cp := f.appointments[i]
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeScheduleRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound)
}

func (f *fakeScheduleRepo) ListAppointmentsForDay(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if !domain.Blocking(domain.Status(ap.Status)) {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListAppointmentsForPeriod(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(end) && !ap.StartTime.Before(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListAppointmentsByUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID != nil && *ap.UserID == userID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListGuestAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == nil && strings.EqualFold(ap.GuestEmail, email) {
			out = append(out, ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeScheduleRepo)(nil)
