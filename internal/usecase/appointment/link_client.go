package appointment

import (
	"context"

	"github.com/stylehub/barber-api/internal/audit"
	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

// LinkGuestToClient attaches a registered user to a guest appointment
// (CRM conversion). Temporal fields are never touched.
type LinkGuestToClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewLinkGuestToClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *LinkGuestToClient {
	return &LinkGuestToClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *LinkGuestToClient) Execute(
	ctx context.Context,
	appointmentID uint,
	userID uint,
	actorID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if _, err := uc.repo.GetUser(ctx, userID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := domain.LinkClient(ap, userID); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_client_linked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
