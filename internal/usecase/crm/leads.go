package crm

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/stylehub/barber-api/internal/audit"
	domain "github.com/stylehub/barber-api/internal/domain/crm"
	schedule "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

// Service is the lead pipeline: capture, qualify, convert. Conversion
// creates a registered user and claims the guest's appointment history.
type Service struct {
	repo         domain.Repository
	appointments schedule.Repository
	audit        *audit.Dispatcher
}

func NewService(
	repo domain.Repository,
	appointments schedule.Repository,
	audit *audit.Dispatcher,
) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		audit:        audit,
	}
}

func (s *Service) ListLeads(ctx context.Context) ([]models.Lead, error) {
	return s.repo.ListLeads(ctx)
}

func (s *Service) CreateLead(ctx context.Context, lead *models.Lead) error {
	if strings.TrimSpace(lead.Name) == "" {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	if lead.Status == "" {
		lead.Status = models.LeadNew
	}
	return s.repo.CreateLead(ctx, lead)
}

func (s *Service) UpdateLeadStatus(ctx context.Context, id uint, status string) (*models.Lead, error) {
	switch status {
	case models.LeadNew, models.LeadContacted, models.LeadQualified, models.LeadConverted:
	default:
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	lead, err := s.repo.GetLead(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	lead.Status = status
	if err := s.repo.UpdateLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *Service) ConvertLeadToOpportunity(ctx context.Context, leadID, serviceTypeID uint) (*models.Opportunity, error) {
	lead, err := s.repo.GetLead(ctx, leadID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	svc, err := s.repo.GetServiceType(ctx, serviceTypeID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	lead.Status = models.LeadQualified
	if err := s.repo.UpdateLead(ctx, lead); err != nil {
		return nil, err
	}

	opp := &models.Opportunity{
		LeadID:         lead.ID,
		ServiceTypeID:  &svc.ID,
		Status:         models.OpportunityPending,
		EstimatedValue: svc.Price,
	}
	if err := s.repo.CreateOpportunity(ctx, opp); err != nil {
		return nil, err
	}
	return opp, nil
}

func (s *Service) UpdateOpportunity(ctx context.Context, id uint, status, notes string) (*models.Opportunity, error) {
	opp, err := s.repo.GetOpportunity(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	opp.Status = status
	opp.FollowUpNotes = notes
	if err := s.repo.UpdateOpportunity(ctx, opp); err != nil {
		return nil, err
	}
	return opp, nil
}

func (s *Service) ListOpportunities(ctx context.Context) ([]models.Opportunity, error) {
	return s.repo.ListOpportunities(ctx)
}

// ConvertLeadToClient registers the lead as a user and links every
// guest appointment booked under the same email. The appointments'
// temporal fields stay untouched.
func (s *Service) ConvertLeadToClient(
	ctx context.Context,
	leadID uint,
	password string,
	actorID *uint,
) (*models.User, error) {

	lead, err := s.repo.GetLead(ctx, leadID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	email := strings.ToLower(strings.TrimSpace(lead.Email))
	if email == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	exists, err := s.repo.UserExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         lead.Name,
		Email:        email,
		Phone:        lead.Phone,
		Role:         models.RoleClient,
		PasswordHash: string(hashed),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	lead.Status = models.LeadConverted
	if err := s.repo.UpdateLead(ctx, lead); err != nil {
		return nil, err
	}

	guestAppointments, err := s.appointments.ListGuestAppointmentsByEmail(ctx, email)
	if err == nil {
		for i := range guestAppointments {
			ap := &guestAppointments[i]
			if err := schedule.LinkClient(ap, user.ID); err != nil {
				continue
			}
			_ = s.appointments.UpdateAppointment(ctx, ap)
		}
	}

	s.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "lead_converted",
		Entity:   "lead",
		EntityID: &lead.ID,
	})

	return user, nil
}
