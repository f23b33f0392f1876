package schedule

import (
	"strings"

	"github.com/stylehub/barber-api/internal/httperr"
)

// Client is the sum type for who an appointment belongs to: a
// registered user id, or a guest identified by name/email/phone.
type Client struct {
	UserID *uint
	Guest  *Guest
}

type Guest struct {
	Name  string
	Email string
	Phone string
}

func RegisteredClient(userID uint) Client {
	return Client{UserID: &userID}
}

func GuestClient(name, email, phone string) Client {
	return Client{Guest: &Guest{Name: name, Email: email, Phone: phone}}
}

// Validate enforces the XOR: exactly one identity, and guests must
// carry at least name and email.
func (c Client) Validate() error {
	hasUser := c.UserID != nil
	hasGuest := c.Guest != nil &&
		(strings.TrimSpace(c.Guest.Name) != "" ||
			strings.TrimSpace(c.Guest.Email) != "" ||
			strings.TrimSpace(c.Guest.Phone) != "")

	if hasUser == hasGuest {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	if hasGuest {
		if strings.TrimSpace(c.Guest.Name) == "" || strings.TrimSpace(c.Guest.Email) == "" {
			return httperr.ErrBusiness(httperr.CodeValidation)
		}
	}

	return nil
}
