package model

import (
	"strings"

	"elite-gym-console/internal/domain"
)

// Client is a registered gym member. The payment engine only reads IDs; the
// full record backs the registry screens.
type Client struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	NationalID   string `json:"national_id"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	RegisteredAt Date   `json:"registered_at"`
}

// NewClient validates and constructs a client record.
func NewClient(name, surname, nationalID, phone, email string, registeredAt Date) (*Client, error) {
	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	nationalID = strings.TrimSpace(nationalID)
	if name == "" || surname == "" || nationalID == "" {
		return nil, domain.ErrInvalidArgument
	}
	if registeredAt.IsZero() {
		registeredAt = Today()
	}
	return &Client{
		Name:         name,
		Surname:      surname,
		NationalID:   nationalID,
		Phone:        strings.TrimSpace(phone),
		Email:        strings.TrimSpace(email),
		RegisteredAt: registeredAt,
	}, nil
}
