package customer

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// Customer is a storefront customer profile. It references an external
// user identity one-to-one; identity itself is not stored here.
type Customer struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Phone     string     `gorm:"type:varchar(32);not null"`
	BirthDate *time.Time `gorm:"type:date"`
	Address   string     `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer profile for a user identity
func NewCustomer(userID uuid.UUID, phone string, birthDate *time.Time, address string) (*Customer, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Customer user identity is required")
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Phone:             phone,
		BirthDate:         birthDate,
		Address:           address,
	}, nil
}

// Update updates the customer's contact details
func (c *Customer) Update(phone string, birthDate *time.Time, address string) error {
	if err := validatePhone(phone); err != nil {
		return err
	}

	c.Phone = phone
	c.BirthDate = birthDate
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot be empty")
	}
	if len(phone) > 32 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 32 characters")
	}
	return nil
}
