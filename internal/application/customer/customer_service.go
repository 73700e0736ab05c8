package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/shared"
)

// Service handles customer profile operations
type Service struct {
	customerRepo customer.Repository
}

// NewService creates a new customer Service
func NewService(customerRepo customer.Repository) *Service {
	return &Service{customerRepo: customerRepo}
}

// Create creates a customer profile. Each user identity holds at most
// one profile.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	existing, err := s.customerRepo.FindByUserID(ctx, req.UserID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer profile already exists for this user")
	}

	c, err := customer.NewCustomer(req.UserID, req.Phone, req.BirthDate, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(c)
	return &resp, nil
}

// GetByID retrieves a customer profile
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(c)
	return &resp, nil
}

// List retrieves customer profiles
func (s *Service) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, *ListMeta, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	page, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]CustomerResponse, len(page.Items))
	for i := range page.Items {
		responses[i] = ToCustomerResponse(&page.Items[i])
	}

	meta := &ListMeta{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	return responses, meta, nil
}

// Update updates a customer profile
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	phone := c.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	birthDate := c.BirthDate
	if req.BirthDate != nil {
		birthDate = req.BirthDate
	}
	address := c.Address
	if req.Address != nil {
		address = *req.Address
	}

	if err := c.Update(phone, birthDate, address); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(c)
	return &resp, nil
}

// Delete deletes a customer profile
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.customerRepo.Delete(ctx, id)
}
