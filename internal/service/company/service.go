package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/company-backend-go/internal/domain/company"
	"github.com/google/uuid"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{CompanyRepository: companyRepo}
}

// List implements company.CompanyService.
// Subtle: this method shadows the method (CompanyRepository).List of CompanyServiceImpl.CompanyRepository.
func (c *CompanyServiceImpl) List(ctx context.Context, req company.ListCompanyRequest) (company.ListCompanyResult, error) {
	filter, err := req.Filter()
	if err != nil {
		return company.ListCompanyResult{}, err
	}

	total, err := c.CompanyRepository.Count(ctx, filter)
	if err != nil {
		return company.ListCompanyResult{}, fmt.Errorf("failed to count companies: %w", err)
	}

	companies, err := c.CompanyRepository.List(ctx, filter)
	if err != nil {
		return company.ListCompanyResult{}, fmt.Errorf("failed to list companies: %w", err)
	}

	return company.ListCompanyResult{
		Companies: companies,
		Total:     total,
		Page:      req.Page,
		PerPage:   req.PerPage,
	}, nil
}

// Create implements company.CompanyService.
// Subtle: this method shadows the method (CompanyRepository).Create of CompanyServiceImpl.CompanyRepository.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CompanyRequest) (company.Company, error) {
	if err := req.Validate(); err != nil {
		return company.Company{}, err
	}

	if err := c.ensureUnique(ctx, req, nil); err != nil {
		return company.Company{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to generate company id: %w", err)
	}

	newCompany := company.Company{
		ID:          id.String(),
		Name:        req.Name,
		Email:       req.Email,
		Code:        req.Code,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := c.CompanyRepository.Create(ctx, newCompany)
	if err != nil {
		return company.Company{}, wrapUnlessDomain("failed to create company", err)
	}
	return created, nil
}

// GetByID implements company.CompanyService.
// Subtle: this method shadows the method (CompanyRepository).GetByID of CompanyServiceImpl.CompanyRepository.
func (c *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	found, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.Company{}, wrapUnlessDomain("failed to get company by ID", err)
	}
	return found, nil
}

// Update implements company.CompanyService.
// Subtle: this method shadows the method (CompanyRepository).Update of CompanyServiceImpl.CompanyRepository.
func (c *CompanyServiceImpl) Update(ctx context.Context, id string, req company.CompanyRequest) (company.Company, error) {
	if err := req.Validate(); err != nil {
		return company.Company{}, err
	}

	if err := c.ensureUnique(ctx, req, &id); err != nil {
		return company.Company{}, err
	}

	existing, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.Company{}, wrapUnlessDomain("failed to get company by ID", err)
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Code = req.Code
	existing.PhoneNumber = req.PhoneNumber
	existing.Address = req.Address

	updated, err := c.CompanyRepository.Update(ctx, existing)
	if err != nil {
		return company.Company{}, wrapUnlessDomain("failed to update company", err)
	}
	return updated, nil
}

// Delete implements company.CompanyService.
// Subtle: this method shadows the method (CompanyRepository).Delete of CompanyServiceImpl.CompanyRepository.
func (c *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := c.CompanyRepository.GetByID(ctx, id); err != nil {
		return wrapUnlessDomain("failed to get company by ID", err)
	}

	if err := c.CompanyRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

// ensureUnique checks email before code. excludeID skips the record being
// updated.
func (c *CompanyServiceImpl) ensureUnique(ctx context.Context, req company.CompanyRequest, excludeID *string) error {
	emailExists, err := c.CompanyRepository.ExistsByEmail(ctx, req.Email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check company email: %w", err)
	}
	if emailExists {
		return company.ErrEmailAlreadyExists
	}

	codeExists, err := c.CompanyRepository.ExistsByCode(ctx, req.Code, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check company code: %w", err)
	}
	if codeExists {
		return company.ErrCodeAlreadyExists
	}
	return nil
}

func wrapUnlessDomain(msg string, err error) error {
	switch {
	case errors.Is(err, company.ErrCompanyNotFound),
		errors.Is(err, company.ErrEmailAlreadyExists),
		errors.Is(err, company.ErrCodeAlreadyExists),
		errors.Is(err, company.ErrValueTooLong):
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
