package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	Count(ctx context.Context, filter CompanyFilter) (int64, error)
	List(ctx context.Context, filter CompanyFilter) ([]Company, error)
	// ExistsByEmail ignores the company with excludeID when it is set.
	ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error)
	ExistsByCode(ctx context.Context, code string, excludeID *string) (bool, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	Update(ctx context.Context, updated Company) (Company, error)
	Delete(ctx context.Context, id string) error
}
