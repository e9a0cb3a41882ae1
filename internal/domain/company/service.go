package company

import (
	"context"
)

type CompanyService interface {
	List(ctx context.Context, req ListCompanyRequest) (ListCompanyResult, error)
	Create(ctx context.Context, req CompanyRequest) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Update(ctx context.Context, id string, req CompanyRequest) (Company, error)
	Delete(ctx context.Context, id string) error
}
