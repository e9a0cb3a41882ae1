// Package memory holds in-process repository adapters. They follow the same
// contracts as the PostgreSQL adapters, including the uniqueness constraints.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/cmlabs-hris/company-backend-go/internal/domain/company"
)

type CompanyRepository struct {
	mu        sync.RWMutex
	companies map[string]company.Company
}

func NewCompanyRepository(seed ...company.Company) *CompanyRepository {
	r := &CompanyRepository{companies: make(map[string]company.Company, len(seed))}
	for _, c := range seed {
		r.companies[c.ID] = cloneCompany(c)
	}
	return r
}

var _ company.CompanyRepository = (*CompanyRepository)(nil)

// Len reports how many companies are stored.
func (r *CompanyRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.companies)
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	if err := ctx.Err(); err != nil {
		return company.Company{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	found, ok := r.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return cloneCompany(found), nil
}

func (r *CompanyRepository) Count(ctx context.Context, filter company.CompanyFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.matching(filter.Search))), nil
}

func (r *CompanyRepository) List(ctx context.Context, filter company.CompanyFilter) ([]company.Company, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, f := range filter.Sort {
		if _, ok := company.SortableColumns[f.Column]; !ok {
			return nil, fmt.Errorf("%w: %q", company.ErrInvalidSortField, f.Column)
		}
	}

	r.mu.RLock()
	matched := r.matching(filter.Search)
	r.mu.RUnlock()

	slices.SortFunc(matched, func(a, b company.Company) int {
		return compareCompanies(a, b, filter.Sort)
	})

	start := min(max(filter.Offset, 0), len(matched))
	end := min(start+max(filter.Limit, 0), len(matched))
	return matched[start:end], nil
}

func (r *CompanyRepository) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	return r.exists(ctx, func(c company.Company) bool { return c.Email == email }, excludeID)
}

func (r *CompanyRepository) ExistsByCode(ctx context.Context, code string, excludeID *string) (bool, error) {
	return r.exists(ctx, func(c company.Company) bool { return c.Code == code }, excludeID)
}

func (r *CompanyRepository) exists(ctx context.Context, match func(company.Company) bool, excludeID *string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, c := range r.companies {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if match(c) {
			return true, nil
		}
	}
	return false, nil
}

func (r *CompanyRepository) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	if err := ctx.Err(); err != nil {
		return company.Company{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[newCompany.ID]; ok {
		return company.Company{}, fmt.Errorf("company %s already stored", newCompany.ID)
	}
	if err := r.checkUnique(newCompany); err != nil {
		return company.Company{}, err
	}
	r.companies[newCompany.ID] = cloneCompany(newCompany)
	return cloneCompany(newCompany), nil
}

func (r *CompanyRepository) Update(ctx context.Context, updated company.Company) (company.Company, error) {
	if err := ctx.Err(); err != nil {
		return company.Company{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.companies[updated.ID]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	if err := r.checkUnique(updated); err != nil {
		return company.Company{}, err
	}

	current.Name = updated.Name
	current.Email = updated.Email
	current.Code = updated.Code
	current.PhoneNumber = updated.PhoneNumber
	current.Address = updated.Address
	r.companies[updated.ID] = cloneCompany(current)
	return cloneCompany(current), nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.companies, id)
	return nil
}

// checkUnique mirrors the companies_email_key and companies_code_key
// constraints. Callers hold the write lock.
func (r *CompanyRepository) checkUnique(c company.Company) error {
	for id, other := range r.companies {
		if id == c.ID {
			continue
		}
		if other.Email == c.Email {
			return company.ErrEmailAlreadyExists
		}
	}
	for id, other := range r.companies {
		if id != c.ID && other.Code == c.Code {
			return company.ErrCodeAlreadyExists
		}
	}
	return nil
}

// matching returns copies of every company whose name or code contains
// search, ignoring case. Callers hold the read lock.
func (r *CompanyRepository) matching(search string) []company.Company {
	term := strings.ToLower(strings.TrimSpace(search))
	result := make([]company.Company, 0, len(r.companies))
	for _, c := range r.companies {
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Code), term) {
			continue
		}
		result = append(result, cloneCompany(c))
	}
	return result
}

func compareCompanies(a, b company.Company, fields []company.SortField) int {
	if len(fields) == 0 {
		fields = []company.SortField{{Column: "created_at"}}
	}
	for _, f := range fields {
		var n int
		switch f.Column {
		case "name":
			n = cmp.Compare(a.Name, b.Name)
		case "email":
			n = cmp.Compare(a.Email, b.Email)
		case "code":
			n = cmp.Compare(a.Code, b.Code)
		case "created_at":
			n = a.CreatedAt.Compare(b.CreatedAt)
		}
		if f.Desc {
			n = -n
		}
		if n != 0 {
			return n
		}
	}
	return cmp.Compare(a.ID, b.ID)
}

func cloneCompany(c company.Company) company.Company {
	c.PhoneNumber = cloneString(c.PhoneNumber)
	c.Address = cloneString(c.Address)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
