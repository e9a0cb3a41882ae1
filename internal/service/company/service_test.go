package company

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/company-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/company-backend-go/internal/repository/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newCompanyRequest(name, email, code string) company.CompanyRequest {
	return company.CompanyRequest{Name: name, Email: email, Code: code}
}

func setupCompanyService(t *testing.T, seed ...company.Company) (company.CompanyService, *memory.CompanyRepository) {
	t.Helper()
	repo := memory.NewCompanyRepository(seed...)
	return NewCompanyService(repo), repo
}

// failingCountRepo lists normally but cannot count.
type failingCountRepo struct {
	*memory.CompanyRepository
}

func (failingCountRepo) Count(context.Context, company.CompanyFilter) (int64, error) {
	return 0, fmt.Errorf("%w: connection reset", database.ErrStorage)
}

// ===== CREATE =====

func TestCompanyService_Create_Success(t *testing.T) {
	svc, repo := setupCompanyService(t)
	ctx := context.Background()

	before := time.Now().UTC().Truncate(time.Microsecond)
	req := newCompanyRequest("Acme", "hello@acme.io", "ACM")
	req.PhoneNumber = strPtr("0812")

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	parsed, err := uuid.Parse(created.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.False(t, created.CreatedAt.Before(before))
	assert.Equal(t, "Acme", created.Name)
	assert.Equal(t, "0812", *created.PhoneNumber)
	assert.Nil(t, created.Address)
	assert.Equal(t, 1, repo.Len())
}

func TestCompanyService_Create_RoundTrip(t *testing.T) {
	svc, _ := setupCompanyService(t)
	ctx := context.Background()

	req := newCompanyRequest("Acme", "hello@acme.io", "ACM")
	req.Address = strPtr("Jl. Merdeka 1")

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestCompanyService_Create_EmailExists(t *testing.T) {
	svc, repo := setupCompanyService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, newCompanyRequest("Acme", "hello@acme.io", "ACM"))
	require.NoError(t, err)

	// Fresh code, taken email.
	_, err = svc.Create(ctx, newCompanyRequest("Other", "hello@acme.io", "OTH"))
	assert.ErrorIs(t, err, company.ErrEmailAlreadyExists)

	// Both taken: email wins.
	_, err = svc.Create(ctx, newCompanyRequest("Other", "hello@acme.io", "ACM"))
	assert.ErrorIs(t, err, company.ErrEmailAlreadyExists)

	assert.Equal(t, 1, repo.Len())
}

func TestCompanyService_Create_CodeExists(t *testing.T) {
	svc, _ := setupCompanyService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, newCompanyRequest("Acme", "hello@acme.io", "ACM"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, newCompanyRequest("Other", "other@acme.io", "ACM"))
	assert.ErrorIs(t, err, company.ErrCodeAlreadyExists)
}

func TestCompanyService_Create_Validation(t *testing.T) {
	svc, repo := setupCompanyService(t)

	req := newCompanyRequest("Acme", "", "ACM")
	_, err := svc.Create(context.Background(), req)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "email", verrs[0].Field)
	assert.Equal(t, 0, repo.Len())
}

// ===== UPDATE =====

func TestCompanyService_Update_Success(t *testing.T) {
	svc, _ := setupCompanyService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newCompanyRequest("Acme", "hello@acme.io", "ACM"))
	require.NoError(t, err)

	// Unchanged email and code belong to the record itself.
	req := newCompanyRequest("Acme Renamed", "hello@acme.io", "ACM")
	req.Address = strPtr("Jl. Sudirman 2")

	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Acme Renamed", updated.Name)
	assert.Equal(t, "Jl. Sudirman 2", *updated.Address)
}

func TestCompanyService_Update_EmailTakenByOther(t *testing.T) {
	svc, _ := setupCompanyService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, newCompanyRequest("Acme", "hello@acme.io", "ACM"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, newCompanyRequest("Globex", "hello@globex.io", "GLX"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.ID, newCompanyRequest("Globex", first.Email, "GLX"))
	assert.ErrorIs(t, err, company.ErrEmailAlreadyExists)

	_, err = svc.Update(ctx, second.ID, newCompanyRequest("Globex", second.Email, first.Code))
	assert.ErrorIs(t, err, company.ErrCodeAlreadyExists)
}

func TestCompanyService_Update_NotFound(t *testing.T) {
	svc, _ := setupCompanyService(t)

	_, err := svc.Update(context.Background(), uuid.NewString(), newCompanyRequest("Acme", "hello@acme.io", "ACM"))
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestCompanyService_Update_UniquenessBeforeExistence(t *testing.T) {
	svc, _ := setupCompanyService(t)
	ctx := context.Background()

	existing, err := svc.Create(ctx, newCompanyRequest("Acme", "hello@acme.io", "ACM"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, uuid.NewString(), newCompanyRequest("Ghost", existing.Email, "GHO"))
	assert.ErrorIs(t, err, company.ErrEmailAlreadyExists)
}

// ===== DELETE =====

func TestCompanyService_Delete(t *testing.T) {
	svc, repo := setupCompanyService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, newCompanyRequest("Acme", "hello@acme.io", "ACM"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, 0, repo.Len())

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestCompanyService_Delete_NotFound(t *testing.T) {
	svc, repo := setupCompanyService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, newCompanyRequest("Acme", "hello@acme.io", "ACM"))
	require.NoError(t, err)

	err = svc.Delete(ctx, uuid.NewString())
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	assert.Equal(t, 1, repo.Len())
}

// ===== LIST =====

func seedCompanies(n int) []company.Company {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := make([]company.Company, 0, n)
	for i := 1; i <= n; i++ {
		seed = append(seed, company.Company{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("Company %02d", i),
			Email:     fmt.Sprintf("company%02d@example.com", i),
			Code:      fmt.Sprintf("C%02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return seed
}

func TestCompanyService_List_SecondPage(t *testing.T) {
	svc, _ := setupCompanyService(t, seedCompanies(25)...)

	result, err := svc.List(context.Background(), company.ListCompanyRequest{Page: 2, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.PerPage)
	require.Len(t, result.Companies, 10)
	assert.Equal(t, "Company 11", result.Companies[0].Name)
	assert.Equal(t, "Company 20", result.Companies[9].Name)
}

func TestCompanyService_List_Search(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := setupCompanyService(t,
		company.Company{ID: uuid.NewString(), Name: "ACME Corp", Email: "a@x.io", Code: "X1", CreatedAt: base},
		company.Company{ID: uuid.NewString(), Name: "Globex", Email: "b@x.io", Code: "AcMe-2", CreatedAt: base.Add(time.Hour)},
		company.Company{ID: uuid.NewString(), Name: "Initech", Email: "c@x.io", Code: "I3", CreatedAt: base.Add(2 * time.Hour)},
	)

	result, err := svc.List(context.Background(), company.ListCompanyRequest{Page: 1, PerPage: 10, Search: "acme"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Companies, 2)
	for _, c := range result.Companies {
		assert.NotEqual(t, "Initech", c.Name)
	}
}

func TestCompanyService_List_InvalidSort(t *testing.T) {
	svc, _ := setupCompanyService(t, seedCompanies(2)...)

	_, err := svc.List(context.Background(), company.ListCompanyRequest{Page: 1, PerPage: 10, Sort: "name; DROP TABLE companies"})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "sort", verrs[0].Field)
}

func TestCompanyService_List_CountFailureSurfaced(t *testing.T) {
	repo := failingCountRepo{memory.NewCompanyRepository(seedCompanies(3)...)}
	svc := NewCompanyService(repo)

	_, err := svc.List(context.Background(), company.ListCompanyRequest{Page: 1, PerPage: 10})
	assert.ErrorIs(t, err, database.ErrStorage)
}
