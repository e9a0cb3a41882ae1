package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/company-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/company-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	uniqueViolationCode = "23505"
	stringTooLongCode   = "22001"

	companyEmailConstraint = "companies_email_key"
	companyCodeConstraint  = "companies_code_key"

	companyColumns = "id, name, email, code, phone_number, address, created_at"
)

// companySortColumns maps sort fields to SQL identifiers. Nothing outside
// this map ever reaches ORDER BY.
var companySortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"code":       "code",
	"created_at": "created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type companyRepositoryImpl struct {
	db database.Querier
}

func NewCompanyRepository(db database.Querier) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	found, err := scanCompany(c.db.QueryRow(ctx, query, id))
	if err != nil {
		return company.Company{}, translateCompanyError("get company by id", err)
	}
	return found, nil
}

// Count implements company.CompanyRepository.
func (c *companyRepositoryImpl) Count(ctx context.Context, filter company.CompanyFilter) (int64, error) {
	where, args := searchCondition(filter.Search)
	query := "SELECT COUNT(*) FROM companies" + where

	var total int64
	if err := c.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, translateCompanyError("count companies", err)
	}
	return total, nil
}

// List implements company.CompanyRepository.
func (c *companyRepositoryImpl) List(ctx context.Context, filter company.CompanyFilter) ([]company.Company, error) {
	orderBy, err := orderByClause(filter.Sort)
	if err != nil {
		return nil, err
	}

	where, args := searchCondition(filter.Search)
	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(
		"SELECT %s FROM companies%s ORDER BY %s LIMIT $%d OFFSET $%d",
		companyColumns, where, orderBy, len(args)-1, len(args),
	)

	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateCompanyError("list companies", err)
	}
	defer rows.Close()

	companies := make([]company.Company, 0, filter.Limit)
	for rows.Next() {
		found, err := scanCompany(rows)
		if err != nil {
			return nil, translateCompanyError("scan company", err)
		}
		companies = append(companies, found)
	}

	if err := rows.Err(); err != nil {
		return nil, translateCompanyError("list companies", err)
	}

	return companies, nil
}

// ExistsByEmail implements company.CompanyRepository.
func (c *companyRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	return c.exists(ctx, "email", email, excludeID)
}

// ExistsByCode implements company.CompanyRepository.
func (c *companyRepositoryImpl) ExistsByCode(ctx context.Context, code string, excludeID *string) (bool, error) {
	return c.exists(ctx, "code", code, excludeID)
}

// exists is only called with the literal column names above.
func (c *companyRepositoryImpl) exists(ctx context.Context, column, value string, excludeID *string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM companies WHERE %s = $1)`, column)
	args := []interface{}{value}
	if excludeID != nil {
		query = fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM companies WHERE %s = $1 AND id <> $2)`, column)
		args = append(args, *excludeID)
	}

	var exists bool
	if err := c.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, translateCompanyError("check company "+column, err)
	}
	return exists, nil
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	query := `
		INSERT INTO companies (id, name, email, code, phone_number, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + companyColumns

	created, err := scanCompany(c.db.QueryRow(ctx, query,
		newCompany.ID,
		newCompany.Name,
		newCompany.Email,
		newCompany.Code,
		newCompany.PhoneNumber,
		newCompany.Address,
		newCompany.CreatedAt,
	))
	if err != nil {
		return company.Company{}, translateCompanyError("create company", err)
	}
	return created, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, updated company.Company) (company.Company, error) {
	query := `
		UPDATE companies
		SET name = $1, email = $2, code = $3, phone_number = $4, address = $5
		WHERE id = $6
		RETURNING ` + companyColumns

	result, err := scanCompany(c.db.QueryRow(ctx, query,
		updated.Name,
		updated.Email,
		updated.Code,
		updated.PhoneNumber,
		updated.Address,
		updated.ID,
	))
	if err != nil {
		return company.Company{}, translateCompanyError("update company", err)
	}
	return result, nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, id string) error {
	if _, err := c.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id); err != nil {
		return translateCompanyError("delete company", err)
	}
	return nil
}

// searchCondition matches name or code case-insensitively. The term is bound
// as $1 with LIKE wildcards escaped.
func searchCondition(search string) (string, []interface{}) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", nil
	}
	pattern := "%" + likeEscaper.Replace(search) + "%"
	return " WHERE (name ILIKE $1 OR code ILIKE $1)", []interface{}{pattern}
}

func orderByClause(fields []company.SortField) (string, error) {
	if len(fields) == 0 {
		return "created_at ASC, id ASC", nil
	}

	parts := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		column, ok := companySortColumns[f.Column]
		if !ok {
			return "", fmt.Errorf("%w: %q", company.ErrInvalidSortField, f.Column)
		}
		direction := "ASC"
		if f.Desc {
			direction = "DESC"
		}
		parts = append(parts, column+" "+direction)
	}
	parts = append(parts, "id ASC")
	return strings.Join(parts, ", "), nil
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var (
		found       company.Company
		phoneNumber pgtype.Text
		address     pgtype.Text
		createdAt   time.Time
	)

	if err := row.Scan(&found.ID, &found.Name, &found.Email, &found.Code, &phoneNumber, &address, &createdAt); err != nil {
		return company.Company{}, err
	}

	found.PhoneNumber = textPtr(phoneNumber)
	found.Address = textPtr(address)
	found.CreatedAt = createdAt.UTC()
	return found, nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// translateCompanyError maps driver errors to domain errors. Anything it does
// not recognize is tagged as a storage failure.
func translateCompanyError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return company.ErrCompanyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == companyEmailConstraint:
			return company.ErrEmailAlreadyExists
		case pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == companyCodeConstraint:
			return company.ErrCodeAlreadyExists
		case pgErr.Code == stringTooLongCode:
			return company.ErrValueTooLong
		}
	}

	return fmt.Errorf("%w: %s: %w", database.ErrStorage, op, err)
}
