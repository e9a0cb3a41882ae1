package company

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/company-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 1
	MaxPerPage     = 100
)

// SortableColumns is the allow-list for the sort query parameter.
var SortableColumns = map[string]struct{}{
	"name":       {},
	"email":      {},
	"code":       {},
	"created_at": {},
}

type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Code        string    `json:"code"`
	PhoneNumber *string   `json:"phone_number"`
	Address     *string   `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Code:        c.Code,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCompanyResponses(companies []Company) []CompanyResponse {
	result := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		result = append(result, NewCompanyResponse(c))
	}
	return result
}

// CompanyRequest is the body of both create and update.
type CompanyRequest struct {
	Name        string  `json:"name" validate:"notblank,max=255"`
	Email       string  `json:"email" validate:"notblank,max=255"`
	Code        string  `json:"code" validate:"notblank,max=100"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitnil,notblank,max=50"`
	Address     *string `json:"address,omitempty" validate:"omitnil,notblank"`
}

func (r *CompanyRequest) Validate() error {
	return validator.Struct(r)
}

// ParseID normalizes a company id taken from the URL.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}

type ListCompanyRequest struct {
	Page    int    `json:"page" validate:"min=1"`
	PerPage int    `json:"per_page" validate:"min=1,max=100"`
	Search  string `json:"search"`
	Sort    string `json:"sort"`
}

// NewListCompanyRequest reads page, per_page, search and sort from a query
// string, applying defaults for the missing ones.
func NewListCompanyRequest(query url.Values) (ListCompanyRequest, error) {
	req := ListCompanyRequest{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		Search:  strings.TrimSpace(query.Get("search")),
		Sort:    strings.TrimSpace(query.Get("sort")),
	}

	var err error
	if req.Page, err = intParam(query, "page", DefaultPage); err != nil {
		return ListCompanyRequest{}, err
	}
	if req.PerPage, err = intParam(query, "per_page", DefaultPerPage); err != nil {
		return ListCompanyRequest{}, err
	}

	return req, nil
}

func intParam(query url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validator.ValidationErrors{{
			Field:   key,
			Message: key + " must be a positive integer",
		}}
	}
	return n, nil
}

func (r *ListCompanyRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	// Offset must fit in an int.
	if r.Page > math.MaxInt/r.PerPage {
		return validator.ValidationErrors{{
			Field:   "page",
			Message: "page is out of range",
		}}
	}
	if _, err := ParseSort(r.Sort); err != nil {
		return err
	}
	return nil
}

// Offset is always derived from page and per_page.
func (r ListCompanyRequest) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// Filter validates the request and converts it to a repository filter.
func (r ListCompanyRequest) Filter() (CompanyFilter, error) {
	if err := r.Validate(); err != nil {
		return CompanyFilter{}, err
	}
	sortFields, _ := ParseSort(r.Sort)

	return CompanyFilter{
		Search: r.Search,
		Sort:   sortFields,
		Limit:  r.PerPage,
		Offset: r.Offset(),
	}, nil
}

type SortField struct {
	Column string
	Desc   bool
}

// ParseSort accepts a comma separated list of `field`, `-field` or
// `field:asc|desc`. Every field must be in SortableColumns.
func ParseSort(expr string) ([]SortField, error) {
	var fields []SortField
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field := SortField{Column: part}
		if rest, ok := strings.CutPrefix(part, "-"); ok {
			field = SortField{Column: rest, Desc: true}
		} else if column, direction, ok := strings.Cut(part, ":"); ok {
			field.Column = column
			switch strings.ToLower(direction) {
			case "asc":
			case "desc":
				field.Desc = true
			default:
				return nil, invalidSort(fmt.Sprintf("sort direction %q is not supported", direction))
			}
		}

		field.Column = strings.ToLower(strings.TrimSpace(field.Column))
		if _, ok := SortableColumns[field.Column]; !ok {
			return nil, invalidSort(fmt.Sprintf("sort field %q is not allowed", field.Column))
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func invalidSort(msg string) error {
	return validator.ValidationErrors{{Field: "sort", Message: msg}}
}

// CompanyFilter is what repositories receive for counting and listing.
type CompanyFilter struct {
	Search string
	Sort   []SortField
	Limit  int
	Offset int
}

type ListCompanyResult struct {
	Companies []Company
	Total     int64
	Page      int
	PerPage   int
}
