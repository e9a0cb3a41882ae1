package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/company-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/company-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{
		companyService: companyService,
	}
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	listReq, err := company.NewListCompanyRequest(r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := c.companyService.List(r.Context(), listReq)
	if err != nil {
		slog.Error("List company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w,
		company.NewCompanyResponses(result.Companies),
		response.NewMeta(result.Page, result.PerPage, result.Total),
	)
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq company.CompanyRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "invalid request format", "")
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := c.companyService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company created", "company_id", created.ID)
	response.Created(w, company.NewCompanyResponse(created))
}

// GetByID implements CompanyHandler.
func (c *CompanyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := company.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := c.companyService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Get company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, company.NewCompanyResponse(found))
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := company.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq company.CompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "invalid request format", "")
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := c.companyService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company updated", "company_id", updated.ID)
	// Update answers 201 like create.
	response.Created(w, company.NewCompanyResponse(updated))
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := company.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := c.companyService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company deleted", "company_id", id)
	response.Success(w, nil)
}
