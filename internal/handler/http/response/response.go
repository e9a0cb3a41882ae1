package response

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
)

const successMessage = "success"

type Response struct {
	Message  string      `json:"message"`
	HTTPCode int         `json:"http_code"`
	Data     interface{} `json:"data,omitempty"`
	Meta     *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type Meta struct {
	Page      int   `json:"page"`
	PerPage   int   `json:"per_page"`
	TotalData int64 `json:"total_data"`
	TotalPage int   `json:"total_page"`
}

// NewMeta computes total_page as ceil(total / perPage).
func NewMeta(page, perPage int, total int64) *Meta {
	totalPage := 0
	if perPage > 0 {
		totalPage = int(math.Ceil(float64(total) / float64(perPage)))
	}
	return &Meta{
		Page:      page,
		PerPage:   perPage,
		TotalData: total,
		TotalPage: totalPage,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Message:  successMessage,
		HTTPCode: http.StatusOK,
		Data:     data,
	})
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Message:  successMessage,
		HTTPCode: http.StatusCreated,
		Data:     data,
	})
}

func SuccessWithMeta(w http.ResponseWriter, data interface{}, meta *Meta) {
	writeJSON(w, http.StatusOK, Response{
		Message:  successMessage,
		HTTPCode: http.StatusOK,
		Data:     data,
		Meta:     meta,
	})
}

// Error responses
func Error(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, ErrorResponse{
		Status:  status,
		Message: message,
		Detail:  detail,
	})
}

func BadRequest(w http.ResponseWriter, message, detail string) {
	Error(w, http.StatusBadRequest, message, detail)
}

func Unauthorized(w http.ResponseWriter, message, detail string) {
	Error(w, http.StatusUnauthorized, message, detail)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message, "")
}

func InternalServerError(w http.ResponseWriter, detail string) {
	Error(w, http.StatusInternalServerError, "internal server error", detail)
}
