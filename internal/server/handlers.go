package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"ponto/internal/api"
	"ponto/internal/errors"
	"ponto/internal/export"
	"ponto/internal/logging"
)

// MaxEntryBodyBytes caps the size of a submitted entry.
const MaxEntryBodyBytes = 64 << 10

// Handler serves the timesheet API over HTTP.
type Handler struct {
	api          api.TimesheetAPI
	csvFilename  string
	xlsxFilename string
}

// NewHandler creates a handler. Empty filenames fall back to the defaults.
func NewHandler(a api.TimesheetAPI, csvFilename, xlsxFilename string) *Handler {
	if csvFilename == "" {
		csvFilename = export.DefaultCSVFilename
	}
	if xlsxFilename == "" {
		xlsxFilename = export.DefaultXLSXFilename
	}
	return &Handler{api: a, csvFilename: csvFilename, xlsxFilename: xlsxFilename}
}

// CreateEntry saves a form submission.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxEntryBodyBytes)

	var req api.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	saved, err := h.api.SaveEntry(r.Context(), req)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSavedEntryDTO(saved))
}

// ListEntries returns every row in insertion order.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	rows, err := h.api.ListEntries(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}

	dtos := make([]EntryDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toEntryDTO(row))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// WeeklySummary returns one line per employee.
func (h *Handler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.api.WeeklySummary(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toWeeklyDTOs(summaries))
}

// ExportCSV downloads the persisted timesheet as CSV.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.attachment(w, "text/csv; charset=utf-8", h.csvFilename, func(out io.Writer) error {
		return h.api.ExportCSV(r.Context(), out)
	})
}

// ExportXLSX downloads the persisted timesheet as an XLSX workbook.
func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.attachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", h.xlsxFilename, func(out io.Writer) error {
		return h.api.ExportXLSX(r.Context(), out)
	})
}

// attachment buffers the export so a failure can still become a JSON error.
func (h *Handler) attachment(w http.ResponseWriter, contentType, filename string, write func(io.Writer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Logger().Error("encode response", "status", status, "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeAppError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsErrorType(err, errors.ErrorTypeValidation), errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
		status = http.StatusBadRequest
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		status = http.StatusNotFound
	case errors.IsErrorType(err, errors.ErrorTypeTimeout):
		status = http.StatusGatewayTimeout
	}

	if errors.ShouldLogError(err) {
		logging.Logger().Error("request failed", "err", err)
	}

	resp := ErrorResponse{
		Error: errors.GetUserMessage(err),
		Code:  errors.GetErrorCode(err),
	}
	if appErr, ok := errors.AsAppError(err); ok {
		resp.Details = appErr.Subject
	}
	writeJSON(w, status, resp)
}
