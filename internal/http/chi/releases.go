package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/release-notify/errdefs"
	"github.com/marcelsud/release-notify/history"
	"github.com/marcelsud/release-notify/release"
)

/* HTTP layer DTOs for the release API
 * Separate from domain entities to avoid leaking internal structure
 */

type releaseRequest struct {
	Version  string `json:"version"`
	Released bool   `json:"released"`
}

type reportResponse struct {
	ID         string `json:"id"`
	Version    string `json:"version"`
	Released   bool   `json:"released"`
	Outcome    string `json:"outcome"`
	StatusCode int    `json:"status_code,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type deliveryResponse struct {
	ID         string          `json:"id"`
	Version    string          `json:"version"`
	Released   bool            `json:"released"`
	Outcome    string          `json:"outcome"`
	StatusCode int             `json:"status_code,omitempty"`
	Error      string          `json:"error,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	DurationMs int64           `json:"duration_ms"`
	CreatedAt  time.Time       `json:"created_at"`
}

type errorResponse struct {
	Error  string          `json:"error"`
	Kind   string          `json:"kind,omitempty"`
	Report *reportResponse `json:"report,omitempty"`
}

func newReportResponse(report release.Report) *reportResponse {
	return &reportResponse{
		ID:         report.ID,
		Version:    report.Version,
		Released:   report.Released,
		Outcome:    report.Outcome.String(),
		StatusCode: report.StatusCode,
		DurationMs: report.Duration.Milliseconds(),
	}
}

func newDeliveryResponse(rec history.Record) deliveryResponse {
	resp := deliveryResponse{
		ID:         rec.ID,
		Version:    rec.Version,
		Released:   rec.Released,
		Outcome:    rec.Outcome.String(),
		StatusCode: rec.StatusCode,
		Error:      rec.Error,
		DurationMs: rec.Duration.Milliseconds(),
		CreatedAt:  rec.CreatedAt.UTC(),
	}
	if json.Valid(rec.Payload) {
		resp.Payload = rec.Payload
	}
	return resp
}

// errorStatus maps an error kind to the HTTP status reported to the caller
func errorStatus(err error) int {
	switch errdefs.KindOf(err) {
	case errdefs.InvalidPayload:
		return http.StatusUnprocessableEntity
	case errdefs.Timeout:
		return http.StatusGatewayTimeout
	case errdefs.DeliveryFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, err error, report *reportResponse) {
	resp := errorResponse{Error: err.Error(), Report: report}
	if kind := errdefs.KindOf(err); kind.Validate() == nil {
		resp.Kind = kind.String()
	}
	writeJSON(w, errorStatus(err), resp)
}

func decodeRelease(r *http.Request) (release.Context, error) {
	var req releaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return release.Context{}, errors.New("invalid request body")
	}
	if req.Version == "" {
		return release.Context{}, errors.New("version is required")
	}
	return release.Context{Version: req.Version, Released: req.Released}, nil
}

// postRelease handles POST /v1/releases
func postRelease(releaseService release.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc, err := decodeRelease(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		report, err := releaseService.Notify(r.Context(), rc)
		if err != nil {
			writeError(w, err, newReportResponse(report))
			return
		}

		writeJSON(w, http.StatusOK, newReportResponse(report))
	})
}

// postPreview handles POST /v1/preview
func postPreview(releaseService release.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc, err := decodeRelease(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		payload, err := releaseService.Preview(r.Context(), rc)
		if err != nil {
			writeError(w, err, nil)
			return
		}
		if payload == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, payload)
	})
}

// getDeliveries handles GET /v1/deliveries
func getDeliveries(deliveries history.Reader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if deliveries == nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "delivery history is disabled"})
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
				return
			}
			limit = n
		}

		records, err := deliveries.List(r.Context(), limit)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		responses := make([]deliveryResponse, 0, len(records))
		for _, rec := range records {
			responses = append(responses, newDeliveryResponse(rec))
		}
		writeJSON(w, http.StatusOK, responses)
	})
}

// getDelivery handles GET /v1/deliveries/{id}
func getDelivery(deliveries history.Reader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if deliveries == nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "delivery history is disabled"})
			return
		}

		id := chi.URLParam(r, "id")
		rec, err := deliveries.Get(r.Context(), id)
		if errors.Is(err, history.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, newDeliveryResponse(rec))
	})
}
