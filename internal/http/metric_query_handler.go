package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"vivid-analytics/internal/analytics"
	"vivid-analytics/internal/shared/svcerrors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type metricQueryHandler struct {
	analyticsService analytics.AnalyticsService
}

func NewMetricQueryHandler(analyticsService analytics.AnalyticsService) AppHttpHandler {
	return &metricQueryHandler{
		analyticsService: analyticsService,
	}
}

// Handle processes POST /v1/metrics/query requests.
func (h *metricQueryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := requireJSON(r); err != nil {
		return err
	}

	var query analytics.MetricQuery
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&query); err != nil {
		return svcerrors.NewInvalidArgumentError("ANL_1003", fmt.Sprintf("malformed request body: %v", err), err)
	}

	result, err := h.analyticsService.Execute(r.Context(), &query)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(result)
}

func requireJSON(r *http.Request) error {
	ct := contentType(r)
	if ct == "" {
		return nil // lenient: absent content type is treated as JSON
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || !strings.EqualFold(mediaType, "application/json") {
		return svcerrors.NewInvalidArgumentError("ANL_1003", fmt.Sprintf("unsupported content type: %q", ct), nil)
	}
	return nil
}
