package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vivid-analytics/internal/analytics"
	analyticsmocks "vivid-analytics/internal/analytics/mocks"
	"vivid-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMetricQueryHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyticsService := analyticsmocks.NewMockAnalyticsService(ctrl)
	handler := NewMetricQueryHandler(mockAnalyticsService)

	body := []byte(`{"metric":"cancelled_orders_share","startDate":"2024-06-01","endDate":"2024-06-30"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/metrics/query", bytes.NewReader(body))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	mockAnalyticsService.EXPECT().
		Execute(gomock.Any(), &analytics.MetricQuery{
			Metric:    "cancelled_orders_share",
			StartDate: "2024-06-01",
			EndDate:   "2024-06-30",
		}).
		Return(&analytics.MetricResult{Metric: "cancelled_orders_share", Result: 12.5}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response analytics.MetricResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "cancelled_orders_share", response.Metric)
	assert.Equal(t, 12.5, response.Result)
}

func TestMetricQueryHandler_Handle_ServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyticsService := analyticsmocks.NewMockAnalyticsService(ctrl)
	handler := NewMetricQueryHandler(mockAnalyticsService)

	body := []byte(`{"metric":"cancelled_orders_share","startDate":"2024-06-30","endDate":"2024-06-01"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/metrics/query", bytes.NewReader(body))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("ANL_1001", "start date is after end date", nil)
	mockAnalyticsService.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ANL_1001", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMetricQueryHandler_Handle_MalformedBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyticsService := analyticsmocks.NewMockAnalyticsService(ctrl)
	handler := NewMetricQueryHandler(mockAnalyticsService)

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"metric":`},
		{name: "unknown field", body: `{"metric":"cancelled_orders_share","startDate":"2024-06-01","endDate":"2024-06-30","window":7}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/v1/metrics/query", bytes.NewReader([]byte(tt.body)))
			req.Header.Set(headerContentType, "application/json")
			rr := httptest.NewRecorder()

			err := handler.Handle(rr, req)

			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "ANL_1003", svcErr.Code)
			assert.Equal(t, http.StatusBadRequest, svcErr.HttpStatusCode)
		})
	}
}

func TestMetricQueryHandler_Handle_UnsupportedContentType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyticsService := analyticsmocks.NewMockAnalyticsService(ctrl)
	handler := NewMetricQueryHandler(mockAnalyticsService)

	req := httptest.NewRequest(http.MethodPost, "/v1/metrics/query", bytes.NewReader([]byte(`metric=foo`)))
	req.Header.Set(headerContentType, "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ANL_1003", svcErr.Code)
}
