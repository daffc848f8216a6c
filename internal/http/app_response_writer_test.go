package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vivid-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_SetServiceError_And_ErrorCode(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	// Initially no error
	assert.Equal(t, "", appWriter.ErrorCode())

	svcErr := svcerrors.NewNoDataError("TEST_4220", "no records", nil)
	appWriter.SetServiceError(svcErr)
	assert.Equal(t, svcErr, appWriter.svcError)
	assert.Equal(t, "TEST_4220", appWriter.ErrorCode())

	// Clear error by setting nil
	appWriter.SetServiceError(nil)
	assert.Nil(t, appWriter.svcError)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_WrapsResponseWriter(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	appWriter := newAppResponseWriter(rr, 1)

	appWriter.WriteHeader(http.StatusUnprocessableEntity)
	assert.Equal(t, http.StatusUnprocessableEntity, appWriter.Status())
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	// Write should not change the recorded status
	appWriter.Write([]byte("no data"))
	assert.Equal(t, "no data", rr.Body.String())
	assert.Equal(t, http.StatusUnprocessableEntity, appWriter.Status())
}
