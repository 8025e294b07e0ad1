package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/limbo/devhabit/pkg/httputil"
	"github.com/stretchr/testify/assert"
)

func TestWriteErrorResponse(t *testing.T) {
	t.Run("without details", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteErrorResponse(rr, http.StatusInternalServerError, "internal error", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"code":500,"message":"internal error"}`, rr.Body.String())
	})
	t.Run("with details", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteErrorResponse(rr, http.StatusNotFound, "habit doesn't exist", errors.New("h_1"))
		assert.JSONEq(t, `{"code":404,"message":"habit doesn't exist","details":"h_1"}`, rr.Body.String())
	})
}

func TestWriteJSONResponse(t *testing.T) {
	t.Run("empty slice stays an array", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteJSONResponse(rr, http.StatusOK, []string{})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
	t.Run("nil body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteJSONResponse(rr, http.StatusNoContent, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
