package handler

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/streamchapter-team/stream-chapters/errors"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleSuccessEnvelope(t *testing.T) {
	c, rec := newTestContext(t)

	if err := HandleSuccess(zap.NewNop(), c, map[string]string{"hello": "world"}); err != nil {
		t.Fatalf("HandleSuccess returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Code != int(apperrors.ErrorCode_HTTP_OK) || body.Message != "success" {
		t.Errorf("unexpected envelope %+v", body)
	}
	if body.Data["hello"] != "world" {
		t.Errorf("data not round-tripped: %+v", body.Data)
	}
}

func TestHandleErrorMapsAppError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantHTTP int
		wantCode int
	}{
		{"project not found", apperrors.ErrProjectNotFound("p1"), http.StatusNotFound, int(apperrors.ErrorCode_PROJECT_NOT_FOUND)},
		{"chapter not found", apperrors.ErrChapterNotFound("c1"), http.StatusNotFound, int(apperrors.ErrorCode_CHAPTER_NOT_FOUND)},
		{"empty transcript", apperrors.ErrTranscriptEmpty(), http.StatusBadRequest, int(apperrors.ErrorCode_TRANSCRIPT_EMPTY)},
		{"generation running", apperrors.ErrGenerationInProgress("p1"), http.StatusConflict, int(apperrors.ErrorCode_GENERATION_IN_PROGRESS)},
		{"db failure", apperrors.ErrDBQueryFailed(stdErrors.New("timeout")), http.StatusInternalServerError, int(apperrors.ErrorCode_DB_QUERY_FAILED)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t)
			if err := HandleError(zap.NewNop(), c, tc.err); err != nil {
				t.Fatalf("HandleError returned error: %v", err)
			}
			if rec.Code != tc.wantHTTP {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantHTTP)
			}

			var body struct {
				Code int `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Code != tc.wantCode {
				t.Errorf("code = %d, want %d", body.Code, tc.wantCode)
			}
		})
	}
}

func TestHandleErrorIncludesRawInfo(t *testing.T) {
	c, rec := newTestContext(t)

	raw := stdErrors.New("dial tcp: connection refused")
	if err := HandleError(zap.NewNop(), c, apperrors.ErrDBQueryFailed(raw)); err != nil {
		t.Fatalf("HandleError returned error: %v", err)
	}

	var body struct {
		Info string `json:"info"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Info != raw.Error() {
		t.Errorf("info = %q, want the raw error text", body.Info)
	}
}

func TestHandleErrorUnknownErrorIsInternal(t *testing.T) {
	c, rec := newTestContext(t)

	if err := HandleError(zap.NewNop(), c, stdErrors.New("boom")); err != nil {
		t.Fatalf("HandleError returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Code != int(apperrors.ErrorCode_INTERNAL) || body.Message != "Internal server error" {
		t.Errorf("unexpected envelope %+v", body)
	}
}
