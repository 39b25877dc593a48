package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/apperr"
	"github.com/gin-gonic/gin"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		kind apperr.Kind
		want int
	}{
		{apperr.KindValidation, http.StatusUnprocessableEntity},
		{apperr.KindUnauthorized, http.StatusUnauthorized},
		{apperr.KindForbidden, http.StatusForbidden},
		{apperr.KindNotFound, http.StatusNotFound},
		{apperr.KindPrecondition, http.StatusBadRequest},
		{apperr.KindNotImplemented, http.StatusNotImplemented},
		{apperr.KindUpstream, http.StatusInternalServerError},
		{apperr.KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		RespondError(c, apperr.New(tc.kind, "boom"))
		if w.Code != tc.want {
			t.Fatalf("kind %s: want %d, got %d", tc.kind, tc.want, w.Code)
		}
	}
}

func TestRespondErrorUncategorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, errors.New("raw"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "raw") {
		t.Fatalf("internal error details must not leak: %s", w.Body.String())
	}
}

func TestParseUUIDParamRejectsMalformed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "set_id", Value: "not-a-uuid"}}

	if _, ok := ParseUUIDParam(c, "set_id"); ok {
		t.Fatalf("malformed uuid must not parse")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "set_id") {
		t.Fatalf("offending field should be named: %s", w.Body.String())
	}
}
