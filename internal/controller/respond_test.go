package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"lexilearn_backend/internal/util"
)

// Denied reads on content owned by someone else surface as 404, the same as
// content that does not exist. The aggregate report endpoints rely on this
// mapping after their ownership checks.
func TestRespondServiceErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", util.ErrNotFound, http.StatusNotFound},
		{"ownership denial hides existence", fmt.Errorf("module 9: %w", util.ErrNotFound), http.StatusNotFound},
		{"permission denied", util.ErrPermissionDenied, http.StatusForbidden},
		{"duplicate email", util.ErrEmailRegistered, http.StatusConflict},
		{"validation", fmt.Errorf("%w: score must be 0-100", util.ErrValidation), http.StatusBadRequest},
		{"not a teacher", util.ErrNotATeacher, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			respondServiceError(ctx, tc.err)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}
