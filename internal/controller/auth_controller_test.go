package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postJSON(t *testing.T, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(raw))
	ctx.Request.Header.Set("Content-Type", "application/json")
	return ctx, w
}

// Registration never mints privileged accounts: any role other than teacher
// is rejected at binding time, before the service layer is reached.
func TestRegisterRejectsNonTeacherRoles(t *testing.T) {
	for _, role := range []string{"admin", "student", "superuser", ""} {
		t.Run("role="+role, func(t *testing.T) {
			ctx, w := postJSON(t, gin.H{
				"name":     "someone",
				"email":    "someone@example.com",
				"password": "longenough1",
				"role":     role,
			})

			c := &AuthController{}
			c.Register(ctx)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegisterRequiresWellFormedBody(t *testing.T) {
	ctx, w := postJSON(t, gin.H{
		"name":     "someone",
		"email":    "not-an-email",
		"password": "short",
		"role":     "teacher",
	})

	c := &AuthController{}
	c.Register(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
