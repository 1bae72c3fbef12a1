package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func bindingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/signup", func(c *gin.Context) {
		var req signupPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			BindingErrorResponse(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestBindingErrorResponse_ValidationFailures(t *testing.T) {
	router := bindingRouter()

	body, _ := json.Marshal(map[string]string{
		"name":     "Jane Moyo",
		"email":    "not-an-email",
		"password": "123",
	})
	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string            `json:"error"`
		Details []ValidationError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	require.Len(t, resp.Details, 2)

	fields := map[string]ValidationError{}
	for _, d := range resp.Details {
		fields[d.Field] = d
	}
	assert.Equal(t, "email", fields["Email"].Tag)
	assert.Equal(t, "Email must be a valid email address", fields["Email"].Message)
	assert.Equal(t, "min", fields["Password"].Tag)
	assert.Equal(t, "Password must be at least 6 characters", fields["Password"].Message)
}

func TestBindingErrorResponse_MalformedJSON(t *testing.T) {
	router := bindingRouter()

	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader([]byte(`{"name":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "details")
}

func TestFormatValidationErrors(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	err := v.Struct(signupPayload{Email: "x", Password: "secret1"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	out := FormatValidationErrors(verrs)
	require.Len(t, out, 2)
	assert.Equal(t, "Name", out[0].Field)
	assert.Equal(t, "required", out[0].Tag)
	assert.Equal(t, "Name is required", out[0].Message)
	assert.Equal(t, "Email", out[1].Field)
	assert.Equal(t, "Email must be a valid email address", out[1].Message)
}
