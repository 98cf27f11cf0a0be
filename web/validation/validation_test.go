package validation

import (
	"net/http/httptest"
	"strings"
	"testing"

	"postboard/web/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testForm struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin"`
}

func bind(t *testing.T, body string, obj any) *entity.ApiError {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return BindJSON(c, obj)
}

func TestBindJSONCollectsAllFieldErrors(t *testing.T) {
	var form testForm
	apiErr := bind(t, `{}`, &form)
	require.NotNil(t, apiErr)
	assert.Equal(t, entity.KindValidation, apiErr.Kind)
	assert.Equal(t, "Validation failed", apiErr.Message)

	// one entry per failing field, keyed by json name
	assert.Contains(t, apiErr.Errors, "name")
	assert.Contains(t, apiErr.Errors, "email")
	assert.Contains(t, apiErr.Errors, "password")
	assert.NotContains(t, apiErr.Errors, "role")
	assert.Equal(t, []string{"The name field is required."}, apiErr.Errors["name"])
}

func TestBindJSONMessages(t *testing.T) {
	var form testForm
	apiErr := bind(t, `{"name":"A","email":"not-an-email","password":"short","role":"root"}`, &form)
	require.NotNil(t, apiErr)

	assert.Equal(t, []string{"The email field must be a valid email address."}, apiErr.Errors["email"])
	assert.Equal(t, []string{"The password field must be at least 6 characters."}, apiErr.Errors["password"])
	assert.Equal(t, []string{"The selected role is invalid."}, apiErr.Errors["role"])
}

func TestBindJSONAcceptsValidPayload(t *testing.T) {
	var form testForm
	apiErr := bind(t, `{"name":"A","email":"a@x.com","password":"secret1"}`, &form)
	assert.Nil(t, apiErr)
	assert.Equal(t, "a@x.com", form.Email)
	assert.Nil(t, form.Role)
}

func TestBindJSONRejectsUndecodableBody(t *testing.T) {
	var form testForm
	apiErr := bind(t, `{not json`, &form)
	require.NotNil(t, apiErr)
	assert.Equal(t, entity.KindValidation, apiErr.Kind)
	assert.Contains(t, apiErr.Errors, "body")
}
