package validation

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func bindSample(t *testing.T, payload string) error {
	t.Helper()
	var s sample
	return binding.JSON.BindBody([]byte(payload), &s)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	Init()
	m.Run()
}

func TestPwdAlias(t *testing.T) {
	// pwd = min=6
	err := bindSample(t, `{"email":"a@x.com","password":"abc"}`)
	require.Error(t, err)
	details := ToDetails(err)
	assert.Contains(t, details["password"], "at least 6")

	err = bindSample(t, `{"email":"a@x.com","password":"secret1"}`)
	assert.NoError(t, err)
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	err := bindSample(t, `{"password":"secret1"}`)
	require.Error(t, err)
	details := ToDetails(err)
	assert.Equal(t, "is required", details["email"])
}

func TestToDetailsInvalidJSON(t *testing.T) {
	err := bindSample(t, `{`)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
