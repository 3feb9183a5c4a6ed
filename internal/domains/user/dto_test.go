package user

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest_Valid(t *testing.T) {
	req := CreateUserRequest{Name: "Ada", Email: "ada@example.com"}
	assert.NoError(t, req.Validate())
}

func TestCreateUserRequest_MissingFields(t *testing.T) {
	req := CreateUserRequest{}
	err := req.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
}

func TestCreateUserRequest_MalformedEmail(t *testing.T) {
	req := CreateUserRequest{Name: "Ada", Email: "ada@"}
	err := req.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "email")
}

func TestCreateUserRequest_DocumentDefaults(t *testing.T) {
	req := CreateUserRequest{Name: "Ada", Email: "ada@example.com"}
	doc := req.Document()

	assert.Equal(t, false, doc["is_verified"])
	assert.Equal(t, "Ada", doc["name"])
}
