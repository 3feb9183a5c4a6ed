package submission

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSubmissionRequest_Valid(t *testing.T) {
	req := CreateSubmissionRequest{
		SubmitterEmail: "maker@example.com",
		Title:          "Pedalboard kit",
		Details:        "A DIY pedalboard kit",
		Category:       "music",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateSubmissionRequest_RequiredFields(t *testing.T) {
	req := CreateSubmissionRequest{}
	err := req.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	for _, field := range []string{"submitter_email", "title", "details", "category"} {
		assert.Contains(t, errs, field)
	}
}
