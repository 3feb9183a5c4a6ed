package submission

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson"
)

// CollectionName is the store collection backing this resource.
const CollectionName = "submission"

// DefaultLimit is the result-count ceiling for the submission list.
const DefaultLimit int64 = 50

// Fields is the ordered field list exposed by the schema introspection
// endpoint.
var Fields = []string{
	"submitter_email",
	"title",
	"details",
	"category",
	"attachment_url",
}

// CreateSubmissionRequest is the inbound payload for a new submission.
type CreateSubmissionRequest struct {
	SubmitterEmail string  `json:"submitter_email"`
	Title          string  `json:"title"`
	Details        string  `json:"details"`
	Category       string  `json:"category"`
	AttachmentURL  *string `json:"attachment_url"`
}

func (r CreateSubmissionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SubmitterEmail,
			validation.Required.Error("submitter_email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Details, validation.Required.Error("details is required")),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
	)
}

// Document renders the validated payload as the record to persist.
func (r CreateSubmissionRequest) Document() bson.M {
	return bson.M{
		"submitter_email": r.SubmitterEmail,
		"title":           r.Title,
		"details":         r.Details,
		"category":        r.Category,
		"attachment_url":  r.AttachmentURL,
	}
}
