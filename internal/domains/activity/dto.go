package activity

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson"
)

// CollectionName is the store collection backing the append-only activity log.
const CollectionName = "activity"

// DefaultLimit is the result-count ceiling for the activity feed.
const DefaultLimit int64 = 20

// ActionSubmissionCreated is logged after a successful submission write.
const ActionSubmissionCreated = "submission_created"

// Fields is the ordered field list exposed by the schema introspection
// endpoint.
var Fields = []string{
	"actor_email",
	"action",
	"target",
	"at",
}

// Record is one entry of the activity log. Records are only ever appended;
// nothing in the system mutates or deletes them.
type Record struct {
	ActorEmail string     `json:"actor_email"`
	Action     string     `json:"action"`
	Target     string     `json:"target,omitempty"`
	At         *time.Time `json:"at,omitempty"`
}

func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ActorEmail,
			validation.Required.Error("actor_email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Action, validation.Required.Error("action is required")),
	)
}

// Document renders the record for persistence, stamping the time when the
// caller did not provide one.
func (r Record) Document() bson.M {
	at := time.Now().UTC()
	if r.At != nil {
		at = *r.At
	}

	return bson.M{
		"actor_email": r.ActorEmail,
		"action":      r.Action,
		"target":      r.Target,
		"at":          at,
	}
}
