package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson"
)

// CollectionName is the store collection backing this resource.
const CollectionName = "user"

// Fields is the ordered field list exposed by the schema introspection
// endpoint.
var Fields = []string{
	"name",
	"email",
	"avatar_url",
	"bio",
	"is_verified",
}

// CreateUserRequest is the inbound payload for a new user. Email uniqueness
// is deliberately unconstrained: two users may share an address.
type CreateUserRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	AvatarURL  *string `json:"avatar_url"`
	Bio        *string `json:"bio"`
	IsVerified bool    `json:"is_verified"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
	)
}

// Document renders the validated payload as the record to persist.
// is_verified defaults to false via the zero value.
func (r CreateUserRequest) Document() bson.M {
	return bson.M{
		"name":        r.Name,
		"email":       r.Email,
		"avatar_url":  r.AvatarURL,
		"bio":         r.Bio,
		"is_verified": r.IsVerified,
	}
}
