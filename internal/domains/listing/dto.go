package listing

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson"
)

// CollectionName is the store collection backing this resource.
const CollectionName = "listing"

// DefaultLimit is the result-count ceiling applied when the caller does not
// pass one.
const DefaultLimit int64 = 24

// Fields is the ordered field list exposed by the schema introspection
// endpoint.
var Fields = []string{
	"title",
	"description",
	"price_usd",
	"category",
	"tags",
	"seller_email",
	"cover_image",
	"rating",
	"sales",
}

// CreateListingRequest is the inbound payload for a new marketplace listing.
// Numeric fields that must distinguish "missing" from zero are pointers.
type CreateListingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PriceUSD    *float64 `json:"price_usd"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	SellerEmail string   `json:"seller_email"`
	CoverImage  *string  `json:"cover_image"`
	Rating      *float64 `json:"rating"`
	Sales       *int     `json:"sales"`
}

func (r CreateListingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.PriceUSD,
			validation.NotNil.Error("price_usd is required"),
			validation.Min(0.0).Error("price_usd must be >= 0"),
		),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
		validation.Field(&r.SellerEmail,
			validation.Required.Error("seller_email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Rating,
			validation.Min(0.0).Error("rating must be >= 0"),
			validation.Max(5.0).Error("rating must be <= 5"),
		),
		validation.Field(&r.Sales, validation.Min(0).Error("sales must be >= 0")),
	)
}

// Document renders the validated payload as the record to persist, with
// defaults applied: empty tags, rating 4.8, sales 0. Only call after a
// successful Validate.
func (r CreateListingRequest) Document() bson.M {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	rating := 4.8
	if r.Rating != nil {
		rating = *r.Rating
	}

	sales := 0
	if r.Sales != nil {
		sales = *r.Sales
	}

	return bson.M{
		"title":        r.Title,
		"description":  r.Description,
		"price_usd":    *r.PriceUSD,
		"category":     r.Category,
		"tags":         tags,
		"seller_email": r.SellerEmail,
		"cover_image":  r.CoverImage,
		"rating":       rating,
		"sales":        sales,
	}
}

// ListOptions carries the optional query inputs for the list endpoint.
type ListOptions struct {
	Term     string
	Category string
	Limit    int64
}
