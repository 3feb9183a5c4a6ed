// Package order defines the order resource. Orders have no HTTP routes yet;
// the collection exists in the schema registry so tooling can see its shape.
package order

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson"
)

// CollectionName is the store collection backing this resource.
const CollectionName = "order"

// DefaultStatus is assigned when a payload omits the status field.
const DefaultStatus = "paid"

// Fields is the ordered field list exposed by the schema introspection
// endpoint.
var Fields = []string{
	"buyer_email",
	"listing_id",
	"amount_usd",
	"status",
}

// CreateOrderRequest is the inbound payload for a new order. The listing_id
// references a listing by convention only; nothing enforces it.
type CreateOrderRequest struct {
	BuyerEmail string   `json:"buyer_email"`
	ListingID  string   `json:"listing_id"`
	AmountUSD  *float64 `json:"amount_usd"`
	Status     string   `json:"status"`
}

func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BuyerEmail,
			validation.Required.Error("buyer_email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.ListingID, validation.Required.Error("listing_id is required")),
		validation.Field(&r.AmountUSD,
			validation.NotNil.Error("amount_usd is required"),
			validation.Min(0.0).Error("amount_usd must be >= 0"),
		),
	)
}

// Document renders the validated payload as the record to persist, with the
// status defaulted to "paid".
func (r CreateOrderRequest) Document() bson.M {
	status := r.Status
	if status == "" {
		status = DefaultStatus
	}

	return bson.M{
		"buyer_email": r.BuyerEmail,
		"listing_id":  r.ListingID,
		"amount_usd":  *r.AmountUSD,
		"status":      status,
	}
}
