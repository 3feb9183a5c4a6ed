// Package schema exposes the field-level shape of every resource type for
// introspection. The registry is read-only and initialized once; the data
// comes straight from the domain packages, so /schema never touches the
// store.
package schema

import (
	"marketplace-backend/internal/domains/activity"
	"marketplace-backend/internal/domains/listing"
	"marketplace-backend/internal/domains/order"
	"marketplace-backend/internal/domains/submission"
	"marketplace-backend/internal/domains/user"
)

// Collection describes one resource type: its collection name and the
// ordered list of its field names.
type Collection struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

var collections = []Collection{
	{Name: user.CollectionName, Fields: user.Fields},
	{Name: listing.CollectionName, Fields: listing.Fields},
	{Name: order.CollectionName, Fields: order.Fields},
	{Name: submission.CollectionName, Fields: submission.Fields},
	{Name: activity.CollectionName, Fields: activity.Fields},
}

// Collections returns the registered resource types in declaration order.
func Collections() []Collection {
	return collections
}
