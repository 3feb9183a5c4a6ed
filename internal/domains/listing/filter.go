package listing

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildFilter translates the optional search inputs into a store filter.
//
//   - category, when set, requires an exact match on the category field.
//   - term, when set, requires a case-insensitive substring match on the
//     title OR on at least one element of the tags array.
//   - Both conditions combine with logical AND; with neither, the filter
//     matches all records.
//
// The term is treated as a literal substring, never as a pattern: regex
// metacharacters in caller input are escaped so a term like ".*" cannot
// widen the match.
func BuildFilter(term, category string) bson.M {
	filter := bson.M{}

	if category != "" {
		filter["category"] = category
	}

	if term != "" {
		pattern := regexp.QuoteMeta(term)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"tags": bson.M{"$elemMatch": bson.M{"$regex": pattern, "$options": "i"}}},
		}
	}

	return filter
}
