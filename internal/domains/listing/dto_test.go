package listing

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateListingRequest {
	price := 29.99
	return CreateListingRequest{
		Title:       "Acoustic Guitar",
		Description: "Six strings, lightly used",
		PriceUSD:    &price,
		Category:    "music",
		Tags:        []string{"music", "guitar"},
		SellerEmail: "seller@example.com",
	}
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok, "expected per-field validation errors, got %T", err)
	return errs
}

func TestCreateListingRequest_Valid(t *testing.T) {
	assert.NoError(t, validCreateRequest().Validate())
}

func TestCreateListingRequest_MissingTitle(t *testing.T) {
	req := validCreateRequest()
	req.Title = ""

	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "title")
	assert.NotContains(t, errs, "description")
}

func TestCreateListingRequest_MissingPrice(t *testing.T) {
	req := validCreateRequest()
	req.PriceUSD = nil

	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "price_usd")
}

func TestCreateListingRequest_NegativePrice(t *testing.T) {
	req := validCreateRequest()
	price := -1.0
	req.PriceUSD = &price

	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "price_usd")
}

func TestCreateListingRequest_ZeroPriceAllowed(t *testing.T) {
	req := validCreateRequest()
	price := 0.0
	req.PriceUSD = &price

	assert.NoError(t, req.Validate())
}

func TestCreateListingRequest_RatingRange(t *testing.T) {
	for _, bad := range []float64{-0.1, 5.1} {
		req := validCreateRequest()
		req.Rating = &bad

		errs := fieldErrors(t, req.Validate())
		assert.Contains(t, errs, "rating")
	}

	for _, ok := range []float64{0, 2.5, 5} {
		req := validCreateRequest()
		req.Rating = &ok
		assert.NoError(t, req.Validate())
	}
}

func TestCreateListingRequest_MalformedEmail(t *testing.T) {
	req := validCreateRequest()
	req.SellerEmail = "not-an-email"

	errs := fieldErrors(t, req.Validate())
	assert.Contains(t, errs, "seller_email")
}

func TestCreateListingRequest_DocumentDefaults(t *testing.T) {
	req := validCreateRequest()
	req.Tags = nil
	doc := req.Document()

	assert.Equal(t, 4.8, doc["rating"])
	assert.Equal(t, 0, doc["sales"])
	assert.Equal(t, []string{}, doc["tags"])
	assert.Equal(t, 29.99, doc["price_usd"])
}

func TestCreateListingRequest_DocumentKeepsExplicitValues(t *testing.T) {
	req := validCreateRequest()
	rating := 3.5
	sales := 12
	req.Rating = &rating
	req.Sales = &sales
	doc := req.Document()

	assert.Equal(t, 3.5, doc["rating"])
	assert.Equal(t, 12, doc["sales"])
	assert.Equal(t, []string{"music", "guitar"}, doc["tags"])
}
