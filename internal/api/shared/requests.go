package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance for request body structs.
var Validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// DecodeAndValidate decodes the request body and validates it against the
// struct's validate tags. The caller turns a failure into the per-field 400
// response.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return Validate.Struct(v)
}

// ValidationErrors flattens a validator error into per-field failure
// descriptions suitable for the uniform error body. Decode failures and
// other non-field errors collapse to a single generic description.
func ValidationErrors(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid request body"}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out = append(out, fe.Field()+" is required")
		case "gt", "gte":
			out = append(out, fe.Field()+" must be positive")
		default:
			out = append(out, fe.Field()+" is invalid")
		}
	}
	return out
}
