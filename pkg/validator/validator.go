package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MalformedBody is reported for request bodies that could not be decoded.
const MalformedBody = "malformed JSON body"

// ParseError flattens gin binding errors into a field -> message map.
func ParseError(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	} else if err != nil { // decoder errors carry request text, keep them out of the response
		out["error"] = MalformedBody
	}
	return out
}
