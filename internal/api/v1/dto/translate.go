package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// translate converts a validator error into human-readable messages, ordered
// by struct field declaration order. Fields without an entry in messages fall
// back to a generic message so no rule violation is silently dropped.
func translate(err error, messages map[string]string) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("Invalid value for %s", fe.Field()))
	}
	return out
}
