package config

import (
	"automotive-app/errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type backend struct {
	URL string `validate:"required,http_url"`
}

// Validate reports whether the endpoints are usable.
// New, Load and Get never call it, an absent base url passes through them silently.
func (c Constants) Validate() error {
	base, ok := c.BaseURL()
	if !ok || strings.TrimSpace(base) == "" {
		return errors.ErrMissingBaseURL
	}
	if err := validate.Struct(backend{URL: base}); err != nil {
		return fmt.Errorf("%w: %q: %v", errors.ErrInvalidBaseURL, base, err)
	}
	return nil
}
