package domain

import (
	"automotive-app/errors"
	"fmt"
	"strings"
)

// Topic is a subscribable message category as listed by the topic endpoint.
// Binding is the routing key clients bind their queue to.
type Topic struct {
	Binding     string   `json:"binding" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Tags        []string `json:"tags"`
	Description string   `json:"description" validate:"required"`
}

// Validate rejects a topic whose binding, title or description is blank.
func (t Topic) Validate() error {
	trimmed := Topic{
		Binding:     strings.TrimSpace(t.Binding),
		Title:       strings.TrimSpace(t.Title),
		Description: strings.TrimSpace(t.Description),
	}
	if err := validate.Struct(trimmed); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidTopic, err)
	}
	return nil
}
