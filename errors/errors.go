package errors

import "fmt"

var (
	ErrMissingBaseURL = fmt.Errorf("backend base url is not set")
	ErrInvalidBaseURL = fmt.Errorf("backend base url is not an absolute http(s) url")
	ErrInvalidSignUp  = fmt.Errorf("invalid signup info")
	ErrInvalidTopic   = fmt.Errorf("invalid topic")
)
