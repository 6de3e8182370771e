package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/Netflix/go-env"
	"github.com/samber/lo"
)

// Environment is the raw input read from the process environment.
// A nil BackendURL means the variable is absent.
type Environment struct {
	BackendURL *string `env:"BACKENDURL"`
}

// Constants is the immutable set of named values the client needs:
// store identifiers, the device label and the REST endpoints.
// Build it with New, Load or FromEnviron, or share the process-wide one from Get.
type Constants struct {
	baseURL        *string
	signupEndpoint string
	topicEndpoint  string
}

// New derives the endpoints from baseURL once.
// An absent base url is not rejected: it concatenates as "", so the endpoints
// come out as bare paths ("/signup/", "/topic"). Call Validate to detect it.
func New(baseURL *string) Constants {
	if baseURL != nil {
		baseURL = lo.ToPtr(*baseURL)
	}
	base := lo.FromPtr(baseURL)
	return Constants{
		baseURL:        baseURL,
		signupEndpoint: base + SignupPath,
		topicEndpoint:  base + TopicPath,
	}
}

// Load decodes environ (KEY=VALUE pairs, as returned by os.Environ).
// It only fails on a malformed entry, a missing BACKENDURL is not an error.
func Load(environ []string) (Constants, error) {
	es, err := env.EnvironToEnvSet(environ)
	if err != nil {
		return Constants{}, fmt.Errorf("environment error: %w", err)
	}
	var e Environment
	if err = env.Unmarshal(es, &e); err != nil {
		return Constants{}, fmt.Errorf("environment error: %w", err)
	}
	return New(e.BackendURL), nil
}

// FromEnviron loads the constants from the current process environment.
func FromEnviron() (Constants, error) {
	return Load(os.Environ())
}

var processConstants = sync.OnceValues(FromEnviron)

// Get returns the process-wide constants, read from the environment on first call.
// Later changes to the environment are not observed. A malformed environment
// yields an absent base url, use GetE to see the error.
func Get() Constants {
	c, err := processConstants()
	if err != nil {
		return New(nil)
	}
	return c
}

// GetE is Get with the error from the first environment read.
func GetE() (Constants, error) {
	return processConstants()
}

func (c Constants) MessageDBName() string      { return MessageDBName }
func (c Constants) RegistrationDBName() string { return RegistrationDBName }
func (c Constants) LocationDataDBName() string { return LocationDataDBName }
func (c Constants) DeviceType() string         { return DeviceType }

// BaseURL reports the base url and whether it was supplied.
func (c Constants) BaseURL() (string, bool) {
	return lo.FromPtr(c.baseURL), c.baseURL != nil
}

func (c Constants) SignupEndpoint() string { return c.signupEndpoint }
func (c Constants) TopicEndpoint() string  { return c.topicEndpoint }
