package config

import (
	"automotive-app/errors"
	stderrors "errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts_Absolute_URL(t *testing.T) {
	req := require.New(t)

	req.NoError(New(lo.ToPtr(emulatorHostURL)).Validate())
	req.NoError(New(lo.ToPtr("http://elbitbackend.schuster.domains:8085")).Validate())
}

func TestValidate_Missing_Base_URL(t *testing.T) {
	req := require.New(t)

	for _, c := range []Constants{New(nil), New(lo.ToPtr("")), New(lo.ToPtr("   "))} {
		err := c.Validate()
		req.True(stderrors.Is(err, errors.ErrMissingBaseURL))
	}
}

func TestValidate_Invalid_Base_URL(t *testing.T) {
	req := require.New(t)

	// Given a base url without a scheme
	c := New(lo.ToPtr("10.0.2.2 8080"))

	// When it is validated
	err := c.Validate()

	// Then the endpoints are still built but flagged as invalid
	req.Error(err)
	req.True(stderrors.Is(err, errors.ErrInvalidBaseURL))
	req.Equal("10.0.2.2 8080/signup/", c.SignupEndpoint())
}

func TestValidate_Rejects_Non_HTTP_Base_URL(t *testing.T) {
	bases := []string{"localhost:8080", "ftp://x", "10.0.2.2:8080", "http://"}
	for _, base := range bases {
		t.Run(base, func(t *testing.T) {
			req := require.New(t)

			err := New(lo.ToPtr(base)).Validate()

			req.True(stderrors.Is(err, errors.ErrInvalidBaseURL))
		})
	}
}

func TestValidate_Accepts_HTTPS_Base_URL(t *testing.T) {
	req := require.New(t)

	req.NoError(New(lo.ToPtr("https://example.org/api")).Validate())
}
