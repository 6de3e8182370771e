package domain

import (
	"automotive-app/errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// SignUpInfo is the body of a signup request.
// The backend declares one queue per client and binds it to the device type and to the client id.
type SignUpInfo struct {
	ID         uuid.UUID `json:"id" validate:"required"`
	DeviceType string    `json:"deviceType" validate:"required"`
}

func NewSignUpInfo(deviceType string) SignUpInfo {
	return SignUpInfo{ID: uuid.New(), DeviceType: deviceType}
}

// QueueName is the queue the backend declares for this client.
func (s SignUpInfo) QueueName() string {
	return "id/" + s.ID.String()
}

// RoutingKeys lists the keys bound to QueueName on the direct exchange.
func (s SignUpInfo) RoutingKeys() []string {
	return []string{"device/" + s.DeviceType, s.QueueName()}
}

func (s SignUpInfo) Validate() error {
	if strings.TrimSpace(s.DeviceType) == "" {
		return fmt.Errorf("%w: blank device type", errors.ErrInvalidSignUp)
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidSignUp, err)
	}
	return nil
}
