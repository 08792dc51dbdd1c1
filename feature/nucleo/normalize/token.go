package normalize

import (
	"fmt"

	apperrors "catalog-bridge/core/errors"

	"github.com/google/uuid"
)

// ActionAuthenticate is the login operation of the upstream service.
const ActionAuthenticate = "AuthenticateUser"

// Token extracts the session token from an authentication response. The
// upstream places human-readable error text in the token slot on failure,
// so anything that does not parse as a UUID is ErrAuthentication carrying
// that text.
func Token(soapResponse string) (string, error) {
	result, err := payload(soapResponse, ActionAuthenticate)
	if err != nil {
		return "", err
	}

	if _, err := uuid.Parse(result); err != nil {
		return "", fmt.Errorf("%s: %w: upstream returned %q", ActionAuthenticate, apperrors.ErrAuthentication, result)
	}

	return result, nil
}
