package lcu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	Host         = "127.0.0.1" // The LCU binds its REST APIs to the loopback interface only.
	AuthUsername = "riot"      // Username of the basic authentication, used by both identities.
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ConnectionInfo holds the ports and tokens of the default and the remoting identity of a running League Client.
//
// How these values are discovered (lockfile, process command line) is up to the caller.
type ConnectionInfo struct {
	// Port and token of the default REST API.
	Port  uint16 `json:"port" yaml:"port"`
	Token string `json:"token" yaml:"token" validate:"printascii"`

	// Port and token of the remoting REST API.
	RemotingPort  uint16 `json:"remoting_port" yaml:"remoting_port"`
	RemotingToken string `json:"remoting_token" yaml:"remoting_token" validate:"printascii"`
}

// Identity returns port and token of the default or the remoting identity.
func (v ConnectionInfo) Identity(remoting bool) Identity {
	if remoting {
		return Identity{Remoting: true, Port: v.RemotingPort, Token: v.RemotingToken}
	}
	return Identity{Port: v.Port, Token: v.Token}
}

func (v ConnectionInfo) Validate() error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid connection info: %v", err)
	}
	return nil
}

// Identity is one of the two backend identities, a port and the token that is accepted on it.
type Identity struct {
	Remoting bool
	Port     uint16
	Token    string `validate:"printascii"`
}

func (v Identity) String() string {
	if v.Remoting {
		return fmt.Sprintf("remoting:%d", v.Port)
	}
	return fmt.Sprintf("default:%d", v.Port)
}

// Validate ensures that the token can be used as part of an HTTP header value.
func (v Identity) Validate() error {
	if err := validate.Struct(v); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return fmt.Errorf("%s token must only contain printable ASCII characters", v.name())
		}
		return err
	}
	return nil
}

func (v Identity) name() string {
	if v.Remoting {
		return "remoting"
	}
	return "default"
}

// MaskToken replaces all but the last four characters of a token, for display purposes.
func MaskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
