package client

import (
	"fmt"

	"verifykit/internal/wire"
)

// payloadVersion identifies the serialized encoding. Bumped whenever the
// field order or framing changes.
const payloadVersion byte = 1

// fieldNames is the fixed serialization order of the string fields.
var fieldNames = [...]string{"ApplicationID", "SharedSecretKey", "EnvironmentHost", "RegistrationToken"}

// MarshalBinary encodes the descriptor for transfer across a process or
// component boundary: a payload version byte followed by the four string
// fields in fixed order, each length-prefixed. The execution context is
// excluded and must be re-supplied by the reconstructing side.
func (c *Client) MarshalBinary() ([]byte, error) {
	buf := []byte{payloadVersion}
	buf = wire.AppendString(buf, c.applicationID)
	buf = wire.AppendString(buf, c.sharedSecretKey)
	buf = wire.AppendString(buf, c.environmentHost)
	buf = wire.AppendString(buf, c.RegistrationToken())
	return buf, nil
}

// UnmarshalClient reconstructs a Client from its serialized form, pairing it
// with a caller-supplied execution context. The payload is trusted to have
// originated from a previously validated descriptor, so field contents are
// not re-validated; only framing errors are reported, as *PayloadError.
func UnmarshalClient(data []byte, ctx ExecutionContext) (*Client, error) {
	if len(data) == 0 {
		return nil, &PayloadError{Reason: "empty payload"}
	}
	if data[0] != payloadVersion {
		return nil, &PayloadError{Reason: fmt.Sprintf("unsupported payload version %d", data[0])}
	}

	rest := data[1:]
	var fields [len(fieldNames)]string
	for i, name := range fieldNames {
		value, remaining, err := wire.ReadString(rest)
		if err != nil {
			return nil, &PayloadError{Reason: fmt.Sprintf("%s: %v", name, err)}
		}
		fields[i], rest = value, remaining
	}
	if len(rest) != 0 {
		return nil, &PayloadError{Reason: fmt.Sprintf("%d trailing bytes after payload", len(rest))}
	}

	return &Client{
		ctx:               ctx,
		applicationID:     fields[0],
		sharedSecretKey:   fields[1],
		environmentHost:   fields[2],
		registrationToken: fields[3],
	}, nil
}
