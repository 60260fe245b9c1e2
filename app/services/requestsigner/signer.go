// Package requestsigner builds signed outbound requests for the
// verification service from a validated client descriptor. It constructs
// requests only; sending them is the embedding application's concern.
package requestsigner

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/random"
	"github.com/oklog/ulid/v2"

	"verifykit/client"
	"verifykit/internal/deviceinfo"
)

const (
	verifyPath = "/sdk/verify"
	checkPath  = "/sdk/check"

	nonceLength = 16
)

type Signer struct {
	descriptor *client.Client
	device     *deviceinfo.Properties
}

func New(descriptor *client.Client, device *deviceinfo.Properties) (*Signer, error) {
	if descriptor == nil {
		return nil, fmt.Errorf("client descriptor is required")
	}

	return &Signer{
		descriptor: descriptor,
		device:     device,
	}, nil
}

// NewVerifyRequest builds a signed request that starts a verification for
// the given phone number and country.
func (s *Signer) NewVerifyRequest(ctx context.Context, number, country string) (*http.Request, error) {
	if number == "" {
		return nil, fmt.Errorf("number is required")
	}

	params := url.Values{}
	params.Set("number", number)
	if country != "" {
		params.Set("country", country)
	}

	return s.newSignedRequest(ctx, verifyPath, params)
}

// NewCheckRequest builds a signed request that checks the code the user
// received for a previously started verification.
func (s *Signer) NewCheckRequest(ctx context.Context, requestID, code string) (*http.Request, error) {
	if requestID == "" {
		return nil, fmt.Errorf("request ID is required")
	}
	if code == "" {
		return nil, fmt.Errorf("code is required")
	}

	params := url.Values{}
	params.Set("request_id", requestID)
	params.Set("code", code)

	return s.newSignedRequest(ctx, checkPath, params)
}

func (s *Signer) newSignedRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	params.Set("app_id", s.descriptor.ApplicationID())
	params.Set("timestamp", strconv.FormatInt(time.Now().Unix(), 10))
	params.Set("nonce", random.String(nonceLength, random.Alphanumeric))

	if s.device != nil {
		params.Set("device_id", s.device.InstallID)
	}
	if token := s.descriptor.RegistrationToken(); token != "" {
		params.Set("push_token", token)
	}

	params.Set("sig", Signature(params, s.descriptor.SharedSecretKey()))

	endpoint := s.descriptor.EnvironmentHost() + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-SDK-Version", client.Version())
	req.Header.Set("X-Request-ID", ulid.Make().String())

	return req, nil
}

// Signature computes the HMAC-SHA256 signature of the given parameters
// keyed by the shared secret. Parameters are canonicalized as key=value
// pairs joined with "&" in ascending key order; any existing "sig" entry is
// excluded. Exported so a verifier holding the secret can recompute it.
func Signature(params url.Values, secretKey string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		if key == "sig" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params.Get(key))
	}

	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(mac.Sum(nil))
}
