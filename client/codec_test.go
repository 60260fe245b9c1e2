package client

import (
	"errors"
	"testing"
)

func TestMarshalRoundTrip(t *testing.T) {
	t.Run("should reproduce every field with a fresh context", func(t *testing.T) {
		original := mustBuild(t, func(b *Builder) {
			b.WithEnvironmentHost("https://example.com").
				WithRegistrationToken("push-1")
		})

		payload, err := original.MarshalBinary()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		freshCtx := &testContext{name: "other-process"}
		restored, err := UnmarshalClient(payload, freshCtx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if restored.ApplicationID() != original.ApplicationID() {
			t.Errorf("applicationID: expected %s, got %s", original.ApplicationID(), restored.ApplicationID())
		}
		if restored.SharedSecretKey() != original.SharedSecretKey() {
			t.Errorf("secret: expected %s, got %s", original.SharedSecretKey(), restored.SharedSecretKey())
		}
		if restored.EnvironmentHost() != original.EnvironmentHost() {
			t.Errorf("host: expected %s, got %s", original.EnvironmentHost(), restored.EnvironmentHost())
		}
		if restored.RegistrationToken() != original.RegistrationToken() {
			t.Errorf("token: expected %s, got %s", original.RegistrationToken(), restored.RegistrationToken())
		}
		if restored.Context() != freshCtx {
			t.Error("expected the freshly supplied context, not the original")
		}
	})

	t.Run("should round-trip an empty registration token", func(t *testing.T) {
		original := mustBuild(t)

		payload, err := original.MarshalBinary()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		restored, err := UnmarshalClient(payload, struct{}{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if restored.RegistrationToken() != "" {
			t.Errorf("expected empty token, got %s", restored.RegistrationToken())
		}
	})

	t.Run("should capture the token value at serialization time", func(t *testing.T) {
		original := mustBuild(t)
		original.SetRegistrationToken("rotated")

		payload, err := original.MarshalBinary()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		restored, err := UnmarshalClient(payload, struct{}{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if restored.RegistrationToken() != "rotated" {
			t.Errorf("expected rotated, got %s", restored.RegistrationToken())
		}
	})
}

func TestUnmarshalClient_Malformed(t *testing.T) {
	valid := func(t *testing.T) []byte {
		t.Helper()
		payload, err := mustBuild(t).MarshalBinary()
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}
		return payload
	}

	t.Run("should reject an empty payload", func(t *testing.T) {
		_, err := UnmarshalClient(nil, struct{}{})

		var payloadErr *PayloadError
		if !errors.As(err, &payloadErr) {
			t.Fatalf("expected *PayloadError, got %v", err)
		}
	})

	t.Run("should reject an unknown payload version", func(t *testing.T) {
		payload := valid(t)
		payload[0] = 0x7f

		_, err := UnmarshalClient(payload, struct{}{})

		var payloadErr *PayloadError
		if !errors.As(err, &payloadErr) {
			t.Fatalf("expected *PayloadError, got %v", err)
		}
	})

	t.Run("should reject truncation at every cut point", func(t *testing.T) {
		payload := valid(t)

		for cut := 1; cut < len(payload); cut++ {
			_, err := UnmarshalClient(payload[:cut], struct{}{})

			var payloadErr *PayloadError
			if !errors.As(err, &payloadErr) {
				t.Fatalf("cut=%d: expected *PayloadError, got %v", cut, err)
			}
		}
	})

	t.Run("should reject trailing bytes", func(t *testing.T) {
		payload := append(valid(t), 0x00)

		_, err := UnmarshalClient(payload, struct{}{})

		var payloadErr *PayloadError
		if !errors.As(err, &payloadErr) {
			t.Fatalf("expected *PayloadError, got %v", err)
		}
	})
}
