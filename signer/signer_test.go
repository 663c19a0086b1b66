package signer_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrymomot/signedcookies/signer"
)

const testSecret = "this-is-a-very-long-secret-key-32-chars-long"

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{
			name:    "no secrets",
			secrets: []string{},
			wantErr: signer.ErrNoSecret,
		},
		{
			name:    "empty secrets",
			secrets: []string{"", ""},
			wantErr: signer.ErrNoSecret,
		},
		{
			name:    "secret too short",
			secrets: []string{"short"},
			wantErr: signer.ErrSecretTooShort,
		},
		{
			name:    "valid secret",
			secrets: []string{testSecret},
			wantErr: nil,
		},
		{
			name: "multiple secrets with rotation",
			secrets: []string{
				testSecret,
				"this-is-old-very-long-secret-key-32-chars-ok",
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := signer.New(tt.secrets)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSigner_RoundTrip(t *testing.T) {
	t.Parallel()
	s, err := signer.New([]string{testSecret})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name  string
		value string
	}{
		{"simple", "value"},
		{"empty value", ""},
		{"special chars", "hello=world&foo=bar; path=/"},
		{"unicode", "héllo wörld"},
		{"json payload", `{"uid":"42","role":"admin"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wire := s.Sign(tt.value)
			if wire == tt.value {
				t.Errorf("Sign() returned plaintext value")
			}

			got, err := s.Unsign(wire, 0)
			if err != nil {
				t.Fatalf("Unsign() error = %v", err)
			}
			if got != tt.value {
				t.Errorf("Unsign() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestSigner_Tampering(t *testing.T) {
	t.Parallel()
	s, _ := signer.New([]string{testSecret})
	wire := s.Sign("sensitive-value")

	// Flip one byte in every position of the wire string.
	for i := range wire {
		mutated := []byte(wire)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		_, err := s.Unsign(string(mutated), 0)
		if err == nil {
			t.Fatalf("Unsign() accepted wire tampered at byte %d", i)
		}
	}
}

func TestSigner_MalformedInput(t *testing.T) {
	t.Parallel()
	s, _ := signer.New([]string{testSecret})

	tests := []struct {
		name string
		wire string
	}{
		{"empty", ""},
		{"no separators", "abcdef"},
		{"one separator", "abc.def"},
		{"too many separators", "a.b.c.d"},
		{"invalid base64 signature", "dmFsdWU.AAAA.!!!"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := s.Unsign(tt.wire, 0)
			if err == nil {
				t.Errorf("Unsign(%q) = nil error, want failure", tt.wire)
			}
		})
	}
}

func TestSigner_MaxAge(t *testing.T) {
	t.Parallel()

	now := time.Now()
	past := func() time.Time { return now.Add(-2 * time.Hour) }

	old, _ := signer.New([]string{testSecret}, signer.WithClock(past))
	current, _ := signer.New([]string{testSecret})

	wire := old.Sign("aged-value")

	if _, err := current.Unsign(wire, 0); err != nil {
		t.Fatalf("Unsign() without max age error = %v", err)
	}

	if _, err := current.Unsign(wire, 3*time.Hour); err != nil {
		t.Fatalf("Unsign() within max age error = %v", err)
	}

	_, err := current.Unsign(wire, time.Hour)
	if !errors.Is(err, signer.ErrExpired) {
		t.Errorf("Unsign() past max age error = %v, want ErrExpired", err)
	}
}

func TestSigner_ClockSkew(t *testing.T) {
	t.Parallel()

	future := func() time.Time { return time.Now().Add(5 * time.Minute) }
	ahead, _ := signer.New([]string{testSecret}, signer.WithClock(future))
	current, _ := signer.New([]string{testSecret})

	// A value signed by a slightly-ahead clock must still verify.
	got, err := current.Unsign(ahead.Sign("skewed"), time.Hour)
	if err != nil {
		t.Fatalf("Unsign() error = %v", err)
	}
	if got != "skewed" {
		t.Errorf("Unsign() = %q, want %q", got, "skewed")
	}
}

func TestSigner_KeyRotation(t *testing.T) {
	t.Parallel()

	oldSecret := "this-is-old-very-long-secret-key-32-chars-ok"
	previous, _ := signer.New([]string{oldSecret})
	rotated, _ := signer.New([]string{testSecret, oldSecret})

	wire := previous.Sign("carried-over")

	got, err := rotated.Unsign(wire, 0)
	if err != nil {
		t.Fatalf("Unsign() with rotated secrets error = %v", err)
	}
	if got != "carried-over" {
		t.Errorf("Unsign() = %q, want %q", got, "carried-over")
	}

	// New values sign under the first secret only.
	onlyOld, _ := signer.New([]string{oldSecret})
	if _, err := onlyOld.Unsign(rotated.Sign("fresh"), 0); !errors.Is(err, signer.ErrInvalidSignature) {
		t.Errorf("Unsign() error = %v, want ErrInvalidSignature", err)
	}
}

func TestSigner_SaltSeparation(t *testing.T) {
	t.Parallel()

	a, _ := signer.New([]string{testSecret}, signer.WithSalt("domain-a"))
	b, _ := signer.New([]string{testSecret}, signer.WithSalt("domain-b"))

	wire := a.Sign("value")
	if _, err := b.Unsign(wire, 0); !errors.Is(err, signer.ErrInvalidSignature) {
		t.Errorf("Unsign() across salts error = %v, want ErrInvalidSignature", err)
	}
}

func TestSigner_WireFormat(t *testing.T) {
	t.Parallel()
	s, _ := signer.New([]string{testSecret})

	wire := s.Sign("visible-check")
	if strings.Contains(wire, "visible-check") {
		t.Errorf("Sign() leaked plaintext into wire string %q", wire)
	}
	if got := strings.Count(wire, "."); got != 2 {
		t.Errorf("Sign() wire has %d separators, want 2", got)
	}
}
