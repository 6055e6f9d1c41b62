package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptTag = "scrypt"

	// Bounds on what Verify will accept from a stored record.
	maxDigestLen = 1024
	maxSaltLen   = 1024
)

// ScryptParams are fixed per binary and not stored in the record.
type ScryptParams struct {
	N       int
	R       int
	P       int
	KeyLen  int
	SaltLen int
}

var DefaultScryptParams = ScryptParams{
	N:       1 << 14,
	R:       8,
	P:       1,
	KeyLen:  64,
	SaltLen: 16,
}

// PasswordHasher produces records of the form scrypt$<b64 salt>$<b64 digest>.
// Hashing is CPU and memory bound; keep it off latency sensitive paths.
type PasswordHasher struct {
	params ScryptParams
	rand   io.Reader
}

func NewPasswordHasher(params ScryptParams) (*PasswordHasher, error) {
	if params.N <= 1 || params.N&(params.N-1) != 0 {
		return nil, fmt.Errorf("%w: scrypt N must be a power of two greater than 1", ErrMisconfigured)
	}
	if params.R <= 0 || params.P <= 0 {
		return nil, fmt.Errorf("%w: scrypt r and p must be positive", ErrMisconfigured)
	}
	if params.KeyLen <= 0 || params.KeyLen > maxDigestLen {
		return nil, fmt.Errorf("%w: scrypt key length out of range", ErrMisconfigured)
	}
	if params.SaltLen < 16 || params.SaltLen > maxSaltLen {
		return nil, fmt.Errorf("%w: salt must be at least 16 bytes", ErrMisconfigured)
	}
	return &PasswordHasher{params: params, rand: rand.Reader}, nil
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	digest, err := h.derive(password, salt, h.params.KeyLen)
	if err != nil {
		return "", err
	}

	return scryptTag + "$" +
		base64.StdEncoding.EncodeToString(salt) + "$" +
		base64.StdEncoding.EncodeToString(digest), nil
}

// Verify reports whether password matches record. A malformed record is a
// mismatch, never an error.
func (h *PasswordHasher) Verify(password, record string) bool {
	parts := strings.SplitN(record, "$", 3)
	if len(parts) != 3 || parts[0] != scryptTag {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(salt) == 0 || len(salt) > maxSaltLen {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(expected) == 0 || len(expected) > maxDigestLen {
		return false
	}

	actual, err := h.derive(password, salt, len(expected))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(actual, expected) == 1
}

func (h *PasswordHasher) derive(password string, salt []byte, keyLen int) ([]byte, error) {
	digest, err := scrypt.Key([]byte(password), salt, h.params.N, h.params.R, h.params.P, keyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt: %w", err)
	}
	return digest, nil
}
