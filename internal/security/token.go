package security

import (
	"bytes"
	"crypto/hmac"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMisconfigured = errors.New("token config invalid")
)

// Kind tags what a token may be used for.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

func (k Kind) Valid() bool {
	return k == KindAccess || k == KindRefresh
}

// Payload is the verified content of a token. It is never mutated after issuance.
type Payload struct {
	Subject   string
	Kind      Kind
	ExpiresAt int64
}

// wirePayload is the JSON form carried in the first token segment.
// Pointers distinguish a missing field from a zero value.
type wirePayload struct {
	Sub  *string `json:"sub"`
	Type *Kind   `json:"type"`
	Exp  *int64  `json:"exp"`
}

type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type TokenOption func(*TokenCodec)

// WithClock replaces the wall clock used for issuance and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(c *TokenCodec) {
		if now != nil {
			c.now = now
		}
	}
}

// TokenCodec issues and verifies stateless tokens of the form
// base64url(json(payload)) + "." + base64url(hmac_sha256(segment)).
// It holds no mutable state and is safe for concurrent use.
type TokenCodec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenCodec(cfg TokenConfig, opts ...TokenOption) (*TokenCodec, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: secret is required", ErrMisconfigured)
	}
	if cfg.AccessTTL < time.Second {
		return nil, fmt.Errorf("%w: access TTL must be at least one second", ErrMisconfigured)
	}
	if cfg.RefreshTTL < time.Second {
		return nil, fmt.Errorf("%w: refresh TTL must be at least one second", ErrMisconfigured)
	}

	c := &TokenCodec{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *TokenCodec) AccessTTL() time.Duration {
	return c.accessTTL
}

func (c *TokenCodec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

// Sign returns the unpadded base64url HMAC-SHA256 of segment.
func (c *TokenCodec) Sign(segment string) string {
	sig, err := jwt.SigningMethodHS256.Sign(segment, c.secret)
	if err != nil {
		// Only reachable with a non-[]byte key, which NewTokenCodec rules out.
		panic(fmt.Sprintf("security: sign: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(sig)
}

// Issue builds a token for subject that expires ttl from now. Sub-second
// precision of ttl is dropped.
func (c *TokenCodec) Issue(subject string, kind Kind, ttl time.Duration) string {
	exp := c.now().Unix() + int64(ttl/time.Second)
	raw, err := json.Marshal(wirePayload{Sub: &subject, Type: &kind, Exp: &exp})
	if err != nil {
		panic(fmt.Sprintf("security: encode payload: %v", err))
	}
	segment := base64.RawURLEncoding.EncodeToString(raw)
	return segment + "." + c.Sign(segment)
}

func (c *TokenCodec) IssuePair(subject string) TokenPair {
	return TokenPair{
		AccessToken:  c.Issue(subject, KindAccess, c.accessTTL),
		RefreshToken: c.Issue(subject, KindRefresh, c.refreshTTL),
	}
}

// Verify checks the signature, structure and expiry of token. Every failure
// returns ErrInvalidToken so callers cannot tell rejection reasons apart.
func (c *TokenCodec) Verify(token string) (*Payload, error) {
	idx := strings.LastIndexByte(token, '.')
	if idx < 0 {
		return nil, ErrInvalidToken
	}
	segment, signature := token[:idx], token[idx+1:]

	// Compared in encoded form: the base64 decoder tolerates newlines and
	// stray padding bits.
	if !hmac.Equal([]byte(signature), []byte(c.Sign(segment))) {
		return nil, ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return nil, ErrInvalidToken
	}
	payload, err := decodePayload(raw)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if payload.ExpiresAt <= c.now().Unix() {
		return nil, ErrInvalidToken
	}
	return payload, nil
}

func decodePayload(raw []byte) (*Payload, error) {
	if err := checkPayloadKeys(raw); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var wp wirePayload
	if err := dec.Decode(&wp); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data")
	}
	if wp.Sub == nil || wp.Type == nil || wp.Exp == nil {
		return nil, errors.New("missing field")
	}
	if !wp.Type.Valid() {
		return nil, errors.New("unknown kind")
	}

	return &Payload{
		Subject:   *wp.Sub,
		Kind:      *wp.Type,
		ExpiresAt: *wp.Exp,
	}, nil
}

// checkPayloadKeys walks the top-level object and allows only the exact
// lowercase keys, each at most once. encoding/json alone would fold case and
// let a repeated key win.
func checkPayloadKeys(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return errors.New("payload is not an object")
	}

	seen := make(map[string]bool, 3)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		switch key {
		case "sub", "type", "exp":
		default:
			return fmt.Errorf("unexpected key %q", key)
		}
		if seen[key] {
			return fmt.Errorf("duplicate key %q", key)
		}
		seen[key] = true

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
	}
	return nil
}
