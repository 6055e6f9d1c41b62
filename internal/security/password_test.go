package security

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cheaper cost keeps the suite fast; the record format is identical.
var testScryptParams = ScryptParams{N: 1 << 10, R: 8, P: 1, KeyLen: 64, SaltLen: 16}

func newTestHasher(t *testing.T) *PasswordHasher {
	t.Helper()
	h, err := NewPasswordHasher(testScryptParams)
	require.NoError(t, err)
	return h
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy unavailable") }

func TestNewPasswordHasher(t *testing.T) {
	tests := []struct {
		name    string
		params  ScryptParams
		wantErr bool
	}{
		{name: "defaults", params: DefaultScryptParams},
		{name: "N not power of two", params: ScryptParams{N: 1000, R: 8, P: 1, KeyLen: 64, SaltLen: 16}, wantErr: true},
		{name: "N of one", params: ScryptParams{N: 1, R: 8, P: 1, KeyLen: 64, SaltLen: 16}, wantErr: true},
		{name: "zero r", params: ScryptParams{N: 1024, P: 1, KeyLen: 64, SaltLen: 16}, wantErr: true},
		{name: "short salt", params: ScryptParams{N: 1024, R: 8, P: 1, KeyLen: 64, SaltLen: 8}, wantErr: true},
		{name: "zero key length", params: ScryptParams{N: 1024, R: 8, P: 1, SaltLen: 16}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPasswordHasher(tt.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMisconfigured)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPasswordHasher_RecordFormat(t *testing.T) {
	h := newTestHasher(t)

	record, err := h.Hash("s3cret-pass")
	require.NoError(t, err)

	parts := strings.Split(record, "$")
	require.Len(t, parts, 3)
	assert.Equal(t, "scrypt", parts[0])

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Len(t, salt, 16)

	digest, err := base64.StdEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	assert.Len(t, digest, 64)
}

func TestPasswordHasher_Verify(t *testing.T) {
	h := newTestHasher(t)

	for _, password := range []string{"password1", "", "ünïcødé pass", strings.Repeat("x", 200)} {
		record, err := h.Hash(password)
		require.NoError(t, err)
		assert.True(t, h.Verify(password, record), "password %q", password)
		assert.False(t, h.Verify(password+"!", record), "password %q", password)
	}
}

func TestPasswordHasher_FreshSaltPerHash(t *testing.T) {
	h := newTestHasher(t)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestPasswordHasher_ShorterStoredDigest(t *testing.T) {
	h := newTestHasher(t)

	// The target length comes from the stored digest, not from the hasher.
	salt := []byte("0123456789abcdef")
	digest, err := h.derive("pw", salt, 32)
	require.NoError(t, err)
	record := "scrypt$" + base64.StdEncoding.EncodeToString(salt) + "$" + base64.StdEncoding.EncodeToString(digest)

	assert.True(t, h.Verify("pw", record))
	assert.False(t, h.Verify("other", record))
}

func TestPasswordHasher_VerifyMalformedRecords(t *testing.T) {
	h := newTestHasher(t)
	valid, err := h.Hash("pw")
	require.NoError(t, err)
	parts := strings.Split(valid, "$")

	tests := []struct {
		name   string
		record string
	}{
		{name: "empty", record: ""},
		{name: "no dollar", record: "scryptabc"},
		{name: "two fields", record: "scrypt$" + parts[1]},
		{name: "unknown algorithm", record: "bcrypt$" + parts[1] + "$" + parts[2]},
		{name: "uppercase tag", record: "SCRYPT$" + parts[1] + "$" + parts[2]},
		{name: "bad salt base64", record: "scrypt$***$" + parts[2]},
		{name: "bad digest base64", record: "scrypt$" + parts[1] + "$***"},
		{name: "extra field", record: valid + "$extra"},
		{name: "empty salt", record: "scrypt$$" + parts[2]},
		{name: "empty digest", record: "scrypt$" + parts[1] + "$"},
		{name: "oversized digest", record: "scrypt$" + parts[1] + "$" + base64.StdEncoding.EncodeToString(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("pw", tt.record))
			})
		})
	}
}

func TestPasswordHasher_HashFailsWithoutEntropy(t *testing.T) {
	h := newTestHasher(t)
	h.rand = failingReader{}

	_, err := h.Hash("pw")
	assert.Error(t, err)
}
