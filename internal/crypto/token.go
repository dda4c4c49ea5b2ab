package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"calcpad/internal/domain"
)

// ErrInvalidToken is returned by Verify for malformed or forged tokens.
var ErrInvalidToken = errors.New("invalid session token")

// macSize is the number of MAC bytes kept in a token.
const macSize = 16

var b64 = base64.RawURLEncoding

// Signer issues and verifies session tokens under one key.
type Signer struct {
	key [blake2b.Size256]byte
}

// NewSigner derives a signing key from secret. An empty secret selects a
// random key, so tokens do not survive a restart.
func NewSigner(secret string) (*Signer, error) {
	var material []byte
	if secret == "" {
		material = make([]byte, 32)
		if _, err := rand.Read(material); err != nil {
			return nil, fmt.Errorf("generate token key: %w", err)
		}
	} else {
		material = []byte(secret)
	}
	return &Signer{key: blake2b.Sum256(material)}, nil
}

// Issue returns a fresh session id and its token.
func (s *Signer) Issue() (domain.SessionID, string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", "", fmt.Errorf("generate session id: %w", err)
	}
	id := domain.SessionID(u.String())
	return id, string(id) + "." + b64.EncodeToString(s.mac(id)), nil
}

// Verify checks token and returns the session id it was issued for.
func (s *Signer) Verify(token string) (domain.SessionID, error) {
	raw, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", ErrInvalidToken
	}
	u, err := uuid.Parse(raw)
	if err != nil || u.String() != raw {
		return "", ErrInvalidToken
	}
	got, err := b64.DecodeString(sig)
	if err != nil {
		return "", ErrInvalidToken
	}
	id := domain.SessionID(raw)
	if subtle.ConstantTimeCompare(got, s.mac(id)) != 1 {
		return "", ErrInvalidToken
	}
	return id, nil
}

func (s *Signer) mac(id domain.SessionID) []byte {
	h, err := blake2b.New256(s.key[:])
	if err != nil {
		// Only reachable with a key longer than 64 bytes.
		panic(err)
	}
	h.Write([]byte(id))
	return h.Sum(nil)[:macSize]
}
