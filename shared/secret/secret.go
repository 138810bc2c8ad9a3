package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrEmptyKey   = errors.New("secret: empty master key")
	ErrCiphertext = errors.New("secret: malformed ciphertext")
)

// Box seals small blobs (channel credentials) with XChaCha20-Poly1305.
// The AEAD key is derived from the master secret with HKDF-SHA256 bound to a purpose label.
type Box struct {
	key []byte
}

func New(master, purpose string) (*Box, error) {
	if master == "" {
		return nil, ErrEmptyKey
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(master), nil, []byte(purpose)), key); err != nil {
		return nil, fmt.Errorf("secret: deriving key: %w", err)
	}

	return &Box{key: key}, nil
}

// Seal encrypts plaintext bound to aad and returns base64(nonce || ciphertext).
func (b *Box) Seal(plaintext, aad []byte) (string, error) {
	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return "", fmt.Errorf("secret: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("secret: nonce: %w", err)
	}

	return base64.StdEncoding.EncodeToString(aead.Seal(nonce, nonce, plaintext, aad)), nil
}

func (b *Box) Open(sealed string, aad []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, ErrCiphertext
	}

	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}

	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return nil, ErrCiphertext
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrCiphertext
	}

	return plaintext, nil
}
