// Package state carries a form's value tree across requests as an opaque
// token, typically in a hidden input. Tokens are either signed (readable
// but tamper-proof) or encrypted with AES-GCM.
package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/goliatone/go-forms/pkg/forms"
)

const signatureSize = 16

var (
	ErrEmptyKey         = errors.New("state: key is empty")
	ErrInvalidFormat    = errors.New("state: invalid token format")
	ErrSignatureInvalid = errors.New("state: signature verification failed")
	ErrDecryptFailed    = errors.New("state: decryption failed")
)

// Encoder signs or encrypts value snapshots.
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder builds an Encoder. Keys that are not 32 bytes long are
// stretched with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if len(key) != 32 {
		sum := sha256.Sum256(key)
		key = sum[:]
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("state: cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("state: gcm: %w", err)
	}
	return &Encoder{key: key, gcm: gcm}, nil
}

// Encode packs values with msgpack. Sensitive snapshots are encrypted,
// others are signed.
func (e *Encoder) Encode(values map[string]any, sensitive bool) (string, error) {
	packed, err := msgpack.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("state: encode: %w", err)
	}
	if sensitive {
		return e.encrypt(packed)
	}
	return e.sign(packed), nil
}

// Decode reverses Encode. sensitive must match the flag used to encode.
func (e *Encoder) Decode(token string, sensitive bool) (map[string]any, error) {
	var (
		packed []byte
		err    error
	)
	if sensitive {
		packed, err = e.decrypt(token)
	} else {
		packed, err = e.verify(token)
	}
	if err != nil {
		return nil, err
	}

	var values map[string]any
	if err := msgpack.Unmarshal(packed, &values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}

// Snapshot encodes the current value tree of form.
func (e *Encoder) Snapshot(form *forms.Form, sensitive bool) (string, error) {
	if form == nil {
		return "", errors.New("state: form is nil")
	}
	return e.Encode(form.Values(), sensitive)
}

// Restore decodes token and assigns it to form through SetValue.
func (e *Encoder) Restore(form *forms.Form, token string, sensitive bool) error {
	if form == nil {
		return errors.New("state: form is nil")
	}
	values, err := e.Decode(token, sensitive)
	if err != nil {
		return err
	}
	if err := form.SetValue(values); err != nil {
		return fmt.Errorf("state: restore: %w", err)
	}
	return nil
}

// sign produces "payload.signature", both base64url without padding.
func (e *Encoder) sign(data []byte) string {
	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	sig := mac.Sum(nil)[:signatureSize]
	return base64.RawURLEncoding.EncodeToString(data) + "." + base64.RawURLEncoding.EncodeToString(sig)
}

func (e *Encoder) verify(token string) ([]byte, error) {
	payload, signature, ok := strings.Cut(token, ".")
	if !ok {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	sig, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	if !hmac.Equal(sig, mac.Sum(nil)[:signatureSize]) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (e *Encoder) encrypt(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("state: nonce: %w", err)
	}
	sealed := e.gcm.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (e *Encoder) decrypt(token string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	size := e.gcm.NonceSize()
	if len(sealed) < size {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrInvalidFormat)
	}
	data, err := e.gcm.Open(nil, sealed[:size], sealed[size:], nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return data, nil
}
