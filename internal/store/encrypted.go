package store

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/jwalitptl/clinic-api/pkg/security"
)

// EncryptedStore wraps another Store and encrypts slot values at rest.
// Clinical payloads (patient records, x-ray images) then never touch the
// backend in the clear.
type EncryptedStore struct {
	inner Store
	enc   security.Encryptor
}

func NewEncryptedStore(inner Store, passphrase string) (*EncryptedStore, error) {
	enc, err := security.NewAESEncryptorFromPassphrase(passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store encryption: %w", err)
	}
	return &EncryptedStore{inner: inner, enc: enc}, nil
}

func (s *EncryptedStore) Get(ctx context.Context, slot string) (string, bool, error) {
	raw, found, err := s.inner.Get(ctx, slot)
	if err != nil || !found {
		return "", found, err
	}
	sealed, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", false, fmt.Errorf("failed to decode slot %s: %w", slot, err)
	}
	plain, err := s.enc.Decrypt(sealed)
	if err != nil {
		return "", false, fmt.Errorf("failed to decrypt slot %s: %w", slot, err)
	}
	return string(plain), true, nil
}

func (s *EncryptedStore) Set(ctx context.Context, slot, value string) error {
	sealed, err := s.enc.Encrypt([]byte(value))
	if err != nil {
		return fmt.Errorf("failed to encrypt slot %s: %w", slot, err)
	}
	return s.inner.Set(ctx, slot, base64.StdEncoding.EncodeToString(sealed))
}

func (s *EncryptedStore) Delete(ctx context.Context, slot string) error {
	return s.inner.Delete(ctx, slot)
}

func (s *EncryptedStore) Close() error {
	return s.inner.Close()
}
