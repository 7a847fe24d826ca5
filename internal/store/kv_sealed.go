// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-trackspense/internal/crypto"
)

// SaltKey is the key under which the sealed store keeps its Argon2id salt in
// clear. It is never sealed itself.
const SaltKey = "sealing_salt"

// sealedKeyValueStore encrypts every value before handing it to the inner
// store. The key is derived lazily on first use: the salt is read from the
// inner store or generated and saved there.
type sealedKeyValueStore struct {
	inner  KeyValueStore
	sealer crypto.Sealer
	secret string

	mu  sync.Mutex
	key []byte
}

// NewSealedKeyValueStore wraps inner so that values are stored sealed with a
// key derived from secret.
func NewSealedKeyValueStore(inner KeyValueStore, sealer crypto.Sealer, secret string) KeyValueStore {
	return &sealedKeyValueStore{
		inner:  inner,
		sealer: sealer,
		secret: secret,
	}
}

func (s *sealedKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	blob, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	sealingKey, err := s.sealingKey(ctx)
	if err != nil {
		return "", err
	}

	value, err := s.sealer.Open(blob, sealingKey)
	if err != nil {
		return "", fmt.Errorf("%w (key %q): %w", ErrCorruptedValue, key, err)
	}
	return value, nil
}

func (s *sealedKeyValueStore) Set(ctx context.Context, key, value string) error {
	sealingKey, err := s.sealingKey(ctx)
	if err != nil {
		return err
	}

	blob, err := s.sealer.Seal(value, sealingKey)
	if err != nil {
		return fmt.Errorf("error sealing value: %w", err)
	}
	return s.inner.Set(ctx, key, blob)
}

func (s *sealedKeyValueStore) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, key)
}

func (s *sealedKeyValueStore) sealingKey(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		return s.key, nil
	}

	salt, err := s.loadOrCreateSalt(ctx)
	if err != nil {
		return nil, err
	}

	s.key = s.sealer.DeriveKey(s.secret, salt)
	return s.key, nil
}

func (s *sealedKeyValueStore) loadOrCreateSalt(ctx context.Context) ([]byte, error) {
	encoded, err := s.inner.Get(ctx, SaltKey)
	switch {
	case err == nil:
		salt, decodeErr := base64.StdEncoding.DecodeString(encoded)
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: salt: %w", ErrCorruptedValue, decodeErr)
		}
		return salt, nil
	case !errors.Is(err, ErrKeyNotFound):
		return nil, fmt.Errorf("error reading salt: %w", err)
	}

	salt, err := s.sealer.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}
	if err := s.inner.Set(ctx, SaltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, fmt.Errorf("error saving salt: %w", err)
	}
	return salt, nil
}
