// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-trackspense/internal/config"
	"github.com/MKhiriev/go-trackspense/internal/crypto"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/mock"
)

func TestSealedKeyValueStore_NeverPersistsPlaintext(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryKeyValueStore()
	s := NewSealedKeyValueStore(inner, crypto.NewSealer(), "app-secret")

	require.NoError(t, s.Set(ctx, "token", "abc.def.ghi"))

	raw, err := inner.Get(ctx, "token")
	require.NoError(t, err)
	assert.NotContains(t, raw, "abc.def.ghi")

	salt, err := inner.Get(ctx, SaltKey)
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, decoded, 16)

	got, err := s.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)
}

func TestSealedKeyValueStore_MissingKey(t *testing.T) {
	s := NewSealedKeyValueStore(NewMemoryKeyValueStore(), crypto.NewSealer(), "app-secret")

	_, err := s.Get(context.Background(), "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSealedKeyValueStore_WrongSecret(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryKeyValueStore()

	require.NoError(t, NewSealedKeyValueStore(inner, crypto.NewSealer(), "right").Set(ctx, "token", "abc"))

	_, err := NewSealedKeyValueStore(inner, crypto.NewSealer(), "wrong").Get(ctx, "token")
	assert.ErrorIs(t, err, ErrCorruptedValue)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestSealedKeyValueStore_RemoveDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockKeyValueStore(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	inner.EXPECT().Remove(gomock.Any(), "token").Return(nil)

	s := NewSealedKeyValueStore(inner, sealer, "secret")
	assert.NoError(t, s.Remove(context.Background(), "token"))
}

func TestSealedKeyValueStore_DerivesKeyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockKeyValueStore(ctrl)
	sealer := mock.NewMockSealer(ctrl)
	key := []byte(strings.Repeat("k", 32))

	gomock.InOrder(
		inner.EXPECT().Get(gomock.Any(), SaltKey).Return("", ErrKeyNotFound),
		sealer.EXPECT().GenerateSalt().Return([]byte("0123456789abcdef"), nil),
		inner.EXPECT().Set(gomock.Any(), SaltKey, base64.StdEncoding.EncodeToString([]byte("0123456789abcdef"))).Return(nil),
		sealer.EXPECT().DeriveKey("secret", []byte("0123456789abcdef")).Return(key),
	)
	sealer.EXPECT().Seal(gomock.Any(), key).Return("sealed", nil).Times(2)
	inner.EXPECT().Set(gomock.Any(), gomock.Any(), "sealed").Return(nil).Times(2)

	s := NewSealedKeyValueStore(inner, sealer, "secret")
	require.NoError(t, s.Set(context.Background(), "token", "a"))
	require.NoError(t, s.Set(context.Background(), "user", "b"))
}

func TestSealedKeyValueStore_SaltReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockKeyValueStore(ctrl)
	sealer := mock.NewMockSealer(ctrl)

	inner.EXPECT().Get(gomock.Any(), SaltKey).Return("", errors.New("disk gone"))

	s := NewSealedKeyValueStore(inner, sealer, "secret")
	err := s.Set(context.Background(), "token", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading salt")
}

func TestNewStorages_SealedWhenSecretSet(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	s, err := NewStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, "app-secret", logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Session.Set(ctx, "token", "plain-token"))

	var raw string
	require.NoError(t, s.db.QueryRowContext(ctx, "SELECT value FROM session_kv WHERE key = 'token'").Scan(&raw))
	assert.NotContains(t, raw, "plain-token")

	got, err := s.Session.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "plain-token", got)
}
