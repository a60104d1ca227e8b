// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/tusky-uploader/internal/logger"
)

func newImageDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data-"+name), 0o600))
	}
	return dir
}

func TestLocalImagePool_Pick(t *testing.T) {
	dir := newImageDir(t, "a.jpg", "b.JPEG", "c.png", "notes.txt", "d.gif")
	pool := NewLocalImagePool(dir, logger.Nop())

	files, err := pool.Pick(2)
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, file := range files {
		assert.NotContains(t, []string{"notes.txt", "d.gif"}, file.Name)
		assert.Equal(t, "image/jpeg", file.ContentType)
		assert.Equal(t, []byte("data-"+file.Name), file.Data)
	}
}

func TestLocalImagePool_CountClampedToPoolSize(t *testing.T) {
	dir := newImageDir(t, "only.jpg")
	pool := NewLocalImagePool(dir, logger.Nop())

	files, err := pool.Pick(3)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "only.jpg", files[0].Name)
}

func TestLocalImagePool_EmptyDirectory(t *testing.T) {
	pool := NewLocalImagePool(newImageDir(t, "readme.md"), logger.Nop())

	_, err := pool.Pick(1)
	require.ErrorIs(t, err, ErrNoImages)
}

func TestLocalImagePool_MissingDirectory(t *testing.T) {
	pool := NewLocalImagePool(filepath.Join(t.TempDir(), "missing"), logger.Nop())

	_, err := pool.Pick(1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoImages)
}
