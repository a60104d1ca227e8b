// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/tusky-uploader/internal/adapter"
	"github.com/MKhiriev/tusky-uploader/internal/logger"
)

// imageExtensions lists the file extensions the pool picks up, lower-cased.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

type localImagePool struct {
	dir string
	log *logger.Logger
}

// NewLocalImagePool builds an [ImagePool] over the image files in dir. The
// directory is re-scanned on every Pick so images can be added or removed
// while the process runs.
func NewLocalImagePool(dir string, log *logger.Logger) ImagePool {
	return &localImagePool{dir: dir, log: log}
}

// Pick implements [ImagePool].
func (p *localImagePool) Pick(count int) ([]adapter.UploadFile, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("read image directory %s: %w", p.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, p.dir)
	}

	rand.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	if count > len(names) {
		count = len(names)
	}

	files := make([]adapter.UploadFile, 0, count)
	for _, name := range names[:count] {
		data, err := os.ReadFile(filepath.Join(p.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", name, err)
		}
		files = append(files, adapter.UploadFile{
			Name: name,
			// The upstream web client always declares JPEG regardless of the
			// actual file type, and the API accepts it.
			ContentType: "image/jpeg",
			Data:        data,
		})
	}

	p.log.Debug().Int("picked", len(files)).Int("pool", len(names)).Msg("selected upload batch")
	return files, nil
}
