// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/tusky-uploader/internal/adapter"
	"github.com/MKhiriev/tusky-uploader/internal/config"
	"github.com/MKhiriev/tusky-uploader/internal/logger"
	"github.com/MKhiriev/tusky-uploader/internal/store"
)

type Services struct {
	AuthService   AuthService
	UploadService UploadService
	ImagePool     ImagePool
}

func NewServices(tuskyAdapter adapter.TuskyAdapter, sessionStore store.SessionStore, cfg config.Storage, log *logger.Logger) *Services {
	authSvc := NewAuthService(tuskyAdapter, sessionStore, log)
	images := NewLocalImagePool(cfg.ImagesDir, log)

	return &Services{
		AuthService:   authSvc,
		UploadService: NewUploadService(tuskyAdapter, authSvc, images, log),
		ImagePool:     images,
	}
}
