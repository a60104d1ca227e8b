// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrUnauthorized is returned when the API answers with HTTP 401. The service
// layer matches it with errors.Is to trigger a one-shot token refresh.
var ErrUnauthorized = errors.New("unauthorized")
