// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	assert.Contains(t, FormatCountdown(5*time.Second), "next cycle in 00:00:05")
	assert.Contains(t, FormatCountdown(90*time.Second), "next cycle in 00:01:30")
	assert.Contains(t, FormatCountdown(25*time.Hour+61*time.Second), "next cycle in 25:01:01")
}

func TestFormatCountdown_ClampsNegative(t *testing.T) {
	assert.Contains(t, FormatCountdown(-3*time.Second), "next cycle in 00:00:00")
}

func TestOverwrite(t *testing.T) {
	var buf bytes.Buffer

	Overwrite(&buf, "first")
	Overwrite(&buf, "second")

	out := buf.String()
	assert.Equal(t, "\r\x1b[Kfirst\r\x1b[Ksecond", out)
}
