// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/tusky-uploader/internal/fingerprint"
	"github.com/MKhiriev/tusky-uploader/internal/logger"
	"github.com/MKhiriev/tusky-uploader/models"
)

// fileSessionStore persists session records as a line-delimited JSON file:
// one record per line. Every mutation rewrites the whole file from the
// in-memory map. This trades efficiency for a dead-simple, inspectable
// format; it is safe only under the strictly sequential execution model —
// a concurrent redesign must add file locking or an explicit flush
// discipline.
type fileSessionStore struct {
	path string
	log  *logger.Logger
}

// NewFileSessionStore constructs a [SessionStore] backed by the
// line-delimited JSON file at path. The file is created lazily on the first
// write; a missing file reads as an empty store.
func NewFileSessionStore(path string, log *logger.Logger) SessionStore {
	return &fileSessionStore{path: path, log: log}
}

// GetOrCreate implements [SessionStore].
func (s *fileSessionStore) GetOrCreate(address string) (models.SessionRecord, error) {
	records, err := s.load()
	if err != nil {
		return models.SessionRecord{}, err
	}

	addr := strings.ToLower(address)
	if record, ok := records[addr]; ok {
		return record, nil
	}

	userAgent, fp := fingerprint.New()
	record := models.SessionRecord{
		Address:     addr,
		UserAgent:   userAgent,
		Fingerprint: fp,
	}
	records[addr] = record
	if err := s.save(records); err != nil {
		return models.SessionRecord{}, err
	}

	s.log.Info().Str("address", addr).Msg("created session record with fresh fingerprint")
	return record, nil
}

// BindProxy implements [SessionStore].
func (s *fileSessionStore) BindProxy(address, proxy string) error {
	records, err := s.load()
	if err != nil {
		return err
	}

	addr := strings.ToLower(address)
	record, ok := records[addr]
	if !ok {
		return fmt.Errorf("bind proxy: no session record for %s", addr)
	}
	if record.Proxy != "" {
		// Sticky: the first bound proxy wins for the address's lifetime.
		return nil
	}

	record.Proxy = proxy
	records[addr] = record
	if err := s.save(records); err != nil {
		return err
	}

	s.log.Info().Str("address", addr).Str("proxy", proxy).Msg("bound proxy to address")
	return nil
}

// Put implements [SessionStore].
func (s *fileSessionStore) Put(record models.SessionRecord) error {
	records, err := s.load()
	if err != nil {
		return err
	}

	record.Address = strings.ToLower(record.Address)
	records[record.Address] = record
	return s.save(records)
}

// load parses the backing file into a map keyed by lower-cased address.
// Each line is parsed independently; malformed lines are skipped with a
// warning so one corrupted record never takes down the whole store.
func (s *fileSessionStore) load() (map[string]models.SessionRecord, error) {
	records := make(map[string]models.SessionRecord)

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return records, nil
		}
		return nil, fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record models.SessionRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil || record.Address == "" {
			s.log.Warn().Str("line", line).Msg("skipping malformed session record")
			continue
		}
		records[strings.ToLower(record.Address)] = record
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	return records, nil
}

// save serializes the whole map back out, one record per line, sorted by
// address for a stable on-disk order.
func (s *fileSessionStore) save(records map[string]models.SessionRecord) error {
	addresses := make([]string, 0, len(records))
	for addr := range records {
		addresses = append(addresses, addr)
	}
	sort.Strings(addresses)

	var buf bytes.Buffer
	for _, addr := range addresses {
		line, err := json.Marshal(records[addr])
		if err != nil {
			return fmt.Errorf("marshal session record: %w", err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
