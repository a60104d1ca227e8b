// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/MKhiriev/tusky-uploader/internal/config"
	"github.com/MKhiriev/tusky-uploader/internal/console"
	"github.com/MKhiriev/tusky-uploader/internal/logger"
	"github.com/MKhiriev/tusky-uploader/models"
)

const (
	// Pause between finishing one account and starting the next: 60s plus up
	// to 90s of jitter. The first account of a cycle starts immediately.
	interAccountDelayBase   = 60 * time.Second
	interAccountDelayJitter = 90 * time.Second

	// Pause between upload rounds within one account.
	interRoundDelay = 2 * time.Second
)

// Runner drives the endless daily cycle: one full pass over all accounts,
// then a visible countdown until the next pass. It owns failure isolation:
// one account's error is logged and never stops the cycle, while context
// cancellation stops everything promptly.
type Runner struct {
	auth      AuthService
	uploads   UploadService
	accounts  []models.Account
	proxies   []string
	scheduler config.Scheduler
	log       *logger.Logger
	out       io.Writer

	// sleep and now are swappable in tests.
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// NewRunner wires a [Runner] over the given services, accounts and proxies.
// The countdown is written to out.
func NewRunner(services *Services, accounts []models.Account, proxies []string, scheduler config.Scheduler, log *logger.Logger, out io.Writer) *Runner {
	return &Runner{
		auth:      services.AuthService,
		uploads:   services.UploadService,
		accounts:  accounts,
		proxies:   proxies,
		scheduler: scheduler,
		log:       log,
		out:       out,
		sleep:     sleepCtx,
		now:       time.Now,
	}
}

// Run executes cycles until ctx is cancelled. Returns [ErrNoAccounts] when
// there is nothing to run, otherwise only the context's error.
func (r *Runner) Run(ctx context.Context) error {
	if len(r.accounts) == 0 {
		return ErrNoAccounts
	}

	for cycle := 1; ; cycle++ {
		r.log.Info().Int("cycle", cycle).Int("accounts", len(r.accounts)).Msg("starting cycle")

		if err := r.runCycle(ctx); err != nil {
			return err
		}

		r.log.Info().
			Int("cycle", cycle).
			Time("nextRun", r.now().Add(r.scheduler.CycleInterval)).
			Msg("cycle complete")
		if err := r.countdown(ctx, r.scheduler.CycleInterval); err != nil {
			return err
		}
	}
}

// runCycle processes every account exactly once in a fresh random order.
// Proxy hints wrap around the list by shuffled position; the hint only
// matters the first time an address is seen, after that the session store's
// sticky binding wins.
func (r *Runner) runCycle(ctx context.Context) error {
	order := rand.Perm(len(r.accounts))

	for position, idx := range order {
		if len(r.proxies) > 0 {
			r.accounts[idx].Proxy = r.proxies[position%len(r.proxies)]
		}
		if position > 0 {
			delay := interAccountDelayBase + time.Duration(rand.Int64N(int64(interAccountDelayJitter)))
			r.log.Debug().Dur("delay", delay).Msg("waiting before next account")
			if err := r.sleep(ctx, delay); err != nil {
				return err
			}
		}

		account := &r.accounts[idx]
		if err := r.processAccount(ctx, account); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			r.log.Error().Err(err).Int("account", account.Index).Msg("account failed, continuing with next")
		}
	}

	return nil
}

// processAccount runs the full per-account sequence: login, storage check,
// vault creation and the configured number of upload rounds.
func (r *Runner) processAccount(ctx context.Context, account *models.Account) error {
	session, err := r.auth.Login(ctx, account)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	r.log.Info().Int("account", account.Index).Str("address", session.Address).Msg("processing account")

	if _, err := r.uploads.FetchStorageInfo(ctx, account); err != nil {
		return fmt.Errorf("storage info: %w", err)
	}

	vault, err := r.uploads.CreatePublicVault(ctx, account)
	if err != nil {
		return fmt.Errorf("create vault: %w", err)
	}

	for round := 0; round < r.scheduler.UploadsPerAccount; round++ {
		if round > 0 {
			if err := r.sleep(ctx, interRoundDelay); err != nil {
				return err
			}
		}
		if err := r.uploads.UploadFiles(ctx, account, vault); err != nil {
			return fmt.Errorf("upload round %d: %w", round+1, err)
		}
	}

	return nil
}

// countdown blocks for the cycle interval, redrawing a once-per-second
// remaining-time line. Cancellation interrupts it immediately.
func (r *Runner) countdown(ctx context.Context, interval time.Duration) error {
	deadline := r.now().Add(interval)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	console.Overwrite(r.out, console.FormatCountdown(interval))
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return ctx.Err()
		case <-ticker.C:
			remaining := deadline.Sub(r.now())
			if remaining <= 0 {
				console.Overwrite(r.out, "")
				return nil
			}
			console.Overwrite(r.out, console.FormatCountdown(remaining))
		}
	}
}
