package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/reoring/erracc/i18n"
)

// httpProbe returns a ProbeFunc issuing GET requests with the given timeout.
func httpProbe(client *http.Client, timeout time.Duration) ProbeFunc {
	return func(ctx context.Context, u *url.URL) (int, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", i18n.T(i18n.CodeUnreachable, nil), err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", i18n.T(i18n.CodeUnreachable, nil), err)
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
}

// pollRound requests every host once and logs whether the expected status
// was returned. It reports how many hosts matched.
func pollRound(ctx context.Context, log *slog.Logger, cfg Config, probe ProbeFunc) int {
	matched := 0
	for _, host := range cfg.Hosts {
		status, err := probe(ctx, host.URL)
		if err != nil {
			log.Warn("request failed", slog.String("url", host.URL.String()), slog.Any("error", err))
			continue
		}
		ok := status == host.ExpectedStatus
		if ok {
			matched++
		}
		log.Info("requested",
			slog.String("url", host.URL.String()),
			slog.Int("expected_status", host.ExpectedStatus),
			slog.Int("status", status),
			slog.Bool("match", ok),
		)
	}
	return matched
}

// poll runs pollRound every cfg.Interval until ctx is done.
func poll(ctx context.Context, log *slog.Logger, cfg Config, probe ProbeFunc) {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()
	for {
		pollRound(ctx, log, cfg, probe)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
