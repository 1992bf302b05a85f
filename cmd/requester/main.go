// Command requester sends HTTP GET requests to all configured hosts in a
// configured interval and logs whether each answered with the expected status.
//
// By default all errors of the config file are accumulated and reported at
// once. Run with -fail-fast to see the conventional behaviour where only the
// first error is reported.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	json "github.com/goccy/go-json"

	"github.com/reoring/erracc"
	"github.com/reoring/erracc/i18n"
	"github.com/reoring/erracc/internal/logger"
	"github.com/reoring/erracc/source"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	settings, err := loadSettings(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	level, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	format := logger.Format(settings.LogFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		fmt.Fprintf(stderr, "invalid log format %q\n", settings.LogFormat)
		return 2
	}
	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(slog.String("cmd", "requester")),
	)
	i18n.SetLanguage(settings.Lang)

	data, err := os.ReadFile(settings.ConfigPath)
	if err != nil {
		log.Error("reading config", slog.Any("error", err))
		return 1
	}
	docFormat := source.FormatFromPath(settings.ConfigPath)
	if docFormat == source.FormatJSON {
		dups, err := source.DuplicateKeysJSON(data)
		if err != nil {
			log.Error("decoding config", slog.Any("error", err))
			return 1
		}
		if dups != nil {
			reportConfigError(stdout, stderr, dups, settings.JSON)
			return 1
		}
	}
	doc, err := source.Decode(data, docFormat)
	if err != nil {
		log.Error("decoding config", slog.Any("error", err))
		return 1
	}

	probe := httpProbe(&http.Client{}, settings.Timeout)
	var validationProbe ProbeFunc
	if settings.Probe {
		validationProbe = probe
	}

	var cfg Config
	if settings.FailFast {
		cfg, err = parseFailFast(ctx, doc, validationProbe)
	} else {
		cfg, err = parseAccumulated(ctx, log, doc, validationProbe)
	}
	if err != nil {
		reportConfigError(stdout, stderr, err, settings.JSON)
		return 1
	}
	log.Info("config loaded", slog.Int("hosts", len(cfg.Hosts)), slog.Duration("interval", cfg.Interval))

	if settings.Once {
		pollRound(ctx, log, cfg, probe)
		return 0
	}
	poll(ctx, log, cfg, probe)
	return 0
}

func reportConfigError(stdout, stderr io.Writer, err error, asJSON bool) {
	acc, ok := erracc.AsAccumulated(err)
	if !asJSON || !ok {
		fmt.Fprintln(stderr, err)
		return
	}
	out, mErr := json.MarshalIndent(acc, "", "  ")
	if mErr != nil {
		fmt.Fprintln(stderr, errors.Join(err, mErr))
		return
	}
	fmt.Fprintln(stdout, string(out))
}
