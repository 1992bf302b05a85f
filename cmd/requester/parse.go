package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/reoring/erracc"
	"github.com/reoring/erracc/rules"
	"github.com/reoring/erracc/source"
)

// Host is a single endpoint to poll.
type Host struct {
	URL            *url.URL
	ExpectedStatus int
}

// Config is the validated requester configuration.
type Config struct {
	Interval time.Duration
	Hosts    []Host
}

var (
	fieldInterval       = erracc.MustFieldName("interval")
	fieldHosts          = erracc.MustFieldName("hosts")
	fieldURL            = erracc.MustFieldName("url")
	fieldExpectedStatus = erracc.MustFieldName("expected_status")
)

// ProbeFunc requests u and returns the received status code.
type ProbeFunc func(ctx context.Context, u *url.URL) (int, error)

func newHost(u *url.URL, status int) Host { return Host{URL: u, ExpectedStatus: status} }

func newConfig(interval time.Duration, hosts []Host) Config {
	return Config{Interval: interval, Hosts: hosts}
}

// parseAccumulated validates the whole document and reports every defect. When
// probe is not nil, each syntactically valid URL is requested once as part of
// validation.
func parseAccumulated(ctx context.Context, log *slog.Logger, doc source.Object, probe ProbeFunc) (Config, error) {
	acc := erracc.New(erracc.WithLogger(log))

	acc.Field(fieldInterval, erracc.Then(erracc.From(doc.String("interval")), rules.Duration))

	rawHosts, err := doc.Array("hosts")
	if err != nil {
		acc.Field(fieldHosts, erracc.Fail[[]Host](err))
	} else {
		hosts := erracc.BeginArray[Host](acc, fieldHosts)
		for i, raw := range rawHosts {
			obj, err := source.AsObject(raw)
			if err != nil {
				hosts.AddElement(i, erracc.Fail[Host](err))
				continue
			}
			parseHost(ctx, hosts.BeginStructAt(i), obj, probe)
		}
		hosts.Finish()
	}

	return erracc.AnalyseWith(acc, erracc.Construct2(newConfig))
}

func parseHost(ctx context.Context, s *erracc.StructScope, obj source.Object, probe ProbeFunc) {
	u := s.BeginField(fieldURL).
		AddResult(erracc.Then(erracc.From(obj.String("url")), rules.URL))
	if probe != nil {
		u.ValidatePrevious(erracc.Check1(func(target *url.URL) (int, error) {
			return probe(ctx, target)
		}))
		u.FinishWith(erracc.Nth[*url.URL](2, 0))
	} else {
		u.Finish()
	}

	s.Field(fieldExpectedStatus, erracc.Then(erracc.From(obj.Int("expected_status")), rules.HTTPStatus))
	s.FinishWith(erracc.Construct2(newHost))
}

// parseFailFast is the conventional approach: it returns on the first error,
// so only one defect is reported per run.
func parseFailFast(ctx context.Context, doc source.Object, probe ProbeFunc) (Config, error) {
	rawInterval, err := doc.String("interval")
	if err != nil {
		return Config{}, fmt.Errorf("interval: %w", err)
	}
	interval, err := rules.Duration(rawInterval)
	if err != nil {
		return Config{}, fmt.Errorf("interval: %w", err)
	}

	rawHosts, err := doc.Array("hosts")
	if err != nil {
		return Config{}, fmt.Errorf("hosts: %w", err)
	}
	hosts := make([]Host, 0, len(rawHosts))
	for i, raw := range rawHosts {
		host, err := parseHostFailFast(ctx, raw, probe)
		if err != nil {
			return Config{}, fmt.Errorf("hosts[%d]: %w", i, err)
		}
		hosts = append(hosts, host)
	}
	return newConfig(interval, hosts), nil
}

func parseHostFailFast(ctx context.Context, raw any, probe ProbeFunc) (Host, error) {
	obj, err := source.AsObject(raw)
	if err != nil {
		return Host{}, err
	}
	rawURL, err := obj.String("url")
	if err != nil {
		return Host{}, fmt.Errorf("url: %w", err)
	}
	u, err := rules.URL(rawURL)
	if err != nil {
		return Host{}, fmt.Errorf("url: %w", err)
	}
	if probe != nil {
		if _, err := probe(ctx, u); err != nil {
			return Host{}, fmt.Errorf("url: %w", err)
		}
	}
	rawStatus, err := obj.Int("expected_status")
	if err != nil {
		return Host{}, fmt.Errorf("expected_status: %w", err)
	}
	status, err := rules.HTTPStatus(rawStatus)
	if err != nil {
		return Host{}, fmt.Errorf("expected_status: %w", err)
	}
	return newHost(u, status), nil
}
