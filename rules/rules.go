// Package rules provides small fallible checks for use with erracc. Every
// check returns the (possibly converted) value or a *Violation, so calls can be
// recorded directly with erracc.From.
package rules

import (
	"cmp"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/reoring/erracc/i18n"
)

// Violation codes.
const (
	CodeRequired      = i18n.CodeRequired
	CodeTooSmall      = i18n.CodeTooSmall
	CodeTooBig        = i18n.CodeTooBig
	CodeTooShort      = i18n.CodeTooShort
	CodeTooLong       = i18n.CodeTooLong
	CodeInvalidEnum   = i18n.CodeInvalidEnum
	CodeInvalidFormat = i18n.CodeInvalidFormat
)

// Sentinels for errors.Is; a Violation matches the sentinel with the same code.
var (
	ErrRequired      = &Violation{Code: CodeRequired}
	ErrTooSmall      = &Violation{Code: CodeTooSmall}
	ErrTooBig        = &Violation{Code: CodeTooBig}
	ErrTooShort      = &Violation{Code: CodeTooShort}
	ErrTooLong       = &Violation{Code: CodeTooLong}
	ErrInvalidEnum   = &Violation{Code: CodeInvalidEnum}
	ErrInvalidFormat = &Violation{Code: CodeInvalidFormat}
)

// Violation is a failed rule.
type Violation struct {
	Code    string
	Message string
	// Params carries structured parameters (e.g., {"min":1}) for i18n and
	// observability.
	Params map[string]any
	Cause  error // Optional: underlying error.
}

func (v *Violation) Error() string {
	if v.Message == "" {
		return v.Code
	}
	return v.Message
}

func (v *Violation) Unwrap() error { return v.Cause }

// Is matches another Violation with the same code.
func (v *Violation) Is(target error) bool {
	t, ok := target.(*Violation)
	return ok && t.Code == v.Code
}

func violation(code string, cause error, kv ...any) *Violation {
	params := map[string]any{}
	data := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		k := fmt.Sprint(kv[i])
		params[k] = kv[i+1]
		data[k] = fmt.Sprint(kv[i+1])
	}
	return &Violation{Code: code, Message: i18n.T(code, data), Params: params, Cause: cause}
}

// NonZero fails for the zero value of T.
func NonZero[T comparable](v T) (T, error) {
	var zero T
	if v == zero {
		return v, violation(CodeRequired, nil)
	}
	return v, nil
}

// Min fails when v < min.
func Min[T cmp.Ordered](v, min T) (T, error) {
	if v < min {
		return v, violation(CodeTooSmall, nil, "min", min)
	}
	return v, nil
}

// Max fails when v > max.
func Max[T cmp.Ordered](v, max T) (T, error) {
	if v > max {
		return v, violation(CodeTooBig, nil, "max", max)
	}
	return v, nil
}

// NotBlank fails for strings that are empty after trimming white space.
func NotBlank(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return s, violation(CodeRequired, nil)
	}
	return s, nil
}

// MinLen fails when s has fewer than n characters.
func MinLen(s string, n int) (string, error) {
	if utf8.RuneCountInString(s) < n {
		return s, violation(CodeTooShort, nil, "min", n)
	}
	return s, nil
}

// MaxLen fails when s has more than n characters.
func MaxLen(s string, n int) (string, error) {
	if utf8.RuneCountInString(s) > n {
		return s, violation(CodeTooLong, nil, "max", n)
	}
	return s, nil
}

// OneOf fails when v is not among allowed.
func OneOf[T comparable](v T, allowed ...T) (T, error) {
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return v, violation(CodeInvalidEnum, nil, "allowed", fmt.Sprint(allowed))
}

// URL parses an absolute http or https URL with a host.
func URL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, violation(CodeInvalidFormat, err, "format", "URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, violation(CodeInvalidFormat, nil, "format", "URL")
	}
	return u, nil
}

// HTTPStatus accepts three-digit status codes (100 to 999).
func HTTPStatus(code int) (int, error) {
	if code < 100 || code > 999 {
		return code, violation(CodeInvalidFormat, nil, "format", "HTTP status code")
	}
	return code, nil
}

// Duration parses a positive Go duration string such as "1m30s".
func Duration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, violation(CodeInvalidFormat, err, "format", "duration")
	}
	if d <= 0 {
		return d, violation(CodeTooSmall, nil, "min", "1ns")
	}
	return d, nil
}
