package domain

import (
	"net"
	"net/url"
	"path"
	"strings"

	"github.com/go-faster/errors"
)

// NormalizeBaseURL returns the canonical form of a service base URL:
//   - scheme and host are lower-cased
//   - default ports (http:80, https:443) are dropped
//   - the path is cleaned and loses its trailing slash
//
// Only absolute http(s) URLs without query or fragment are accepted, since
// endpoint paths are appended to the result.
func NormalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", errors.Wrap(err, "parse base url")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", errors.Errorf("base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", errors.Errorf("base url %q: missing host", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", errors.Errorf("base url %q: query and fragment are not allowed", raw)
	}

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	u.Host = host

	if u.Path != "" {
		u.Path = path.Clean("/" + u.Path)
		if u.Path == "/" {
			u.Path = ""
		}
	}
	u.RawPath = ""

	return u.String(), nil
}

// Validate reports the first unusable setting in c.
func (c OTPConfig) Validate() error {
	if _, err := NormalizeBaseURL(c.BaseURL); err != nil {
		return err
	}

	for _, f := range []struct {
		name  string
		value int
	}{
		{"maxAttempts", c.MaxAttempts},
		{"expiryMinutes", c.ExpiryMinutes},
		{"minPhoneLength", c.MinPhoneLength},
		{"otpLength", c.OTPLength},
	} {
		if f.value <= 0 {
			return errors.Errorf("%s must be positive, got %d", f.name, f.value)
		}
	}

	return nil
}
