package sysinfo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxBodyBytes caps how much of a lookup response is read.
const maxBodyBytes = 64 << 10

const userAgent = "tdash"

// PublicIP fetches the public IP address from the IP echo endpoint. The
// response body is returned trimmed of surrounding whitespace. Any error,
// timeout, non-2xx status or empty body yields "Offline".
//
// The body of an error response is never shown: a 503 page from the echo
// service counts as a failed lookup rather than being passed through as the
// address.
func (c *Collector) PublicIP(ctx context.Context) Fact[string] {
	if c.NoNetwork {
		return Degraded[string](FallbackOffline, ErrNetworkDisabled)
	}

	ip, err := c.fetchText(ctx, c.IPURL, c.IPTimeout)
	if err != nil {
		c.Log.Debug("public ip: %v", err)
		return Degraded[string](FallbackOffline, err)
	}
	return Known(ip)
}

// Weather fetches the one-line weather summary. Only the first non-empty line
// of the response is kept. Any error, timeout, non-2xx status or empty body
// yields "Weather unavailable".
//
// Non-2xx bodies are not passed through: wttr.in answers an unresolvable
// location with 404 "Unknown location", which shows as "Weather unavailable".
func (c *Collector) Weather(ctx context.Context) Fact[string] {
	if c.NoNetwork {
		return Degraded[string](FallbackWeather, ErrNetworkDisabled)
	}

	text, err := c.fetchText(ctx, c.WeatherURL, c.WeatherTimeout)
	if err != nil {
		c.Log.Debug("weather: %v", err)
		return Degraded[string](FallbackWeather, err)
	}
	return Known(firstLine(text))
}

// fetchText performs a single GET bounded by timeout and returns the trimmed
// body. The timeout covers reading the body as well as the request.
func (c *Collector) fetchText(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", fmt.Errorf("GET %s: empty response", url)
	}
	return text, nil
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return s
}
