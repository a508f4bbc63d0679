package urlhandler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL normalizes a URL string, ensuring it has a scheme, a hostname,
// and parses cleanly. URLs without a scheme are assumed to be http.
func NormalizeURL(rawURL string) (string, error) {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return "", errors.New("URL is empty or only whitespace")
	}

	// Add scheme if missing
	if !strings.Contains(trimmedURL, "://") && !strings.HasPrefix(trimmedURL, "//") {
		trimmedURL = "http://" + trimmedURL
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return "", fmt.Errorf("could not parse URL '%s': %w", trimmedURL, err)
	}

	if parsedURL.Host == "" {
		return "", errors.New("URL lacks a valid hostname")
	}

	return parsedURL.String(), nil
}

// ValidateURLFormat checks that a string is a syntactically valid absolute
// http(s) URL. It performs no reachability checks.
func ValidateURLFormat(rawURL string) error {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return errors.New("URL is empty")
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return fmt.Errorf("could not parse URL '%s': %w", trimmedURL, err)
	}

	if !parsedURL.IsAbs() {
		return fmt.Errorf("URL '%s' is not absolute", trimmedURL)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL '%s' has unsupported scheme '%s'", trimmedURL, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("URL '%s' lacks a hostname", trimmedURL)
	}

	return nil
}
