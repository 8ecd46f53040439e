// Package gtts synthesizes speech through the Google Translate
// text-to-speech endpoint. The endpoint is unauthenticated and returns
// MP3 audio; it only distinguishes normal and slow speaking speeds.
package gtts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"unicode/utf8"
)

const defaultBaseURL = "https://translate.google.com/translate_tts"

// ttsspeed values understood by the endpoint.
const (
	speedNormal = "1"
	speedSlow   = "0.24"
)

// Speech is a single synthesis request.
type Speech struct {
	Text string
	Lang string
	// Slow selects the endpoint's reduced speaking speed.
	Slow bool
	// LangCheck validates Lang against the supported language table
	// before issuing the request. Callers that have already validated
	// the code can leave it off.
	LangCheck bool
}

// Client issues synthesis requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the endpoint URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WriteTo synthesizes sp and streams the MP3 audio into w.
func (c *Client) WriteTo(ctx context.Context, sp Speech, w io.Writer) error {
	if sp.LangCheck {
		if _, ok := langs[sp.Lang]; !ok {
			return fmt.Errorf("gtts: unsupported language %q", sp.Lang)
		}
	}

	speed := speedNormal
	if sp.Slow {
		speed = speedSlow
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("q", sp.Text)
	params.Set("tl", sp.Lang)
	params.Set("ttsspeed", speed)
	params.Set("total", "1")
	params.Set("idx", "0")
	params.Set("textlen", strconv.Itoa(utf8.RuneCountInString(sp.Text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("gtts: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gtts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gtts: endpoint returned %s", resp.Status)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("gtts: read audio: %w", err)
	}
	return nil
}

// Save synthesizes sp and writes the MP3 audio to path. The file is
// removed again if synthesis fails partway through.
func (c *Client) Save(ctx context.Context, sp Speech, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gtts: create %s: %w", path, err)
	}

	if err := c.WriteTo(ctx, sp, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
