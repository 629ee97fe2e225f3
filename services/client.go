package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// Client talks to the game platform's REST API on behalf of the operator.
// The credential is looked up on every call so a sign-in or sign-out takes
// effect on the next request.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
}

func NewClient(baseURL string, creds CredentialSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if creds == nil {
		creds = NewMemoryCredentials("")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		creds:   creds,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Credentials exposes the source the client authorizes with.
func (c *Client) Credentials() CredentialSource {
	return c.creds
}

// Headers builds the JSON header set, adding Authorization only when a token is stored.
func (c *Client) Headers(ctx context.Context) (http.Header, error) {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	token, err := c.creds.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h, nil
}

// HasCredential reports whether a token is currently stored.
func (c *Client) HasCredential(ctx context.Context) bool {
	token, err := c.creds.Token(ctx)
	return err == nil && token != ""
}

// Get issues an authorized GET and decodes the body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Send(ctx, http.MethodGet, path, nil, out)
}

// GetPublic issues a GET without the Authorization header.
func (c *Client) GetPublic(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.execute(req, path, out)
}

// Send issues an authorized request with an optional JSON body.
func (c *Client) Send(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	headers, err := c.Headers(ctx)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header[k] = v
	}
	return c.execute(req, path, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (c *Client) execute(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ [Backend] %s %s failed: %v", req.Method, path, err)
		return &NetworkError{Method: req.Method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: req.Method, Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := &HTTPError{Status: resp.StatusCode}
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &body) == nil {
			herr.Message = body.Message
		}
		log.Printf("❌ [Backend] %s %s -> %d %s", req.Method, path, resp.StatusCode, herr.Error())
		return herr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, path, err)
	}
	return nil
}
