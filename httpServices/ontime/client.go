package ontime

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/telartis/picqer-ontime/logger"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "picqer-ontime/1.0 (+https://github.com/telartis/picqer-ontime)"

	maxResponseBytes = 20 << 20
	maxExcerptRunes  = 2000
)

type Config struct {
	Endpoint    string
	Credentials Credentials
	Timeout     time.Duration
	UserAgent   string
}

// Client talks to the carrier API. It holds only immutable configuration
// and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	redactor   Redactor
	marshal    func(any) ([]byte, error)
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpoint:  cfg.Endpoint,
		userAgent: userAgent,
		redactor:  NewRedactor(cfg.Credentials.APIPassword),
		marshal:   json.Marshal,
	}
}

func (c *Client) Redactor() Redactor { return c.redactor }

// Trace records one carrier round trip for diagnostics. Bodies are redacted.
type Trace struct {
	ID           string        `json:"id"`
	Operation    Operation     `json:"operation"`
	Endpoint     string        `json:"endpoint"`
	RequestBody  string        `json:"request_body"`
	ResponseBody string        `json:"response_body"`
	HTTPStatus   int           `json:"http_status"`
	StatusCode   int           `json:"status_code"`
	Duration     time.Duration `json:"duration"`
}

// Send posts env to the carrier and classifies the response. The returned
// trace is never nil.
func (c *Client) Send(ctx context.Context, env Envelope) (*Result, *Trace, error) {
	trace := &Trace{
		ID:         uuid.NewString(),
		Operation:  env.Operation,
		Endpoint:   c.endpoint,
		StatusCode: http.StatusOK,
	}
	started := time.Now()
	result, err := c.send(ctx, env, trace)
	trace.Duration = time.Since(started)
	if err != nil {
		trace.StatusCode = StatusCode(err)
		logger.Error(fmt.Sprintf("Carrier %s call %s failed", env.Operation, trace.ID), err)
		return nil, trace, err
	}
	logger.Debug(fmt.Sprintf("Carrier %s call %s succeeded in %s", env.Operation, trace.ID, trace.Duration))
	return result, trace, nil
}

func (c *Client) send(ctx context.Context, env Envelope, trace *Trace) (*Result, error) {
	if !env.Operation.Valid() {
		return nil, c.fail(KindUnknownOperation, 0, nil, "unknown operation %q", env.Operation)
	}

	body, err := c.marshal(env)
	if err != nil {
		return nil, c.fail(KindEncode, 0, err, "could not encode request: %v\n%s", err, c.redactor.Dump(env))
	}
	trace.RequestBody = c.redactor.Redact(string(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, c.fail(KindTransport, 0, err, "could not create request: %v\nrequest: %s", err, trace.RequestBody)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(KindTransport, 0, err, "transport error: %v (code %s)\nrequest: %s", err, transportCode(err), trace.RequestBody)
	}
	defer resp.Body.Close()
	trace.HTTPStatus = resp.StatusCode

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.fail(KindTransport, resp.StatusCode, err, "could not read response: %v (code %s)\nrequest: %s", err, transportCode(err), trace.RequestBody)
	}
	trace.ResponseBody = c.redactor.Redact(string(raw))

	fields, err := c.decode(raw, resp.StatusCode)
	if err != nil {
		return nil, err
	}

	status, ok := fields["status"]
	if !ok {
		return nil, c.fail(KindMissingStatus, resp.StatusCode, nil, "carrier response has no status: %s", c.redactor.Dump(fields))
	}
	result := newResult(fields)
	if result.Status != StatusSuccess {
		return nil, c.fail(KindRemoteStatus, resp.StatusCode, nil, "%s", joinMessage(fmt.Sprint(status), result.RemarksText()))
	}
	if _, ok := fields[env.Operation.ResultKey()]; !ok {
		return nil, c.fail(KindMissingResultKey, resp.StatusCode, nil, "%s", joinMessage(
			fmt.Sprintf("carrier response has no %s", env.Operation.ResultKey()), result.RemarksText()))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.fail(KindTransport, resp.StatusCode, nil, "carrier returned HTTP %d", resp.StatusCode)
	}
	return result, nil
}

// decode requires the body to be a JSON object.
func (c *Client) decode(raw []byte, httpStatus int) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		excerpt := truncate(plainText(string(raw)), maxExcerptRunes)
		if excerpt == "" {
			excerpt = c.redactor.Dump(string(raw))
		}
		return nil, c.fail(KindResponseDecode, httpStatus, err, "could not decode response: %s", excerpt)
	}
	rest := raw[dec.InputOffset():]
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		excerpt := truncate(plainText(string(rest)), maxExcerptRunes)
		return nil, c.fail(KindResponseDecode, httpStatus, err, "could not decode response: trailing data after JSON value: %s", excerpt)
	}
	fields, ok := decoded.(map[string]any)
	if !ok {
		return nil, c.fail(KindResponseDecode, httpStatus, nil, "could not decode response: %s", c.redactor.Dump(decoded))
	}
	return fields, nil
}

// FetchLabel downloads the label document referenced by an order record.
func (c *Client) FetchLabel(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, c.fail(KindLabelFetch, 0, nil, "order record has no label url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, c.fail(KindLabelFetch, 0, err, "could not create label request: %v", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(KindLabelFetch, 0, err, "could not fetch label: %v (code %s)", err, transportCode(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fail(KindLabelFetch, 0, nil, "could not fetch label: HTTP %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.fail(KindLabelFetch, 0, err, "could not read label: %v", err)
	}
	return data, nil
}

func (c *Client) fail(kind ErrorKind, httpStatus int, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:       kind,
		Message:    c.redactor.Redact(fmt.Sprintf(format, args...)),
		StatusCode: failureStatus(httpStatus),
		Err:        cause,
	}
}

func transportCode(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op
	}
	return "transport"
}

func joinMessage(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
