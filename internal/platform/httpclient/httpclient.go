package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vet-clinic-web/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultTimeout = 30 * time.Second

	maxBody      = 1 << 20 // 1MB
	maxErrorText = 200
)

// Client es el gateway hacia la API de la clínica: deadline por request,
// normalización de errores y decode según content-type.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Timeout time.Duration

	log     logger.Logger
	metrics *metrics
}

type Options struct {
	BaseURL string

	// Timeout por request (default 30s). Cada llamada tiene su propio deadline.
	Timeout time.Duration

	// Transport opcional (p.ej. para tests).
	Transport http.RoundTripper

	Logger     logger.Logger
	Registerer prometheus.Registerer
}

func New(opts Options) (*Client, error) {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		return nil, errors.New("httpclient: base url required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tr := opts.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		// Sin http.Client.Timeout: el deadline va por context en cada request.
		HTTP:    &http.Client{Transport: tr},
		BaseURL: strings.TrimRight(base, "/"),
		Timeout: timeout,
		log:     log.With(map[string]any{"component": "gateway"}),
		metrics: newMetrics(opts.Registerer),
	}, nil
}

// Response es el cuerpo ya leído de una respuesta 2xx.
// Si el content-type es JSON, JSON tiene el body; si no, Text.
type Response struct {
	StatusCode  int
	ContentType string
	JSON        json.RawMessage
	Text        string
}

func (r Response) IsJSON() bool { return r.JSON != nil }

// Decode decodifica el body JSON en out. Un body vacío no es error.
func (r Response) Decode(out any) error {
	if out == nil {
		return nil
	}
	if !r.IsJSON() {
		if strings.TrimSpace(r.Text) == "" {
			return nil
		}
		return fmt.Errorf("httpclient: expected json response, got %q", r.ContentType)
	}
	if len(bytes.TrimSpace(r.JSON)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.JSON, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

// DoJSON hace el request y decodifica la respuesta en out (opcional).
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	resp, err := c.Request(ctx, method, path, in)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// Request emite un request contra BaseURL+path.
// - in: body a serializar como JSON (opcional)
// Errores: *TimeoutError, *ConnectionError o *APIError.
func (c *Client) Request(ctx context.Context, method, path string, in any) (Response, error) {
	if c == nil || c.HTTP == nil {
		return Response{}, errors.New("httpclient: nil client")
	}

	start := time.Now()
	resp, err := c.do(ctx, method, path, in)

	c.metrics.requests.WithLabelValues(method, outcomeOf(err)).Inc()
	c.metrics.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, in any) (Response, error) {
	fullURL, err := c.resolveURL(path)
	if err != nil {
		return Response{}, err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return Response{}, fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return Response{}, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Response{}, c.classify(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Response{}, &TimeoutError{Timeout: c.Timeout, Err: err}
		}
		// Si el body no se pudo leer entero seguimos con lo que haya.
		c.log.Debug("read body failed", map[string]any{"url": fullURL, "error": err})
	}

	ct := resp.Header.Get("Content-Type")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &APIError{
			StatusCode: resp.StatusCode,
			Message:    c.errorMessage(resp, ct, raw),
		}
	}

	out := Response{StatusCode: resp.StatusCode, ContentType: ct}
	if isJSON(ct) {
		out.JSON = json.RawMessage(raw)
		if out.JSON == nil {
			out.JSON = json.RawMessage{}
		}
	} else {
		out.Text = string(raw)
	}
	return out, nil
}

func (c *Client) classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Timeout: c.Timeout, Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("httpclient: %w", err)
	}
	return &ConnectionError{BaseURL: c.BaseURL, Err: err}
}

// errorMessage extrae el mensaje para el usuario. Prioridad (JSON):
// errors por campo -> message -> title -> default. Si no es JSON, hasta
// 200 caracteres del body.
func (c *Client) errorMessage(resp *http.Response, ct string, raw []byte) string {
	def := defaultMessage(resp)

	if !isJSON(ct) {
		if len(raw) == 0 {
			return def
		}
		return truncate(string(raw), maxErrorText)
	}

	msg, err := messageFromJSON(raw)
	if err != nil {
		c.log.Debug("error parsing error response", map[string]any{
			"status": resp.StatusCode,
			"error":  err,
		})
		return def
	}
	if msg == "" {
		return def
	}
	return msg
}

func defaultMessage(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return fmt.Sprintf("Error %d: %s", resp.StatusCode, text)
}

func messageFromJSON(raw []byte) (string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", err
	}

	if v, ok := doc["errors"]; ok && !isNull(v) {
		fields, err := orderedFieldErrors(v)
		if err != nil {
			return "", err
		}
		lines := make([]string, 0, len(fields))
		for _, f := range fields {
			lines = append(lines, f.field+": "+f.message)
		}
		return "Errores de validación:\n" + strings.Join(lines, "\n"), nil
	}

	if s := stringField(doc, "message"); s != "" {
		return s, nil
	}
	if s := stringField(doc, "title"); s != "" {
		return s, nil
	}
	return "", nil
}

type fieldError struct {
	field   string
	message string
}

// orderedFieldErrors recorre el objeto "errors" respetando el orden del
// backend (un map perdería el orden de los campos).
func orderedFieldErrors(raw json.RawMessage) ([]fieldError, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("errors must be an object")
	}

	var out []fieldError
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		field, _ := tok.(string)

		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, fieldError{field: field, message: joinMessages(v)})
	}
	return out, nil
}

func joinMessages(v json.RawMessage) string {
	var list []any
	if err := json.Unmarshal(v, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, m := range list {
			parts = append(parts, fmt.Sprint(m))
		}
		return strings.Join(parts, ", ")
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(v))
}

func stringField(doc map[string]json.RawMessage, key string) string {
	v, ok := doc[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

func isNull(v json.RawMessage) bool {
	return strings.TrimSpace(string(v)) == "null"
}

// isJSON acepta application/json y los sufijos +json (problem+json).
func isJSON(ct string) bool {
	if strings.TrimSpace(ct) == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.Contains(ct, "application/json")
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func requestID(ctx context.Context) string {
	if id := chimw.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

func (c *Client) resolveURL(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path, nil
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path, nil
}
