package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	box "github.com/ionutliviu/box-go-sdk"
	"github.com/ionutliviu/box-go-sdk/options"
)

var errAccessTokenRequired = fmt.Errorf("access token is required for authentication: %w", box.ErrNotAuthorized)

// Client talks to the Box v2 REST API and implements box.Transport.
type Client struct {
	options    Options
	httpClient *http.Client
}

var _ box.Transport = (*Client)(nil)

// New initializer for Client struct.
func New(opts ...options.NewClientOption[Client]) *Client {
	c := &Client{
		options: NewOptions(),
	}

	options.ApplyOptions(c, opts...)

	return c
}

// HTTPClient returns the underlying authenticated HTTP client, creating it
// if necessary.
func (c *Client) HTTPClient() (*http.Client, error) {
	if c.httpClient == nil {
		token := c.options.AccessToken

		// If no token in options, try environment variable
		if token == "" {
			token = os.Getenv(EnvAccessToken)
		}

		if token == "" {
			return nil, errAccessTokenRequired
		}

		ctx := context.Background()
		if c.options.HTTPClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, c.options.HTTPClient)
		}

		c.httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}

	return c.httpClient, nil
}

// SetAuthToken installs a fresh access token. The authenticated HTTP client
// is rebuilt on next use.
func (c *Client) SetAuthToken(token string) {
	c.options.AccessToken = token
	c.httpClient = nil
}

// AccountInfo implements box.Transport.
func (c *Client) AccountInfo(ctx context.Context) (box.Attrs, error) {
	return c.doJSON(ctx, http.MethodGet, c.endpoint("users", "me"), nil, nil)
}

// ItemInfo implements box.Transport.
func (c *Client) ItemInfo(ctx context.Context, typ box.ItemType, id string) (box.Attrs, error) {
	p, err := typePath(typ)
	if err != nil {
		return nil, err
	}
	return c.doJSON(ctx, http.MethodGet, c.endpoint(p, id), nil, nil)
}

// FolderInfo implements box.Transport.
func (c *Client) FolderInfo(ctx context.Context, id string, limit, offset int) (box.Attrs, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	return c.doJSON(ctx, http.MethodGet, c.endpoint("folders", id), query, nil)
}

// CreateFolder implements box.Transport.
func (c *Client) CreateFolder(ctx context.Context, parentID, name string) (box.Attrs, error) {
	payload := map[string]any{
		"name":   name,
		"parent": map[string]any{"id": parentID},
	}
	return c.doJSON(ctx, http.MethodPost, c.endpoint("folders"), nil, payload)
}

// UpdateItem implements box.Transport.
func (c *Client) UpdateItem(ctx context.Context, typ box.ItemType, id string, fields box.Attrs) (box.Attrs, error) {
	p, err := typePath(typ)
	if err != nil {
		return nil, err
	}
	return c.doJSON(ctx, http.MethodPut, c.endpoint(p, id), nil, updatePayload(fields))
}

// DeleteItem implements box.Transport.
func (c *Client) DeleteItem(ctx context.Context, typ box.ItemType, id string, recursive bool) error {
	p, err := typePath(typ)
	if err != nil {
		return err
	}
	var query url.Values
	if typ == box.TypeFolder {
		query = url.Values{}
		query.Set("recursive", strconv.FormatBool(recursive))
	}
	resp, err := c.do(ctx, http.MethodDelete, c.endpoint(p, id), query, nil, "")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= http.StatusBadRequest {
		return c.apiError(resp)
	}
	return nil
}

// UploadFile implements box.Transport. The multipart body is assembled in
// memory, so very large uploads should be chunked by the caller.
func (c *Client) UploadFile(ctx context.Context, parentID, name string, content io.Reader) (box.Attrs, error) {
	attributes, err := json.Marshal(map[string]any{
		"name":   name,
		"parent": map[string]any{"id": parentID},
	})
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if err := mw.SetBoundary("box-go-sdk-" + uuid.NewString()); err != nil {
		return nil, err
	}
	if err := mw.WriteField("attributes", string(attributes)); err != nil {
		return nil, err
	}
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, c.options.UploadURL+"/files/content", nil, buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.apiError(resp)
	}
	decoded, err := decodeAttrs(resp.Body)
	if err != nil {
		return nil, err
	}
	return firstEntry(decoded), nil
}

// DownloadFile implements box.Transport. The returned body follows the
// content redirect; the caller owns closing it.
func (c *Client) DownloadFile(ctx context.Context, id string) (io.ReadCloser, error) {
	resp, err := c.do(ctx, http.MethodGet, c.endpoint("files", id, "content"), nil, nil, "")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()
		return nil, c.apiError(resp)
	}
	return resp.Body, nil
}

// CreateDiscussion implements box.Transport.
func (c *Client) CreateDiscussion(ctx context.Context, folderID, name string) (box.Attrs, error) {
	payload := map[string]any{
		"item": map[string]any{"id": folderID, "type": "folder"},
		"name": name,
	}
	return c.doJSON(ctx, http.MethodPost, c.endpoint("discussions"), nil, payload)
}

// Discussions implements box.Transport.
func (c *Client) Discussions(ctx context.Context, folderID string) ([]box.Attrs, error) {
	attrs, err := c.doJSON(ctx, http.MethodGet, c.endpoint("folders", folderID, "discussions"), nil, nil)
	if err != nil {
		return nil, err
	}
	entries, _ := attrs["entries"].([]any)
	out := make([]box.Attrs, 0, len(entries))
	for _, e := range entries {
		if m, ok := e.(map[string]any); ok {
			out = append(out, box.Attrs(m))
		}
	}
	return out, nil
}

// ShareItem implements box.Transport.
func (c *Client) ShareItem(ctx context.Context, typ box.ItemType, id string, params box.Attrs) (box.Attrs, error) {
	p, err := typePath(typ)
	if err != nil {
		return nil, err
	}
	sharedLink := map[string]any{}
	for k, v := range params {
		sharedLink[k] = v
	}
	payload := map[string]any{"shared_link": sharedLink}
	return c.doJSON(ctx, http.MethodPut, c.endpoint(p, id), nil, payload)
}

// ShareInfo implements box.Transport.
func (c *Client) ShareInfo(ctx context.Context, typ box.ItemType, id string) (box.Attrs, error) {
	p, err := typePath(typ)
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("fields", "shared_link")
	return c.doJSON(ctx, http.MethodGet, c.endpoint(p, id), query, nil)
}

// endpoint joins path parts onto the API base URL, escaping each part.
func (c *Client) endpoint(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return c.options.BaseURL + "/" + strings.Join(escaped, "/")
}

// typePath maps an item type to its REST collection segment. Versions and
// generic items have no metadata endpoint of their own.
func typePath(typ box.ItemType) (string, error) {
	switch typ {
	case box.TypeFile:
		return "files", nil
	case box.TypeFolder:
		return "folders", nil
	case box.TypeComment:
		return "comments", nil
	case box.TypeDiscussion:
		return "discussions", nil
	default:
		return "", fmt.Errorf("no API endpoint for item type %q: %w", typ, box.ErrInvalidInput)
	}
}

// updatePayload rewrites object-model field values into their wire shape. A
// parent given as an item reference or a plain id string becomes an object
// holding just the id.
func updatePayload(fields box.Attrs) map[string]any {
	payload := make(map[string]any, len(fields))
	for k, v := range fields {
		if k != "parent" {
			payload[k] = v
			continue
		}
		switch parent := v.(type) {
		case box.Item:
			payload[k] = map[string]any{"id": parent.ID()}
		case string:
			payload[k] = map[string]any{"id": parent}
		default:
			payload[k] = v
		}
	}
	return payload
}

// firstEntry unwraps the single-item collection that upload responses carry.
func firstEntry(attrs box.Attrs) box.Attrs {
	entries, ok := attrs["entries"].([]any)
	if !ok || len(entries) == 0 {
		return attrs
	}
	if entry, ok := entries[0].(map[string]any); ok {
		return box.Attrs(entry)
	}
	return attrs
}

// doJSON performs an API call with an optional JSON payload and decodes the
// JSON response into an attribute map.
func (c *Client) doJSON(ctx context.Context, method, rawURL string, query url.Values, payload any) (box.Attrs, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	resp, err := c.do(ctx, method, rawURL, query, body, contentType)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.apiError(resp)
	}
	if resp.StatusCode == http.StatusNoContent {
		return box.Attrs{}, nil
	}
	return decodeAttrs(resp.Body)
}

func (c *Client) do(ctx context.Context, method, rawURL string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	hc, err := c.HTTPClient()
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		rawURL = rawURL + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.options.UserAgent != "" {
		req.Header.Set("User-Agent", c.options.UserAgent)
	}
	start := time.Now()
	resp, err := hc.Do(req)
	c.logCall(method, rawURL, resp, start, err)
	return resp, err
}

func (c *Client) logCall(method, rawURL string, resp *http.Response, start time.Time, err error) {
	if c.options.Logger == nil {
		return
	}
	fields := logrus.Fields{
		"method":   method,
		"url":      rawURL,
		"duration": time.Since(start),
	}
	if resp != nil {
		fields["status"] = resp.StatusCode
	}
	entry := c.options.Logger.WithFields(fields)
	if err != nil {
		entry.WithError(err).Debug("api call failed")
		return
	}
	entry.Debug("api call")
}

func decodeAttrs(r io.Reader) (box.Attrs, error) {
	var decoded map[string]any
	if err := json.NewDecoder(r).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return box.Attrs(decoded), nil
}
