package client

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the Box v2 API endpoint.
	DefaultBaseURL = "https://api.box.com/2.0"

	// DefaultUploadURL is the Box v2 upload endpoint.
	DefaultUploadURL = "https://upload.box.com/api/2.0"

	// EnvAccessToken names the environment variable consulted when no
	// access token option is given.
	EnvAccessToken = "BOX_ACCESS_TOKEN"
)

// Options holds configuration options for the Client.
type Options struct {
	// AccessToken is the OAuth2 access token used to authenticate API
	// calls. When empty, the BOX_ACCESS_TOKEN environment variable is
	// consulted at first use.
	AccessToken string

	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string

	// UploadURL overrides the upload endpoint, mainly for tests.
	UploadURL string

	// UserAgent is sent with every request when set.
	UserAgent string

	// HTTPClient is the base HTTP client the authenticated client is built
	// on. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives a debug line for every API call when set.
	Logger *logrus.Logger
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		BaseURL:   DefaultBaseURL,
		UploadURL: DefaultUploadURL,
	}
}
