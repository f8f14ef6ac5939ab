package client

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ionutliviu/box-go-sdk/options"
)

const (
	optionNameAccessToken = "accessToken"
	optionNameBaseURL     = "baseURL"
	optionNameUploadURL   = "uploadURL"
	optionNameUserAgent   = "userAgent"
	optionNameHTTPClient  = "httpClient"
	optionNameLogger      = "logger"
)

// WithAccessToken sets the OAuth2 access token for API authentication.
func WithAccessToken(token string) options.NewClientOption[Client] {
	return &accessTokenOpt{token: token}
}

type accessTokenOpt struct {
	token string
}

func (o *accessTokenOpt) Apply(c *Client) {
	c.options.AccessToken = o.token
}

func (o *accessTokenOpt) NewClientOptionName() string {
	return optionNameAccessToken
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) options.NewClientOption[Client] {
	return &baseURLOpt{baseURL: baseURL}
}

type baseURLOpt struct {
	baseURL string
}

func (o *baseURLOpt) Apply(c *Client) {
	c.options.BaseURL = o.baseURL
}

func (o *baseURLOpt) NewClientOptionName() string {
	return optionNameBaseURL
}

// WithUploadURL overrides the upload endpoint, mainly for tests.
func WithUploadURL(uploadURL string) options.NewClientOption[Client] {
	return &uploadURLOpt{uploadURL: uploadURL}
}

type uploadURLOpt struct {
	uploadURL string
}

func (o *uploadURLOpt) Apply(c *Client) {
	c.options.UploadURL = o.uploadURL
}

func (o *uploadURLOpt) NewClientOptionName() string {
	return optionNameUploadURL
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) options.NewClientOption[Client] {
	return &userAgentOpt{userAgent: userAgent}
}

type userAgentOpt struct {
	userAgent string
}

func (o *userAgentOpt) Apply(c *Client) {
	c.options.UserAgent = o.userAgent
}

func (o *userAgentOpt) NewClientOptionName() string {
	return optionNameUserAgent
}

// WithHTTPClient sets the base HTTP client the authenticated client is
// built on. Useful for testing or when custom transport settings are
// needed.
func WithHTTPClient(httpClient *http.Client) options.NewClientOption[Client] {
	return &httpClientOpt{httpClient: httpClient}
}

type httpClientOpt struct {
	httpClient *http.Client
}

func (o *httpClientOpt) Apply(c *Client) {
	c.options.HTTPClient = o.httpClient
}

func (o *httpClientOpt) NewClientOptionName() string {
	return optionNameHTTPClient
}

// WithLogger sets the logger receiving a debug line for every API call.
func WithLogger(logger *logrus.Logger) options.NewClientOption[Client] {
	return &loggerOpt{logger: logger}
}

type loggerOpt struct {
	logger *logrus.Logger
}

func (o *loggerOpt) Apply(c *Client) {
	c.options.Logger = o.logger
}

func (o *loggerOpt) NewClientOptionName() string {
	return optionNameLogger
}
