package jobly

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/oauth2"
)

// Client talks to the Jobly REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	config     Config

	mu    sync.RWMutex
	token string
}

func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		// per-request timeouts come from the context
		httpClient: &http.Client{},
		config:     cfg,
	}
}

// SetToken sets the bearer token sent with every later request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) GetCurrentUser(ctx context.Context, username string) (User, error) {
	var res struct {
		User User `json:"user"`
	}
	if err := c.request(ctx, http.MethodGet, "users/"+url.PathEscape(username), nil, &res); err != nil {
		return User{}, err
	}
	return res.User, nil
}

func (c *Client) Login(ctx context.Context, data LoginData) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	if err := c.request(ctx, http.MethodPost, "auth/token", data, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

func (c *Client) Signup(ctx context.Context, data SignupData) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	if err := c.request(ctx, http.MethodPost, "auth/register", data, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

func (c *Client) SaveProfile(ctx context.Context, username string, data ProfileData) (User, error) {
	var res struct {
		User User `json:"user"`
	}
	if err := c.request(ctx, http.MethodPatch, "users/"+url.PathEscape(username), data, &res); err != nil {
		return User{}, err
	}
	return res.User, nil
}

func (c *Client) request(ctx context.Context, method, endpoint string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := logger.With().Str("method", method).Str("endpoint", endpoint).Logger()

	resp, err := c.client(ctx).Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("api_request_failed")
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Msg("api_request_completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ErrBadResponse
	}
	return nil
}

// client wraps the base transport with the bearer token, if any.
func (c *Client) client(ctx context.Context) *http.Client {
	token := c.Token()
	if token == "" {
		return c.httpClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
}

func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTimeout
	}
	return ErrUnavailable
}

type apiError struct {
	Error struct {
		Message json.RawMessage `json:"message"`
		Status  int             `json:"status"`
	} `json:"error"`
}

// decodeError reads the API's error envelope. The message is either a single
// string or a list of them.
func decodeError(resp *http.Response) error {
	var env apiError
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && len(env.Error.Message) > 0 {
		var list []string
		if err := json.Unmarshal(env.Error.Message, &list); err == nil && len(list) > 0 {
			return ErrorList(list)
		}
		var msg string
		if err := json.Unmarshal(env.Error.Message, &msg); err == nil && msg != "" {
			return ErrorList{msg}
		}
	}
	return ErrorList{http.StatusText(resp.StatusCode)}
}
