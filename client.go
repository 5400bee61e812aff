package mailtm

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/mailtm/client-go/internal/api"
)

// DefaultBaseURL is the public mail.tm API origin.
const DefaultBaseURL = api.DefaultBaseURL

// Client is a mail.tm API client. It holds no account state: protected
// methods take the bearer token as an argument. A Client is safe for
// concurrent use and must be closed to release its connection pool.
type Client struct {
	apiClient *api.Client
	logger    zerolog.Logger

	closed    atomic.Bool
	closeOnce sync.Once
}

// New creates a new mail.tm client. No request is sent.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		logger:  zerolog.Nop(),
		debug:   debugRequested(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		Logger:     cfg.logger,
		Debug:      cfg.debug,
		UserAgent:  cfg.userAgent,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient: apiClient,
		logger:    cfg.logger,
	}, nil
}

// debugRequested reports whether MAILTM_DEBUG=true is set in the environment.
func debugRequested() bool {
	return os.Getenv("MAILTM_DEBUG") == "true"
}

// BaseURL returns the API origin the client talks to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Close releases the client's pooled connections. It is safe to call more
// than once; later calls are no-ops. Methods called after Close return
// ErrClientClosed.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.apiClient.CloseIdleConnections()
	})
	return nil
}

func (c *Client) checkOpen() error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	return nil
}

func (c *Client) checkAuth(token string) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if token == "" {
		return ErrMissingToken
	}
	return nil
}

// GetToken exchanges an address and password for a bearer token.
func (c *Client) GetToken(ctx context.Context, address, password string) (*Token, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	return c.apiClient.GetToken(ctx, address, password)
}

// GetDomains lists the domains accounts can be created under.
func (c *Client) GetDomains(ctx context.Context) (*DomainList, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	return c.apiClient.GetDomains(ctx)
}

// GetDomain retrieves a domain by ID.
func (c *Client) GetDomain(ctx context.Context, domainID string) (*Domain, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	return c.apiClient.GetDomain(ctx, domainID)
}

// NewCredentials generates an address on the first listed domain and a
// password, both from RandomString(DefaultRandomLength).
func (c *Client) NewCredentials(ctx context.Context) (Credentials, error) {
	if err := c.checkOpen(); err != nil {
		return Credentials{}, err
	}
	address, err := c.randomAddress(ctx)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Address: address, Password: RandomString(DefaultRandomLength)}, nil
}

func (c *Client) randomAddress(ctx context.Context) (string, error) {
	domains, err := c.apiClient.GetDomains(ctx)
	if err != nil {
		return "", fmt.Errorf("list domains: %w", err)
	}
	if len(domains.Members) == 0 {
		return "", ErrNoDomains
	}
	return RandomString(DefaultRandomLength) + "@" + domains.Members[0].Domain, nil
}

// CreateAccount registers a new account. An empty creds.Address is replaced
// by a random local part on the first listed domain and an empty
// creds.Password by a random password. The credentials actually sent are
// returned so the caller can request a token with them.
//
// Generated addresses are not checked for collisions; when the server
// rejects one, call CreateAccount again.
func (c *Client) CreateAccount(ctx context.Context, creds Credentials) (*Account, Credentials, error) {
	if err := c.checkOpen(); err != nil {
		return nil, Credentials{}, err
	}
	if creds.Address == "" {
		address, err := c.randomAddress(ctx)
		if err != nil {
			return nil, Credentials{}, err
		}
		creds.Address = address
	}
	if creds.Password == "" {
		creds.Password = RandomString(DefaultRandomLength)
	}

	c.logger.Debug().Str("address", creds.Address).Msg("creating account")

	account, err := c.apiClient.CreateAccount(ctx, api.TokenRequest{
		Address:  creds.Address,
		Password: creds.Password,
	})
	if err != nil {
		return nil, Credentials{}, err
	}
	return account, creds, nil
}

// GetAccount retrieves an account by ID.
func (c *Client) GetAccount(ctx context.Context, token, accountID string) (*Account, error) {
	if err := c.checkAuth(token); err != nil {
		return nil, err
	}
	return c.apiClient.GetAccount(ctx, token, accountID)
}

// DeleteAccount deletes an account. It returns true only when the server
// answers 204 No Content.
func (c *Client) DeleteAccount(ctx context.Context, token, accountID string) (bool, error) {
	if err := c.checkAuth(token); err != nil {
		return false, err
	}
	return c.apiClient.DeleteAccount(ctx, token, accountID)
}

// GetMe retrieves the account the token was issued for.
func (c *Client) GetMe(ctx context.Context, token string) (*Account, error) {
	if err := c.checkAuth(token); err != nil {
		return nil, err
	}
	return c.apiClient.GetMe(ctx, token)
}

// GetMessages lists one page of messages. Pages are numbered from 1; lower
// values request the first page.
func (c *Client) GetMessages(ctx context.Context, token string, page int) (*MessageList, error) {
	if err := c.checkAuth(token); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return c.apiClient.GetMessages(ctx, token, page)
}

// GetMessage retrieves the full content of a message.
func (c *Client) GetMessage(ctx context.Context, token, messageID string) (*MessageDetail, error) {
	if err := c.checkAuth(token); err != nil {
		return nil, err
	}
	return c.apiClient.GetMessage(ctx, token, messageID)
}

// DeleteMessage deletes a message. It returns true only when the server
// answers 204 No Content.
func (c *Client) DeleteMessage(ctx context.Context, token, messageID string) (bool, error) {
	if err := c.checkAuth(token); err != nil {
		return false, err
	}
	return c.apiClient.DeleteMessage(ctx, token, messageID)
}

// MarkMessageRead marks a message as read. It returns true only when the
// server's response reports the message as seen; a successful status with
// an unchanged seen field returns false and a nil error.
func (c *Client) MarkMessageRead(ctx context.Context, token, messageID string) (bool, error) {
	if err := c.checkAuth(token); err != nil {
		return false, err
	}
	return c.apiClient.MarkMessageRead(ctx, token, messageID)
}

// GetMessageSource retrieves the raw source of a message.
func (c *Client) GetMessageSource(ctx context.Context, token, messageID string) (*MessageSource, error) {
	if err := c.checkAuth(token); err != nil {
		return nil, err
	}
	return c.apiClient.GetMessageSource(ctx, token, messageID)
}
