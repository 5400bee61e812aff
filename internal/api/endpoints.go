package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetToken exchanges account credentials for a bearer token.
func (c *Client) GetToken(ctx context.Context, address, password string) (*Token, error) {
	var result Token
	if _, err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/token",
		path:     "/token",
		body:     TokenRequest{Address: address, Password: password},
		result:   &result,
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDomains lists the domains accounts can be created under.
func (c *Client) GetDomains(ctx context.Context) (*DomainList, error) {
	var result DomainList
	if _, err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/domains",
		path:     "/domains",
		result:   &result,
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDomain retrieves a single domain.
func (c *Client) GetDomain(ctx context.Context, domainID string) (*Domain, error) {
	var result Domain
	if _, err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/domains/{id}",
		path:     "/domains/" + url.PathEscape(domainID),
		result:   &result,
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateAccount registers a new account with the given credentials.
func (c *Client) CreateAccount(ctx context.Context, req TokenRequest) (*Account, error) {
	var result Account
	if _, err := c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "/accounts",
		path:     "/accounts",
		body:     req,
		result:   &result,
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAccount retrieves an account by ID.
func (c *Client) GetAccount(ctx context.Context, token, accountID string) (*Account, error) {
	var result Account
	if _, err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/accounts/{id}",
		path:     "/accounts/" + url.PathEscape(accountID),
		token:    token,
		result:   &result,
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteAccount deletes an account. It reports true only for 204 No Content.
func (c *Client) DeleteAccount(ctx context.Context, token, accountID string) (bool, error) {
	status, err := c.do(ctx, call{
		method:   http.MethodDelete,
		endpoint: "/accounts/{id}",
		path:     "/accounts/" + url.PathEscape(accountID),
		token:    token,
	})
	if err != nil {
		return false, err
	}
	return status == http.StatusNoContent, nil
}

// GetMe retrieves the account the token belongs to.
func (c *Client) GetMe(ctx context.Context, token string) (*Account, error) {
	var result Account
	if _, err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/me",
		path:     "/me",
		token:    token,
		result:   &result,
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMessages lists one page of messages.
func (c *Client) GetMessages(ctx context.Context, token string, page int) (*MessageList, error) {
	var result MessageList
	if _, err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/messages",
		path:     "/messages",
		query:    url.Values{"page": []string{strconv.Itoa(page)}},
		token:    token,
		result:   &result,
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMessage retrieves the full body of a message.
func (c *Client) GetMessage(ctx context.Context, token, messageID string) (*MessageDetail, error) {
	var result MessageDetail
	if _, err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/messages/{id}",
		path:     "/messages/" + url.PathEscape(messageID),
		token:    token,
		result:   &result,
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteMessage deletes a message. It reports true only for 204 No Content.
func (c *Client) DeleteMessage(ctx context.Context, token, messageID string) (bool, error) {
	status, err := c.do(ctx, call{
		method:   http.MethodDelete,
		endpoint: "/messages/{id}",
		path:     "/messages/" + url.PathEscape(messageID),
		token:    token,
	})
	if err != nil {
		return false, err
	}
	return status == http.StatusNoContent, nil
}

// MarkMessageRead marks a message as read. A success status alone is not
// enough: the returned seen field must carry the read marker.
func (c *Client) MarkMessageRead(ctx context.Context, token, messageID string) (bool, error) {
	var result readState
	status, err := c.do(ctx, call{
		method:   http.MethodPut,
		endpoint: "/messages/{id}/read",
		path:     "/messages/" + url.PathEscape(messageID) + "/read",
		token:    token,
		result:   &result,

		noContentOK: true,
	})
	if err != nil {
		return false, err
	}
	if status == http.StatusNoContent {
		return false, nil
	}
	return result.isRead(), nil
}

// GetMessageSource retrieves the raw source of a message.
func (c *Client) GetMessageSource(ctx context.Context, token, messageID string) (*MessageSource, error) {
	var result MessageSource
	if _, err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "/messages/{id}/source",
		path:     "/messages/" + url.PathEscape(messageID) + "/source",
		token:    token,
		result:   &result,
	}); err != nil {
		return nil, err
	}
	return &result, nil
}
