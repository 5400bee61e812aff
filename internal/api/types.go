package api

import (
	"bytes"
	"encoding/json"
	"time"
)

// TokenRequest represents the POST /token and POST /accounts request body.
type TokenRequest struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

// Token represents the POST /token response.
type Token struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// Account represents the /accounts/{id} and /me responses.
type Account struct {
	ID         string    `json:"id"`
	Address    string    `json:"address"`
	Quota      int64     `json:"quota"`
	Used       int64     `json:"used"`
	IsDisabled bool      `json:"isDisabled"`
	IsDeleted  bool      `json:"isDeleted"`
	CreatedAt  Timestamp `json:"createdAt"`
	UpdatedAt  Timestamp `json:"updatedAt"`
}

// Domain represents the /domains/{id} response.
type Domain struct {
	ID        string    `json:"id"`
	Domain    string    `json:"domain"`
	IsActive  bool      `json:"isActive"`
	IsPrivate bool      `json:"isPrivate"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// DomainList represents the /domains response.
type DomainList struct {
	Members    []Domain `json:"hydra:member"`
	TotalItems int      `json:"hydra:totalItems"`
}

// Address is a sender or recipient of a message.
type Address struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Message is the summary of a mailbox entry as returned by /messages.
type Message struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"accountId"`
	MsgID          string    `json:"msgid"`
	From           Address   `json:"from"`
	To             []Address `json:"to"`
	Subject        string    `json:"subject"`
	Intro          string    `json:"intro"`
	Seen           bool      `json:"seen"`
	IsDeleted      bool      `json:"isDeleted"`
	HasAttachments bool      `json:"hasAttachments"`
	Size           int64     `json:"size"`
	DownloadURL    string    `json:"downloadUrl"`
	CreatedAt      Timestamp `json:"createdAt"`
	UpdatedAt      Timestamp `json:"updatedAt"`
}

// MessageView holds the pagination cursors of a message list.
type MessageView struct {
	ID       string `json:"@id,omitempty"`
	First    string `json:"hydra:first,omitempty"`
	Last     string `json:"hydra:last,omitempty"`
	Previous string `json:"hydra:previous,omitempty"`
	Next     string `json:"hydra:next,omitempty"`
}

// Mapping describes one variable of a MessageSearch template.
type Mapping struct {
	Type     string `json:"@type"`
	Variable string `json:"variable"`
	Property string `json:"property"`
	Required bool   `json:"required"`
}

// MessageSearch describes the search template advertised with a message list.
type MessageSearch struct {
	Template               string    `json:"hydra:template"`
	VariableRepresentation string    `json:"hydra:variableRepresentation"`
	Mapping                []Mapping `json:"hydra:mapping"`
}

// MessageList represents the /messages response.
type MessageList struct {
	Members    []Message      `json:"hydra:member"`
	TotalItems int            `json:"hydra:totalItems"`
	View       *MessageView   `json:"hydra:view,omitempty"`
	Search     *MessageSearch `json:"hydra:search,omitempty"`
}

// Attachment is the metadata of one attachment of a MessageDetail.
type Attachment struct {
	ID               string `json:"id"`
	Filename         string `json:"filename"`
	ContentType      string `json:"contentType"`
	Disposition      string `json:"disposition"`
	TransferEncoding string `json:"transferEncoding"`
	Related          bool   `json:"related"`
	Size             int64  `json:"size"`
	DownloadURL      string `json:"downloadUrl"`
}

// MessageDetail represents the /messages/{id} response.
type MessageDetail struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"accountId"`
	MsgID          string          `json:"msgid"`
	From           Address         `json:"from"`
	To             []Address       `json:"to"`
	Cc             []string        `json:"cc"`
	Bcc            []string        `json:"bcc"`
	Subject        string          `json:"subject"`
	Seen           bool            `json:"seen"`
	Flagged        bool            `json:"flagged"`
	IsDeleted      bool            `json:"isDeleted"`
	Verifications  json.RawMessage `json:"verifications,omitempty"` // object or array, kept verbatim
	Retention      bool            `json:"retention"`
	RetentionDate  Timestamp       `json:"retentionDate"`
	Text           string          `json:"text"`
	HTML           []string        `json:"html"`
	HasAttachments bool            `json:"hasAttachments"`
	Attachments    []Attachment    `json:"attachments,omitempty"`
	Size           int64           `json:"size"`
	DownloadURL    string          `json:"downloadUrl"`
	CreatedAt      Timestamp       `json:"createdAt"`
	UpdatedAt      Timestamp       `json:"updatedAt"`
}

// MessageSource represents the /messages/{id}/source response.
type MessageSource struct {
	ID          string `json:"id"`
	DownloadURL string `json:"downloadUrl"`
	Data        string `json:"data"`
}

// readState is the subset of the /messages/{id}/read response the client
// inspects.
type readState struct {
	Seen json.RawMessage `json:"seen"`
}

// isRead reports whether the seen field carries the read marker. The
// server has answered both a boolean and the string "read" here.
func (r readState) isRead() bool {
	v := bytes.TrimSpace(r.Seen)
	return bytes.Equal(v, []byte("true")) || bytes.Equal(v, []byte(`"read"`))
}

// Timestamp is a server time kept exactly as sent, so records always hold
// the JSON value verbatim. Time parses it on demand.
type Timestamp string

// Time parses the timestamp as RFC 3339. An empty Timestamp yields the zero
// time and no error.
func (ts Timestamp) Time() (time.Time, error) {
	if ts == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, string(ts))
}
