package mailtm

import "github.com/mailtm/client-go/internal/api"

// Server records. Each one is decoded from a single API response and is
// never modified by the client.
type (
	// Token is a bearer credential returned by GetToken.
	Token = api.Token
	// Account is a mailbox account.
	Account = api.Account
	// Domain is a domain accounts can be created under.
	Domain = api.Domain
	// DomainList is one page of domains with the server's total count.
	DomainList = api.DomainList
	// Address is a sender or recipient name/address pair.
	Address = api.Address
	// Message is the envelope summary of a mailbox entry.
	Message = api.Message
	// MessageList is one page of message summaries with pagination cursors.
	MessageList = api.MessageList
	// MessageView holds the pagination cursors of a MessageList.
	MessageView = api.MessageView
	// MessageSearch is the search template advertised with a MessageList.
	MessageSearch = api.MessageSearch
	// Mapping describes one variable of a MessageSearch template.
	Mapping = api.Mapping
	// MessageDetail is the full content of a message.
	MessageDetail = api.MessageDetail
	// Attachment is the metadata of one message attachment.
	Attachment = api.Attachment
	// MessageSource is the raw source of a message.
	MessageSource = api.MessageSource
	// Timestamp is a server time kept exactly as sent; Time parses it.
	Timestamp = api.Timestamp
)

// Credentials are the address and password of an account.
type Credentials struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}
