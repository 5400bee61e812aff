// Package mailtm provides a Go client for mail.tm, a disposable email
// service with a REST API.
//
// Each method maps to exactly one API endpoint and performs a single
// request. The client keeps no account state: methods for protected
// endpoints take the bearer token obtained from GetToken.
//
// Basic usage:
//
//	client, err := mailtm.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create an account with a generated address and password
//	account, creds, err := client.CreateAccount(ctx, mailtm.Credentials{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := client.GetToken(ctx, creds.Address, creds.Password)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	messages, err := client.GetMessages(ctx, token.Token, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(account.Address, messages.TotalItems)
//
// # Errors
//
// Every failed call matches [ErrInvalidResponse]. No call is retried; the
// caller decides whether to retry, for instance with a new random address
// when account creation is rejected. Use errors.As with [APIError] to read
// the status code.
package mailtm
