//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"

	mailtm "github.com/mailtm/client-go"
)

var baseURL string

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	if os.Getenv("MAILTM_INTEGRATION") == "" {
		os.Stderr.WriteString("Skipping integration tests: MAILTM_INTEGRATION not set\n")
		os.Exit(0)
	}

	baseURL = os.Getenv("MAILTM_BASE_URL")
	if baseURL == "" {
		baseURL = mailtm.DefaultBaseURL
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Stderr.WriteString("API URL: " + baseURL + "\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T) *mailtm.Client {
	t.Helper()

	client, err := mailtm.New(
		mailtm.WithBaseURL(baseURL),
		mailtm.WithTimeout(30*time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

// newAccount registers a random account and deletes it when the test ends.
func newAccount(t *testing.T, client *mailtm.Client) (*mailtm.Account, string) {
	t.Helper()
	ctx := context.Background()

	account, creds, err := client.CreateAccount(ctx, mailtm.Credentials{})
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	t.Logf("Created account: %s", account.Address)

	token, err := client.GetToken(ctx, creds.Address, creds.Password)
	if err != nil {
		t.Fatalf("GetToken() error = %v", err)
	}

	t.Cleanup(func() {
		if _, err := client.DeleteAccount(context.Background(), token.Token, account.ID); err != nil {
			t.Logf("DeleteAccount() cleanup error = %v", err)
		}
	})

	return account, token.Token
}

func TestIntegration_Domains(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	domains, err := client.GetDomains(ctx)
	if err != nil {
		t.Fatalf("GetDomains() error = %v", err)
	}
	if len(domains.Members) == 0 {
		t.Fatal("GetDomains() returned no domains")
	}

	first := domains.Members[0]
	domain, err := client.GetDomain(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetDomain(%s) error = %v", first.ID, err)
	}
	if domain.Domain != first.Domain {
		t.Errorf("GetDomain().Domain = %s, want %s", domain.Domain, first.Domain)
	}
}

func TestIntegration_AccountLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	account, token := newAccount(t, client)

	me, err := client.GetMe(ctx, token)
	if err != nil {
		t.Fatalf("GetMe() error = %v", err)
	}
	if me.ID != account.ID {
		t.Errorf("GetMe().ID = %s, want %s", me.ID, account.ID)
	}

	byID, err := client.GetAccount(ctx, token, account.ID)
	if err != nil {
		t.Fatalf("GetAccount() error = %v", err)
	}
	if !strings.EqualFold(byID.Address, account.Address) {
		t.Errorf("GetAccount().Address = %s, want %s", byID.Address, account.Address)
	}
}

func TestIntegration_EmptyMailbox(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	_, token := newAccount(t, client)

	messages, err := client.GetMessages(ctx, token, 1)
	if err != nil {
		t.Fatalf("GetMessages() error = %v", err)
	}
	if messages.TotalItems != 0 || len(messages.Members) != 0 {
		t.Errorf("GetMessages() returned %d messages, want 0", messages.TotalItems)
	}
}

func TestIntegration_WrongPassword(t *testing.T) {
	client := newClient(t)

	account, _ := newAccount(t, client)

	_, err := client.GetToken(context.Background(), account.Address, "not-the-password")
	if !errors.Is(err, mailtm.ErrInvalidResponse) {
		t.Fatalf("GetToken() error = %v, want ErrInvalidResponse", err)
	}
	if code := mailtm.StatusCode(err); code != 401 {
		t.Errorf("StatusCode() = %d, want 401", code)
	}
}

func TestIntegration_UnknownMessage(t *testing.T) {
	client := newClient(t)

	_, token := newAccount(t, client)

	_, err := client.GetMessage(context.Background(), token, "000000000000000000000000")
	if !errors.Is(err, mailtm.ErrInvalidResponse) {
		t.Errorf("GetMessage() error = %v, want ErrInvalidResponse", err)
	}
}

// TestIntegration_ReceiveMessage is a manual test that requires sending an
// email to the created account. Run with:
//
//	MAILTM_INTEGRATION=1 MANUAL_TEST=1 go test -tags=integration -run=ReceiveMessage -v
func TestIntegration_ReceiveMessage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}

	if os.Getenv("MANUAL_TEST") == "" {
		t.Skip("skipping manual test: set MANUAL_TEST=1 to run")
	}

	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	account, token := newAccount(t, client)
	t.Logf("Send test email to: %s", account.Address)

	var id string
	for id == "" {
		select {
		case <-ctx.Done():
			t.Fatalf("no message received: %v", ctx.Err())
		case <-time.After(3 * time.Second):
		}

		messages, err := client.GetMessages(ctx, token, 1)
		if err != nil {
			t.Fatalf("GetMessages() error = %v", err)
		}
		if len(messages.Members) > 0 {
			id = messages.Members[0].ID
		}
	}

	msg, err := client.GetMessage(ctx, token, id)
	if err != nil {
		t.Fatalf("GetMessage() error = %v", err)
	}
	t.Logf("Received message: Subject=%s, From=%s", msg.Subject, msg.From.Address)

	read, err := client.MarkMessageRead(ctx, token, id)
	if err != nil {
		t.Fatalf("MarkMessageRead() error = %v", err)
	}
	if !read {
		t.Error("MarkMessageRead() = false, want true")
	}

	src, err := client.GetMessageSource(ctx, token, id)
	if err != nil {
		t.Fatalf("GetMessageSource() error = %v", err)
	}
	if src.Data == "" {
		t.Error("GetMessageSource().Data is empty")
	}

	deleted, err := client.DeleteMessage(ctx, token, id)
	if err != nil {
		t.Fatalf("DeleteMessage() error = %v", err)
	}
	if !deleted {
		t.Error("DeleteMessage() = false, want true")
	}
}
