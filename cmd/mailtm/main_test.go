package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailtm "github.com/mailtm/client-go"
)

func newStubAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /domains", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hydra:member":[{"id":"d1","domain":"example.com","isActive":true,"isPrivate":false}],"hydra:totalItems":1}`))
	})
	mux.HandleFunc("POST /accounts", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "acc1", "address": body["address"]})
	})
	mux.HandleFunc("GET /me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer jwt" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":"acc1","address":"me@example.com"}`))
	})
	mux.HandleFunc("GET /messages", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"hydra:member":[],"hydra:totalItems":0}`))
	})
	mux.HandleFunc("DELETE /messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("PUT /messages/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"seen":true}`))
	})
	mux.HandleFunc("GET /messages/{id}/source", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"` + r.PathValue("id") + `","downloadUrl":"/messages/m1/download","data":"Subject: hi\r\n\r\nbody"}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// execute runs the CLI against server and returns stdout.
func execute(t *testing.T, server *httptest.Server, args ...string) (string, error) {
	t.Helper()

	for _, key := range []string{"MAILTM_TOKEN", "MAILTM_DEBUG", "MAILTM_TIMEOUT", "MAILTM_USER_AGENT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("MAILTM_BASE_URL", server.URL)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestDomainsCommand(t *testing.T) {
	out, err := execute(t, newStubAPI(t), "domains")
	require.NoError(t, err)

	var list mailtm.DomainList
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list.Members, 1)
	assert.Equal(t, "example.com", list.Members[0].Domain)
}

func TestCreateAccountCommand_PrintsGeneratedCredentials(t *testing.T) {
	out, err := execute(t, newStubAPI(t), "create-account")
	require.NoError(t, err)

	var created struct {
		Account     mailtm.Account     `json:"account"`
		Credentials mailtm.Credentials `json:"credentials"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, "acc1", created.Account.ID)
	assert.Regexp(t, `^[A-Za-z0-9]{8}@example\.com$`, created.Credentials.Address)
	assert.Len(t, created.Credentials.Password, mailtm.DefaultRandomLength)
}

func TestMeCommand_TokenFlag(t *testing.T) {
	out, err := execute(t, newStubAPI(t), "me", "--token", "jwt")
	require.NoError(t, err)
	assert.Contains(t, out, `"address": "me@example.com"`)
}

func TestMeCommand_TokenFromEnvironment(t *testing.T) {
	server := newStubAPI(t)

	var stdout bytes.Buffer
	t.Setenv("MAILTM_BASE_URL", server.URL)
	t.Setenv("MAILTM_TOKEN", "jwt")

	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"me"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), `"id": "acc1"`)
}

func TestProtectedCommand_MissingToken(t *testing.T) {
	_, err := execute(t, newStubAPI(t), "messages")
	require.Error(t, err)
	assert.ErrorIs(t, err, mailtm.ErrMissingToken)
}

func TestMeCommand_UnauthorizedReportsStatus(t *testing.T) {
	_, err := execute(t, newStubAPI(t), "me", "--token", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, mailtm.ErrInvalidResponse)
	assert.Equal(t, 401, mailtm.StatusCode(err))
	assert.Equal(t, 1, strings.Count(err.Error(), "status 401"), err.Error())
}

func TestMessagesCommand_Page(t *testing.T) {
	out, err := execute(t, newStubAPI(t), "messages", "--token", "jwt", "--page", "3")
	require.NoError(t, err)
	assert.Contains(t, out, `"hydra:totalItems": 0`)
}

func TestDeleteAndReadCommands(t *testing.T) {
	server := newStubAPI(t)

	out, err := execute(t, server, "delete-message", "m1", "--token", "jwt")
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted": true}`, out)

	out, err = execute(t, server, "read", "m1", "--token", "jwt")
	require.NoError(t, err)
	assert.JSONEq(t, `{"read": true}`, out)
}

func TestSourceCommand_Raw(t *testing.T) {
	out, err := execute(t, newStubAPI(t), "source", "m1", "--token", "jwt", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "Subject: hi\r\n\r\nbody", out)
}

func TestCommand_RequiresID(t *testing.T) {
	_, err := execute(t, newStubAPI(t), "message", "--token", "jwt")
	assert.Error(t, err)
}

func TestTokenCommand_RequiresFlags(t *testing.T) {
	_, err := execute(t, newStubAPI(t), "token", "--address", "a@example.com")
	assert.Error(t, err)
}
