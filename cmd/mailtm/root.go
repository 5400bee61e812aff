package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	mailtm "github.com/mailtm/client-go"
)

// globalFlags holds the persistent flags shared by every sub-command.
type globalFlags struct {
	baseURL string
	token   string
	timeout time.Duration
	debug   bool
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "mailtm",
		Short:         "Command-line client for the mail.tm disposable email API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if flags.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.baseURL, "base-url", "", "API base URL (env MAILTM_BASE_URL)")
	pf.StringVar(&flags.token, "token", "", "Bearer token for protected endpoints (env MAILTM_TOKEN)")
	pf.DurationVar(&flags.timeout, "timeout", 0, "Per-request timeout, 0 for none (env MAILTM_TIMEOUT)")
	pf.BoolVarP(&flags.debug, "debug", "d", false, "Log every HTTP exchange (env MAILTM_DEBUG)")

	rootCmd.AddCommand(newDomainsCmd(flags))
	rootCmd.AddCommand(newDomainCmd(flags))
	rootCmd.AddCommand(newCreateAccountCmd(flags))
	rootCmd.AddCommand(newTokenCmd(flags))
	rootCmd.AddCommand(newMeCmd(flags))
	rootCmd.AddCommand(newAccountCmd(flags))
	rootCmd.AddCommand(newDeleteAccountCmd(flags))
	rootCmd.AddCommand(newMessagesCmd(flags))
	rootCmd.AddCommand(newMessageCmd(flags))
	rootCmd.AddCommand(newDeleteMessageCmd(flags))
	rootCmd.AddCommand(newReadCmd(flags))
	rootCmd.AddCommand(newSourceCmd(flags))

	return rootCmd
}

// session is the resolved configuration of one command invocation.
type session struct {
	client *mailtm.Client
	token  string
}

// open merges environment configuration with explicitly set flags and
// builds a client. The caller must close the returned client.
func (f *globalFlags) open(cmd *cobra.Command) (*session, error) {
	cfg, err := mailtm.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	pf := cmd.Flags()
	if pf.Changed("base-url") {
		cfg.BaseURL = f.baseURL
	}
	if pf.Changed("token") {
		cfg.Token = f.token
	}
	if pf.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if pf.Changed("debug") {
		cfg.Debug = f.debug
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	opts := append(cfg.Options(), mailtm.WithLogger(log.Logger))
	client, err := mailtm.New(opts...)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("base_url", client.BaseURL()).Msg("client ready")
	return &session{client: client, token: cfg.Token}, nil
}

// run opens a session, runs fn and closes the session's client.
func (f *globalFlags) run(cmd *cobra.Command, fn func(ctx context.Context, s *session) (interface{}, error)) error {
	s, err := f.open(cmd)
	if err != nil {
		return err
	}
	defer s.client.Close()

	start := time.Now()
	out, err := fn(cmd.Context(), s)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	log.Debug().Str("command", cmd.Name()).Dur("elapsed", time.Since(start)).Msg("command finished")

	return printJSON(cmd, out)
}

// rawOutput is written to stdout verbatim instead of as JSON.
type rawOutput string

func printJSON(cmd *cobra.Command, v interface{}) error {
	if raw, ok := v.(rawOutput); ok {
		_, err := io.WriteString(cmd.OutOrStdout(), string(raw))
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// requireToken returns the session token or a hint on how to provide one.
func (s *session) requireToken() (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("%w: pass --token or set MAILTM_TOKEN", mailtm.ErrMissingToken)
	}
	return s.token, nil
}
