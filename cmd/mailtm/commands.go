package main

import (
	"context"

	"github.com/spf13/cobra"

	mailtm "github.com/mailtm/client-go"
)

func newDomainsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "List the domains accounts can be created on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				return s.client.GetDomains(ctx)
			})
		},
	}
}

func newDomainCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "domain <id>",
		Short: "Show a single domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				return s.client.GetDomain(ctx, args[0])
			})
		},
	}
}

// createdAccount is printed by create-account so generated credentials are
// not lost.
type createdAccount struct {
	Account     *mailtm.Account    `json:"account"`
	Credentials mailtm.Credentials `json:"credentials"`
}

func newCreateAccountCmd(flags *globalFlags) *cobra.Command {
	var creds mailtm.Credentials

	cmd := &cobra.Command{
		Use:   "create-account",
		Short: "Register an account, generating any credential left empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				account, used, err := s.client.CreateAccount(ctx, creds)
				if err != nil {
					return nil, err
				}
				return createdAccount{Account: account, Credentials: used}, nil
			})
		},
	}

	cmd.Flags().StringVar(&creds.Address, "address", "", "Address to register (random on the first domain if empty)")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Password (random if empty)")
	return cmd
}

func newTokenCmd(flags *globalFlags) *cobra.Command {
	var creds mailtm.Credentials

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Exchange an address and password for a bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				return s.client.GetToken(ctx, creds.Address, creds.Password)
			})
		},
	}

	cmd.Flags().StringVar(&creds.Address, "address", "", "Account address")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newMeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the account the token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				token, err := s.requireToken()
				if err != nil {
					return nil, err
				}
				return s.client.GetMe(ctx, token)
			})
		},
	}
}

func newAccountCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "account <id>",
		Short: "Show an account by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				token, err := s.requireToken()
				if err != nil {
					return nil, err
				}
				return s.client.GetAccount(ctx, token, args[0])
			})
		},
	}
}

func newDeleteAccountCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-account <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				token, err := s.requireToken()
				if err != nil {
					return nil, err
				}
				deleted, err := s.client.DeleteAccount(ctx, token, args[0])
				if err != nil {
					return nil, err
				}
				return map[string]bool{"deleted": deleted}, nil
			})
		},
	}
}

func newMessagesCmd(flags *globalFlags) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List one page of messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				token, err := s.requireToken()
				if err != nil {
					return nil, err
				}
				return s.client.GetMessages(ctx, token, page)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	return cmd
}

func newMessageCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "message <id>",
		Short: "Show a message with its bodies and attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				token, err := s.requireToken()
				if err != nil {
					return nil, err
				}
				return s.client.GetMessage(ctx, token, args[0])
			})
		},
	}
}

func newDeleteMessageCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-message <id>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				token, err := s.requireToken()
				if err != nil {
					return nil, err
				}
				deleted, err := s.client.DeleteMessage(ctx, token, args[0])
				if err != nil {
					return nil, err
				}
				return map[string]bool{"deleted": deleted}, nil
			})
		},
	}
}

func newReadCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a message as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				token, err := s.requireToken()
				if err != nil {
					return nil, err
				}
				read, err := s.client.MarkMessageRead(ctx, token, args[0])
				if err != nil {
					return nil, err
				}
				return map[string]bool{"read": read}, nil
			})
		},
	}
}

func newSourceCmd(flags *globalFlags) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "source <id>",
		Short: "Show the raw RFC 822 source of a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, func(ctx context.Context, s *session) (interface{}, error) {
				token, err := s.requireToken()
				if err != nil {
					return nil, err
				}
				src, err := s.client.GetMessageSource(ctx, token, args[0])
				if err != nil {
					return nil, err
				}
				if raw {
					return rawOutput(src.Data), nil
				}
				return src, nil
			})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Write only the message source instead of JSON")
	return cmd
}
