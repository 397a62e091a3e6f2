package admin

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/service"
	"github.com/spf13/cobra"
)

// ErrPersistentStoreRequired is returned when the configured credential
// store lives only in the memory of another process.
var ErrPersistentStoreRequired = errors.New("user administration needs a persistent credential store (STORAGE_DB_DSN)")

// RequirePersistentStore rejects the in-memory credential store, which a
// separate process can not reach.
func RequirePersistentStore(cfg config.Storage) error {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == "" || dsn == "memory" {
		return ErrPersistentStoreRequired
	}
	return nil
}

// NewCommand returns the root command of the user administration tool.
func NewCommand(auth service.AuthService, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "useradmin",
		Short:         "Administer gateway user accounts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.AddCommand(
		setActiveCmd(auth, "activate", "Allow an account to log in again", true),
		setActiveCmd(auth, "deactivate", "Reject logins and outstanding tokens of an account", false),
	)

	return cmd
}

func setActiveCmd(auth service.AuthService, use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <username>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := auth.SetUserActive(cmd.Context(), args[0], active)
			if err != nil {
				return fmt.Errorf("%s %q: %w", use, args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %q (id %d) active=%t\n", user.Username, user.ID, user.IsActive)
			return nil
		},
	}
}
