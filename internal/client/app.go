package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/credit-risk-gateway/internal/adapter"
	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var errUsernameAndPasswordRequired = errors.New("--username and --password are required")

// App is the command line client.
type App struct {
	adapter   adapter.ServerAdapter
	token     string
	buildInfo models.AppBuildInfo

	out       io.Writer
	clipboard func(string) error

	logger *logger.Logger
}

// NewApp wires the client commands to serverAdapter. cfg.Token, when set, is
// used by authenticated commands unless --token overrides it.
func NewApp(serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errors.New("server adapter is required")
	}

	return &App{
		adapter:   serverAdapter,
		token:     cfg.Token,
		buildInfo: buildInfo,
		out:       os.Stdout,
		clipboard: clipboard.WriteAll,
		logger:    logger,
	}, nil
}

// Run executes the command named by args.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.out)
	cmd.SetErr(a.out)

	return cmd.ExecuteContext(ctx)
}

func (a *App) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "credit-risk-client",
		Short:         "Command line client for the credit-risk gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.token != "" {
				a.adapter.SetToken(a.token)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.token, "token", a.token, "Access token for authenticated commands (env CLIENT_TOKEN)")

	cmd.AddCommand(
		a.versionCmd(),
		a.healthCmd(),
		a.registerCmd(),
		a.loginCmd(),
		a.meCmd(),
		a.assessCmd(),
	)

	return cmd
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.buildInfo.String())
		},
	}
}

func (a *App) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show gateway health",
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := a.adapter.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHealth(health))
			return nil
		},
	}
}

func (a *App) registerCmd() *cobra.Command {
	var user models.UserCreate

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user.Username == "" || user.Password == "" {
				return errUsernameAndPasswordRequired
			}

			created, err := a.adapter.Register(cmd.Context(), user)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderUser(created))
			return nil
		},
	}

	cmd.Flags().StringVarP(&user.Username, "username", "u", "", "Username (3-50 characters)")
	cmd.Flags().StringVarP(&user.Email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&user.Password, "password", "p", "", "Password (at least 8 characters)")
	cmd.Flags().StringVar(&user.FullName, "full-name", "", "Full name")

	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	var (
		req       models.LoginRequest
		copyToken bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Username == "" || req.Password == "" {
				return errUsernameAndPasswordRequired
			}

			token, err := a.adapter.Login(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderToken(token))
			if copyToken {
				if err = a.clipboard(token.AccessToken); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(out, helpStyle.Render("token copied to clipboard"))
			}
			fmt.Fprintln(out, helpStyle.Render("export CLIENT_TOKEN=<access token> to use it in later commands"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Password")
	cmd.Flags().BoolVar(&copyToken, "copy", false, "Copy the access token to the clipboard")

	return cmd
}

func (a *App) meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the account the access token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.adapter.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderUser(user))
			return nil
		},
	}
}

func (a *App) assessCmd() *cobra.Command {
	var (
		req  models.CreditRiskRequest
		test bool
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess the credit risk of an application",
		RunE: func(cmd *cobra.Command, args []string) error {
			assess := a.adapter.Assess
			if test {
				assess = a.adapter.TestAssess
			}

			result, err := assess(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.logger.Debug().Int("risk_score", result.RiskScore).Msg("assessment received")

			fmt.Fprintln(cmd.OutOrStdout(), renderAssessment(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ApplicantID, "applicant-id", "", "Applicant identifier")
	cmd.Flags().Float64Var(&req.Income, "income", 0, "Annual income")
	cmd.Flags().IntVar(&req.CreditScore, "credit-score", 0, "Credit score (0-850)")
	cmd.Flags().Float64Var(&req.DebtRatio, "debt-ratio", 0, "Debt to income ratio")
	cmd.Flags().IntVar(&req.EmploymentYears, "employment-years", 0, "Years in current employment")
	cmd.Flags().Float64Var(&req.LoanAmount, "loan-amount", 0, "Requested loan amount")
	cmd.Flags().StringVar(&req.LoanPurpose, "loan-purpose", "", "Purpose of the loan")
	cmd.Flags().BoolVar(&test, "test", false, "Use the unauthenticated test endpoint")

	return cmd
}
