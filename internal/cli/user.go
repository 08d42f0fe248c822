package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/travelpal/travelpal/internal/auth"
	"github.com/travelpal/travelpal/internal/store"
)

var (
	createEmail string
	createPhone string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Register a user directly against the credential store",
	Long: `Create a user account without going through the HTTP API. The password
is prompted interactively and never echoed.

Example:
  travelpal user create alice --email alice@example.com --phone +919812345678`,
	Args: cobra.ExactArgs(1),
	RunE: runUserCreate,
}

func init() {
	userCreateCmd.Flags().StringVar(&createEmail, "email", "", "email address (required)")
	userCreateCmd.Flags().StringVar(&createPhone, "phone", "", "phone number (required)")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("phone")

	userCmd.AddCommand(userCreateCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbClient, err := store.NewClient(ctx, store.Config{URI: cfg.MongoURI, Database: cfg.MongoDatabase}, nil, nil)
	if err != nil {
		return fmt.Errorf("connect to credential store: %w", err)
	}
	defer func() {
		if err := dbClient.Close(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
		}
	}()

	if err := dbClient.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	svc := auth.NewService(dbClient.Users(), tokens, nil)

	req := auth.RegisterRequest{
		Username:    args[0],
		Email:       createEmail,
		PhoneNumber: createPhone,
		Password:    string(password),
	}
	if err := svc.Register(ctx, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	fmt.Printf("User %q registered.\n", args[0])
	return nil
}
