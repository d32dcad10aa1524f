package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cli/oauth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DavidLiedle/gitorg/internal/config"
	"github.com/DavidLiedle/gitorg/internal/display"
	"github.com/DavidLiedle/gitorg/internal/gateway"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with a GitHub personal access token",
	RunE:  runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.Flags().String("token", "", "Token to use (if omitted, prompts interactively)")
	authCmd.Flags().Bool("web", false, "Authenticate through the browser device flow instead")
}

func runAuth(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	web, _ := cmd.Flags().GetBool("web")

	var err error
	if token == "" && web {
		token, err = deviceFlowToken()
		if err != nil {
			return err
		}
	}
	if token == "" {
		token, err = promptForToken()
		if err != nil {
			return err
		}
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("Token cannot be empty")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	fetcher, err := gateway.NewGateway(token, newLogger(verbose))
	if err != nil {
		return err
	}
	user, err := fetcher.ValidateToken(cmd.Context())
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Auth.Token = token
	if err := config.Save(cfg); err != nil {
		return err
	}

	name := user.Name
	if name == "" {
		name = "no name set"
	}
	display.Success(fmt.Sprintf("Authenticated as %s (%s)", user.Login, name))
	return nil
}

// promptForToken reads the token from the terminal with echo disabled. The
// prompt goes to stderr so stdout stays clean for redirection.
func promptForToken() (string, error) {
	fmt.Fprint(os.Stderr, "Enter your GitHub personal access token: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return string(raw), nil
}

// deviceFlowToken runs the OAuth device flow against github.com and
// returns the granted access token.
func deviceFlowToken() (string, error) {
	host, err := oauth.NewGitHubHost("github.com")
	if err != nil {
		return "", fmt.Errorf("failed to prepare device flow: %w", err)
	}
	flow := &oauth.Flow{
		Host:       host,
		Scopes:     []string{"repo", "read:org"},
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
	accessToken, err := flow.DetectFlow()
	if err != nil {
		return "", fmt.Errorf("device flow failed: %w", err)
	}
	return accessToken.Token, nil
}
