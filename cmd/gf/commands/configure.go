package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const configDirPerm = 0o700

// NewConfigureCommand creates the configure command
func NewConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Store API credentials",
		Long: `Prompt for the Gameflip API key and secret and store them in
$HOME/.gf/config.yml. A key prefixed with "test-" or "development-" targets
that environment automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			fmt.Print("API key: ")

			key, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading API key: %w", err)
			}

			key = strings.TrimSpace(key)
			if key == "" {
				return ErrCredentialsRequired
			}

			fmt.Print("API secret: ")

			secretBytes, err := term.ReadPassword(syscall.Stdin)

			fmt.Println()

			if err != nil {
				return fmt.Errorf("reading API secret: %w", err)
			}

			secret := strings.TrimSpace(string(secretBytes))
			if secret == "" {
				return ErrCredentialsRequired
			}

			path, err := writeConfig(key, secret)
			if err != nil {
				return err
			}

			fmt.Println("Credentials saved to", path)

			return nil
		},
	}
}

func writeConfig(key, secret string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".gf")

	err = os.MkdirAll(configDir, configDirPerm)
	if err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	config := map[string]string{
		"key":    key,
		"secret": secret,
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	path := filepath.Join(configDir, "config.yml")

	// The secret is plaintext; keep the file private.
	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return path, nil
}
