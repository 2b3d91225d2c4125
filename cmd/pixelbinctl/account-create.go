package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"pixelbin/pkg/db"
	gormstore "pixelbin/pkg/server/store/gorm"
)

// accountCreateCmd represents the account create command
var accountCreateCmd = &cobra.Command{
	Use:   "create [username]",
	Short: "Create a user account",
	Long: `Create a user account directly in the database.

The password is taken from the --password flag. When the flag is omitted a
random password is generated and printed to STDOUT.

Example:
  pixelbinctl account create alice --password s3cret
  pixelbinctl account create alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]
		password, _ := cmd.Flags().GetString("password")

		generated := false
		if password == "" {
			var err error
			password, err = randomPassword()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to generate password: %v\n", err)
				os.Exit(1)
			}
			generated = true
		}

		if err := createAccount(username, password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create account: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created account '%s'\n", username)
		if generated {
			fmt.Printf("Password for %s: %s\n", username, password)
		}
	},
}

func init() {
	accountCmd.AddCommand(accountCreateCmd)
	accountCreateCmd.Flags().StringP("password", "p", "", "Password for the new account")
}

func randomPassword() (string, error) {
	raw := make([]byte, 18)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func createAccount(username string, password string) error {
	gormDB, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = gormstore.NewUsersStore(gormDB).Create(username, hash)
	return err
}
