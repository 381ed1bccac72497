package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Authenticate against the backend and store the session token",
	Example: `  promoshop login admin
  promoshop login admin --password-stdin < secret.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := adminPanel.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var loginPasswordStdin bool

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "Read the password from stdin instead of prompting")
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := args[0]

	password, err := readPassword()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read password: %v\n", err)
		return err
	}

	if err := adminPanel.Login(cmd.Context(), username, password); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", username)
	return nil
}

func readPassword() (string, error) {
	if loginPasswordStdin {
		var password string
		if _, err := fmt.Fscanln(os.Stdin, &password); err != nil {
			return "", err
		}
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
