package main

import (
	cognidb "github.com/cognidb/cognidb-sdk/go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	loginEndpoint string
	loginUser     string
	loginManaged  bool
)

// loginCmd verifies the credentials against the server, then persists the
// connection profile and stores the password in the OS keyring.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a connection profile and verify the credentials",
	RunE: func(cmd *cobra.Command, _ []string) error {
		password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return err
		}

		client, err := cognidb.Connect(cmd.Context(), &cognidb.Config{
			Endpoint: loginEndpoint,
			User:     loginUser,
			Password: password,
			Managed:  loginManaged,
			Logger:   buildLogger(),
		})
		if err != nil {
			return err
		}
		defer client.Close()

		if err := saveFileConfig(&fileConfig{
			Endpoint: loginEndpoint,
			User:     loginUser,
			Managed:  loginManaged,
		}); err != nil {
			return err
		}
		if err := storePassword(loginUser, password); err != nil {
			return err
		}

		pterm.Success.Printfln("Logged in to %s as %s", loginEndpoint, loginUser)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEndpoint, "endpoint", "https://cloud.cognidb.com", "server URL")
	loginCmd.Flags().StringVar(&loginUser, "user", "", "account identifier")
	loginCmd.Flags().BoolVar(&loginManaged, "managed", false, "use the managed-instance login path")
	_ = loginCmd.MarkFlagRequired("user")
}
