package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd removes the stored password and the connection profile.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored connection profile and password",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadFileConfig()
		if err != nil {
			return err
		}
		if err := removePassword(cfg.User); err != nil {
			pterm.Warning.Printfln("Could not remove stored password: %v", err)
		}
		path, err := configPath()
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil {
			return err
		}
		pterm.Success.Println("Logged out")
		return nil
	},
}
