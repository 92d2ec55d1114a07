package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smart-task-dashboard/pkg/gcalendar"
)

// newGcalAuthCmd authorizes Google Calendar access once and writes token.json
// for the installed-app credentials the API server reads at startup.
func newGcalAuthCmd() *cobra.Command {
	var tokenPath string
	cmd := &cobra.Command{
		Use:   "gcal-auth [credentials.json]",
		Short: "Authorize Google Calendar access and save token.json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) == 1 {
				credsPath = args[0]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}
			flow, err := gcalendar.NewAuthFlow(data)
			if err != nil {
				return fmt.Errorf("%w (%q must be an OAuth desktop app credentials file)", err, credsPath)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, flow.AuthCodeURL())
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here and press Enter: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := flow.Exchange(cmd.Context(), code)
			if err != nil {
				return err
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nSaved %s. Restart the API server to enable calendar sync.\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenPath, "where to write the token")
	return cmd
}
