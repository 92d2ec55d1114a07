package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// DefaultTokenPath is where the installed-app flow stores the user token.
const DefaultTokenPath = "token.json"

// AuthFlow runs the one-time installed-app authorization that produces token.json.
type AuthFlow struct {
	config *oauth2.Config
}

// NewAuthFlow parses OAuth desktop-app credentials.
func NewAuthFlow(credentialsJSON []byte) (*AuthFlow, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("parse OAuth credentials: %w", err)
	}
	return &AuthFlow{config: cfg}, nil
}

// AuthCodeURL returns the URL the user opens to grant calendar access.
func (f *AuthFlow) AuthCodeURL() string {
	return f.config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// Exchange trades the authorization code for a token.
func (f *AuthFlow) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := f.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
