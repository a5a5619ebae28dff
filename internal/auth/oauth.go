package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

// Identity is what an OAuth provider tells us about the signed-in user.
type Identity struct {
	Email string
	Name  string
}

// Provider wraps one OAuth provider's config plus the call that turns an
// access token into an identity.
type Provider struct {
	Name   string
	Config *oauth2.Config

	fetchIdentity func(ctx context.Context, client *http.Client) (*Identity, error)
}

// AuthCodeURL builds the provider redirect URL for the given CSRF state.
func (p *Provider) AuthCodeURL(state string) string {
	return p.Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for an identity.
func (p *Provider) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	return p.fetchIdentity(ctx, p.Config.Client(ctx, token))
}

// NewProviders builds the configured OAuth providers. A provider with no
// client ID is omitted, so a deployment can run with a single provider or,
// with test login enabled, none at all.
func NewProviders(baseURL, githubID, githubSecret, googleID, googleSecret string) map[string]*Provider {
	providers := make(map[string]*Provider)

	if githubID != "" {
		providers["github"] = &Provider{
			Name: "github",
			Config: &oauth2.Config{
				ClientID:     githubID,
				ClientSecret: githubSecret,
				Endpoint:     github.Endpoint,
				RedirectURL:  baseURL + "/auth/github/callback",
				Scopes:       []string{"user:email"},
			},
			fetchIdentity: fetchGitHubIdentity,
		}
	}

	if googleID != "" {
		providers["google"] = &Provider{
			Name: "google",
			Config: &oauth2.Config{
				ClientID:     googleID,
				ClientSecret: googleSecret,
				Endpoint:     google.Endpoint,
				RedirectURL:  baseURL + "/auth/google/callback",
				Scopes:       []string{"openid", "email", "profile"},
			},
			fetchIdentity: fetchGoogleIdentity,
		}
	}

	return providers
}

func fetchGitHubIdentity(ctx context.Context, client *http.Client) (*Identity, error) {
	var user struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Login string `json:"login"`
	}
	if err := getJSON(ctx, client, "https://api.github.com/user", &user); err != nil {
		return nil, err
	}

	// The profile email is empty when the user keeps it private; the
	// emails endpoint still returns the verified primary address.
	if user.Email == "" {
		var emails []struct {
			Email    string `json:"email"`
			Primary  bool   `json:"primary"`
			Verified bool   `json:"verified"`
		}
		if err := getJSON(ctx, client, "https://api.github.com/user/emails", &emails); err != nil {
			return nil, err
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				user.Email = e.Email
				break
			}
		}
	}
	if user.Email == "" {
		return nil, fmt.Errorf("github profile has no verified email")
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}
	return &Identity{Email: user.Email, Name: name}, nil
}

func fetchGoogleIdentity(ctx context.Context, client *http.Client) (*Identity, error) {
	var user struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := getJSON(ctx, client, "https://www.googleapis.com/oauth2/v2/userinfo", &user); err != nil {
		return nil, err
	}
	if user.Email == "" {
		return nil, fmt.Errorf("google profile has no email")
	}
	return &Identity{Email: user.Email, Name: user.Name}, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fetch %s: status %d: %s", url, resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// NewState produces a random CSRF state value for the OAuth redirect.
func NewState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
