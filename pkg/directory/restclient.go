package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// RESTDirectoryConfig configures the directory REST client
type RESTDirectoryConfig struct {
	BaseURL  string
	APIToken string
}

// RESTDirectory implements UserDirectory over the auth provider's admin
// REST API.
type RESTDirectory struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

// NewRESTDirectory creates a new REST-backed directory client
func NewRESTDirectory(cfg RESTDirectoryConfig) *RESTDirectory {
	return &RESTDirectory{
		baseURL:  cfg.BaseURL,
		apiToken: cfg.APIToken,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type listUsersResponse struct {
	Users []struct {
		UID        string `json:"uid"`
		Email      string `json:"email"`
		LastSignIn string `json:"last_sign_in"`
	} `json:"users"`
	NextPageToken string `json:"next_page_token"`
}

// ListUsers fetches one page of users
func (d *RESTDirectory) ListUsers(ctx context.Context, pageSize int, pageToken string) (Page, error) {
	u, err := url.Parse(d.baseURL + "/users")
	if err != nil {
		return Page{}, fmt.Errorf("invalid directory base URL: %w", err)
	}
	q := u.Query()
	q.Set("page_size", strconv.Itoa(pageSize))
	if pageToken != "" {
		q.Set("page_token", pageToken)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Page{}, err
	}
	req.Header.Set("Authorization", "Bearer "+d.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var body listUsersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Page{}, fmt.Errorf("failed to decode directory response: %w", err)
	}

	page := Page{NextPageToken: body.NextPageToken}
	for _, u := range body.Users {
		user := User{UID: u.UID, Email: u.Email}
		if u.LastSignIn != "" {
			if t, err := time.Parse(time.RFC3339, u.LastSignIn); err == nil {
				user.LastSignIn = &t
			}
		}
		page.Users = append(page.Users, user)
	}

	return page, nil
}
