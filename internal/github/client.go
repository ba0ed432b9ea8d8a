package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrNoProfile covers every lookup failure: transport errors, timeouts and
// non-200 responses all collapse into one "no github profile found" outcome.
var ErrNoProfile = errors.New("no github profile found")

type Repo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}

type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		BaseURL: "https://api.github.com",
		Token:   token,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Repositories returns the user's five oldest repositories (creation ascending).
func (c *Client) Repositories(ctx context.Context, username string) ([]Repo, error) {
	uri := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created&direction=asc",
		c.BaseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, ErrNoProfile
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "token "+c.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrNoProfile
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoProfile
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, ErrNoProfile
	}
	return repos, nil
}
