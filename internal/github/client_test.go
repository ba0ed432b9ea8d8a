package github_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haseebk/dev-net/internal/github"
)

func TestRepositories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/repos" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("per_page") != "5" || q.Get("sort") != "created" || q.Get("direction") != "asc" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if got := r.Header.Get("Authorization"); got != "token gh_secret" {
			t.Errorf("auth header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"hello","html_url":"https://github.com/octocat/hello","stargazers_count":3}]`))
	}))
	defer srv.Close()

	c := github.NewClient("gh_secret")
	c.BaseURL = srv.URL

	repos, err := c.Repositories(context.Background(), "octocat")
	if err != nil {
		t.Fatal(err)
	}
	if len(repos) != 1 || repos[0].Name != "hello" || repos[0].Stars != 3 {
		t.Fatalf("unexpected repos: %#v", repos)
	}
}

func TestRepositoriesNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := github.NewClient("")
	c.BaseURL = srv.URL

	if _, err := c.Repositories(context.Background(), "nobody"); !errors.Is(err, github.ErrNoProfile) {
		t.Fatalf("want ErrNoProfile, got %v", err)
	}
}

func TestRepositoriesTransportError(t *testing.T) {
	c := github.NewClient("")
	c.BaseURL = "http://127.0.0.1:1" // nothing listens here

	if _, err := c.Repositories(context.Background(), "octocat"); !errors.Is(err, github.ErrNoProfile) {
		t.Fatalf("want ErrNoProfile, got %v", err)
	}
}
