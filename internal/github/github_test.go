package github

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	orig, had := os.LookupEnv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, orig)
		} else {
			os.Unsetenv(key)
		}
	})
	if value == "" {
		os.Unsetenv(key)
	} else {
		os.Setenv(key, value)
	}
}

func TestFromEnv(t *testing.T) {
	setEnv(t, TokenEnv, "tok")
	setEnv(t, RepoEnv, "acme/icons")

	p := FromEnv("")
	if p.Token != "tok" {
		t.Errorf("Token = %q, want %q", p.Token, "tok")
	}
	if p.Owner != "acme" || p.Repo != "icons" {
		t.Errorf("repo = %s/%s, want acme/icons", p.Owner, p.Repo)
	}
}

func TestFromEnvOverrideWins(t *testing.T) {
	setEnv(t, TokenEnv, "tok")
	setEnv(t, RepoEnv, "acme/icons")

	p := FromEnv("other/assets")
	if p.Owner != "other" || p.Repo != "assets" {
		t.Errorf("repo = %s/%s, want other/assets", p.Owner, p.Repo)
	}
}

func TestFromEnvBadRepoFormat(t *testing.T) {
	setEnv(t, TokenEnv, "tok")
	setEnv(t, RepoEnv, "")

	for _, repo := range []string{"no-slash", "/name", "owner/"} {
		p := FromEnv(repo)
		if p.Owner != "" || p.Repo != "" {
			t.Errorf("repo %q parsed as %s/%s, want empty", repo, p.Owner, p.Repo)
		}
	}
}

func TestPublishWithoutToken(t *testing.T) {
	p := &Publisher{Owner: "acme", Repo: "icons"}
	if p.Publish([]string{"a.svg"}, "update") {
		t.Error("Publish without token must return false")
	}
}

func TestPublishWithoutRepo(t *testing.T) {
	p := &Publisher{Token: "tok"}
	if p.Publish([]string{"a.svg"}, "update") {
		t.Error("Publish without repo must return false")
	}
}

func TestPublishNeverSucceeds(t *testing.T) {
	p := &Publisher{Token: "tok", Owner: "acme", Repo: "icons"}
	if p.Publish([]string{"a.svg", "a.png"}, "update") {
		t.Error("Publish has no transport and must never report success")
	}
}
