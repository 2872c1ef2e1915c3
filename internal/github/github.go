// Package github is the extension point for publishing generated assets
// to a repository. No transport is implemented: Publish reports exactly
// why it did nothing and never claims success.
package github

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Environment variables consulted when flags don't supply values.
const (
	TokenEnv = "GITHUB_TOKEN"
	RepoEnv  = "GITHUB_REPO"
)

// Publisher holds the credentials and target for a repository push.
type Publisher struct {
	Token string
	Owner string
	Repo  string
}

// FromEnv builds a Publisher from GITHUB_TOKEN and GITHUB_REPO.
// repoOverride, when non-empty, takes precedence over the environment.
func FromEnv(repoOverride string) *Publisher {
	repo := repoOverride
	if repo == "" {
		repo = os.Getenv(RepoEnv)
	}
	p := &Publisher{Token: os.Getenv(TokenEnv)}
	if owner, name, ok := strings.Cut(repo, "/"); ok && owner != "" && name != "" {
		p.Owner = owner
		p.Repo = name
	}
	return p
}

// Publish would push the given files with a commit message. It returns
// false without effect when no token is configured, when the target
// repository is not set as owner/name, or — always, today — because no
// transport implementation exists.
func (p *Publisher) Publish(files []string, message string) bool {
	if p.Token == "" {
		logrus.Warn("No GitHub token provided, skipping repository push")
		return false
	}
	if p.Owner == "" || p.Repo == "" {
		logrus.Warn("GitHub repository not specified. Use --github-repo owner/repo")
		return false
	}
	logrus.Warnf("GitHub publishing is not implemented; %d files for %s/%s not pushed (message: %q)",
		len(files), p.Owner, p.Repo, message)
	return false
}
