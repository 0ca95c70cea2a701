// Package registry builds the package-manager commands that install a theme
// through the shadcn component registry.
package registry

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/renato0307/shade/internal/share"
	"github.com/renato0307/shade/internal/types"
)

// DefaultBaseURL serves the theme.json registry item.
const DefaultBaseURL = "https://shade.dev"

// PackageManager is a supported JavaScript package manager.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// PackageManagers lists the supported package managers.
var PackageManagers = []PackageManager{NPM, PNPM, Bun}

var runners = map[PackageManager]string{
	NPM:  "npx shadcn@latest add",
	PNPM: "pnpm dlx shadcn@latest add",
	Bun:  "bunx --bun shadcn@latest add",
}

// ParsePackageManager resolves a package manager name; empty means npm.
func ParsePackageManager(s string) (PackageManager, error) {
	if s == "" {
		return NPM, nil
	}
	pm := PackageManager(strings.ToLower(s))
	if _, ok := runners[pm]; !ok {
		return "", fmt.Errorf("unknown package manager %q (want npm, pnpm or bun)", s)
	}
	return pm, nil
}

// URL returns the registry item URL for s.
func URL(s types.State, baseURL string) (string, error) {
	token, err := share.Encode(s)
	if err != nil {
		return "", err
	}
	return TokenURL(token, baseURL), nil
}

// TokenURL returns the registry item URL for an already encoded share token.
func TokenURL(token, baseURL string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/r/theme.json?t=" + url.QueryEscape(token)
}

// Command returns the shell command installing s with pm.
func Command(pm PackageManager, s types.State, baseURL string) (string, error) {
	token, err := share.Encode(s)
	if err != nil {
		return "", fmt.Errorf("build registry url: %w", err)
	}
	return TokenCommand(pm, token, baseURL)
}

// TokenCommand is Command for an already encoded share token.
func TokenCommand(pm PackageManager, token, baseURL string) (string, error) {
	runner, ok := runners[pm]
	if !ok {
		return "", fmt.Errorf("unknown package manager %q", pm)
	}
	return runner + " " + TokenURL(token, baseURL), nil
}
