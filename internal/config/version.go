package config

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// GetVersion returns version from environment variable or calculates from git
func GetVersion() string {
	// Version set by CI/CD wins
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	baseVersion := getBaseVersion()
	if commitCount := getGitCommitCount(); commitCount > 0 {
		return baseVersion + "." + strconv.Itoa(commitCount)
	}
	return baseVersion
}

// getBaseVersion reads the base version from the VERSION file in the project
// root, with a hardcoded fallback for stripped-down deployments
func getBaseVersion() string {
	if content, err := os.ReadFile("VERSION"); err == nil {
		return strings.TrimSpace(string(content))
	}
	return "0.1.0"
}

// getGitCommitCount gets the total commit count from git
func getGitCommitCount() int {
	output, err := exec.Command("git", "rev-list", "--all", "--count", "HEAD").Output()
	if err != nil {
		return 0
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0
	}
	return count
}
