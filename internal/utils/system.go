package utils

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// GetFullName returns the current user's display name. It is empty when the
// account has none.
func GetFullName() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(user.Name), nil
}

// ProcessName returns the base name of the running executable without extension.
func ProcessName() string {
	path, err := os.Executable()
	if err != nil || path == "" {
		if len(os.Args) == 0 {
			return ""
		}
		path = os.Args[0]
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DottedIdentifier lowercases each whitespace-separated word of the inputs
// and joins all of them with dots, skipping empty inputs.
//
//	DottedIdentifier("Jane Q Doe", "herald") == "jane.q.doe.herald"
func DottedIdentifier(parts ...string) string {
	var words []string
	for _, part := range parts {
		for _, word := range strings.Fields(part) {
			words = append(words, strings.ToLower(word))
		}
	}
	return strings.Join(words, ".")
}
