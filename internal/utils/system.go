package utils

import (
	"os"
	"os/user"
)

// GetUsername returns the current username, falling back to $USER.
func GetUsername() (string, error) {
	current, err := user.Current()
	if err != nil {
		if name := os.Getenv("USER"); name != "" {
			return name, nil
		}
		return "", err
	}
	return current.Username, nil
}

// GetHostname returns the system hostname.
func GetHostname() (string, error) {
	return os.Hostname()
}
