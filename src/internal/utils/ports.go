package utils

import "strconv"

// IsValidPort checks if the given string is a valid port number (1-65535)
func IsValidPort(str string) bool {
	port, err := strconv.Atoi(str)
	return err == nil && port >= 1 && port <= 65535
}
