// Package utils holds small path, port and io helpers shared by other packages.
package utils
