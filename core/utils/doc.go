// Package utils provides loose conversions for query parameters and flags.
package utils
