// Package utils provides common utility functions shared across the service.
// It includes lenient scalar conversion helpers used by the feed normalizer,
// where absent or malformed values must degrade to zero values instead of
// raising errors.
package utils
