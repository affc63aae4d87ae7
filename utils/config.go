package utils

import "soulace/config"

// IsProduction reports whether the server runs with ENV=production.
func IsProduction() bool {
	return config.IsProduction()
}
