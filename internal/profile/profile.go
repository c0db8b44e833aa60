package profile

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// Profile is the configuration the launchpath binary starts with.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Data is the directory holding the catalogue files
	Data string
	// Version is the current version of the binary
	Version string
	// RelatedLimit is the default size of related-theories listings
	RelatedLimit int
	// RecommendLimit is the default size of mixed recommendations
	RecommendLimit int
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// FromEnv fills unset fields from LAUNCHPATH_* environment variables.
func (p *Profile) FromEnv() {
	if p.Mode == "" {
		p.Mode = getEnvOrDefault("LAUNCHPATH_MODE", "dev")
	}
	if p.Data == "" {
		p.Data = os.Getenv("LAUNCHPATH_DATA")
	}
	if p.RelatedLimit == 0 {
		p.RelatedLimit = getEnvIntOrDefault("LAUNCHPATH_RELATED_LIMIT", 4)
	}
	if p.RecommendLimit == 0 {
		p.RecommendLimit = getEnvIntOrDefault("LAUNCHPATH_RECOMMEND_LIMIT", 6)
	}
}

// Validate checks the profile and normalizes the data directory to an
// absolute path.
func (p *Profile) Validate() error {
	if p.Mode != "prod" && p.Mode != "dev" {
		return errors.Errorf(`mode must be "prod" or "dev", got %q`, p.Mode)
	}
	if p.RelatedLimit < 0 || p.RecommendLimit < 0 {
		return errors.New("limits must be non-negative")
	}
	if p.Data != "" {
		absolute, err := filepath.Abs(p.Data)
		if err != nil {
			return errors.Wrapf(err, "resolve data directory %q", p.Data)
		}
		p.Data = absolute
	}
	return nil
}
