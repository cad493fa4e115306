package config

import (
	"errors"
	"os"
	"path/filepath"
)

const defaultYAML = `app:
  data_dir: ""
  snapshot: "map/public/ai.csv"

freshness:
  default_hours: 1
  source_hours:
    apple: 6
    uber: 6
    nvidia: 12

refresh:
  requests_per_sec: 0.5
  burst: 1
  commands: {}
  # commands:
  #   ashby: ["python3", "ashby/scrape.py", "{slug}"]

location_overrides:
  tavily:
    "All Locations - On Site": "New York"

dirty_titles:
  - company: nintendo
    contains: TEST
`

// EnsureUserConfig writes the default config.yml into dataDir when no config
// exists yet, and returns its path.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.WriteFile(userPath, []byte(defaultYAML), 0o644); err != nil {
		return "", err
	}
	return userPath, nil
}
