package resolver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// aiCompaniesFile is the learned overlay persisted between runs.
const aiCompaniesFile = "ai_companies.json"

// AICompanies is the built-in watchlist. A nil value means "search every
// ATS"; runs replace nil with the one ATS a company was actually observed on,
// persisting the result via the learned overlay.
var AICompanies = map[string]*string{
	"openai": nil, "mistral": nil, "anthropic": nil, "deepmind": nil,
	"cohere": nil, "huggingface": nil, "perplexity": nil, "character": nil,
	"inflection": nil, "anyscale": nil, "modal": nil, "together": nil,
	"togetherai": nil, "runwayml": nil, "runway": nil, "scaleai": nil,
	"scale": nil, "stability": nil, "stabilityai": nil, "midjourney": nil,
	"replicate": nil, "fal": nil, "adept": nil, "xai": nil,
	"anysphere": nil, "openrouter": nil, "applied compute": nil, "alan": nil,
	"attio": nil, "cartesia": nil, "cognition": nil, "crusoe": nil,
	"decagon": nil, "deepgram": nil, "deepl": nil, "dust": nil,
	"elevenlabs": nil, "exa": nil, "factory": nil, "firecrawl": nil,
	"gigaml": nil, "gladia": nil, "granola": nil, "graphite": nil,
	"hcompany": nil, "juicebox": nil, "jua": nil, "lambda": nil,
	"langchain": nil, "legora": nil, "lindy": nil, "livekit": nil,
	"lovable": nil, "mercor": nil, "n8n": nil, "parallel": nil,
	"peec": nil, "photoroom": nil, "physicalintelligence": nil,
	"primeintellect": nil, "replit": nil, "notion": nil, "ramp": nil,
}

// LoadLearned merges the persisted overlay on top of the built-in watchlist.
// A missing file just yields the built-ins.
func LoadLearned(dataDir string) (map[string]*string, error) {
	out := make(map[string]*string, len(AICompanies))
	for k, v := range AICompanies {
		out[k] = v
	}

	path := filepath.Join(dataDir, aiCompaniesFile)
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolver read %s: %w", path, err)
	}
	var overlay map[string]*string
	if err := json.Unmarshal(b, &overlay); err != nil {
		return nil, fmt.Errorf("resolver decode %s: %w", path, err)
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out, nil
}

// SaveLearned writes the full merged map back. encoding/json sorts map keys,
// so diffs stay readable.
func SaveLearned(dataDir string, m map[string]*string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("resolver marshal learned map: %w", err)
	}
	path := filepath.Join(dataDir, aiCompaniesFile)
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("resolver write %s: %w", path, err)
	}
	return nil
}
