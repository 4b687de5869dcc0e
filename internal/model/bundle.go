package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// SupportedSchemaMajor is the bundle layout major version this engine can
// consume. Bundles exported under a different major are rejected at load.
const SupportedSchemaMajor = "v1"

// Bundle is the on-disk artifact pair: the fitted scaler parameters and
// the trained linear model, exported offline as a single JSON document.
type Bundle struct {
	SchemaVersion string `json:"schema_version"`
	Scaler        struct {
		Mean  []float64 `json:"mean"`
		Scale []float64 `json:"scale"`
	} `json:"scaler"`
	Model struct {
		Weights   []float64 `json:"weights"`
		Intercept float64   `json:"intercept"`
	} `json:"model"`
}

// compiledBundleSchema caches the compiled schema for repeated loads
// (bundle verify, tests).
var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads, schema-validates and consistency-checks a bundle file.
// All failures are *ConfigError.
func Load(path string) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("compile bundle schema: %w", err)}
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if err := b.check(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return &b, nil
}

// check enforces the invariants the JSON schema cannot express.
func (b *Bundle) check() error {
	if !semver.IsValid(b.SchemaVersion) {
		return fmt.Errorf("invalid schema_version %q", b.SchemaVersion)
	}
	if major := semver.Major(b.SchemaVersion); major != SupportedSchemaMajor {
		return fmt.Errorf("unsupported bundle version %s (engine supports %s)", b.SchemaVersion, SupportedSchemaMajor)
	}
	n := len(b.Scaler.Mean)
	if len(b.Scaler.Scale) != n || len(b.Model.Weights) != n {
		return fmt.Errorf("inconsistent artifact widths: mean=%d scale=%d weights=%d",
			n, len(b.Scaler.Scale), len(b.Model.Weights))
	}
	for i, s := range b.Scaler.Scale {
		if s == 0 {
			return fmt.Errorf("scaler scale[%d] is zero", i)
		}
	}
	return nil
}

// Features returns the feature-vector width the artifacts were fitted on.
func (b *Bundle) Features() int {
	return len(b.Scaler.Mean)
}

// NewScaler builds the standardizer from the bundle parameters.
func (b *Bundle) NewScaler() *StandardScaler {
	return &StandardScaler{Mean: b.Scaler.Mean, Scale: b.Scaler.Scale}
}

// NewPredictor builds the classifier from the bundle parameters.
func (b *Bundle) NewPredictor() *LinearClassifier {
	return &LinearClassifier{Weights: b.Model.Weights, Intercept: b.Model.Intercept}
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(bundleSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://cardiac-bundle.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// DefaultBundlePath resolves the artifact file path in priority order:
// 1. AROGYAM_BUNDLE environment variable
// 2. $XDG_DATA_HOME/arogyam/cardiac_bundle.json
// 3. ~/.local/share/arogyam/cardiac_bundle.json
func DefaultBundlePath() (string, error) {
	if p := os.Getenv("AROGYAM_BUNDLE"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "arogyam", "cardiac_bundle.json"), nil
}
