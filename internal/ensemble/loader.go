// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package ensemble

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/engagepredict/internal/ensemble/algorithms"
	"github.com/tomtom215/engagepredict/internal/features"
)

// Artifact file names inside a model directory.
const (
	ManifestFile   = "manifest.json"
	NormalizerFile = "normalizer.json"
)

// SchemaVersion is the only artifact schema this build understands.
const SchemaVersion = 1

// ErrArtifactMissing is returned when a required artifact file is absent.
var ErrArtifactMissing = errors.New("model artifact missing")

// Manifest describes a model directory.
type Manifest struct {
	SchemaVersion int               `json:"schema_version"`
	FeatureCount  int               `json:"feature_count"`
	Classes       []string          `json:"classes"`
	Weights       Weights           `json:"weights"`
	Roles         map[string]string `json:"roles"`
}

// DefaultRoles assigns the standard algorithm to each role.
func DefaultRoles() map[string]string {
	return map[string]string{
		RolePrimary:   algorithms.NameLogisticRegression,
		RoleSecondary: algorithms.NameRandomForest,
		RoleTertiary:  algorithms.NameKNN,
	}
}

type normalizerArtifact struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Load reads every artifact in dir and builds a predictor. Loading is all or
// nothing: any missing or invalid file returns an error and no predictor.
func Load(dir string) (*Predictor, error) {
	var manifest Manifest
	if err := readJSON(dir, ManifestFile, &manifest); err != nil {
		return nil, err
	}
	if err := manifest.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ManifestFile, err)
	}

	var na normalizerArtifact
	if err := readJSON(dir, NormalizerFile, &na); err != nil {
		return nil, err
	}
	normalizer, err := NewNormalizer(na.Mean, na.Scale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NormalizerFile, err)
	}

	roles := manifest.Roles
	if len(roles) == 0 {
		roles = DefaultRoles()
	}

	members := make(map[string]Classifier, 3)
	for _, role := range []string{RolePrimary, RoleSecondary, RoleTertiary} {
		c, err := loadClassifier(dir, roles[role])
		if err != nil {
			return nil, fmt.Errorf("%s role: %w", role, err)
		}
		members[role] = c
	}

	return NewPredictor(normalizer, manifest.Weights, members[RolePrimary], members[RoleSecondary], members[RoleTertiary])
}

// LoadOrFallback loads the predictor in dir. When loading fails the reason
// is logged and nil is returned, which routes every request to the fallback
// scorer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func LoadOrFallback(dir string, logger zerolog.Logger) *Predictor {
	p, err := Load(dir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("Trained models unavailable, using rule-based fallback scoring")
		return nil
	}
	w := p.Weights()
	logger.Info().
		Str("dir", dir).
		Float64("primary_weight", w.Primary).
		Float64("secondary_weight", w.Secondary).
		Float64("tertiary_weight", w.Tertiary).
		Msg("Ensemble models loaded")
	return p
}

func (m *Manifest) validate() error {
	if m.SchemaVersion != SchemaVersion {
		return fmt.Errorf("unsupported schema_version %d", m.SchemaVersion)
	}
	if m.FeatureCount != features.Size {
		return fmt.Errorf("feature_count %d does not match the %d-feature schema", m.FeatureCount, features.Size)
	}
	if len(m.Classes) > 0 {
		sorted := slices.Clone(m.Classes)
		slices.Sort(sorted)
		if !slices.Equal(sorted, []string{"High", "Low", "Medium"}) {
			return fmt.Errorf("classes %v are not Low, Medium, High", m.Classes)
		}
	}
	if err := m.Weights.Validate(); err != nil {
		return err
	}
	for role, name := range m.Roles {
		switch role {
		case RolePrimary, RoleSecondary, RoleTertiary:
		default:
			return fmt.Errorf("unknown role %q", role)
		}
		if !knownAlgorithm(name) {
			return fmt.Errorf("role %s uses unknown algorithm %q", role, name)
		}
	}
	if len(m.Roles) > 0 && len(m.Roles) != 3 {
		return fmt.Errorf("roles must name all three members, got %d", len(m.Roles))
	}
	return nil
}

func knownAlgorithm(name string) bool {
	switch name {
	case algorithms.NameLogisticRegression, algorithms.NameRandomForest, algorithms.NameKNN:
		return true
	default:
		return false
	}
}

func loadClassifier(dir, name string) (Classifier, error) {
	data, err := readFile(dir, name+".json")
	if err != nil {
		return nil, err
	}

	// Each branch returns explicitly so a failed decode never leaks a typed
	// nil pointer into the Classifier interface.
	switch name {
	case algorithms.NameLogisticRegression:
		c, err := algorithms.DecodeLogisticRegression(data, features.Size)
		if err != nil {
			return nil, err
		}
		return c, nil
	case algorithms.NameRandomForest:
		c, err := algorithms.DecodeRandomForest(data, features.Size)
		if err != nil {
			return nil, err
		}
		return c, nil
	case algorithms.NameKNN:
		c, err := algorithms.DecodeKNN(data, features.Size)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}

func readFile(dir, name string) ([]byte, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the configured model directory
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func readJSON(dir, name string, v any) error {
	data, err := readFile(dir, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
