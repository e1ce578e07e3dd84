// Package config loads optional JSON overrides for the SDCA parameter
// thresholds. The compiled-in defaults (internal/sparkle.DefaultParams) are
// always the source of truth; a TuningConfig only overrides the fields an
// operator explicitly sets.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the conventional location for a tuning override file.
const DefaultConfigPath = "config/sdca.tuning.json"

// TuningConfig holds optional overrides for the Param Store thresholds.
// Fields omitted from the JSON file retain their compiled-in default, so
// partial override files are safe.
type TuningConfig struct {
	MinDaylitPortionOfLand          *float64 `json:"min_daylit_portion_of_land,omitempty"`
	MaxAlgoPasses                   *int     `json:"max_algo_passes,omitempty"`
	FirstWindowRadius               *int     `json:"first_window_radius,omitempty"`
	MaxWindowRadiusIter             *int     `json:"max_window_radius_iter,omitempty"`
	MinWindowCleanProportionThresh  *float64 `json:"min_window_clean_proportion_threshold,omitempty"`
	ExcludeBorderWidth              *int     `json:"exclude_border_width,omitempty"`
	ExcludeDQFRadius                *int     `json:"exclude_dqf_radius,omitempty"`
	MaxSatZaThresholdDeg            *float64 `json:"max_sat_za_threshold_deg,omitempty"`
	MaxSunZaThresholdDeg            *float64 `json:"max_sun_za_threshold_deg,omitempty"`
	MinSunZaThresholdDeg            *float64 `json:"min_sun_za_threshold_deg,omitempty"`
	MinGlintAngleThresholdDeg       *float64 `json:"min_glint_angle_threshold_deg,omitempty"`
	C0xRfMaxThreshold               *float64 `json:"c0x_rf_max_threshold,omitempty"`
	C02RfMinThreshold               *float64 `json:"c02_rf_min_threshold,omitempty"`
	C05RfMinThreshold               *float64 `json:"c05_rf_min_threshold,omitempty"`
	C07RfMinThreshold                *float64 `json:"c07_rf_min_threshold,omitempty"`
	C07BtMinThreshold                *float64 `json:"c07_bt_min_threshold,omitempty"`
	C14BtMinThreshold                *float64 `json:"c14_bt_min_threshold,omitempty"`
	C02RfDeviationMinThreshold       *float64 `json:"c02_rf_deviation_min_threshold,omitempty"`
	C05RfDeviationMinThreshold       *float64 `json:"c05_rf_deviation_min_threshold,omitempty"`
	C07RfDeviationMinThreshold       *float64 `json:"c07_rf_deviation_min_threshold,omitempty"`
	C14BtDeviationMinThreshold       *float64 `json:"c14_bt_deviation_min_threshold,omitempty"`
	C14BtStandardDeviationMaxThresh *float64 `json:"c14_bt_standard_deviation_max_threshold,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with every field nil.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The file must
// have a .json extension and be under 1MB.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that any set override is within a sane range. It does not
// attempt to validate interactions between thresholds.
func (c *TuningConfig) Validate() error {
	if c.MinDaylitPortionOfLand != nil {
		if *c.MinDaylitPortionOfLand < 0 || *c.MinDaylitPortionOfLand > 1 {
			return fmt.Errorf("min_daylit_portion_of_land must be between 0 and 1, got %f", *c.MinDaylitPortionOfLand)
		}
	}
	if c.MinWindowCleanProportionThresh != nil {
		if *c.MinWindowCleanProportionThresh < 0 || *c.MinWindowCleanProportionThresh > 1 {
			return fmt.Errorf("min_window_clean_proportion_threshold must be between 0 and 1, got %f", *c.MinWindowCleanProportionThresh)
		}
	}
	if c.MaxAlgoPasses != nil && *c.MaxAlgoPasses < 1 {
		return fmt.Errorf("max_algo_passes must be at least 1, got %d", *c.MaxAlgoPasses)
	}
	if c.FirstWindowRadius != nil && *c.FirstWindowRadius < 1 {
		return fmt.Errorf("first_window_radius must be at least 1, got %d", *c.FirstWindowRadius)
	}
	if c.MaxWindowRadiusIter != nil && *c.MaxWindowRadiusIter < 1 {
		return fmt.Errorf("max_window_radius_iter must be at least 1, got %d", *c.MaxWindowRadiusIter)
	}
	return nil
}
