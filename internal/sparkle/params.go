package sparkle

import (
	"math"

	"github.com/brunoga/deep"
	"github.com/wx-star/abisparkle-go/internal/config"
)

// Params is the frozen, process-wide table of SDCA numeric thresholds.
// Values are the defaults from the original implementation's
// sparkleparams.py. A Params value is never mutated once handed to a
// Frame Context; ApplyTuning returns a new value.
type Params struct {
	MinDaylitPortionOfLand         float64
	MaxAlgoPasses                  int
	FirstWindowRadius              int
	MaxWindowRadiusIter            int
	MinWindowCleanProportionThresh float64
	ExcludeBorderWidth             int
	ExcludeDQFRadius               int

	// Angle thresholds are stored in radians; degrees are the config/API
	// surface, radians are what the detector compares against.
	MaxSatZaThreshold      float64
	MaxSunZaThreshold      float64
	MinSunZaThreshold      float64
	MinGlintAngleThreshold float64

	C0xRfMaxThreshold float64
	C02RfMinThreshold float64
	C05RfMinThreshold float64
	C07RfMinThreshold float64
	C07BtMinThreshold float64
	C14BtMinThreshold float64

	C02RfDeviationMinThreshold      float64
	C05RfDeviationMinThreshold      float64
	C07RfDeviationMinThreshold      float64
	C14BtDeviationMinThreshold      float64
	C14BtStandardDeviationMaxThresh float64
}

// DefaultParams returns the compiled-in SDCA thresholds.
func DefaultParams() Params {
	return Params{
		MinDaylitPortionOfLand:         0.10,
		MaxAlgoPasses:                  2,
		FirstWindowRadius:              15,
		MaxWindowRadiusIter:            3,
		MinWindowCleanProportionThresh: 0.75,
		ExcludeBorderWidth:             15,
		ExcludeDQFRadius:               10,

		MaxSatZaThreshold:      deg2rad(80),
		MaxSunZaThreshold:      deg2rad(85),
		MinSunZaThreshold:      deg2rad(10),
		MinGlintAngleThreshold: deg2rad(10),

		C0xRfMaxThreshold: 1.0,
		C02RfMinThreshold: 0.475,
		C05RfMinThreshold: 0.55,
		C07RfMinThreshold: 0.10,
		C07BtMinThreshold: 300,
		C14BtMinThreshold: 275,

		C02RfDeviationMinThreshold:      0.425,
		C05RfDeviationMinThreshold:      0.50,
		C07RfDeviationMinThreshold:      0.05,
		C14BtDeviationMinThreshold:      -3.0,
		C14BtStandardDeviationMaxThresh: 8.0,
	}
}

func deg2rad(d float64) float64 { return d * math.Pi / 180.0 }

// ApplyTuning returns a copy of the defaults with any fields set in cfg
// overridden. The defaults value itself is left untouched, keeping the
// compiled-in table inspectable and reusable across frames.
func ApplyTuning(cfg *config.TuningConfig) Params {
	p := deep.MustCopy(DefaultParams())
	if cfg == nil {
		return p
	}
	if cfg.MinDaylitPortionOfLand != nil {
		p.MinDaylitPortionOfLand = *cfg.MinDaylitPortionOfLand
	}
	if cfg.MaxAlgoPasses != nil {
		p.MaxAlgoPasses = *cfg.MaxAlgoPasses
	}
	if cfg.FirstWindowRadius != nil {
		p.FirstWindowRadius = *cfg.FirstWindowRadius
	}
	if cfg.MaxWindowRadiusIter != nil {
		p.MaxWindowRadiusIter = *cfg.MaxWindowRadiusIter
	}
	if cfg.MinWindowCleanProportionThresh != nil {
		p.MinWindowCleanProportionThresh = *cfg.MinWindowCleanProportionThresh
	}
	if cfg.ExcludeBorderWidth != nil {
		p.ExcludeBorderWidth = *cfg.ExcludeBorderWidth
	}
	if cfg.ExcludeDQFRadius != nil {
		p.ExcludeDQFRadius = *cfg.ExcludeDQFRadius
	}
	if cfg.MaxSatZaThresholdDeg != nil {
		p.MaxSatZaThreshold = deg2rad(*cfg.MaxSatZaThresholdDeg)
	}
	if cfg.MaxSunZaThresholdDeg != nil {
		p.MaxSunZaThreshold = deg2rad(*cfg.MaxSunZaThresholdDeg)
	}
	if cfg.MinSunZaThresholdDeg != nil {
		p.MinSunZaThreshold = deg2rad(*cfg.MinSunZaThresholdDeg)
	}
	if cfg.MinGlintAngleThresholdDeg != nil {
		p.MinGlintAngleThreshold = deg2rad(*cfg.MinGlintAngleThresholdDeg)
	}
	if cfg.C0xRfMaxThreshold != nil {
		p.C0xRfMaxThreshold = *cfg.C0xRfMaxThreshold
	}
	if cfg.C02RfMinThreshold != nil {
		p.C02RfMinThreshold = *cfg.C02RfMinThreshold
	}
	if cfg.C05RfMinThreshold != nil {
		p.C05RfMinThreshold = *cfg.C05RfMinThreshold
	}
	if cfg.C07RfMinThreshold != nil {
		p.C07RfMinThreshold = *cfg.C07RfMinThreshold
	}
	if cfg.C07BtMinThreshold != nil {
		p.C07BtMinThreshold = *cfg.C07BtMinThreshold
	}
	if cfg.C14BtMinThreshold != nil {
		p.C14BtMinThreshold = *cfg.C14BtMinThreshold
	}
	if cfg.C02RfDeviationMinThreshold != nil {
		p.C02RfDeviationMinThreshold = *cfg.C02RfDeviationMinThreshold
	}
	if cfg.C05RfDeviationMinThreshold != nil {
		p.C05RfDeviationMinThreshold = *cfg.C05RfDeviationMinThreshold
	}
	if cfg.C07RfDeviationMinThreshold != nil {
		p.C07RfDeviationMinThreshold = *cfg.C07RfDeviationMinThreshold
	}
	if cfg.C14BtDeviationMinThreshold != nil {
		p.C14BtDeviationMinThreshold = *cfg.C14BtDeviationMinThreshold
	}
	if cfg.C14BtStandardDeviationMaxThresh != nil {
		p.C14BtStandardDeviationMaxThresh = *cfg.C14BtStandardDeviationMaxThresh
	}
	return p
}
