// Package sparkledebug renders a per-pixel textual decision trail for
// interactive debugging, grounded on
// original_source/abisparkle/sparkledebug.py.
package sparkledebug

import (
	"fmt"
	"strings"

	"github.com/goforj/godump"
	"github.com/wx-star/abisparkle-go/internal/sparkle"
)

const deviationDefault = 999.0

// Report renders the VALID/FAIL/N-A decision trail for a single pixel:
// band values against their minimum thresholds, window deviations against
// their minimum thresholds, and the decoded flag list.
func Report(fc *sparkle.FrameContext, y, x int) string {
	idx := y*fc.Inputs.Width + x

	var b strings.Builder
	fmt.Fprintf(&b, "pixel (%d,%d)\n", y, x)

	verdict := func(label string, value, threshold float64, pass bool) {
		status := "FAIL"
		if pass {
			status = "VALID"
		}
		fmt.Fprintf(&b, "%s: %v (threshold %v) | %s\n", label, value, threshold, status)
	}

	verdict("c02_rf", fc.Inputs.C02Rf[idx], fc.Params.C02RfMinThreshold, fc.Inputs.C02Rf[idx] > fc.Params.C02RfMinThreshold)
	verdict("c05_rf", fc.Inputs.C05Rf[idx], fc.Params.C05RfMinThreshold, fc.Inputs.C05Rf[idx] > fc.Params.C05RfMinThreshold)
	verdict("c07_rf", fc.Inputs.C07Rf[idx], fc.Params.C07RfMinThreshold, fc.Inputs.C07Rf[idx] > fc.Params.C07RfMinThreshold)
	verdict("c07_bt", fc.Inputs.C07Bt[idx], fc.Params.C07BtMinThreshold, fc.Inputs.C07Bt[idx] > fc.Params.C07BtMinThreshold)
	verdict("c14_bt", fc.Inputs.C14Bt[idx], fc.Params.C14BtMinThreshold, fc.Inputs.C14Bt[idx] > fc.Params.C14BtMinThreshold)

	b.WriteString("\ndeviation statistics:\n")
	devVerdict := func(label string, key sparkle.StatKey, threshold float64, greaterThan bool) {
		v := fc.Stats.GetDeviation(idx, key, deviationDefault)
		if v == deviationDefault {
			fmt.Fprintf(&b, "%s: N/A\n", label)
			return
		}
		pass := v > threshold
		if !greaterThan {
			pass = v <= threshold
		}
		status := "FAIL"
		if pass {
			status = "VALID"
		}
		fmt.Fprintf(&b, "%s: %v (threshold %v) | %s\n", label, v, threshold, status)
	}

	devVerdict("c02_rf_deviation", sparkle.StatC02RfDeviation, fc.Params.C02RfDeviationMinThreshold, true)
	devVerdict("c05_rf_deviation", sparkle.StatC05RfDeviation, fc.Params.C05RfDeviationMinThreshold, true)
	devVerdict("c07_rf_deviation", sparkle.StatC07RfDeviation, fc.Params.C07RfDeviationMinThreshold, true)
	devVerdict("c14_bt_deviation", sparkle.StatC14BtDeviation, fc.Params.C14BtDeviationMinThreshold, true)
	devVerdict("c14_bt_stdev", sparkle.StatC14BtStdev, fc.Params.C14BtStandardDeviationMaxThresh, false)

	b.WriteString("\nflags: ")
	b.WriteString(strings.Join(fc.Flags.Decode(idx), ", "))
	b.WriteString("\n")

	return b.String()
}

// Dump returns a full structured dump of a pixel's metadata record, if one
// was emitted, rendered via godump. Used from the CLI's -debug-y/-debug-x
// flags for deep interactive inspection beyond the threshold-by-threshold
// Report above.
func Dump(result *sparkle.Result, y, x, width int) string {
	rec, ok := result.PixelRecord(y, x, width)
	if !ok {
		return fmt.Sprintf("pixel (%d,%d) was never validated\n", y, x)
	}
	return godump.DumpStr(rec)
}
