// Command sparkle runs the Sparkle Detection and Characterization
// Algorithm over a pre-assembled JSON frame bundle and prints a summary
// plus the per-pixel metadata records.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/wx-star/abisparkle-go/internal/config"
	"github.com/wx-star/abisparkle-go/internal/monitoring"
	"github.com/wx-star/abisparkle-go/internal/sparkle"
	"github.com/wx-star/abisparkle-go/internal/sparkledebug"
)

// bundle is the on-disk JSON shape the CLI reads. It mirrors
// sparkle.FrameInputs field-for-field except PixelAreaM2, which it does not
// carry (area_m is then reported as 0); the external collaborators
// responsible for calibration, cloud masking, and navigation write this
// file, the CLI never recomputes any of it.
type bundle struct {
	Height, Width int

	C02Rf []float64 `json:"c02_rf"`
	C05Rf []float64 `json:"c05_rf"`
	C07Rf []float64 `json:"c07_rf"`
	C07Bt []float64 `json:"c07_bt"`
	C14Bt []float64 `json:"c14_bt"`

	C02Dqf []uint8 `json:"c02_dqf"`
	C05Dqf []uint8 `json:"c05_dqf"`
	C07Dqf []uint8 `json:"c07_dqf"`
	C14Dqf []uint8 `json:"c14_dqf"`

	WaterMask []bool `json:"water_mask"`
	CloudMask []bool `json:"cloud_mask"`

	SunZa      []float64 `json:"sun_za"`
	SunAz      []float64 `json:"sun_az"`
	SatZa      []float64 `json:"sat_za"`
	SatAz      []float64 `json:"sat_az"`
	GlintAngle []float64 `json:"glint_angle"`
	LatDeg     []float64 `json:"lat_deg"`
	LonDeg     []float64 `json:"lon_deg"`

	FrameStartTime string `json:"frame_start_time"`
	FrameEndTime   string `json:"frame_end_time"`
}

func (b *bundle) toFrameInputs() (*sparkle.FrameInputs, error) {
	start, err := time.Parse(time.RFC3339, b.FrameStartTime)
	if err != nil {
		return nil, fmt.Errorf("parsing frame_start_time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, b.FrameEndTime)
	if err != nil {
		return nil, fmt.Errorf("parsing frame_end_time: %w", err)
	}

	return &sparkle.FrameInputs{
		Height: b.Height, Width: b.Width,
		C02Rf: b.C02Rf, C05Rf: b.C05Rf, C07Rf: b.C07Rf, C07Bt: b.C07Bt, C14Bt: b.C14Bt,
		C02Dqf: b.C02Dqf, C05Dqf: b.C05Dqf, C07Dqf: b.C07Dqf, C14Dqf: b.C14Dqf,
		WaterMask: b.WaterMask, CloudMask: b.CloudMask,
		SunZa: b.SunZa, SunAz: b.SunAz, SatZa: b.SatZa, SatAz: b.SatAz,
		GlintAngle: b.GlintAngle, LatDeg: b.LatDeg, LonDeg: b.LonDeg,
		FrameStartTime: start, FrameEndTime: end,
	}, nil
}

func main() {
	bundlePath := flag.String("bundle", "", "path to a JSON frame bundle")
	configPath := flag.String("config", "", "optional path to a tuning override JSON file")
	event := flag.String("event", "sparkle", "event label stamped on emitted metadata records")
	debugY := flag.Int("debug-y", -1, "row of a pixel to print a debug report for")
	debugX := flag.Int("debug-x", -1, "column of a pixel to print a debug report for")
	flag.Parse()

	if *bundlePath == "" {
		log.Fatal("sparkle: -bundle is required")
	}

	params := sparkle.DefaultParams()
	if *configPath != "" {
		cfg, err := config.LoadTuningConfig(*configPath)
		if err != nil {
			log.Fatalf("sparkle: loading config: %v", err)
		}
		params = sparkle.ApplyTuning(cfg)
	}

	data, err := os.ReadFile(*bundlePath)
	if err != nil {
		log.Fatalf("sparkle: reading bundle: %v", err)
	}

	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		log.Fatalf("sparkle: parsing bundle: %v", err)
	}

	in, err := b.toFrameInputs()
	if err != nil {
		log.Fatalf("sparkle: %v", err)
	}

	fc := sparkle.NewFrameContext(in, params)
	if err := fc.Run(*event); err != nil {
		if errors.Is(err, sparkle.ErrGateRefused) {
			monitoring.Logf("sparkle: %v", err)
			os.Exit(0)
		}
		log.Fatalf("sparkle: %v", err)
	}

	validated := 0
	for _, v := range fc.Working.Validated {
		if v {
			validated++
		}
	}
	fmt.Printf("validated=%d clusters=%d\n", validated, len(fc.Result.Clusters))

	if *debugY >= 0 && *debugX >= 0 {
		fmt.Print(sparkledebug.Report(fc, *debugY, *debugX))
		fmt.Print(sparkledebug.Dump(fc.Result, *debugY, *debugX, in.Width))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc.Result.Records); err != nil {
		log.Fatalf("sparkle: encoding records: %v", err)
	}
}
