package sparkle

// newTestFrame builds an H x W FrameInputs with values that pass every
// pre-mask condition by default (good DQF, land, clear sky, benign
// geometry, bands above their minimum thresholds). Individual tests
// mutate specific pixels to exercise a single condition.
func newTestFrame(height, width int) *FrameInputs {
	n := height * width
	in := &FrameInputs{
		Height: height, Width: width,
		C02Rf: make([]float64, n), C05Rf: make([]float64, n), C07Rf: make([]float64, n),
		C07Bt: make([]float64, n), C14Bt: make([]float64, n),
		C02Dqf: make([]uint8, n), C05Dqf: make([]uint8, n), C07Dqf: make([]uint8, n), C14Dqf: make([]uint8, n),
		WaterMask: make([]bool, n), CloudMask: make([]bool, n),
		SunZa: make([]float64, n), SunAz: make([]float64, n),
		SatZa: make([]float64, n), SatAz: make([]float64, n),
		GlintAngle: make([]float64, n),
		LatDeg:     make([]float64, n), LonDeg: make([]float64, n),
	}

	for i := 0; i < n; i++ {
		in.C02Rf[i] = 0.6
		in.C05Rf[i] = 0.65
		in.C07Rf[i] = 0.5
		in.C07Bt[i] = 310
		in.C14Bt[i] = 290
		in.WaterMask[i] = true // land
		in.SunZa[i] = deg2rad(30)
		in.SatZa[i] = deg2rad(30)
		in.GlintAngle[i] = deg2rad(30)
	}

	return in
}
