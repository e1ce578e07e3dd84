package sparkle

import (
	"fmt"
	"math"

	"github.com/wx-star/abisparkle-go/internal/sparklenav"
)

const (
	dbTimeFormat   = "2006-01-02T15:04:05Z"
	googleMapsFmt  = "https://www.google.com/maps/@?api=1&map_action=map&center=%s,%s&zoom=14&basemap=satellite"
)

// ClusterMeta is the per-cluster portion of a metadata record: centroid
// location, reflection geometry at the centroid, and member count.
type ClusterMeta struct {
	ID                string
	CentroidY         int
	CentroidX         int
	CentroidLat       float64
	CentroidLon       float64
	CentroidGoogleMaps string
	CentroidOmegaDeg  float64
	CentroidBetaDeg   float64
	CentroidGammaDeg  float64
	Size              int
}

// PixelRecord is the per-pixel metadata record emitted for every validated
// pixel: geolocation, band data, deviations/stdevs, decoded flags, debug
// stats, per-pixel reflection geometry, and the owning cluster's data.
type PixelRecord struct {
	Event              string
	TimeCoverageStart  string
	TimeCoverageEnd    string
	Y, X               int
	Lat, Lon           float64
	GoogleMaps         string
	Cluster            ClusterMeta

	C02Rf, C05Rf, C07Rf float64
	C07Bt, C14Bt        float64

	C02RfDeviation, C02RfStdev float64
	C05RfDeviation, C05RfStdev float64
	C07RfDeviation, C07RfStdev float64
	C14BtDeviation, C14BtStdev float64

	SunZaDeg, SunAzDeg, SatZaDeg, SatAzDeg float64
	GlintAngleDeg                          float64
	OmegaDeg, BetaDeg, GammaDeg             float64
	AreaM                                   float64

	Flags []string

	AlgoPasses             float64
	WindowRadius           float64
	WindowIterations       float64
	WindowValidProportion  float64
}

// Result is the output of the Clusterer & Metadata Emitter stage.
type Result struct {
	Validated []bool
	Clusters  []Cluster
	Records   []PixelRecord

	recordByIdx map[int]int // pixel index -> Records slice position
	membersByID map[string][]int
}

// round rounds v to the given number of decimal places.
func round(v float64, decimals int) float64 {
	mult := math.Pow(10, float64(decimals))
	return math.Round(v*mult) / mult
}

func rad2deg(r float64) float64 { return r * 180.0 / math.Pi }

// EmitMetadata implements spec.md §4.7: 8-connected labeling of the final
// validated_mask followed by per-pixel and per-cluster record assembly,
// with the rounding rules from spec.md §6.
func EmitMetadata(in *FrameInputs, flags *FlagRegistry, stats *StatStore, ws *WorkingState, event string) *Result {
	clusters := LabelClusters(in.Height, in.Width, ws.Validated, in.FrameStartTime)

	res := &Result{
		Validated:   ws.Validated,
		Clusters:    clusters,
		recordByIdx: make(map[int]int),
		membersByID: make(map[string][]int),
	}

	clusterForIdx := make(map[int]*Cluster)
	for ci := range clusters {
		c := &clusters[ci]
		for _, m := range c.Members {
			clusterForIdx[m] = c
		}
		res.membersByID[c.ID] = append([]int(nil), c.Members...)
	}

	for idx, v := range ws.Validated {
		if !v {
			continue
		}
		y, x := idx/in.Width, idx%in.Width

		refl := sparklenav.CalcReflections(in.SunAz[idx], in.SunZa[idx], in.SatAz[idx], in.SatZa[idx])

		rec := PixelRecord{
			Event:             event,
			TimeCoverageStart: in.FrameStartTime.UTC().Format(dbTimeFormat),
			TimeCoverageEnd:   in.FrameEndTime.UTC().Format(dbTimeFormat),
			Y:                 y,
			X:                 x,
			Lat:               round(float64(in.LatDeg[idx]), 5),
			Lon:               round(float64(in.LonDeg[idx]), 5),
			GoogleMaps:        fmt.Sprintf(googleMapsFmt, fmt.Sprintf("%.5f", in.LatDeg[idx]), fmt.Sprintf("%.5f", in.LonDeg[idx])),

			C02Rf: round(in.C02Rf[idx], 7),
			C05Rf: round(in.C05Rf[idx], 7),
			C07Rf: round(in.C07Rf[idx], 7),
			C07Bt: round(in.C07Bt[idx], 5),
			C14Bt: round(in.C14Bt[idx], 5),

			C02RfDeviation: round(stats.GetDeviation(idx, StatC02RfDeviation, 0), 7),
			C02RfStdev:     round(stats.GetDeviation(idx, StatC02RfStdev, 0), 7),
			C05RfDeviation: round(stats.GetDeviation(idx, StatC05RfDeviation, 0), 7),
			C05RfStdev:     round(stats.GetDeviation(idx, StatC05RfStdev, 0), 7),
			C07RfDeviation: round(stats.GetDeviation(idx, StatC07RfDeviation, 0), 7),
			C07RfStdev:     round(stats.GetDeviation(idx, StatC07RfStdev, 0), 7),
			C14BtDeviation: round(stats.GetDeviation(idx, StatC14BtDeviation, 0), 5),
			C14BtStdev:     round(stats.GetDeviation(idx, StatC14BtStdev, 0), 5),

			SunZaDeg:      round(rad2deg(in.SunZa[idx]), 5),
			SunAzDeg:      round(rad2deg(in.SunAz[idx]), 5),
			SatZaDeg:      round(rad2deg(in.SatZa[idx]), 5),
			SatAzDeg:      round(rad2deg(in.SatAz[idx]), 5),
			GlintAngleDeg: round(rad2deg(in.GlintAngle[idx]), 5),
			OmegaDeg:      round(rad2deg(refl.Omega), 5),
			BetaDeg:       round(rad2deg(refl.Beta), 6),
			GammaDeg:      round(rad2deg(refl.Gamma), 5),

			Flags: flags.Decode(idx),

			AlgoPasses:            stats.GetDebug(idx, StatAlgoPasses, 0),
			WindowRadius:          stats.GetDebug(idx, StatWindowRadius, 0),
			WindowIterations:      stats.GetDebug(idx, StatWindowIterations, 0),
			WindowValidProportion: stats.GetDebug(idx, StatWindowValidProportion, 0),
		}

		if in.PixelAreaM2 != nil {
			rec.AreaM = round(in.PixelAreaM2[idx], 2)
		}

		if c, ok := clusterForIdx[idx]; ok {
			centroidIdx := c.CentroidY*in.Width + c.CentroidX
			centroidRefl := sparklenav.CalcReflections(in.SunAz[centroidIdx], in.SunZa[centroidIdx], in.SatAz[centroidIdx], in.SatZa[centroidIdx])
			rec.Cluster = ClusterMeta{
				ID:                 c.ID,
				CentroidY:          c.CentroidY,
				CentroidX:          c.CentroidX,
				CentroidLat:        round(float64(in.LatDeg[centroidIdx]), 5),
				CentroidLon:        round(float64(in.LonDeg[centroidIdx]), 5),
				CentroidGoogleMaps: fmt.Sprintf(googleMapsFmt, fmt.Sprintf("%.5f", in.LatDeg[centroidIdx]), fmt.Sprintf("%.5f", in.LonDeg[centroidIdx])),
				CentroidOmegaDeg:   round(rad2deg(centroidRefl.Omega), 5),
				CentroidBetaDeg:    round(rad2deg(centroidRefl.Beta), 6),
				CentroidGammaDeg:   round(rad2deg(centroidRefl.Gamma), 5),
				Size:               len(c.Members),
			}
		}

		res.recordByIdx[idx] = len(res.Records)
		res.Records = append(res.Records, rec)
	}

	return res
}

// PixelRecord looks up the metadata record for a single pixel, supplementing
// a lookup dropped by the spec's distillation (original_source's get_idx).
// ok is false if the pixel was never validated.
func (r *Result) PixelRecord(y, x, width int) (PixelRecord, bool) {
	idx := y*width + x
	pos, ok := r.recordByIdx[idx]
	if !ok {
		return PixelRecord{}, false
	}
	return r.Records[pos], true
}

// ClusterMembers returns the pixel metadata records belonging to the named
// cluster (original_source's get_cluster_members).
func (r *Result) ClusterMembers(id string) []PixelRecord {
	var out []PixelRecord
	for _, rec := range r.Records {
		if rec.Cluster.ID == id {
			out = append(out, rec)
		}
	}
	return out
}

// ClusterList returns every cluster with at least one validated member
// (original_source's get_clusters).
func (r *Result) ClusterList() []Cluster {
	return r.Clusters
}
