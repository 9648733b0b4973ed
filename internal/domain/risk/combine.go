package risk

// CombineWithVision blends an externally computed video-analysis risk score
// into a statistical baseline. Weight is the trust placed in the vision
// signal; callers pick it per context (see Thresholds vision weights).
func CombineWithVision(baseline, vision, weight float64) float64 {
	return round2(clamp(baseline*(1-weight)+vision*weight, 0, 100))
}
