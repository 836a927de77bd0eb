package histmatch

import "github.com/vearutop/histmatch/internal/histspec"

// MatchLabPlanes converts both images to CIELAB and matches the L* plane of src
// against the one of ref. The a* and b* planes of src are returned unchanged.
func MatchLabPlanes(src, ref *RGBImage) *LabImage {
	srcLab := RGBToLab(src)
	refLab := RGBToLab(ref)
	srcLab.SetLightness(histspec.Match(srcLab.Lightness(), refLab.Lightness()))
	return srcLab
}

// MatchLab matches the lightness distribution of src to ref while keeping its chrominance.
func MatchLab(src, ref *RGBImage) *RGBImage {
	return LabToRGB(MatchLabPlanes(src, ref))
}
