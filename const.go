package histmatch

// DefaultEpsilon guards the magnitude ratio of the joint matcher against division by zero.
const DefaultEpsilon = 1e-8

const (
	defaultQuality = 95
	maxSample      = 255.0
	sqrt3          = 1.7320508075688772
)

// Output file name prefixes, prepended to the source base name.
const (
	PrefixPerChannel = "perchannel_"
	PrefixJoint      = "jointchannel_"
	PrefixLab        = "lab_"
)

// Panel titles of the comparison figure.
const (
	TitleSource     = "Source"
	TitleReference  = "Reference"
	TitlePerChannel = "Per-Channel"
	TitleJoint      = "Joint"
	TitleLab        = "LAB"
)
