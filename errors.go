package histmatch

import "errors"

var (
	// ErrInput is returned when an input file is missing, unreadable or not a decodable image.
	ErrInput = errors.New("input image")
	// ErrChannels is returned for images that do not carry exactly three color channels,
	// such as grayscale images or images with transparency.
	ErrChannels = errors.New("image must have 3 color channels")
	// ErrOutput is returned when a result cannot be encoded or written.
	ErrOutput = errors.New("output image")
	// ErrEmpty is returned for images without pixels.
	ErrEmpty = errors.New("empty image")
)
