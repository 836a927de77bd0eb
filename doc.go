// Package histmatch provides a pure-Go implementation of image histogram matching.
//
// A source image is remapped so that its tonal distribution follows a reference image,
// using one of three strategies: independent per-channel matching, joint matching of the
// RGB magnitude with a hue-preserving ratio, and matching of CIELAB lightness only.
// Transforms are pure functions over in-memory images; file and figure output are kept
// separate so that the transforms can be used without touching the filesystem.
package histmatch
