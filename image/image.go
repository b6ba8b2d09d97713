/*
Package image reads indexed PNG images for conversion and writes preview PNG
images of converted tiles.

Only PNG color type 3 is accepted. The palette is kept as is, up to 256
entries, and the pixels are kept at their original bit depth of 1, 2, 4 or
8 bits packed into a continuous bit stream.
*/
package image

const (
	pngHeader        = "\x89PNG\r\n\x1a\n"
	ihdrLength       = 13
	colorTypeIndexed = 3
)
