package loaders

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is an output image encoding
type Format string

const (
	FormatPNG Format = "png"
	FormatPPM Format = "ppm"
)

// ParseFormat validates an output format name
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatPPM:
		return FormatPPM, nil
	}
	return "", fmt.Errorf("unknown output format %q (want png or ppm)", name)
}

// checkBuffer verifies buf holds exactly width*height RGB triples
func checkBuffer(buf []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(buf) != 3*width*height {
		return fmt.Errorf("pixel buffer has %d bytes, want %d for %dx%d", len(buf), 3*width*height, width, height)
	}
	return nil
}

// ToRGBA converts a row-major RGB byte buffer (top row first) into an opaque image
func ToRGBA(buf []byte, width, height int) (*image.RGBA, error) {
	if err := checkBuffer(buf, width, height); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[4*i] = buf[3*i]
		img.Pix[4*i+1] = buf[3*i+1]
		img.Pix[4*i+2] = buf[3*i+2]
		img.Pix[4*i+3] = 255
	}
	return img, nil
}

// WritePNG encodes an RGB buffer as PNG
func WritePNG(w io.Writer, buf []byte, width, height int) error {
	img, err := ToRGBA(buf, width, height)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WritePPM encodes an RGB buffer as plain-text PPM (P3), one pixel per line
func WritePPM(w io.Writer, buf []byte, width, height int) error {
	if err := checkBuffer(buf, width, height); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)
	for i := 0; i < len(buf); i += 3 {
		fmt.Fprintf(bw, "%d %d %d\n", buf[i], buf[i+1], buf[i+2])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}

// SaveImage writes the buffer to path in the given format, creating parent
// directories. An unknown format is an error and leaves no file behind.
func SaveImage(path string, format Format, buf []byte, width, height int) error {
	var write func(io.Writer, []byte, int, int) error
	switch format {
	case FormatPNG:
		write = WritePNG
	case FormatPPM:
		write = WritePPM
	default:
		return fmt.Errorf("unknown output format %q (want png or ppm)", format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	err = write(file, buf, width, height)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return err
}
