package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/df07/go-pathtracer/pkg/core"
)

// writeCornerImage writes a 2x2 image: white, red / green, blue
func writeCornerImage(t *testing.T, path string, encode func(*os.File, image.Image) error) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

// TestLoadImage writes test images in each supported container and verifies loading
func TestLoadImage(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		encode func(*os.File, image.Image) error
	}{
		{"PNG", "test.png", func(f *os.File, img image.Image) error { return png.Encode(f, img) }},
		{"BMP", "test.bmp", func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(t.TempDir(), tt.file)
			writeCornerImage(t, testFile, tt.encode)

			imageData, err := LoadImage(testFile)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}

			if imageData.Width != 2 || imageData.Height != 2 {
				t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
			}
			if len(imageData.Pixels) != 4 {
				t.Fatalf("Expected 4 pixels, got %d", len(imageData.Pixels))
			}

			checkColor := func(name string, got, expected core.Vec3) {
				const tolerance = 0.01
				if got.Subtract(expected).Length() > tolerance {
					t.Errorf("%s: expected %v, got %v", name, expected, got)
				}
			}

			// Row-major order
			checkColor("Top-left (white)", imageData.Pixels[0], core.NewVec3(1, 1, 1))
			checkColor("Top-right (red)", imageData.Pixels[1], core.NewVec3(1, 0, 0))
			checkColor("Bottom-left (green)", imageData.Pixels[2], core.NewVec3(0, 1, 0))
			checkColor("Bottom-right (blue)", imageData.Pixels[3], core.NewVec3(0, 0, 1))
		})
	}
}

// TestLoadImageNonZeroOrigin verifies sub-images are re-based to (0,0)
func TestLoadImageNonZeroOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 2, color.RGBA{R: 255, A: 255})
	sub := img.SubImage(image.Rect(2, 2, 4, 4))

	data := imageDataFrom(sub)
	if data.Width != 2 || data.Height != 2 {
		t.Fatalf("Expected 2x2 image, got %dx%d", data.Width, data.Height)
	}
	if !data.Pixels[0].Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("first pixel = %v, want red", data.Pixels[0])
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

// TestLoadImageCorrupt verifies undecodable files are reported
func TestLoadImageCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("Expected decode error, got nil")
	}
}
