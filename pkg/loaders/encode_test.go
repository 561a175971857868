package loaders

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// 2x1 image: red, blue
var testBuffer = []byte{255, 0, 0, 0, 0, 255}

func TestWritePPM(t *testing.T) {
	var out bytes.Buffer
	if err := WritePPM(&out, testBuffer, 2, 1); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 1\n255\n255 0 0\n0 0 255\n"
	if out.String() != expected {
		t.Errorf("WritePPM output = %q, want %q", out.String(), expected)
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	var out bytes.Buffer
	if err := WritePNG(&out, testBuffer, 2, 1); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("size = %v, want 2x1", img.Bounds())
	}

	r, g, b, a := img.At(1, 0).RGBA()
	if r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("pixel (1,0) = %d %d %d %d, want opaque blue", r, g, b, a)
	}
}

func TestWriteRejectsWrongBufferSize(t *testing.T) {
	tests := []struct {
		name          string
		buf           []byte
		width, height int
	}{
		{"Too short", []byte{1, 2, 3}, 2, 1},
		{"Too long", make([]byte, 9), 1, 2},
		{"Zero size", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := WritePPM(&bytes.Buffer{}, tt.buf, tt.width, tt.height); err == nil {
				t.Error("WritePPM: expected error")
			}
			if err := WritePNG(&bytes.Buffer{}, tt.buf, tt.width, tt.height); err == nil {
				t.Error("WritePNG: expected error")
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PPM", FormatPPM, false},
		{"exr", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.input, got, err)
		}
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.ppm")

	if err := SaveImage(path, FormatPPM, testBuffer, 2, 1); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("P3\n2 1\n")) {
		t.Errorf("unexpected PPM header: %q", data[:8])
	}
}

func TestSaveImage_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")

	if err := SaveImage(path, Format("gif"), testBuffer, 2, 1); err == nil {
		t.Fatal("Expected error for unknown format")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no file for an unknown format, stat returned %v", err)
	}

	// The zero Format is not a silent alias for PNG either
	if err := SaveImage(path, "", testBuffer, 2, 1); err == nil {
		t.Error("Expected error for empty format")
	}
}
