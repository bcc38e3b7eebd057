package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testCanvas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 60), B: 20, A: 255})
		}
	}
	return img
}

func TestSupported(t *testing.T) {
	for _, format := range []string{"png", "bmp", "tif", "tiff", "PNG"} {
		if !Supported(format) {
			t.Errorf("expected %q to be supported", format)
		}
	}
	for _, format := range []string{"jpg", "gif", "webp", ""} {
		if Supported(format) {
			t.Errorf("expected %q to be unsupported", format)
		}
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	src := testCanvas()
	dir := t.TempDir()

	decoders := map[string]func(*os.File) (image.Image, error){
		"out.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"out.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"out.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}

	for name, decode := range decoders {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, src); err != nil {
			t.Fatalf("%s: WriteFile failed: %v", name, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("%s: reopening: %v", name, err)
		}
		img, err := decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: decoding: %v", name, err)
		}

		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
			t.Errorf("%s: expected 8x4, got %v", name, img.Bounds())
		}
		wantR, wantG, _, _ := src.At(3, 2).RGBA()
		gotR, gotG, _, _ := img.At(3, 2).RGBA()
		if wantR != gotR || wantG != gotG {
			t.Errorf("%s: pixel (3,2) mismatch: want (%d,%d), got (%d,%d)", name, wantR, wantG, gotR, gotG)
		}
	}
}

func TestWriteFileUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := WriteFile(path, testCanvas()); err == nil {
		t.Fatal("expected error for unsupported format, got nil")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("unsupported format must not leave a file behind")
	}
}
