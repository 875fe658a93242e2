package converter

import (
	"bufio"
	"fmt"
	"image"
	stdpng "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/merridan/pngraw/internal/logging"
	"github.com/merridan/pngraw/internal/png"
)

// Supported output formats
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
	FormatPPM = "ppm"
	FormatRaw = "raw"
)

// ConvertFile decodes a single PNG file and writes the result next to outPath
// in the requested format.
func ConvertFile(inputPath, outPath, format string, verifyCRC bool) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", inputPath, err)
	}
	defer f.Close()

	file, err := png.ReadFile(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %v", inputPath, err)
	}

	if verifyCRC {
		if err := file.VerifyChecksums(); err != nil {
			return fmt.Errorf("checksum failure in %s: %v", inputPath, err)
		}
	}

	raster, err := file.DecodeImage()
	if err != nil {
		return fmt.Errorf("failed to decode %s: %v", inputPath, err)
	}

	if err := SaveRaster(raster, outPath, format); err != nil {
		return err
	}
	logging.Info("wrote %s", outPath)
	return nil
}

// OutputPath derives the output filename for an input file: same base name,
// extension replaced by the format, placed under outDir when given.
func OutputPath(inputPath, outDir, format string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	name := base + "." + format
	if outDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}
	return filepath.Join(outDir, name)
}

// SaveRaster saves a decoded raster to a file in the given format.
func SaveRaster(raster *png.Raster, filename, format string) error {
	switch format {
	case FormatPNG, FormatBMP:
		return SaveImage(raster, filename, format)
	case FormatPPM:
		return savePPM(raster, filename)
	case FormatRaw:
		return os.WriteFile(filename, raster.Pix(), 0644)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// SaveImage saves an image to a file
func SaveImage(img image.Image, filename, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if format == FormatBMP {
		return bmp.Encode(file, img)
	}
	return stdpng.Encode(file, img)
}

// savePPM writes a binary P6 PPM. Grey samples are expanded to three equal
// channels.
func savePPM(raster *png.Raster, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	bounds := raster.Bounds()
	w := bufio.NewWriter(file)
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := raster.At(x, y).RGBA()
			w.WriteByte(byte(r >> 8))
			w.WriteByte(byte(g >> 8))
			if err := w.WriteByte(byte(b >> 8)); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
