package png

// Scanline filter types, as per the PNG spec.
type filterType uint8

const (
	filterNone filterType = iota
	filterSub
	filterUp
	filterAverage
	filterPaeth
)

// Reconstruct reverses per-scanline filtering of the decompressed image data
// and returns the raw pixel buffer, scanline length * height bytes in
// row-major order.
//
// Scanlines are processed strictly in order: every filter except None reads
// already-reconstructed neighbor bytes, from the current row to the left and
// from the row above. Each row is fully written before it becomes the
// previous-row context for the next.
func Reconstruct(header *Header, decompressed []byte) ([]byte, error) {
	if header.Interlace != InterlaceNone {
		return nil, &UnsupportedInterlaceError{Interlace: header.Interlace}
	}
	if header.BitDepth != Depth8 {
		return nil, &UnsupportedBitDepthError{BitDepth: header.BitDepth}
	}

	bpp := header.BytesPerPixel()
	rowLen := header.ScanlineLength()
	recordLen := rowLen + 1 // leading filter-type byte
	height := int(header.Height)

	if len(decompressed) != recordLen*height {
		return nil, &MalformedStreamError{Length: len(decompressed), Expected: recordLen * height}
	}

	raster := make([]byte, rowLen*height)
	prev := make([]byte, rowLen) // all-zero context above the first scanline

	for y := 0; y < height; y++ {
		record := decompressed[y*recordLen : (y+1)*recordLen]
		cur := record[1:]
		row := raster[y*rowLen : (y+1)*rowLen]

		// One dispatch per scanline, never per byte.
		switch filterType(record[0]) {
		case filterNone:
			copy(row, cur)
		case filterSub:
			for o := 0; o < bpp; o++ {
				row[o] = cur[o]
			}
			for o := bpp; o < rowLen; o++ {
				row[o] = cur[o] + row[o-bpp]
			}
		case filterUp:
			for o := 0; o < rowLen; o++ {
				row[o] = cur[o] + prev[o]
			}
		case filterAverage:
			for o := 0; o < bpp; o++ {
				row[o] = cur[o] + prev[o]/2
			}
			for o := bpp; o < rowLen; o++ {
				row[o] = cur[o] + byte((int(row[o-bpp])+int(prev[o]))/2)
			}
		case filterPaeth:
			for o := 0; o < bpp; o++ {
				// a and c are zero in the first pixel, so the predictor
				// degenerates to b.
				row[o] = cur[o] + paethPredictor(0, prev[o], 0)
			}
			for o := bpp; o < rowLen; o++ {
				row[o] = cur[o] + paethPredictor(row[o-bpp], prev[o], prev[o-bpp])
			}
		default:
			return nil, &InvalidFilterTypeError{Value: record[0]}
		}

		prev = row
	}

	return raster, nil
}

// paethPredictor picks whichever of a (left), b (above), c (above-left) is
// closest to a+b-c, breaking ties in favour of a, then b.
func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
