// Package bmp writes uncompressed 24-bit BMP files
// (BITMAPFILEHEADER + BITMAPINFOHEADER) byte-exactly, pulling
// scanlines from a pattern.Frame one row at a time.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/pixgen/internal/apperror"
	"github.com/abdul-hamid-achik/pixgen/internal/pattern"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	// PixelDataOffset is the fixed byte offset of the first scanline.
	PixelDataOffset = fileHeaderSize + infoHeaderSize

	bitsPerPixel  = 24
	bytesPerPixel = 3
)

// ChannelOrder selects the per-pixel byte order written to disk. The
// zero value is not a valid order.
type ChannelOrder int

const (
	// BGR is the byte order the BMP format expects; conformant
	// readers display these files correctly.
	BGR ChannelOrder = iota + 1

	// RGB writes literal red,green,blue bytes into the container.
	// This is intentionally non-standard: a conformant reader will
	// show the red and blue channels swapped. It exists for display
	// controllers and test rigs that consume the pixel array as raw
	// RGB and ignore the header convention.
	RGB
)

func (o ChannelOrder) String() string {
	switch o {
	case BGR:
		return "BGR"
	case RGB:
		return "RGB"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// Valid reports whether o is one of the two supported orders.
func (o ChannelOrder) Valid() bool {
	return o == BGR || o == RGB
}

// ParseChannelOrder maps "bgr" or "rgb" (any case) to a ChannelOrder.
func ParseChannelOrder(s string) (ChannelOrder, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BGR":
		return BGR, nil
	case "RGB":
		return RGB, nil
	}
	return 0, apperror.WrapWithMessage(
		fmt.Errorf("got %q", s),
		apperror.ErrInvalidParameter,
		fmt.Sprintf("invalid channel order %q: must be BGR or RGB", s),
	)
}

// Padding is the number of zero bytes appended to each scanline so its
// length is a multiple of 4, as the format requires.
func Padding(width int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}

// RowSize is the on-disk byte length of one padded scanline.
func RowSize(width int) int {
	return width*bytesPerPixel + Padding(width)
}

// FileSize is the total encoded size in bytes for the given
// dimensions: both headers plus the padded pixel array.
func FileSize(width, height int) int {
	return PixelDataOffset + RowSize(width)*height
}

// Encode writes a complete BMP to w. All parameters are validated
// before the first byte is written; an invalid combination returns an
// invalid_parameter error and leaves w untouched. Rows are pulled from
// the pattern producer in order and written as produced — the positive
// height field tells readers to treat the first stored row as the
// bottom of the displayed image.
func Encode(w io.Writer, width, height int, p pattern.Pattern, order ChannelOrder) error {
	frame, err := validate(width, height, p, order)
	if err != nil {
		return err
	}
	return encodeFrame(w, frame, order)
}

// EncodeFile validates, then creates path and writes the BMP into it.
// Invalid parameters never create or touch the destination. A failure
// mid-write leaves a partial file behind for the caller to discard;
// there is no rollback.
func EncodeFile(path string, width, height int, p pattern.Pattern, order ChannelOrder) error {
	frame, err := validate(width, height, p, order)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return apperror.WrapWithMessage(err, apperror.ErrIOFailure,
			fmt.Sprintf("create %s: %v", path, err))
	}

	err = encodeFrame(f, frame, order)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = apperror.WrapWithMessage(cerr, apperror.ErrIOFailure,
			fmt.Sprintf("close %s: %v", path, cerr))
	}
	return err
}

func validate(width, height int, p pattern.Pattern, order ChannelOrder) (*pattern.Frame, error) {
	frame, err := pattern.NewFrame(width, height, p)
	if err != nil {
		return nil, err
	}
	if !order.Valid() {
		return nil, apperror.WrapWithMessage(
			fmt.Errorf("got %v", order),
			apperror.ErrInvalidParameter,
			"channel order must be BGR or RGB",
		)
	}
	return frame, nil
}

func encodeFrame(w io.Writer, frame *pattern.Frame, order ChannelOrder) error {
	width, height := frame.Width(), frame.Height()
	rowBytes := frame.RowBytes()
	paddedRow := RowSize(width)
	pixelDataSize := paddedRow * height

	if _, err := w.Write(headers(width, height, pixelDataSize)); err != nil {
		return wrapWrite(err)
	}

	// One reused buffer at padded length; the padding tail is
	// allocated zero and never written to.
	row := make([]byte, paddedRow)
	for y := 0; y < height; y++ {
		frame.RowAt(row[:rowBytes], y)
		if order == BGR {
			swapChannels(row[:rowBytes])
		}
		if _, err := w.Write(row); err != nil {
			return wrapWrite(err)
		}
	}
	return nil
}

// headers builds the 14-byte file header followed by the 40-byte
// BITMAPINFOHEADER, all fields little-endian.
func headers(width, height, pixelDataSize int) []byte {
	h := make([]byte, PixelDataOffset)

	h[0] = 'B'
	h[1] = 'M'
	binary.LittleEndian.PutUint32(h[2:6], uint32(PixelDataOffset+pixelDataSize))
	// h[6:10] two reserved uint16 fields, zero
	binary.LittleEndian.PutUint32(h[10:14], PixelDataOffset)

	binary.LittleEndian.PutUint32(h[14:18], infoHeaderSize)
	binary.LittleEndian.PutUint32(h[18:22], uint32(width))
	binary.LittleEndian.PutUint32(h[22:26], uint32(height)) // positive: bottom-up
	binary.LittleEndian.PutUint16(h[26:28], 1)              // color planes
	binary.LittleEndian.PutUint16(h[28:30], bitsPerPixel)
	// h[30:34] compression BI_RGB (0)
	binary.LittleEndian.PutUint32(h[34:38], uint32(pixelDataSize))
	// h[38:54] resolutions and palette counts, all zero

	return h
}

// swapChannels flips each pixel from canonical RGB to on-disk BGR.
func swapChannels(row []byte) {
	for i := 0; i < len(row); i += bytesPerPixel {
		row[i], row[i+2] = row[i+2], row[i]
	}
}

func wrapWrite(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.WrapWithMessage(err, apperror.ErrIOFailure,
		fmt.Sprintf("write pixel data: %v", err))
}
