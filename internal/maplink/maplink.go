// Package maplink builds the exact-location link revealed after too many wrong guesses.
package maplink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

// BaseURL is the map service the location is opened in
const BaseURL = "https://www.google.com/maps"

// DefaultQRSize is the side of the generated QR code in pixels
const DefaultQRSize = 256

// URL returns the map link centered on the given coordinates
func URL(lat, lng float64) string {
	return fmt.Sprintf("%s?q=%s,%s", BaseURL, formatCoord(lat), formatCoord(lng))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// QRCode encodes link as a PNG QR code
func QRCode(link string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	data, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return data, nil
}

// QRImage encodes link as a QR code image ready to display
func QRImage(link string, size int) (image.Image, error) {
	data, err := QRCode(link, size)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR code: %w", err)
	}
	return img, nil
}
