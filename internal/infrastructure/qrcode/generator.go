// Package qrcode genera códigos QR en PNG para las fichas de máquina.
package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/jhoicas/minegest-api/internal/application/ports"
)

var _ ports.QRCodeGenerator = (*Generator)(nil)

// Generator produce PNG cuadrados de Size píxeles.
type Generator struct {
	Size int
}

// NewGenerator construye el generador; size <= 0 usa 256.
func NewGenerator(size int) *Generator {
	if size <= 0 {
		size = 256
	}
	return &Generator{Size: size}
}

// PNG codifica payload en un QR con corrección de errores media.
func (g *Generator) PNG(payload string) ([]byte, error) {
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	code, err = barcode.Scale(code, g.Size, g.Size)
	if err != nil {
		return nil, fmt.Errorf("qr: scale: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("qr: png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL PNG del QR como data URL, listo para un <img src>.
func (g *Generator) DataURL(payload string) (string, error) {
	raw, err := g.PNG(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw), nil
}
