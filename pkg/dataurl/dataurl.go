// Package dataurl decodifica las fotos que el cliente envía como data URL base64.
package dataurl

import (
	"fmt"
	"strings"

	"github.com/vincent-petithory/dataurl"
)

const defaultPrefix = "data:image/jpeg;base64,"

// Decode separa "data:image/jpeg;base64,...." en content type y bytes.
// Acepta parámetros de media type (RFC 2397) y también base64 sin prefijo,
// que se asume image/jpeg. Solo se aceptan imágenes codificadas en base64.
func Decode(s string) (contentType string, data []byte, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil, fmt.Errorf("dataurl: data url vacía")
	}
	if !strings.HasPrefix(s, "data:") {
		s = defaultPrefix + s
	}
	du, err := dataurl.DecodeString(s)
	if err != nil {
		return "", nil, fmt.Errorf("dataurl: %w", err)
	}
	if du.Encoding != dataurl.EncodingBase64 {
		return "", nil, fmt.Errorf("dataurl: solo se aceptan data url base64")
	}
	if du.Type != "image" {
		return "", nil, fmt.Errorf("dataurl: tipo %q no es una imagen", du.ContentType())
	}
	if len(du.Data) == 0 {
		return "", nil, fmt.Errorf("dataurl: data url sin datos")
	}
	return du.ContentType(), du.Data, nil
}

// Extension extensión de archivo para el content type de la foto.
func Extension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
