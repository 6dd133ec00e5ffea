package dataurl_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/minegest-api/pkg/dataurl"
)

func TestDecode(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))

	ct, data, err := dataurl.Decode("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	ct, data, err = dataurl.Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct, "sin prefijo se asume jpeg")
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestDecode_ParametrosDeMediaType(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("km"))

	ct, data, err := dataurl.Decode("data:image/webp;name=compteur.webp;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "image/webp", ct)
	assert.Equal(t, []byte("km"), data)
	assert.Equal(t, ".webp", dataurl.Extension(ct))
}

func TestDecode_Invalida(t *testing.T) {
	for _, in := range []string{"", "data:image/png;base64", "data:text/plain,hola", "data:image/png;base64,@@@", "data:text/plain;base64,aG9sYQ==", "data:image/png;base64,"} {
		_, _, err := dataurl.Decode(in)
		assert.Error(t, err, in)
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".png", dataurl.Extension("image/png"))
	assert.Equal(t, ".jpg", dataurl.Extension("image/jpeg"))
	assert.Equal(t, ".jpg", dataurl.Extension(""))
}
