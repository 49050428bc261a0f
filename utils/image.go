package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

// ErrImageDecode marks an upload that cannot be read as a JPEG/PNG image.
var ErrImageDecode = errors.New("image decode failed")

// DecodeImagePayload accepts either a bare base64 string or a
// "data:image/<type>;base64,<data>" URI and returns the raw image bytes.
// The bytes must decode as JPEG or PNG before they are handed to the
// recognition engine.
func DecodeImagePayload(payload string) ([]byte, error) {
	data := payload
	if strings.HasPrefix(payload, "data:") {
		parts := strings.SplitN(payload, ",", 2)
		if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:image") {
			return nil, fmt.Errorf("%w: invalid data URI", ErrImageDecode)
		}
		data = parts[1]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	if format != "jpeg" && format != "png" {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrImageDecode, format)
	}
	return raw, nil
}
