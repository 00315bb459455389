// Package texture provides probes that decide whether a texture map
// referenced from a material library can be used.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Probe modes accepted by ProbeByName.
const (
	ModeOpen   = "open"
	ModeDecode = "decode"
	ModeNone   = "none"
)

// ErrUnknownProbe is returned by ProbeByName for unsupported modes.
var ErrUnknownProbe = errors.New("unknown texture probe")

// Opener opens a named resource for reading.
type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

// Probe reports whether the texture at path is usable.
type Probe func(path string) bool

// FileOpener opens files from the local filesystem.
type FileOpener struct{}

// Open opens the named file.
func (FileOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// OpenProbe accepts any path that o can open.
func OpenProbe(o Opener) Probe {
	return func(path string) bool {
		rc, err := o.Open(path)
		if err != nil {
			return false
		}
		rc.Close()
		return true
	}
}

// configDecoder reads the dimensions of one image format.
type configDecoder func(r io.Reader) (image.Config, error)

// tga registers itself with an empty magic string, which makes image.DecodeConfig
// hand every input to it. Decoders are therefore picked by extension and
// called directly.
var configDecoders = map[string]configDecoder{
	".png":  png.DecodeConfig,
	".jpg":  jpeg.DecodeConfig,
	".jpeg": jpeg.DecodeConfig,
	".gif":  gif.DecodeConfig,
	".bmp":  bmp.DecodeConfig,
	".tif":  tiff.DecodeConfig,
	".tiff": tiff.DecodeConfig,
	".webp": webp.DecodeConfig,
	".tga":  tga.DecodeConfig,
}

// fallbackOrder is tried for unknown extensions. TGA has no signature and goes last.
var fallbackOrder = []string{".png", ".jpg", ".gif", ".bmp", ".tiff", ".webp", ".tga"}

// DecodeProbe accepts paths that open and carry a decodable image header
// (PNG, JPEG, GIF, BMP, TIFF, WebP or TGA).
func DecodeProbe(o Opener) Probe {
	return func(name string) bool {
		rc, err := o.Open(name)
		if err != nil {
			return false
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return false
		}

		if decode, ok := configDecoders[strings.ToLower(path.Ext(strings.ReplaceAll(name, `\`, "/")))]; ok {
			return validConfig(decode, data)
		}
		for _, ext := range fallbackOrder {
			if validConfig(configDecoders[ext], data) {
				return true
			}
		}
		return false
	}
}

func validConfig(decode configDecoder, data []byte) bool {
	cfg, err := decode(bytes.NewReader(data))
	return err == nil && cfg.Width > 0 && cfg.Height > 0
}

// AcceptProbe accepts every path without touching storage.
func AcceptProbe() Probe {
	return func(string) bool { return true }
}

// ProbeByName returns the probe for mode, backed by o.
func ProbeByName(mode string, o Opener) (Probe, error) {
	switch mode {
	case "", ModeOpen:
		return OpenProbe(o), nil
	case ModeDecode:
		return DecodeProbe(o), nil
	case ModeNone:
		return AcceptProbe(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProbe, mode)
	}
}
