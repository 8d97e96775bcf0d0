// Package imageres decides whether a referenced image file can be placed in
// a document. Resolve never fails: every problem is turned into a
// placeholder directive plus a diagnostic on the configured logger.
package imageres

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	"image/png"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"  // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

// Reason says why a placeholder is shown instead of an image.
type Reason string

const (
	ReasonPhoto     Reason = "photo"      // no path given
	ReasonNotFound  Reason = "not-found"  // missing or unreadable file
	ReasonLoadError Reason = "load-error" // file exists but cannot be decoded
)

// DefaultMaxEdge is the longest side, in pixels, an image keeps after
// resolution. Larger images are downsampled.
const DefaultMaxEdge = 1024

// Image is a decoded image ready for embedding. Data is JPEG or PNG encoded.
type Image struct {
	Path          string
	Data          []byte
	Format        string // "JPG" or "PNG"
	Width, Height int    // pixels
}

// Result is either a resolved Image or a Placeholder reason.
type Result struct {
	Image       *Image
	Placeholder Reason
}

// Resolved reports whether r carries an image.
func (r Result) Resolved() bool {
	return r.Image != nil
}

// Resolver resolves image paths against a filesystem.
type Resolver struct {
	fs      afero.Fs
	log     *slog.Logger
	maxEdge int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFS sets the filesystem paths are resolved against (default: the OS).
func WithFS(fs afero.Fs) Option {
	return func(r *Resolver) {
		r.fs = fs
	}
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// WithMaxEdge sets the downsampling threshold. Values <= 0 disable it.
func WithMaxEdge(px int) Option {
	return func(r *Resolver) {
		r.maxEdge = px
	}
}

// New returns a Resolver reading from the OS filesystem.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		fs:      afero.NewOsFs(),
		log:     slog.Default(),
		maxEdge: DefaultMaxEdge,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve loads the image at path.
//
// A blank path yields ReasonPhoto silently. A missing or unreadable file
// yields ReasonNotFound and one warning. A file that cannot be decoded
// yields ReasonLoadError and one error record.
func (r *Resolver) Resolve(path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Placeholder: ReasonPhoto}
	}

	data, err := r.read(path)
	if err != nil {
		r.log.Warn("profile picture not found, displaying placeholder", "path", path, "error", err)
		return Result{Placeholder: ReasonNotFound}
	}

	img, err := r.decode(path, data)
	if err != nil {
		r.log.Error("profile picture could not be loaded", "path", path, "error", err)
		return Result{Placeholder: ReasonLoadError}
	}
	return Result{Image: img}
}

func (r *Resolver) read(path string) ([]byte, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return afero.ReadFile(r.fs, path)
}

// decode fully decodes data. JPEG within the size limit is passed through
// untouched; anything else is normalised to an 8-bit non-interlaced PNG,
// which every PDF backend can embed.
func (r *Resolver) decode(path string, data []byte) (*Image, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, errors.New("image has no pixels")
	}

	w, h := b.Dx(), b.Dy()
	oversized := r.maxEdge > 0 && (w > r.maxEdge || h > r.maxEdge)
	if format == "jpeg" && !oversized {
		return &Image{Path: path, Data: data, Format: "JPG", Width: w, Height: h}, nil
	}

	if oversized {
		w, h = fit(w, h, r.maxEdge)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if oversized {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	} else {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("re-encoding %s image: %w", format, err)
	}
	return &Image{Path: path, Data: buf.Bytes(), Format: "PNG", Width: w, Height: h}, nil
}

// fit scales w x h so the longer side equals edge.
func fit(w, h, edge int) (int, int) {
	if w >= h {
		return edge, max(1, h*edge/w)
	}
	return max(1, w*edge/h), edge
}
