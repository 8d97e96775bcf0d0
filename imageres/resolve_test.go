package imageres

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func newTestResolver(t *testing.T) (*Resolver, afero.Fs, *bytes.Buffer) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(WithFS(fsys), WithLogger(logger)), fsys, &logs
}

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 60, A: 255})
		}
	}
	return img
}

func encode(t *testing.T, enc func(*bytes.Buffer, image.Image) error, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.Bytes()
}

func countLevel(logs *bytes.Buffer, level string) int {
	return strings.Count(logs.String(), "level="+level)
}

func TestResolveBlankPath(t *testing.T) {
	r, _, logs := newTestResolver(t)

	for _, p := range []string{"", "   "} {
		res := r.Resolve(p)
		assert.False(t, res.Resolved())
		assert.Equal(t, ReasonPhoto, res.Placeholder)
	}
	assert.Empty(t, logs.String(), "blank path is not worth a diagnostic")
}

func TestResolveNotFound(t *testing.T) {
	r, fsys, logs := newTestResolver(t)
	require.NoError(t, fsys.MkdirAll("/photos", 0o755))

	res := r.Resolve("/nonexistent")
	assert.Equal(t, Result{Placeholder: ReasonNotFound}, res)
	assert.Equal(t, 1, countLevel(logs, "WARN"))
	assert.Contains(t, logs.String(), "path=/nonexistent")

	res = r.Resolve("/photos")
	assert.Equal(t, ReasonNotFound, res.Placeholder, "directories are not images")
	assert.Equal(t, 2, countLevel(logs, "WARN"))
	assert.Zero(t, countLevel(logs, "ERROR"))
}

func TestResolveCorruptFile(t *testing.T) {
	r, fsys, logs := newTestResolver(t)
	require.NoError(t, afero.WriteFile(fsys, "/me.png", []byte("definitely not a png"), 0o644))

	res := r.Resolve("/me.png")
	assert.Equal(t, Result{Placeholder: ReasonLoadError}, res)
	assert.Equal(t, 1, countLevel(logs, "ERROR"))
	assert.Zero(t, countLevel(logs, "WARN"))
}

func TestResolveTruncatedPNG(t *testing.T) {
	r, fsys, _ := newTestResolver(t)
	data := encode(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) }, solid(40, 40))
	require.NoError(t, afero.WriteFile(fsys, "/cut.png", data[:len(data)/2], 0o644))

	assert.Equal(t, ReasonLoadError, r.Resolve("/cut.png").Placeholder)
}

func TestResolvePNG(t *testing.T) {
	r, fsys, logs := newTestResolver(t)
	data := encode(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) }, solid(40, 30))
	require.NoError(t, afero.WriteFile(fsys, "/me.png", data, 0o644))

	res := r.Resolve("/me.png")
	require.True(t, res.Resolved())
	assert.Equal(t, "/me.png", res.Image.Path)
	assert.Equal(t, "PNG", res.Image.Format)
	assert.Equal(t, 40, res.Image.Width)
	assert.Equal(t, 30, res.Image.Height)

	_, err := png.Decode(bytes.NewReader(res.Image.Data))
	assert.NoError(t, err)
	assert.Empty(t, logs.String())
}

func TestResolveJPEGPassThrough(t *testing.T) {
	r, fsys, _ := newTestResolver(t)
	data := encode(t, func(b *bytes.Buffer, i image.Image) error { return jpeg.Encode(b, i, nil) }, solid(64, 64))
	require.NoError(t, afero.WriteFile(fsys, "/me.jpg", data, 0o644))

	res := r.Resolve("/me.jpg")
	require.True(t, res.Resolved())
	assert.Equal(t, "JPG", res.Image.Format)
	assert.Equal(t, data, res.Image.Data)
}

func TestResolveTranscodesBMP(t *testing.T) {
	r, fsys, _ := newTestResolver(t)
	data := encode(t, func(b *bytes.Buffer, i image.Image) error { return bmp.Encode(b, i) }, solid(20, 10))
	require.NoError(t, afero.WriteFile(fsys, "/me.bmp", data, 0o644))

	res := r.Resolve("/me.bmp")
	require.True(t, res.Resolved())
	assert.Equal(t, "PNG", res.Image.Format)

	cfg, err := png.DecodeConfig(bytes.NewReader(res.Image.Data))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
}

func TestResolveDownsamplesLargeImages(t *testing.T) {
	fsys := afero.NewMemMapFs()
	r := New(WithFS(fsys), WithMaxEdge(100), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	data := encode(t, func(b *bytes.Buffer, i image.Image) error { return jpeg.Encode(b, i, nil) }, solid(400, 200))
	require.NoError(t, afero.WriteFile(fsys, "/big.jpg", data, 0o644))

	res := r.Resolve("/big.jpg")
	require.True(t, res.Resolved())
	assert.Equal(t, "PNG", res.Image.Format)
	assert.Equal(t, 100, res.Image.Width)
	assert.Equal(t, 50, res.Image.Height)
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, edge   int
		wantW, wantH int
	}{
		{2000, 1000, 1024, 1024, 512},
		{1000, 2000, 1024, 512, 1024},
		{5000, 1, 100, 100, 1},
	}
	for _, tt := range tests {
		w, h := fit(tt.w, tt.h, tt.edge)
		assert.Equal(t, tt.wantW, w)
		assert.Equal(t, tt.wantH, h)
	}
}
