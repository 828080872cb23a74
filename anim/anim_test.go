package anim

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giboul/tsunami-benchmarks/render"
)

// frame returns a tiny solid PNG frame, shaded by k so frames differ.
func frame(t *testing.T, k int, tt float64) *render.Frame {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for x := 0; x < 8; x++ {
		for y := 0; y < 6; y++ {
			img.Set(x, y, color.RGBA{uint8(40 * k), 0, 255 - uint8(40*k), 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &render.Frame{
		Index:  100 * k,
		Time:   tt,
		Title:  fmt.Sprintf("Surface at t = %.3f seconds", tt),
		Format: "png",
		Data:   buf.Bytes(),
	}
}

func sample(t *testing.T) *Animation {
	a := New(200*time.Millisecond, true)
	for k, tt := range []float64{0, 1.5, 3} {
		a.Add(frame(t, k, tt))
	}
	return a
}

func TestOrder(t *testing.T) {
	a := sample(t)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []float64{0, 1.5, 3}, a.Times())
	for k, f := range a.Frames {
		assert.Equal(t, 100*k, f.Index)
	}
}

func TestHTML(t *testing.T) {
	a := sample(t)
	s, err := a.HTMLString()
	require.NoError(t, err)

	srcs, err := a.Sources()
	require.NoError(t, err)
	require.Len(t, srcs, 3)
	assert.True(t, strings.HasPrefix(srcs[0], "data:image/png;base64,"))

	assert.Contains(t, s, `src="data:image/png;base64,`)

	// labels follow playback order
	last := -1
	for _, f := range a.Frames {
		at := strings.LastIndex(s, f.Title)
		require.Greater(t, at, last)
		last = at
	}
	assert.Contains(t, s, "Surface at t = 1.500 seconds")
	assert.Contains(t, s, "setInterval")
	assert.NotContains(t, s, "ZgotmplZ")
}

func TestPlayerIDs(t *testing.T) {
	a, b := sample(t), sample(t)
	require.NotEqual(t, a.ID, b.ID)

	sa, err := a.HTMLString()
	require.NoError(t, err)
	sb, err := b.HTMLString()
	require.NoError(t, err)
	assert.Contains(t, sa, `id="`+a.ID+`-img"`)
	assert.NotContains(t, sa, `id="`+b.ID+`-img"`)
	assert.Contains(t, sb, `id="`+b.ID+`-img"`)
}

func TestHTMLEmpty(t *testing.T) {
	_, err := New(time.Second, false).HTMLString()
	assert.Error(t, err)
}

func TestWritePage(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "a.html")
	require.NoError(t, sample(t).WritePage(fp, "transect"))
	b, err := os.ReadFile(fp)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<!DOCTYPE html>"))
	assert.Contains(t, string(b), "<title>transect</title>")
	assert.Contains(t, string(b), `<div class="transect-anim"`)
}

func TestGIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample(t).GIF(&buf))
	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, 3)
	assert.Equal(t, []int{20, 20, 20}, g.Delay)
	assert.Equal(t, 0, g.LoopCount)

	a := sample(t)
	a.Frames[1].Format = "svg"
	assert.Error(t, a.GIF(&bytes.Buffer{}))
}

func TestWriteFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	a := sample(t)
	require.NoError(t, a.WriteFrames(dir))

	for k, f := range a.Frames {
		b, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("frame%04d.png", k)))
		require.NoError(t, err)
		assert.Equal(t, f.Data, b)
	}

	fh, err := os.Open(filepath.Join(dir, "frames.csv"))
	require.NoError(t, err)
	defer fh.Close()
	recs, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"frame", "index", "time"},
		{"0", "0", "0.000"},
		{"1", "100", "1.500"},
		{"2", "200", "3.000"},
	}, recs)
}
