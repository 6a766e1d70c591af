package main

import (
	"testing"

	"github.com/npillmayer/knotedit"
	"github.com/npillmayer/knotedit/knots"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pt, err := parsePair("12.5,-3")
	require.NoError(t, err)
	assert.Equal(t, knotedit.P(12.5, -3), pt)
	_, err = parsePair("12.5")
	assert.Error(t, err)
}

func TestParseCanvas(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := parseCanvas("1024x800")
	require.NoError(t, err)
	assert.Equal(t, knotedit.Canvas{Width: 1024, Height: 800}, c)
	c, err = parseCanvas("0x0")
	require.NoError(t, err)
	assert.Equal(t, knotedit.Canvas{}, c)
	c, err = parseCanvas("0x600")
	require.NoError(t, err)
	assert.Equal(t, 600.0, c.Height)
	_, err = parseCanvas("1024")
	assert.Error(t, err)
	_, err = parseCanvas("ax600")
	assert.Error(t, err)
}

func TestApplyGestures(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ed, err := knots.NewEditor(nil)
	require.NoError(t, err)
	canvas := knotedit.Canvas{Width: 1024, Height: 800}
	require.NoError(t, apply(ed, "add:311,322", canvas))
	require.Equal(t, 5, ed.Count())
	assert.Equal(t, 2, ed.Hover())
	require.NoError(t, apply(ed, "drag:700,240:900,100", canvas))
	z, _ := ed.Store().At(4)
	assert.Equal(t, knotedit.P(900, 100), z)
	require.NoError(t, apply(ed, "remove:60,60", canvas))
	assert.Equal(t, 4, ed.Count())
	assert.Error(t, apply(ed, "paint:1,1", canvas))
	assert.Error(t, apply(ed, "add:x,y", canvas))
}
