package game

import (
	"encoding/binary"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackFace(t *testing.T) {
	img := fallbackFace()
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(12, 17), "left eye")
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(27, 17), "right eye")
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(20, 36), "mouth")
}

func TestJumpscareTone(t *testing.T) {
	pcm := jumpscareTone(sampleRate)
	frames := sampleRate * 6 / 10
	assert.Len(t, pcm, frames*4)

	peak := 0
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		assert.Equal(t, l, r, "channels differ at frame %d", i)
		if v := int(l); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 10000)
}

func TestLoadHelpers_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, _, err := loadFonts(dir + "/nope.ttf")
	assert.ErrorContains(t, err, "read font")
	_, err = loadWAV(dir + "/nope.wav")
	assert.ErrorContains(t, err, "open sound")
}
