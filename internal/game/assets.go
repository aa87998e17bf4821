package game

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

const (
	faceFile  = "granny_face.png"
	fontFile  = "arial.ttf"
	soundFile = "jumpscare.wav"

	sampleRate = 44100
	hudSize    = 20
	titleSize  = 48
)

// Assets holds the textures, fonts and sounds the game draws with. Every
// field is usable even when the files are missing.
type Assets struct {
	Face      *ebiten.Image
	HUDFace   text.Face
	TitleFace text.Face

	audio     *audio.Context
	jumpscare *audio.Player
}

// LoadAssets loads what it can from dir and generates the rest. Missing
// files are logged at Warn and never fatal.
func LoadAssets(dir string, log *slog.Logger) *Assets {
	a := &Assets{}

	face, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, faceFile))
	if err != nil {
		log.Warn("face texture missing, using generated face", "error", err)
		face = ebiten.NewImageFromImage(fallbackFace())
	}
	a.Face = face

	a.HUDFace, a.TitleFace, err = loadFonts(filepath.Join(dir, fontFile))
	if err != nil {
		log.Warn("font missing, using built-in bitmap font", "error", err)
		fallback := text.NewGoXFace(basicfont.Face7x13)
		a.HUDFace, a.TitleFace = fallback, fallback
	}

	a.audio = audio.NewContext(sampleRate)
	pcm, err := loadWAV(filepath.Join(dir, soundFile))
	if err != nil {
		log.Warn("jump-scare sound missing, using generated tone", "error", err)
		pcm = jumpscareTone(sampleRate)
	}
	a.jumpscare = a.audio.NewPlayerFromBytes(pcm)
	return a
}

func loadFonts(path string) (hud, title text.Face, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read font")
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parse font %s", path)
	}
	return &text.GoTextFace{Source: src, Size: hudSize}, &text.GoTextFace{Source: src, Size: titleSize}, nil
}

// loadWAV decodes a WAV file into 16-bit stereo PCM at sampleRate.
func loadWAV(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open sound")
	}
	defer f.Close()
	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return pcm, nil
}

// PlayJumpscare restarts the capture sound from the beginning.
func (a *Assets) PlayJumpscare() {
	if a.jumpscare == nil {
		return
	}
	_ = a.jumpscare.SetPosition(0)
	a.jumpscare.Play()
}

// fallbackFace draws the 40x60 magenta face with red eyes and a black mouth.
func fallbackFace() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 40, 60))
	magenta := color.RGBA{R: 255, B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	black := color.RGBA{A: 255}
	for y := 0; y < 60; y++ {
		for x := 0; x < 40; x++ {
			img.SetRGBA(x, y, magenta)
		}
	}
	for x := 10; x < 15; x++ {
		for y := 15; y < 20; y++ {
			img.SetRGBA(x, y, red)
			img.SetRGBA(x+15, y, red)
		}
	}
	for x := 12; x < 28; x++ {
		for y := 35; y < 38; y++ {
			img.SetRGBA(x, y, black)
		}
	}
	return img
}

// jumpscareTone synthesises a short falling screech as 16-bit little-endian
// stereo PCM.
func jumpscareTone(rate int) []byte {
	n := rate * 6 / 10 // 0.6s
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := 880 - 660*t
		phase += 2 * math.Pi * freq / float64(rate)
		// Square-ish wave with a hard attack and a linear tail.
		s := math.Tanh(4 * math.Sin(phase))
		v := int16(s * (1 - t) * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
