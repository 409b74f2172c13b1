package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDLarge FontName = "hud-large"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads the Go fonts the HUD uses.
func LoadDefaults(size float64) error {
	if err := LoadFontWithSize(HUD, goregular.TTF, size); err != nil {
		return err
	}
	return LoadFontWithSize(HUDLarge, gobold.TTF, size*2)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Loaded reports whether a font has been loaded.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
