// SPDX-License-Identifier: Unlicense OR MIT

package glfw

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/go-gfx/glfw/internal/native"
)

// StandardCursor names one of the platform's standard cursor shapes.
type StandardCursor int

const (
	ArrowCursor        StandardCursor = native.ArrowCursor
	IBeamCursor        StandardCursor = native.IBeamCursor
	CrosshairCursor    StandardCursor = native.CrosshairCursor
	PointingHandCursor StandardCursor = native.PointingHandCursor
	ResizeEWCursor     StandardCursor = native.ResizeEWCursor
	ResizeNSCursor     StandardCursor = native.ResizeNSCursor
	ResizeNWSECursor   StandardCursor = native.ResizeNWSECursor
	ResizeNESWCursor   StandardCursor = native.ResizeNESWCursor
	ResizeAllCursor    StandardCursor = native.ResizeAllCursor
	NotAllowedCursor   StandardCursor = native.NotAllowedCursor
)

// Cursor is a cursor image applicable to windows with SetCursor.
// Cursors belong to the EventLoop that created them and are destroyed
// with it.
type Cursor struct {
	handle native.Cursor
	el     *EventLoop
	alive  bool
}

// NewStandardCursor creates a cursor with one of the standard shapes.
// Shapes the platform is missing fail with CursorUnavailable.
func (el *EventLoop) NewStandardCursor(shape StandardCursor) (*Cursor, error) {
	el.mustOwnerThread("NewStandardCursor")
	var h native.Cursor
	err := el.checked(func() {
		h = el.backend.CreateStandardCursor(int(shape))
	})
	if err != nil {
		return nil, fmt.Errorf("glfw: create cursor: %w", err)
	}
	c := &Cursor{handle: h, el: el, alive: true}
	el.registerCursor(c)
	return c, nil
}

// NewCursor creates a cursor from img with the hotspot at hot,
// relative to the image's top-left corner. Any image type works; it is
// converted to 8-bit RGBA.
func (el *EventLoop) NewCursor(img image.Image, hot image.Point) (*Cursor, error) {
	el.mustOwnerThread("NewCursor")
	rgba := toRGBA(img)
	var h native.Cursor
	err := el.checked(func() {
		h = el.backend.CreateCursor(rgba, hot.X, hot.Y)
	})
	if err != nil {
		return nil, fmt.Errorf("glfw: create cursor: %w", err)
	}
	c := &Cursor{handle: h, el: el, alive: true}
	el.registerCursor(c)
	return c, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Destroy destroys the cursor. Windows showing it revert to the
// default arrow. Destroy is idempotent; any remaining Cursor use after
// it panics.
func (c *Cursor) Destroy() {
	if !c.alive {
		return
	}
	c.el.mustOwnerThread("Destroy")
	c.alive = false
	c.el.logged("destroy cursor", func() {
		c.el.backend.DestroyCursor(c.handle)
	})
	c.el.forgetCursor(c)
}
