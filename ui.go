package multiview

import (
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/multiview/overlay"
	"github.com/gogpu/multiview/window"
)

// IconTexture is the overlay texture id of the icon shown in both windows.
const IconTexture overlay.TextureID = 0

const iconSize = 256

// UIState is the overlay state private to one window.
type UIState struct {
	Input string
}

// SharedUIState is the overlay state every window reads and writes.
type SharedUIState struct {
	SharedInput string
}

// Overlay window titles and text-field ids. Field ids follow the order in
// which the fields are drawn.
const (
	FirstWindowTitle  = "First Window"
	SecondWindowTitle = "Second Window"

	FirstPrivateField  = FirstWindowTitle + "#0"
	FirstSharedField   = FirstWindowTitle + "#1"
	SecondPrivateField = SecondWindowTitle + "#0"
	SecondSharedField  = SecondWindowTitle + "#1"
)

// drawOverlay builds one frame of a window's overlay: the private field,
// the shared field, then the icon.
func drawOverlay(ctx *overlay.Context, title, prompt string, private *UIState, shared *SharedUIState) {
	ctx.Begin()
	ctx.Window(title, func(ui *overlay.UI) {
		ui.Horizontal(func(ui *overlay.UI) {
			ui.Label(prompt)
			ui.TextEditSingleline(&private.Input)
		})
		ui.Horizontal(func(ui *overlay.UI) {
			ui.Label("Shared input: ")
			ui.TextEditSingleline(&shared.SharedInput)
		})
		ui.Image(IconTexture, iconSize, iconSize)
	})
	ctx.End()
}

// iconImage draws the placeholder icon: a diagonal gradient.
func iconImage() image.Image {
	const n = 32
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := range n {
		for x := range n {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / (n - 1)), //nolint:gosec // G115: bounded by 255
				G: uint8(y * 255 / (n - 1)), //nolint:gosec // G115: bounded by 255
				B: 204,
				A: 255,
			})
		}
	}
	return img
}

// bindIcon binds the icon under IconTexture, uploading it when the device
// can create textures.
func bindIcon(table *overlay.Table, device any) error {
	tex := overlay.NewImageTexture(iconImage(), iconSize, iconSize)
	if tc, ok := device.(gpucontext.TextureCreator); ok {
		up, err := overlay.Upload(tc, tex)
		if err != nil {
			return err
		}
		table.Bind(IconTexture, up)
		return nil
	}
	table.Bind(IconTexture, tex)
	return nil
}

func (a *App) uiFirstWindow() error {
	drawOverlay(a.overlay.Context(window.PrimaryID), FirstWindowTitle, "Write something: ", &a.firstUI, &a.shared)
	return nil
}

func (a *App) uiSecondWindow() error {
	if a.lifecycle.State() != window.Active {
		return nil
	}
	drawOverlay(a.overlay.Context(a.second), SecondWindowTitle, "Write something else: ", &a.secondUI, &a.shared)
	return nil
}
