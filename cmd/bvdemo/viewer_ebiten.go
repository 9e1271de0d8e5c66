//go:build !headless

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/burning"
)

const viewerFrames = 360

// viewer presents driver frames in an ebiten window.
type viewer struct {
	d      *burning.Driver
	sc     *scene
	frame  int
	screen *ebiten.Image
	err    error
}

func runViewer(d *burning.Driver, sc *scene) error {
	w, h := d.ScreenSize()
	v := &viewer{d: d, sc: sc, screen: ebiten.NewImage(w, h)}

	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("bvdemo - " + sc.cubeMat.Type.String())
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(v); err != nil {
		return err
	}
	return v.err
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		v.sc.cubeMat.Wireframe = !v.sc.cubeMat.Wireframe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.sc.cfg.Shadow = !v.sc.cfg.Shadow
	}
	if err := v.sc.render(v.d, v.frame, viewerFrames); err != nil {
		v.err = err
		return ebiten.Termination
	}
	v.frame = (v.frame + 1) % viewerFrames
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.screen.WritePixels(v.d.Image().Pix)
	screen.DrawImage(v.screen, nil)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.d.ScreenSize()
}
