package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

var (
	playerBoxColor = cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	enemyBoxColor  = cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
	groundColor    = cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
)

// DrawHitboxDebug outlines the hit boxes CollisionSystem tests and the ground line.
func (r *RenderSystem) DrawHitboxDebug(w *ecs.World, screen *ebiten.Image, groundLevel float64) {
	if r == nil || w == nil || screen == nil {
		return
	}
	d := &debugDrawer{screen: screen, viewHeight: r.ViewHeight, zoom: r.zoom()}

	width := float64(screen.Bounds().Dx()) / d.zoom
	d.drawLine(cp.Vector{X: 0, Y: groundLevel}, cp.Vector{X: width, Y: groundLevel}, groundColor)

	for _, e := range w.Query(component.PlayerComponent.Kind(), component.TransformComponent.Kind()) {
		d.drawBB(hitBox(w, e), playerBoxColor)
	}
	for _, e := range w.Query(component.EnemyComponent.Kind(), component.TransformComponent.Kind()) {
		d.drawBB(hitBox(w, e), enemyBoxColor)
	}
}

// DrawPlayerStateDebug prints the first player's movement state in the top right corner.
func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := w.First(component.PlayerComponent.Kind())
	if !ok {
		return
	}
	p := ecs.MustGet(w, player, component.PlayerComponent.Kind())
	text := fmt.Sprintf("Move State: %s\nFacing: %s", p.MoveState, p.Facing)
	if mv, ok := ecs.Get(w, player, component.MovementComponent.Kind()); ok {
		text += fmt.Sprintf("\nVX: %.2f VY: %.2f\nMoving: %v", mv.VX, mv.VY, mv.Moving())
	}
	if an, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		text += fmt.Sprintf("\nAnimation: %s [%d]", an.State(), an.FrameIndex())
	}
	ebitenutil.DebugPrintAt(screen, text, screen.Bounds().Dx()-200, 10)
}

type debugDrawer struct {
	screen     *ebiten.Image
	viewHeight float64
	zoom       float64
}

func (d *debugDrawer) drawBB(bb cp.BB, c cp.FColor) {
	d.drawPolygon([]cp.Vector{
		{X: bb.L, Y: bb.B},
		{X: bb.R, Y: bb.B},
		{X: bb.R, Y: bb.T},
		{X: bb.L, Y: bb.T},
	}, c)
}

func (d *debugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, toNRGBA(c))
}

func (d *debugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

// toScreen flips world y up into screen y down.
func (d *debugDrawer) toScreen(v cp.Vector) (float64, float64) {
	return v.X * d.zoom, (d.viewHeight - v.Y) * d.zoom
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
