package system

import (
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/catburglar/ecs"
	"github.com/milk9111/catburglar/ecs/component"
)

// RenderSystem draws every entity with a Transform and an Animation. World space is y up
// with the origin at the bottom left of the play area; the screen is y down.
type RenderSystem struct {
	// ViewHeight is the play area height in world px.
	ViewHeight float64
	Zoom       float64

	gpu map[image.Image]*ebiten.Image
}

func NewRenderSystem(viewHeight float64) *RenderSystem {
	return &RenderSystem{ViewHeight: viewHeight, Zoom: 1, gpu: make(map[image.Image]*ebiten.Image)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	zoom := r.zoom()

	entities := w.Query(component.TransformComponent.Kind(), component.AnimationComponent.Kind())
	// Floor first, then enemies, then the player on top.
	sort.SliceStable(entities, func(i, j int) bool {
		return layer(w, entities[i]) < layer(w, entities[j])
	})

	for _, e := range entities {
		t := ecs.MustGet(w, e, component.TransformComponent.Kind())
		an := ecs.MustGet(w, e, component.AnimationComponent.Kind())
		img := r.image(an.Frame())
		if img == nil {
			continue
		}
		b := img.Bounds()

		op := &ebiten.DrawImageOptions{}
		sx, sy := 1.0, 1.0
		if b.Dx() > 0 && t.Width > 0 {
			sx = t.Width / float64(b.Dx())
		}
		if b.Dy() > 0 && t.Height > 0 {
			sy = t.Height / float64(b.Dy())
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(t.Left(), r.ViewHeight-t.Top())
		op.GeoM.Scale(zoom, zoom)
		screen.DrawImage(img, op)
	}
}

func (r *RenderSystem) image(frame image.Image) *ebiten.Image {
	if frame == nil {
		return nil
	}
	if img, ok := frame.(*ebiten.Image); ok {
		return img
	}
	if img, ok := r.gpu[frame]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(frame)
	r.gpu[frame] = img
	return img
}

func layer(w *ecs.World, e ecs.Entity) int {
	switch {
	case ecs.Has(w, e, component.PlayerComponent.Kind()):
		return 2
	case ecs.Has(w, e, component.EnemyComponent.Kind()):
		return 1
	default:
		return 0
	}
}

func (r *RenderSystem) zoom() float64 {
	if r.Zoom <= 0 {
		return 1
	}
	return r.Zoom
}
