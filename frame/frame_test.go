package frame

import (
	"errors"
	"testing"

	"github.com/loopdecode/gif89/internal/container"
)

func TestFromRawImage_NoGraphicControl(t *testing.T) {
	raw := container.RawImage{
		Descriptor: container.ImageDescriptor{Width: 2, Height: 2},
		Indices:    []byte{0, 1, 1, 0},
	}
	f := FromRawImage(raw)
	if f.Delay() != 0 || f.Disposal() != DisposalUnspecified {
		t.Fatalf("Delay/Disposal = %d/%d, want 0/%d", f.Delay(), f.Disposal(), DisposalUnspecified)
	}
	if _, ok := f.Transparent(); ok {
		t.Fatal("Transparent ok = true, want false")
	}
}

func TestFromRawImage_WithGraphicControl(t *testing.T) {
	raw := container.RawImage{
		Descriptor: container.ImageDescriptor{Width: 1, Height: 1},
		Indices:    []byte{0},
		GraphicCtl: &container.GraphicControl{
			DisposalMethod:        2,
			DelayTime:             10,
			TransparentColorFlag:  true,
			TransparentColorIndex: 3,
		},
	}
	f := FromRawImage(raw)
	if f.Delay() != 10 {
		t.Fatalf("Delay() = %d, want 10", f.Delay())
	}
	if f.Disposal() != DisposalRestoreBackground {
		t.Fatalf("Disposal() = %d, want %d", f.Disposal(), DisposalRestoreBackground)
	}
	idx, ok := f.Transparent()
	if !ok || idx != 3 {
		t.Fatalf("Transparent() = %d, %v, want 3, true", idx, ok)
	}
}

func TestPalette_LocalShadowsGlobal(t *testing.T) {
	global := container.Palette{{R: 1}, {G: 1}}
	raw := container.RawImage{
		Descriptor:   container.ImageDescriptor{Width: 1, Height: 1, HasLocalPalette: true},
		LocalPalette: container.Palette{{B: 1}},
		Indices:      []byte{0},
	}
	f := FromRawImage(raw)
	if !f.HasLocalPalette() {
		t.Fatal("HasLocalPalette() = false, want true")
	}
	p, err := f.Palette(global)
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if len(p) != 1 || p[0] != (container.RGB{B: 1}) {
		t.Fatalf("Palette() = %v, want local", p)
	}
}

func TestPalette_FallsBackToGlobal(t *testing.T) {
	global := container.Palette{{R: 9}}
	raw := container.RawImage{Descriptor: container.ImageDescriptor{Width: 1, Height: 1}, Indices: []byte{0}}
	f := FromRawImage(raw)
	p, err := f.Palette(global)
	if err != nil || len(p) != 1 || p[0] != (container.RGB{R: 9}) {
		t.Fatalf("Palette() = %v, %v, want global", p, err)
	}
}

func TestPalette_NoneInScope(t *testing.T) {
	raw := container.RawImage{Descriptor: container.ImageDescriptor{Width: 1, Height: 1}, Indices: []byte{0}}
	f := FromRawImage(raw)
	if _, err := f.Palette(nil); !errors.Is(err, ErrNoPaletteInScope) {
		t.Fatalf("Palette() error = %v, want ErrNoPaletteInScope", err)
	}
}
