package gif89

import (
	"github.com/loopdecode/gif89/internal/container"
)

// Re-exported container types, so callers never need to import the
// internal package to name a decoded value's type.
type (
	Version              = container.Version
	ScreenDescriptor     = container.ScreenDescriptor
	RGB                  = container.RGB
	Palette              = container.Palette
	GraphicControl       = container.GraphicControl
	ImageDescriptor      = container.ImageDescriptor
	Extension            = container.Extension
	ApplicationExtension = container.ApplicationExtension
	CommentExtension     = container.CommentExtension
	LoopDirective        = container.LoopDirective
)

const (
	Version87a = container.Version87a
	Version89a = container.Version89a
)
