package gif89

import (
	"github.com/loopdecode/gif89/internal/container"
	"github.com/loopdecode/gif89/internal/lzw"
)

// Re-exported sentinel errors, matched with errors.Is.
var (
	ErrUnexpectedEof                    = container.ErrUnexpectedEof
	ErrInvalidSignature                 = container.ErrInvalidSignature
	ErrExpectedImageAfterGraphicControl = container.ErrExpectedImageAfterGraphicControl
	ErrUnexpectedGraphicControl         = container.ErrUnexpectedGraphicControl
	ErrBitStreamTruncated               = lzw.ErrBitStreamTruncated
	ErrInvalidCode                      = lzw.ErrInvalidCode
	ErrCodeWidthOverflow                = lzw.ErrCodeWidthOverflow
)

// Re-exported parameterized error types, matched with errors.As.
type (
	UnsupportedVersionError            = container.UnsupportedVersionError
	UnknownExtensionLabelError         = container.UnknownExtensionLabelError
	UnexpectedBlockLabelError          = container.UnexpectedBlockLabelError
	MalformedExtensionBlockSizeError   = container.MalformedExtensionBlockSizeError
	InvalidDisposalMethodError         = container.InvalidDisposalMethodError
	InvalidLzwCodeSizeError            = container.InvalidLzwCodeSizeError
	ApplicationDataLengthMismatchError = container.ApplicationDataLengthMismatchError
)
