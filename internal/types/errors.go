package types

import "fmt"

// EntryTooLargeError is returned when a metadata entry exceeds the read limit.
type EntryTooLargeError struct {
	Path  string
	Entry string
	Limit int64
}

func (e *EntryTooLargeError) Error() string {
	return fmt.Sprintf("%s: entry %s exceeds %d byte limit", e.Path, e.Entry, e.Limit)
}

// MalformedMetadataError describes metadata that was found but could not be
// decoded as its format requires.
type MalformedMetadataError struct {
	Format MetadataFormat
	Reason string
}

func (e *MalformedMetadataError) Error() string {
	return fmt.Sprintf("malformed %s metadata: %s", e.Format, e.Reason)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent a result from being
// produced. Examples include:
//   - An unsupported mcmod.info list version
//   - A mod list whose first element is not an object
//   - JSON or properties content that failed to parse
//   - A metadata entry larger than the read limit
//
// Warnings are collected in Result.Warnings.
type Warning struct {
	// Stage where the warning occurred ("locate" or "decode")
	Stage string

	// Format being decoded, FormatNone for locator warnings
	Format MetadataFormat

	// Warning message
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Format != FormatNone {
		return fmt.Sprintf("%s (%s): %s", w.Stage, w.Format, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

// DecodeWarning builds a decode-stage warning from a malformed-metadata error.
func DecodeWarning(format MetadataFormat, reason string) Warning {
	err := &MalformedMetadataError{Format: format, Reason: reason}
	return Warning{Stage: "decode", Format: format, Message: err.Error()}
}
