// Package language normalizes language identifiers between the forms the
// configuration accepts (ISO codes or English words) and the display names
// the Whisper CLI expects.
package language
