// Package services orchestrates the conversion pipeline: capability
// probing, input enumeration, the per-document
// extract-suppress-OCR-cleanup-promote-emit flow and the OCR fallback.
// Services depend only on the driven ports; the text transforms
// themselves live in internal/lawtext.
package services
