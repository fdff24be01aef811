// Package lawtext implements the text-normalisation core for Indonesian
// statutory documents: suspect-page detection, repeated-line
// suppression, OCR override merging, law-aware cleanup, heading
// promotion and quality metrics.
//
// Every function in this package is a total, deterministic transform
// over strings — no I/O, no subprocesses, no shared state. Heuristic
// misfires degrade output quality and show up in counters or metrics;
// they never become errors.
package lawtext
