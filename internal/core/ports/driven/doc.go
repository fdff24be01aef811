// Package driven defines the interfaces the pipeline core requires
// from the outside world: text extraction, page rasterisation, OCR
// recognition, subprocess execution, artifact dumping and the run
// catalog. Adapters under internal/adapters/driven implement them;
// the core never spawns a process or touches capability binaries
// directly, which keeps it testable with no binary installed.
package driven
