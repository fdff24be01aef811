// Package domain contains the core types and errors of the conversion
// pipeline. Types here are plain values passed between pipeline stages;
// they carry no behaviour that touches the filesystem or subprocesses.
package domain
