// Package app is the application layer: it owns the inference use case and
// is the only package that wires the loaded model artifacts, the clock, and
// the metrics together.
package app
