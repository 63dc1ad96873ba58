// Package pipeline coordinates the batch subtitle workflow: it discovers
// input videos, bounds how many are in flight at once, drives each through
// transcription, embedding, and cleanup, and aggregates per-file outcomes.
// A failure in one video never aborts the others.
package pipeline
