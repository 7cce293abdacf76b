// Package validation provides struct validation on top of
// go-playground/validator.
//
// It is used at the ingestion boundary: graph documents and API request
// bodies are validated before any entity reaches the store, so the
// evaluator only ever sees well-formed input. Failures are reported as
// *errors.AppError with per-field details.
package validation
