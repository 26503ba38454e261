package model

// StatusKind classifies a transient workflow status.
type StatusKind string

const (
	// StatusIdle means no workflow has run yet.
	StatusIdle StatusKind = "idle"
	// StatusLoading means a call is in flight.
	StatusLoading StatusKind = "loading"
	// StatusSuccess means the last workflow completed.
	StatusSuccess StatusKind = "success"
	// StatusError means the last workflow failed.
	StatusError StatusKind = "error"
)

// Status is the transient outcome of one workflow (login or
// submission). It is rendered as a banner and never persisted.
type Status struct {
	Kind    StatusKind
	Message string
}
