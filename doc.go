package ochre

// Package ochre provides:
//
// - A scoped execution primitive (Owner/Scope) that allows at most one open
//   scope per instance and tags every unit of work with a structured context
// - Context-aware error wrapping with deduplication, so a failure propagating
//   through nested scopes is tagged exactly once per distinct context
// - Unrecoverable-failure helpers (Must/MustDo) for trust boundaries
//
// Design policy:
// - Keep the scope primitive in the root package; place the converter algebra
//   under convert/, the validator algebra under validate/, and the document
//   adapters under jsonval/, jsonconv/, and yamlconv/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	owner := ochre.NewOwner[myContext](wrap)
//	err := owner.Do(ctx, func(s *ochre.Scope[myContext]) error {
//	    return s.Run(func() error { return step() })
//	})
