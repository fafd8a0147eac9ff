// Package store persists named solutions on the local filesystem.
//
// Solutions are grouped by problem identifier (usually the problem file's
// base name) and saved under a user-chosen or generated name. The store is
// the persistence sink of a solving session: it writes what
// [session.Session.Solution] produces and hands it back to resume later.
//
//	st, err := store.NewFileStore("")  // ~/.config/holefit/solutions/
//	name, err := st.Save(ctx, "42", "", sess.Solution())
//	sol, err := st.Load(ctx, "42", name)
//
// Names and problem identifiers are validated with [errors.ValidateName], so
// they cannot escape the store directory. Missing solutions are reported as
// [ErrNotFound] wrapped in a SOLUTION_NOT_FOUND error.
//
// [session.Session.Solution]: github.com/matzehuels/holefit/pkg/session.Session.Solution
// [errors.ValidateName]: github.com/matzehuels/holefit/pkg/errors.ValidateName
package store
