package model

// BuildRef identifies one build in the recorded history.
type BuildRef string

// BuildRecord ties a build to its report and to the reference of the
// immediately preceding build. The chain is backward-only: a record holds a
// lookup reference to its predecessor, never the predecessor itself.
type BuildRecord struct {
	Ref      BuildRef
	Report   *Report
	Previous BuildRef
}

// HasPrevious reports whether the record references a predecessor build.
func (b BuildRecord) HasPrevious() bool {
	return b.Previous != ""
}
