package fileops

import (
	"iter"

	cerr "github.com/cockroachdb/errors"
)

// Candidates lazily yields file names derived from name: first name itself
// (without any directory part), then "<base>-<token><ext>" with a new token
// per pull. The sequence never ends on its own and may be ranged over again.
// A token failure is yielded once as an error and ends the sequence.
func Candidates(name string, tokens TokenSource) iter.Seq2[string, error] {
	base, ext := SplitName(name)
	return func(yield func(string, error) bool) {
		if !yield(base+ext, nil) {
			return
		}
		for {
			token, err := tokens()
			if err != nil {
				yield("", cerr.Wrap(err, "next candidate"))
				return
			}
			if !yield(base+"-"+token+ext, nil) {
				return
			}
		}
	}
}
