// pkg/helper_err/wrap.go

package helper_err

import (
	cerr "github.com/cockroachdb/errors"
)

func WrapInvalidArgument(err error) error {
	return cerr.WithHint(cerr.WithStack(err), "check the arguments passed to the helper")
}

func WrapIOFailure(err error) error {
	return cerr.WithHint(cerr.WithStack(err), "filesystem probe failed")
}
