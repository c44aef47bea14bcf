// Package version exposes build-time version information.
//
// Set the variables with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/pager/version.Version=1.2.3 \
//	  -X github.com/ncobase/pager/version.Branch=main \
//	  -X github.com/ncobase/pager/version.Revision=abc1234 \
//	  -X 'github.com/ncobase/pager/version.BuiltAt=$(date)'" ./cmd/pager
//
// Unset values fall back to the module build info embedded by the Go
// toolchain.
package version
