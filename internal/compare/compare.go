// Package compare implements the file comparison workflow: read a local
// text file, fetch the matching object from an object store, and render
// a unified diff of the two.
package compare

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/oleg-kozlyuk/s3diff/internal/locator"
	"github.com/oleg-kozlyuk/s3diff/internal/storage"
)

// diffContext is the number of unchanged lines shown around each hunk.
const diffContext = 3

// Result holds the detailed outcome of one comparison.
type Result struct {
	// Identical is true when both sides have the same line content.
	Identical bool
	// Diff is the rendered unified diff. Empty when Identical is true
	// or when Err is set.
	Diff string
	// Err is set when the comparison could not be performed.
	Err *Error
}

// Comparer compares local files against objects in a remote store.
type Comparer struct {
	store storage.ObjectStore
	out   io.Writer
}

// Option is a functional option for configuring a Comparer.
type Option func(*Comparer)

// WithOutput redirects the comparer's printed output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Comparer) {
		c.out = w
	}
}

// New creates a Comparer backed by the given object store.
func New(store storage.ObjectStore, opts ...Option) *Comparer {
	c := &Comparer{
		store: store,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare runs the comparison and prints the outcome: "Files are identical",
// "Files are different:" followed by the diff, or an error message.
// Returns true only when the files are identical. Errors never propagate;
// every failure is printed and reported as false.
func (c *Comparer) Compare(ctx context.Context, localPath, remoteURI string) bool {
	result := c.Run(ctx, localPath, remoteURI)
	if result.Err != nil {
		switch result.Err.Kind {
		case KindLocalRead:
			fmt.Fprintf(c.out, "Error reading local file: %v\n", result.Err.Err)
		case KindRemoteRead:
			fmt.Fprintf(c.out, "Error reading S3 file: %v\n", result.Err.Err)
		default:
			fmt.Fprintf(c.out, "Error parsing S3 URI: %v\n", result.Err.Err)
		}
		return false
	}

	if result.Identical {
		fmt.Fprintln(c.out, "Files are identical")
		return true
	}

	fmt.Fprintln(c.out, "Files are different:")
	fmt.Fprint(c.out, result.Diff)
	return false
}

// Run performs the comparison and returns the detailed result without
// printing. The remote object is not fetched until the locator parses
// and the local read succeeds.
func (c *Comparer) Run(ctx context.Context, localPath, remoteURI string) *Result {
	loc, err := locator.Parse(remoteURI)
	if err != nil {
		return &Result{Err: &Error{Kind: KindMalformedLocator, Err: err}}
	}

	localLines, err := readLines(localPath)
	if err != nil {
		return &Result{Err: &Error{Kind: KindLocalRead, Err: err}}
	}

	data, err := c.store.FetchObject(ctx, loc.Bucket, loc.Key)
	if err != nil {
		return &Result{Err: &Error{Kind: KindRemoteRead, Err: err}}
	}
	if !utf8.Valid(data) {
		return &Result{Err: &Error{
			Kind: KindRemoteRead,
			Err:  fmt.Errorf("object %s is not valid UTF-8 text", loc.URI()),
		}}
	}

	// GetUnifiedDiffString only fails writing to its buffer, which a
	// bytes.Buffer never does
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        localLines,
		B:        difflib.SplitLines(string(data)),
		FromFile: "local: " + localPath,
		ToFile:   "s3: " + remoteURI,
		Context:  diffContext,
	})

	if diff == "" {
		return &Result{Identical: true}
	}
	return &Result{Diff: diff}
}

// readLines reads a UTF-8 text file into lines with terminators preserved.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("file %s is not valid UTF-8 text", path)
	}
	return difflib.SplitLines(string(data)), nil
}
