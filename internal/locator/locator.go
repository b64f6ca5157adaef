package locator

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme is the URI prefix identifying an S3 object locator.
const Scheme = "s3://"

// ErrMalformedLocator is returned when a URI cannot be parsed into a
// bucket and key. Callers can match it with errors.Is.
var ErrMalformedLocator = errors.New("malformed S3 locator")

// Locator identifies an object in S3 by bucket and key.
type Locator struct {
	Bucket string
	Key    string
}

// Parse parses a URI of the form s3://<bucket>/<key> into a Locator.
// The key is everything after the first separator following the bucket
// and may itself contain separators.
func Parse(uri string) (Locator, error) {
	if !strings.HasPrefix(uri, Scheme) {
		return Locator{}, fmt.Errorf("%w: URI must start with %q", ErrMalformedLocator, Scheme)
	}

	rest := strings.TrimPrefix(uri, Scheme)
	bucket, key, found := strings.Cut(rest, "/")
	if !found {
		return Locator{}, fmt.Errorf("%w: missing key after bucket in %q", ErrMalformedLocator, uri)
	}
	if bucket == "" {
		return Locator{}, fmt.Errorf("%w: missing bucket name in %q", ErrMalformedLocator, uri)
	}
	if key == "" {
		return Locator{}, fmt.Errorf("%w: missing key after bucket in %q", ErrMalformedLocator, uri)
	}

	return Locator{Bucket: bucket, Key: key}, nil
}

// URI renders the locator back into s3://<bucket>/<key> form.
func (l Locator) URI() string {
	return Scheme + l.Bucket + "/" + l.Key
}
