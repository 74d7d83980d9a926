// Package fingerprint maps an object's (type, name, origin, copy) tuple to
// the identity key used for lookup, deduplication and linking inside one
// logical file.
package fingerprint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/minio/highwayhash"
)

// Fingerprint is the identity key of an object within one logical file.
// Equal keys in different logical files say nothing about identity.
type Fingerprint string

var ErrMalformed = errors.New("fingerprint: malformed key")

// hashKey is fixed: changing it reshuffles every shard assignment.
var hashKey = []byte("welllog.fingerprint.shard.key.v1")

// Of encodes the tuple as T.<len>:<type>-I.<len>:<name>-O.<origin>-C.<copy>.
// Strings are length prefixed, so no choice of characters in type or name
// can make two distinct tuples collide.
func Of(typ, name string, origin, copy int64) Fingerprint {
	var b strings.Builder
	b.Grow(len(typ) + len(name) + 32)
	b.WriteString("T.")
	b.WriteString(strconv.Itoa(len(typ)))
	b.WriteByte(':')
	b.WriteString(typ)
	b.WriteString("-I.")
	b.WriteString(strconv.Itoa(len(name)))
	b.WriteByte(':')
	b.WriteString(name)
	b.WriteString("-O.")
	b.WriteString(strconv.FormatInt(origin, 10))
	b.WriteString("-C.")
	b.WriteString(strconv.FormatInt(copy, 10))
	return Fingerprint(b.String())
}

// Parse splits a key produced by Of back into its tuple.
func Parse(fp Fingerprint) (typ, name string, origin, copy int64, err error) {
	rest := string(fp)
	if typ, rest, err = lengthPrefixed(rest, "T."); err != nil {
		return "", "", 0, 0, err
	}
	if name, rest, err = lengthPrefixed(rest, "-I."); err != nil {
		return "", "", 0, 0, err
	}
	if !strings.HasPrefix(rest, "-O.") {
		return "", "", 0, 0, fmt.Errorf("%w: missing origin in %q", ErrMalformed, fp)
	}
	rest = rest[len("-O."):]
	cut := strings.Index(rest, "-C.")
	if cut < 0 {
		return "", "", 0, 0, fmt.Errorf("%w: missing copy in %q", ErrMalformed, fp)
	}
	if origin, err = strconv.ParseInt(rest[:cut], 10, 64); err != nil {
		return "", "", 0, 0, fmt.Errorf("%w: origin: %v", ErrMalformed, err)
	}
	if copy, err = strconv.ParseInt(rest[cut+len("-C."):], 10, 64); err != nil {
		return "", "", 0, 0, fmt.Errorf("%w: copy: %v", ErrMalformed, err)
	}
	return typ, name, origin, copy, nil
}

func lengthPrefixed(s, tag string) (string, string, error) {
	if !strings.HasPrefix(s, tag) {
		return "", "", fmt.Errorf("%w: expected %q", ErrMalformed, tag)
	}
	s = s[len(tag):]
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return "", "", fmt.Errorf("%w: missing length after %q", ErrMalformed, tag)
	}
	n, err := strconv.Atoi(s[:colon])
	if err != nil || n < 0 || n > len(s)-colon-1 {
		return "", "", fmt.Errorf("%w: bad length after %q", ErrMalformed, tag)
	}
	s = s[colon+1:]
	return s[:n], s[n:], nil
}

// Type returns the object type encoded in fp, empty if fp is malformed.
func (fp Fingerprint) Type() string {
	typ, _, _, _, err := Parse(fp)
	if err != nil {
		return ""
	}
	return typ
}

// Name returns the object name encoded in fp, empty if fp is malformed.
func (fp Fingerprint) Name() string {
	_, name, _, _, err := Parse(fp)
	if err != nil {
		return ""
	}
	return name
}

// Sum64 is a stable 64-bit HighwayHash of fp, used to spread work across
// shards deterministically.
func (fp Fingerprint) Sum64() uint64 {
	return highwayhash.Sum64([]byte(fp), hashKey)
}

// Shard maps fp onto one of n buckets.
func (fp Fingerprint) Shard(n int) int {
	if n <= 1 {
		return 0
	}
	return int(fp.Sum64() % uint64(n))
}

func (fp Fingerprint) String() string {
	return string(fp)
}
