package objects

import (
	"fmt"
	"sync"

	"github.com/danmuck/welllog/internal/attic"
	"github.com/danmuck/welllog/internal/fingerprint"
	"github.com/danmuck/welllog/internal/observability"
	"github.com/danmuck/welllog/internal/record"
	"github.com/rs/zerolog/log"
)

// Header is the identity tuple of an object.
type Header struct {
	Type   string `yaml:"type"`
	Name   string `yaml:"name"`
	Origin int64  `yaml:"origin"`
	Copy   int64  `yaml:"copy"`
}

func HeaderOf(raw record.RawObject) Header {
	return Header{Type: raw.Type, Name: raw.Name, Origin: raw.Origin, Copy: raw.Copy}
}

func (h Header) Fingerprint() fingerprint.Fingerprint {
	return fingerprint.Of(h.Type, h.Name, h.Origin, h.Copy)
}

func (h Header) String() string {
	return fmt.Sprintf("%s:%s(%d,%d)", h.Type, h.Name, h.Origin, h.Copy)
}

// Resolver looks objects up inside one logical file.
type Resolver interface {
	Lookup(fp fingerprint.Fingerprint) (Object, bool)
	ObjectsOf(typ string) []Object
}

// Object is implemented by every typed variant.
type Object interface {
	Header() Header
	Fingerprint() fingerprint.Fingerprint
	Fields() *attic.Result
	Attic() record.Attic
	Linked(label string) []Object
	Discrepancies() []attic.Discrepancy
}

// Base carries what every variant shares. Variants embed *Base.
type Base struct {
	header Header
	fp     fingerprint.Fingerprint
	bag    record.Attic
	fields *attic.Result
	owner  Resolver

	mu         sync.Mutex
	unresolved []attic.Discrepancy
	seen       map[string]struct{}
}

func (b *Base) Header() Header                       { return b.header }
func (b *Base) Fingerprint() fingerprint.Fingerprint { return b.fp }
func (b *Base) Fields() *attic.Result                { return b.fields }
func (b *Base) Type() string                         { return b.header.Type }
func (b *Base) Name() string                         { return b.header.Name }

func (b *Base) String() string {
	return b.header.String()
}

// Attic returns a copy of the raw attribute bag the object was built from.
func (b *Base) Attic() record.Attic {
	return b.bag.Clone()
}

// Discrepancies returns load-time discrepancies followed by the unresolved
// links found so far.
func (b *Base) Discrepancies() []attic.Discrepancy {
	out := b.fields.Discrepancies()
	b.mu.Lock()
	out = append(out, b.unresolved...)
	b.mu.Unlock()
	return out
}

// Linked resolves the link field label within the owning logical file.
// Fingerprints missing from the file are omitted and recorded once as
// UnresolvedLink.
func (b *Base) Linked(label string) []Object {
	return b.resolve(label, b.fields.Links(label))
}

func (b *Base) resolve(label string, fps []fingerprint.Fingerprint) []Object {
	out := make([]Object, 0, len(fps))
	for _, fp := range fps {
		if b.owner != nil {
			if obj, ok := b.owner.Lookup(fp); ok {
				out = append(out, obj)
				continue
			}
		}
		b.unresolvedLink(label, fp)
	}
	return out
}

func (b *Base) unresolvedLink(label string, fp fingerprint.Fingerprint) {
	key := label + "\x00" + string(fp)
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.seen[key]; ok {
		return
	}
	if b.seen == nil {
		b.seen = make(map[string]struct{})
	}
	b.seen[key] = struct{}{}
	d := attic.Discrepancy{
		Kind:     attic.UnresolvedLink,
		Object:   b.header.String(),
		Label:    label,
		Observed: string(fp),
	}
	b.unresolved = append(b.unresolved, d)
	observability.RecordDiscrepancy(d.Kind.String())
	log.Debug().Msgf("objects.Base.resolve %v", d)
}

func linked[T Object](b *Base, label string) []T {
	objs := b.Linked(label)
	out := make([]T, 0, len(objs))
	for _, obj := range objs {
		if typed, ok := obj.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

func linkedOne[T Object](b *Base, label string) (T, bool) {
	var zero T
	all := linked[T](b, label)
	if len(all) == 0 {
		return zero, false
	}
	return all[0], true
}
