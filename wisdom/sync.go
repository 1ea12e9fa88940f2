package wisdom

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hupe1980/fftwgo"
	"github.com/hupe1980/fftwgo/blobstore"
)

type options struct {
	compression Compression
}

// Option configures Publish.
type Option func(*options)

// WithCompression selects the envelope compression. Default: CompressionZSTD.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// DefaultName returns the conventional blob name for a precision, e.g.
// "double.wisdom".
func DefaultName(p fftwgo.Precision) string {
	return p.String() + ".wisdom"
}

// Publish exports the domain's wisdom and stores it under name.
func Publish(ctx context.Context, d *fftwgo.Domain, store blobstore.Store, name string, optFns ...Option) error {
	o := options{compression: CompressionZSTD}
	for _, fn := range optFns {
		fn(&o)
	}

	raw, err := exportBytes(d)
	if err != nil {
		return err
	}

	env, err := Encode(d.Precision(), raw, o.compression)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, name, env); err != nil {
		return fmt.Errorf("wisdom: put %s: %w", name, err)
	}

	d.Logger().InfoContext(ctx, "wisdom published",
		"name", name,
		"raw_bytes", len(raw),
		"stored_bytes", len(env),
	)
	return nil
}

// Fetch loads the wisdom stored under name and imports it into the domain.
// A missing blob satisfies errors.Is(err, blobstore.ErrNotFound).
func Fetch(ctx context.Context, d *fftwgo.Domain, store blobstore.Store, name string) error {
	env, err := store.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("wisdom: get %s: %w", name, err)
	}

	raw, err := Decode(d.Precision(), env)
	if err != nil {
		return err
	}
	if err := importBytes(d, raw); err != nil {
		return err
	}

	d.Logger().InfoContext(ctx, "wisdom fetched", "name", name, "raw_bytes", len(raw))
	return nil
}

func exportBytes(d *fftwgo.Domain) ([]byte, error) {
	dir, err := os.MkdirTemp("", "fftwgo-wisdom-")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, DefaultName(d.Precision()))
	if err := d.ExportWisdom(path); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func importBytes(d *fftwgo.Domain, raw []byte) error {
	dir, err := os.MkdirTemp("", "fftwgo-wisdom-")
	if err != nil {
		return err
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, DefaultName(d.Precision()))
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return err
	}
	return d.ImportWisdom(path)
}
