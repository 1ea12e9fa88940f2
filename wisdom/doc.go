// Package wisdom ships exported planner wisdom through blob stores.
//
// Publish exports a domain's wisdom, wraps it in a small checksummed and
// compressed envelope, and writes it to a blobstore.Store. Fetch reverses
// the trip and imports the result through the domain's validated file
// protocol, so engine failures keep their usual error kinds:
//
//	store := blobstore.NewLocalStore("/var/lib/app/wisdom")
//	if err := wisdom.Publish(ctx, fftwgo.Double(), store, wisdom.DefaultName(native.Double)); err != nil {
//	    return err
//	}
//
//	err := wisdom.Fetch(ctx, fftwgo.Double(), store, wisdom.DefaultName(native.Double))
//	if errors.Is(err, blobstore.ErrNotFound) {
//	    // nothing published yet
//	}
package wisdom
