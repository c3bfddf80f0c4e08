/*
Package mirror bridges a reactive DataSet to a persistent DataStore.

The dataset core performs no I/O of its own. A Mirror subscribes to the
dataset like any other listener, diffs consecutive snapshots, and pushes
the resulting Put and Delete calls into a DataStore. Hydrate performs the
reverse direction once at startup:

	ds := dataset.New[Landmark]()
	if err := mirror.Hydrate(ctx, ds, store); err != nil {
	    return err
	}
	m := mirror.Attach(ctx, ds, store)
	defer m.Close()

Persistence failures are logged and retained for inspection via Err; they
are never propagated into the dataset mutation that triggered the write.
*/
package mirror
