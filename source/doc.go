/*
Package source feeds a DataSet from a remote HTTP endpoint.

The REST backend supplies raw records; the Loader projects each JSON
payload into entities and applies the whole payload as a single batch, so
renderers subscribed to the dataset observe one notification per refresh:

	loader := source.NewLoader[Landmark](cfg.Source.URL, ds)
	go loader.Poll(ctx, cfg.Source.PollInterval)
*/
package source
