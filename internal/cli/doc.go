// Package cli implements the restviews command line: serving the demo site,
// dumping the effective site settings and printing build information.
//
// Every command shares the persistent configuration flags registered by
// [config.BindFlags]; values resolve through the same defaults, env, flags
// and JSON layering as the server.
package cli
