// Package loader mounts features on the HTTP server.
//
// A feature owns a group of routes and decides for itself whether it is
// enabled; the origin feature, for instance, is off when no origin service
// could be built. The serve command registers every feature with a Manager
// and calls LoadAll once, after the global middleware is in place:
//
//	mgr := loader.NewManager()
//	mgr.Register(origin.NewFeature(originSvc))
//	mgr.Register(integrity.NewFeature(integritySvc))
//	loaded, err := mgr.LoadAll(app)
//
// Features load in registration order and loading stops at the first error.
package loader
