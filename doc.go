// Package dotconf wires a dot-addressed configuration store into an Fx application.
//
// The store itself lives in the config package; this package supplies the application
// logger, loads the document once at startup and exposes the loaded *config.Store and
// decoded sections to other Fx modules.
//
//	app := dotconf.NewApp(
//	    dotconf.WithLogLevel("info"),
//	    dotconf.WithStore("/etc/gateway/sources.conf"),
//	    dotconf.WithSection(new(ServerConfig), "server"),
//	    dotconf.WithModules(serviceModule),
//	)
//	app.Run()
package dotconf
