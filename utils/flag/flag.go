/*
flag package sets up cli flags shared across services.

Usage:

	Flags listed in this package are shared across boundaries and
	service-agnostic. For service dependent flags please define in their
	respective package.
*/
package flag

import (
	"flag"
)

var (
	// IsDevelopment skips production-only behavior such as JSON logging.
	IsDevelopment = flag.Bool("dev", true, "set to true if the current run is for development. default value is true")

	// ServiceName tags log entries with the emitting service.
	ServiceName = flag.String("service", "api_server", "name of the running service")

	// Port is the listen port of the HTTP server.
	Port = flag.String("port", "8080", "listen port of the api server")
)

// Parse parses the command line. Call once from main before any flag value
// is read; tests rely on the defaults instead.
func Parse() {
	flag.Parse()
}
