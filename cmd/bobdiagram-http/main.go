// Command bobdiagram-http runs the HTTP collaborator standalone.
package main

import (
	"log"
	"net/http"

	"github.com/asciigeom/bobdiagram/internal/httpapi"
)

func main() {
	addr := ":" + httpapi.Port()
	log.Printf("bobdiagram-http listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, httpapi.Handler()))
}
