package server

import (
	"context"
	"net/http"

	json "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	preamble "github.com/shapestone/shape-preamble/pkg/http"
)

// Summary is the JSON body of an echo reply.
type Summary struct {
	Method  string            `json:"method"`
	Target  string            `json:"target"`
	Version string            `json:"version"`
	Headers []preamble.Header `json:"headers"`
	Length  int               `json:"length"`
	Params  map[string]string `json:"params,omitempty"`
}

type preambleKey struct{}

type parsed struct {
	owned  *preamble.OwnedRequest
	length int
}

// withPreamble attaches the ordered preamble to the request context. net/http
// headers are a map and lose field order.
func withPreamble(r *http.Request, owned *preamble.OwnedRequest, length int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), preambleKey{}, parsed{owned, length}))
}

// PreambleFrom returns the parsed preamble of a request served by a Session.
func PreambleFrom(r *http.Request) (*preamble.OwnedRequest, int, bool) {
	p, ok := r.Context().Value(preambleKey{}).(parsed)
	return p.owned, p.length, ok
}

// NewRouter returns the default route table: GET / plus GET and POST on
// /echo and /echo/:name.
func NewRouter() *httprouter.Router {
	router := httprouter.New()
	router.GET("/", index)
	router.GET("/echo", echo)
	router.POST("/echo", echo)
	router.GET("/echo/:name", echo)
	return router
}

func index(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("shape-preamble demo server\n"))
}

func echo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	owned, length, ok := PreambleFrom(r)
	if !ok {
		http.Error(w, "no preamble", http.StatusInternalServerError)
		return
	}

	summary := Summary{
		Method:  owned.Method,
		Target:  owned.Target,
		Version: owned.Version,
		Headers: owned.Headers,
		Length:  length,
	}
	if len(ps) > 0 {
		summary.Params = make(map[string]string, len(ps))
		for _, p := range ps {
			summary.Params[p.Key] = p.Value
		}
	}

	body, err := json.Marshal(summary)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
