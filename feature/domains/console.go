package domains

import (
	"fmt"
	"io"
	"sync"

	"domain-checker/core/probe"
	"domain-checker/core/reconcile"
)

// ConsoleObserver prints one line per processed cell:
//
//	[REGISTERED] example.com
//	[NOT REGISTERED] example.net
//	[ERROR CHECKING] example.org: i/o timeout
func ConsoleObserver(w io.Writer) reconcile.Observer {
	var mu sync.Mutex
	return reconcile.ObserverFunc(func(o reconcile.Observation) {
		mu.Lock()
		defer mu.Unlock()

		switch {
		case o.Err != nil:
			fmt.Fprintf(w, "[ERROR CHECKING] %s: %v\n", o.Name, o.Err)
		case o.Outcome == probe.OutcomeRegistered:
			fmt.Fprintf(w, "[REGISTERED] %s\n", o.Name)
		case o.Outcome == probe.OutcomeAvailable:
			fmt.Fprintf(w, "[NOT REGISTERED] %s\n", o.Name)
		}
	})
}
