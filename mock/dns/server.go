package dns

import (
	"github.com/miekg/dns"
)

// StartServer is a clone of the usual code to start up a miekg DNS server. It does not
// return until the server is listening. Callers must Shutdown() the returned server.
func StartServer(net, serverAddr string, h dns.Handler) *dns.Server {
	srv := &dns.Server{Net: net, Addr: serverAddr, Handler: h}
	hasStarted := make(chan struct{})
	srv.NotifyStartedFunc = func() {
		close(hasStarted)
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil { // Shutdown or real error?
			panic("Setup of Server failed:" + err.Error())
		}
	}()

	<-hasStarted

	return srv
}
