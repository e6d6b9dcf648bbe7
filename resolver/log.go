package resolver

import (
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsrecon/dnsutil"
	"github.com/markdingo/dnsrecon/log"
)

// LogLookup logs the results of a Lookup* call. Exported for the mock resolver. Caller
// should test for log.IfDebug() prior to calling.
func LogLookup(op, name string, answers []string, note string, err error) {
	var s [5]string
	s[0] = "res:" + op
	s[1] = name
	if err != nil {
		s[3] = dnsutil.ShortenLookupError(err).Error()
	} else {
		s[2] = strings.Join(answers, ",")
	}
	s[4] = note
	log.Debug(strings.Join(s[:], "#"))
}

// LogExchangeQ logs the question given to miekg. Exported for the mock resolver. Caller
// should test for log.IfDebug() prior to calling.
func LogExchangeQ(net, server string, q dns.Question) {
	log.Debugf("miekg Q:%s:%s q=%s", net, server, dnsutil.PrettyQuestion(q))
}

// LogExchangeA logs the answer returned by miekg. See above.
func LogExchangeA(server string, question dns.Question, r *dns.Msg, err error) {
	if err == nil {
		log.Debug("miekg A:", dnsutil.PrettyMsg1(r))
	} else {
		log.Debugf("miekg E:%s/%s/%s %s",
			server, dnsutil.ChompCanonicalName(question.Name),
			dnsutil.TypeToString(question.Qtype),
			dnsutil.ShortenLookupError(err).Error())
	}
}

// LogTransfer logs the result of an AXFR. Caller should test for log.IfDebug().
func LogTransfer(zone, server string, rrs []dns.RR, note string, err error) {
	if err != nil {
		log.Debugf("res:AXFR#%s#%s##%s#%s", zone, server, err.Error(), note)
		return
	}
	log.Debugf("res:AXFR#%s#%s#%d RRs##%s", zone, server, len(rrs), note)
}
