package mock

import (
	"net"

	"github.com/miekg/dns"
)

// ResponseWriter is a dns.ResponseWriter which saves every message written so a
// dns.Handler can be exercised without a network. Zone transfers write more than one
// message, hence the slice.
type ResponseWriter struct {
	Local, Remote net.Addr // Defaults are used if nil
	msgs          []*dns.Msg
}

func (t *ResponseWriter) Reset() {
	t.msgs = nil
}

// Get returns the last response, if any, then clears all responses.
func (t *ResponseWriter) Get() *dns.Msg {
	if len(t.msgs) == 0 {
		return nil
	}
	m := t.msgs[len(t.msgs)-1]
	t.msgs = nil

	return m
}

// All returns every response written since the last Reset or Get.
func (t *ResponseWriter) All() []*dns.Msg {
	return t.msgs
}

func (t *ResponseWriter) LocalAddr() net.Addr {
	if t.Local == nil {
		return NewNetAddr("tcp", "127.0.0.1:53")
	}
	return t.Local
}

func (t *ResponseWriter) RemoteAddr() net.Addr {
	if t.Remote == nil {
		return NewNetAddr("tcp", "127.0.0.2:5353")
	}
	return t.Remote
}

func (t *ResponseWriter) WriteMsg(m *dns.Msg) error {
	t.msgs = append(t.msgs, m)

	return nil
}

func (t *ResponseWriter) Write(b []byte) (int, error) {
	panic("Don't expect Write() to be called")
}

func (t *ResponseWriter) Close() error        { return nil }
func (t *ResponseWriter) TsigStatus() error   { return nil }
func (t *ResponseWriter) TsigTimersOnly(bool) {}
func (t *ResponseWriter) Hijack()             {}
