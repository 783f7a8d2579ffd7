// Package twilio builds TwiML call-control documents with a chainable verb API.
package twilio

import (
	"encoding/xml"
)

type mode int

const (
	// standalone: the Response root is created by the first verb call and
	// every verb method returns the document rendered so far.
	standalone mode = iota
	// chained: the root is created before the callback runs and the
	// document is read once the callback returns.
	chained
)

// Verb builds a single TwiML document. One builder owns one Response tree;
// verb methods append to it in call order and there is no rollback.
type Verb struct {
	mode mode
	resp *response
	err  error
}

// NewVerb returns a builder in standalone mode.
func NewVerb() *Verb {
	return &Verb{mode: standalone}
}

// Respond runs fn with a builder in chained mode and returns the finished
// document. Verbs invoked inside fn append children to one shared Response
// element. If any verb call inside fn fails, Respond returns that error
// instead of a document.
func Respond(fn func(*Verb)) (string, error) {
	v := &Verb{mode: chained, resp: &response{}}
	fn(v)
	return v.Response()
}

// Response renders the current document. A builder with no verbs yields an
// empty Response element.
func (v *Verb) Response() (string, error) {
	if v.err != nil {
		return "", v.err
	}
	resp := v.resp
	if resp == nil {
		resp = &response{}
	}
	body, err := xml.Marshal(resp)
	if err != nil {
		return "", err
	}
	return xml.Header + string(body), nil
}

// append is the single output-wrapping funnel shared by all verb methods:
// create the root if this builder has none yet, then add the produced
// elements as siblings in order.
func (v *Verb) append(elems ...element) (string, error) {
	if v.resp == nil {
		v.resp = &response{}
	}
	v.resp.Verbs = append(v.resp.Verbs, elems...)
	if v.mode == chained {
		return "", nil
	}
	return v.Response()
}

// appendLooped implements the loop-with-pause expansion for Say and Play:
// the element is emitted loop-count times with an empty Pause between
// consecutive repetitions, and the loop/pause options never reach the output.
func (v *Verb) appendLooped(name string, opts Options, text string) (string, error) {
	count := loopCount(opts)
	if count < 0 {
		count = 0
	}
	body := elem(name, opts.without("loop", "pause"), text)
	elems := make([]element, 0, 2*count)
	for i := 0; i < count; i++ {
		if i > 0 {
			elems = append(elems, elem("Pause", nil, ""))
		}
		elems = append(elems, body)
	}
	return v.append(elems...)
}

// fail reports err from the offending verb call. In chained mode the first
// error is also recorded so Respond can surface it.
func (v *Verb) fail(err error) (string, error) {
	if v.mode == chained && v.err == nil {
		v.err = err
	}
	return "", err
}

// response is the root container of a TwiML document.
type response struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []element
}

// element is one verb element: a name, its attributes and an optional text
// payload. Escaping of text and attribute values is left to encoding/xml.
type element struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
}

func elem(name string, opts Options, text string) element {
	return element{
		XMLName: xml.Name{Local: name},
		Attrs:   opts.attrs(),
		Text:    text,
	}
}
