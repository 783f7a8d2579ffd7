package twilio

import (
	"encoding/xml"
	"sort"

	"github.com/spf13/cast"
)

// Arg is one argument to a mixed-argument verb (Say, Play, Dial, Redirect).
// The two shapes are Text and Options.
type Arg interface {
	verbArg()
}

// Text is a verb's primary payload: the sentence to speak, an audio URL,
// a phone number or a redirect target. When several Text arguments are
// given, the last one wins.
type Text string

func (Text) verbArg() {}

// Options supplies named attributes for a verb. When several Options
// arguments are given, later maps shallow-merge over earlier ones.
type Options map[string]interface{}

func (Options) verbArg() {}

// normalize classifies the arguments of a mixed-argument verb: the last Text
// becomes the payload, Options merge left to right over the verb's defaults.
// Anything else is rejected with an InvalidArgumentError naming the verb.
func normalize(verb string, args []Arg, defaults Options) (string, Options, error) {
	text := ""
	opts := Options{}
	for k, val := range defaults {
		opts[k] = val
	}
	for _, arg := range args {
		switch a := arg.(type) {
		case Text:
			text = string(a)
		case Options:
			for k, val := range a {
				opts[k] = val
			}
		default:
			return "", nil, &InvalidArgumentError{Verb: verb}
		}
	}
	return text, opts, nil
}

// attrs converts the option map to XML attributes in sorted key order, so
// rendering the same verb sequence twice is byte-identical.
func (o Options) attrs() []xml.Attr {
	if len(o) == 0 {
		return nil
	}
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	attrs := make([]xml.Attr, len(keys))
	for i, k := range keys {
		attrs[i] = xml.Attr{Name: xml.Name{Local: k}, Value: cast.ToString(o[k])}
	}
	return attrs
}

func (o Options) without(keys ...string) Options {
	out := Options{}
	for k, val := range o {
		out[k] = val
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// truthy follows the original dialect: only nil and false disable the flag.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	default:
		return true
	}
}

// loopCount reads the loop option as an integer; non-numeric values coerce
// to zero, which the expansion path renders as no elements at all.
func loopCount(opts Options) int {
	return cast.ToInt(opts["loop"])
}
