package twilio

// Redirect transfers control of the call to the TwiML at another URL. The
// URL is the Text payload (empty when omitted); options become attributes
// verbatim.
func (v *Verb) Redirect(args ...Arg) (string, error) {
	url, opts, err := normalize("redirect", args, nil)
	if err != nil {
		return v.fail(err)
	}
	return v.append(elem("Redirect", opts, url))
}
