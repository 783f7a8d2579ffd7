package twilio

// Dial connects the caller to another phone number. The number is the Text
// payload (empty when omitted); options become attributes verbatim.
func (v *Verb) Dial(args ...Arg) (string, error) {
	number, opts, err := normalize("dial", args, nil)
	if err != nil {
		return v.fail(err)
	}
	return v.append(elem("Dial", opts, number))
}
