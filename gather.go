package twilio

// Gather collects digits the caller presses on the keypad. The options map
// becomes the element's attributes verbatim; nil means no attributes.
func (v *Verb) Gather(opts Options) (string, error) {
	return v.append(elem("Gather", opts, ""))
}
