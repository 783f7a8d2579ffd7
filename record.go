package twilio

// Record records the caller's voice. The options map becomes the element's
// attributes verbatim; nil means no attributes.
func (v *Verb) Record(opts Options) (string, error) {
	return v.append(elem("Record", opts, ""))
}
