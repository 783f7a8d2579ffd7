package twilio

// Pause waits silently before the next verb runs. The options map becomes
// the element's attributes verbatim; nil means no attributes.
func (v *Verb) Pause(opts Options) (string, error) {
	return v.append(elem("Pause", opts, ""))
}
