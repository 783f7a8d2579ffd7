package twilio

// Hangup ends the call. No attributes, no content.
func (v *Verb) Hangup() (string, error) {
	return v.append(elem("Hangup", nil, ""))
}
