package twilio

// Say reads text to the caller. Defaults: voice "man", language "en",
// loop 1. A truthy pause option switches to the loop-with-pause expansion,
// repeating the sentence with a Pause between repetitions.
func (v *Verb) Say(args ...Arg) (string, error) {
	text, opts, err := normalize("say", args, Options{"voice": "man", "language": "en", "loop": 1})
	if err != nil {
		return v.fail(err)
	}
	if truthy(opts["pause"]) {
		return v.appendLooped("Say", opts, text)
	}
	return v.append(elem("Say", opts, text))
}
