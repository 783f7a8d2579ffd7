package twilio

// Play plays an audio file at the given URL to the caller. Defaults:
// loop 1. A truthy pause option switches to the loop-with-pause expansion.
func (v *Verb) Play(args ...Arg) (string, error) {
	url, opts, err := normalize("play", args, Options{"loop": 1})
	if err != nil {
		return v.fail(err)
	}
	if truthy(opts["pause"]) {
		return v.appendLooped("Play", opts, url)
	}
	return v.append(elem("Play", opts, url))
}
