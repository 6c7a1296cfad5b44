package twilio

import (
	"github.com/twilio/twilio-go/twiml"
)

// Spoken locale and synthetic voice for every document this service returns.
const (
	Language  = "hu-HU"
	VoiceName = "Polly.Bianca"
)

const (
	greetingMessage = "Üdvözlöm a Mosoly Dental recepcióján. Kérem, mondja el, hogy milyen napra és időpontra szeretne foglalni."
	noInputMessage  = "Sajnálom, nem értettem. Viszont hallásra."
)

// GatherPrompt renders the initial TwiML document: greet the caller in
// Hungarian, gather speech with automatic end-of-speech detection, and post
// the transcription to callbackURL. The trailing Say covers the no-input
// case. An empty callbackURL omits the action attribute; the document is
// still well-formed, Twilio just has nowhere to post.
func GatherPrompt(callbackURL string) (string, error) {
	greeting := twiml.VoiceSay{
		Message:  greetingMessage,
		Language: Language,
	}

	gather := twiml.VoiceGather{
		Input:         "speech",
		Language:      Language,
		Action:        callbackURL,
		Method:        "POST",
		SpeechTimeout: "auto",
		InnerElements: []twiml.Element{greeting},
	}

	noInput := twiml.VoiceSay{
		Message:  noInputMessage,
		Language: Language,
	}

	return twiml.Voice([]twiml.Element{gather, noInput})
}

// SpeakReply renders the follow-up TwiML document: speak the given text and
// let the call end. The text originates from an external generative service,
// so it is emitted as character data and XML-escaped by the serializer,
// never interpreted as markup.
func SpeakReply(text string) (string, error) {
	say := twiml.VoiceSay{
		Message:  text,
		Language: Language,
		Voice:    VoiceName,
	}

	return twiml.Voice([]twiml.Element{say})
}
