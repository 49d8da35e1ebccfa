package extract

import "github.com/abadojack/whatlanggo"

// iso 639-3 codes for the languages the frontend offers
var langNames = map[string]string{
	"eng": "English",
	"hin": "Hindi",
	"mar": "Marathi",
	"tam": "Tamil",
	"tel": "Telugu",
	"ben": "Bengali",
	"guj": "Gujarati",
	"kan": "Kannada",
	"mal": "Malayalam",
	"pan": "Punjabi",
}

// DetectLanguage samples the first 500 chars and maps the detected code to a
// display name. Short or unrecognized input defaults to English.
func DetectLanguage(text string) string {
	if len(text) < 10 {
		return "English"
	}
	sample := text
	if len(sample) > 500 {
		sample = sample[:500]
	}

	info := whatlanggo.Detect(sample)
	if name, ok := langNames[whatlanggo.LangToString(info.Lang)]; ok {
		return name
	}
	return "English"
}
