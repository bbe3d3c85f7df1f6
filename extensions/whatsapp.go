package extensions

import (
	"fmt"
	"net/url"
	"strings"
)

// follow-up message templates by preferred language; %s slots are
// lead name and crop
var followUpTemplates = map[string]string{
	"en": "Hello %s, this is the Kotlang team. We would like to discuss your %s supply. Please reply here or call us back.",
	"hi": "नमस्ते %s, यह Kotlang टीम है। हम आपकी %s आपूर्ति के बारे में बात करना चाहते हैं। कृपया यहाँ उत्तर दें या हमें कॉल करें।",
	"te": "నమస్కారం %s, ఇది Kotlang బృందం. మీ %s సరఫరా గురించి మాట్లాడాలనుకుంటున్నాము. దయచేసి ఇక్కడ స్పందించండి లేదా మాకు కాల్ చేయండి.",
}

// FollowUpMessage renders the follow-up text for a lead in the requested
// language, falling back to English.
func FollowUpMessage(name, crop, language string) string {
	template, ok := followUpTemplates[strings.ToLower(language)]
	if !ok {
		template = followUpTemplates["en"]
	}
	return fmt.Sprintf(template, name, crop)
}

// BuildShareLink builds a wa.me link that opens a chat with the phone number
// and the message pre-filled. Ten-digit numbers get the country code.
func BuildShareLink(phoneNumber, message string) string {
	phoneNumber = strings.TrimPrefix(strings.TrimSpace(phoneNumber), "+")
	if len(phoneNumber) == 10 {
		phoneNumber = "91" + phoneNumber
	}

	link := "https://wa.me/" + phoneNumber
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}
