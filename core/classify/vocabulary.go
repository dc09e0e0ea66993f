package classify

import "github.com/nyaya-ai/nyaya/model"

// VocabularyVersion identifies the revision of the lookup tables below.
// Bump it whenever a table changes so consumers can detect classification drift.
const VocabularyVersion = 3

// GreetingRule maps a greeting sub-category to its exact-match phrases.
// Matching is whole-string after trim/lowercase, never substring, so legal
// questions that happen to contain a greeting word pass through.
type GreetingRule struct {
	Category model.GreetingCategory
	Phrases  []string
}

// greetingRules is ordered: more specific phrases first so "good morning"
// resolves to its own category before the default bucket.
var greetingRules = []GreetingRule{
	{Category: model.GreetingMorning, Phrases: []string{"good morning"}},
	{Category: model.GreetingAfternoon, Phrases: []string{"good afternoon"}},
	{Category: model.GreetingEvening, Phrases: []string{"good evening"}},
	{Category: model.GreetingHowAreYou, Phrases: []string{
		"how are you", "whats up", "what's up",
	}},
	{Category: model.GreetingThanks, Phrases: []string{"thank you", "thanks", "thank"}},
	{Category: model.GreetingBye, Phrases: []string{"bye", "goodbye", "see you"}},
	{Category: model.GreetingHello, Phrases: []string{
		"hi", "hello", "hey", "howdy", "hiya",
	}},
	{Category: model.GreetingDefault, Phrases: []string{
		"greetings", "good day", "sup", "yo", "nice to meet you",
		"how do you do", "hows it going", "how's it going",
		"ok", "okay", "yes", "no", "sure", "cool", "great", "awesome",
	}},
}

// legalTerms is the curated legal vocabulary: general terms, statute names
// and procedural words. A query containing none of these and none of the
// code abbreviations is off-topic.
var legalTerms = []string{
	"law", "legal", "section", "act", "court", "police", "complaint",
	"fir", "crime", "criminal", "cyber", "fraud", "harassment", "stalking",
	"hacking", "phishing", "defamation", "blackmail", "extortion",
	"bail", "arrest", "divorce", "marriage", "custody", "maintenance",
	"property", "contract", "consumer", "rights", "penalty", "punishment",
	"offence", "offense", "case", "judge", "justice", "procedure",
	"petition", "notice", "evidence", "jail", "punishable", "sue",
	"lawyer", "advocate", "attorney", "counsel", "tribunal", "appeal",
}

// legalCodeAbbreviations covers the statute abbreviations users type instead
// of full names.
var legalCodeAbbreviations = []string{
	"ipc", "crpc", "cpc", "bns", "bnss", "bsa", "it act", "pocso",
	"ndps", "uapa", "sarfaesi", "rera", "posh",
}

// lawyerTerms triggers the lawyer-directory lookup path
var lawyerTerms = []string{
	"lawyer", "advocate", "attorney", "counsel", "legal professional",
}

// SpecializationRule maps a practice-area label to its detection keywords
type SpecializationRule struct {
	Label    string
	Keywords []string
}

// specializationRules is an ordered mapping; the first rule with a matching
// keyword wins, so more specific practice areas come before broader ones
// (cyber before criminal, consumer protection before civil).
var specializationRules = []SpecializationRule{
	{Label: "Cyber", Keywords: []string{"cyber", "online fraud", "hacking", "it act"}},
	{Label: "Family", Keywords: []string{"family", "divorce", "custody", "marriage", "maintenance"}},
	{Label: "Consumer Protection", Keywords: []string{"consumer"}},
	{Label: "Criminal", Keywords: []string{"criminal", "bail", "fir"}},
	{Label: "Corporate", Keywords: []string{"corporate", "company", "business"}},
	{Label: "Property", Keywords: []string{"property", "land", "real estate", "tenant"}},
	{Label: "Labour", Keywords: []string{"labour", "labor", "employment", "workplace"}},
	{Label: "Tax", Keywords: []string{"tax", "gst", "income tax"}},
	{Label: "Constitutional", Keywords: []string{"constitutional", "fundamental rights", "writ"}},
	{Label: "Immigration", Keywords: []string{"immigration", "visa", "citizenship"}},
	{Label: "Education", Keywords: []string{"education", "school", "university"}},
	{Label: "Civil", Keywords: []string{"civil"}},
}
