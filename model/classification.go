package model

// ClassificationKind labels the retrieval-relevant category of a query
type ClassificationKind string

const (
	ClassificationGreeting     ClassificationKind = "greeting"
	ClassificationOffTopic     ClassificationKind = "off_topic"
	ClassificationLawyerLookup ClassificationKind = "lawyer_lookup"
	ClassificationGeneral      ClassificationKind = "general"
)

// GreetingCategory is the sub-category of a greeting, used to pick the canned reply
type GreetingCategory string

const (
	GreetingHello     GreetingCategory = "hello"
	GreetingMorning   GreetingCategory = "good-morning"
	GreetingAfternoon GreetingCategory = "good-afternoon"
	GreetingEvening   GreetingCategory = "good-evening"
	GreetingHowAreYou GreetingCategory = "how-are-you"
	GreetingThanks    GreetingCategory = "thanks"
	GreetingBye       GreetingCategory = "bye"
	GreetingDefault   GreetingCategory = "default"
)

// Classification is the result of classifying a query.
// Greeting is set only for ClassificationGreeting. Specialization is set only
// for ClassificationLawyerLookup and is empty when no practice area matched.
type Classification struct {
	Kind           ClassificationKind `json:"kind"`
	Greeting       GreetingCategory   `json:"greeting,omitempty"`
	Specialization string             `json:"specialization,omitempty"`
}
