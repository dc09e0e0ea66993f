package nyaya

import "github.com/nyaya-ai/nyaya/model"

// Confidence scores for the short-circuit paths. These bypass the estimator
// because no retrieval or synthesis happens.
const (
	greetingConfidence = 0.95
	offTopicConfidence = 0.90
)

// greetingReplies holds the canned response per greeting sub-category
var greetingReplies = map[model.GreetingCategory]string{
	model.GreetingHello:     "Hello! I'm your legal assistant specializing in Indian cybercrime law and legal matters. How can I help you today?",
	model.GreetingMorning:   "Good morning! I'm here to help you with legal questions, particularly related to cybercrime law. What would you like to know?",
	model.GreetingAfternoon: "Good afternoon! I'm your legal assistant. Feel free to ask me any questions about cybercrime law or legal procedures.",
	model.GreetingEvening:   "Good evening! I'm here to assist you with legal questions. How may I help you?",
	model.GreetingHowAreYou: "I'm functioning well, thank you! I'm ready to help you with legal questions, especially regarding cybercrime law and procedures. What can I assist you with?",
	model.GreetingThanks:    "You're welcome! Feel free to ask if you have any more questions.",
	model.GreetingBye:       "Goodbye! Don't hesitate to return if you need legal assistance in the future.",
	model.GreetingDefault:   "Hello! I'm your legal assistant. I can help you with questions about cybercrime law, legal procedures, and more. What would you like to know?",
}

// offTopicReply is the fixed refusal for queries without any legal vocabulary
const offTopicReply = "I'm a legal assistant focused on Indian law, particularly cybercrime, legal procedures and lawyer referrals. I can't help with that topic, but feel free to ask me any legal question."

// greetingReply returns the canned reply for a greeting sub-category,
// falling back to the default bucket for unknown categories
func greetingReply(category model.GreetingCategory) string {
	if reply, ok := greetingReplies[category]; ok {
		return reply
	}
	return greetingReplies[model.GreetingDefault]
}
