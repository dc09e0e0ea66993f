package synthesis

import (
	"fmt"
	"strings"
)

// directoryPrompt instructs enumeration of all matching directory entries.
// It deliberately contains no example values so the model cannot echo them
// as fabricated lawyers.
func directoryPrompt(queryText string, conversationContext string, documentContext string, specialization string) string {
	var sb strings.Builder

	sb.WriteString("You are a legal assistant with access to a lawyer directory. ")
	sb.WriteString("Answer the user's request using only the directory entries provided below.\n\n")
	sb.WriteString(fmt.Sprintf("User Question: %s\n\n", queryText))

	if conversationContext != "" {
		sb.WriteString(fmt.Sprintf("Previous Conversation:\n%s\n", conversationContext))
	}

	if specialization != "" {
		sb.WriteString(fmt.Sprintf("Requested practice area: %s Law\n\n", specialization))
	}

	if documentContext != "" {
		sb.WriteString(fmt.Sprintf("Directory Entries:\n%s\n\n", documentContext))
	}

	sb.WriteString(`Instructions:
1. List every matching lawyer from the directory entries, not just the first one
2. For each entry include the name, practice area, experience and contact details that appear in the entries
3. Do not invent lawyers or contact details that are not in the entries
4. If no entries are provided, say that no matching directory entries were found and suggest broadening the search
5. Format as a numbered list

Answer:`)

	return sb.String()
}

// analysisPrompt is the structured legal-analysis template for general
// queries. The model must never claim absence of information; general legal
// knowledge fills gaps when no context is available.
func analysisPrompt(queryText string, conversationContext string, documentContext string) string {
	var sb strings.Builder

	sb.WriteString("You are a legal assistant specializing in Indian law, particularly cybercrime and criminal law. ")
	sb.WriteString("Answer the user's question based on the provided legal documents and conversation history.\n\n")
	sb.WriteString(fmt.Sprintf("User Question: %s\n\n", queryText))

	if conversationContext != "" {
		sb.WriteString(fmt.Sprintf("Previous Conversation:\n%s\n", conversationContext))
	}

	if documentContext != "" {
		sb.WriteString(fmt.Sprintf("Legal Context from Documents:\n%s\n\n", documentContext))
	}

	sb.WriteString(`Instructions:
1. If this is a follow-up question, use the previous conversation to understand the context
2. Provide a clear, structured answer with these sections where applicable:
   - **Summary**: direct answer to the question (Yes/No if applicable)
   - **Applicable Law**: offences and section numbers (IPC, IT Act, BNS)
   - **Your Rights**: rights and legal protections available
   - **Procedural Steps**: how to file a complaint or case
   - **Cost Estimate**: typical costs involved
   - **Timeline**: how long the process usually takes
   - **Key Cautions**: common mistakes to avoid
   - **Immediate Actions**: practical steps to take right now
   - **Contacts**: helplines and portals (cybercrime.gov.in, helpline 1930)
3. Never say you could not find information. When the legal context is empty
   or incomplete, answer from general knowledge of Indian law instead
4. Be comprehensive but concise (aim for 300-500 words)
5. Use practical, actionable language

Answer:`)

	return sb.String()
}
