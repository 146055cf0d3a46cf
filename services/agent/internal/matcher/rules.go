package matcher

import "pacifisai/pkg/domain"

// rules is scanned top to bottom; the first rule with any keyword present in
// the input wins, so the table order is load-bearing. Reordering entries
// changes which reply inputs like "refund for my broken order" receive.
var rules = []rule{
	{
		keywords:  []string{"hello", "hi", "hey"},
		sentiment: domain.SentimentPositive,
		latency:   0.3,
		reply:     "Hello! I'm your PacifisAI assistant. I'm here to help you with any questions or concerns you might have. How can I assist you today?",
	},
	{
		keywords:  []string{"order", "purchase", "buy"},
		sentiment: domain.SentimentPositive,
		latency:   0.5,
		reply:     "I'd be happy to help you with your order! Could you please provide me with your order number or the email address associated with your purchase? I'll look up the details for you right away.",
	},
	{
		keywords:  []string{"problem", "issue", "broken", "error", "wrong"},
		sentiment: domain.SentimentNeutral,
		latency:   0.4,
		reply:     "I understand you're experiencing an issue, and I want to help resolve this as quickly as possible. Could you please describe what's happening in more detail? I'm here to make sure we get this sorted out for you.",
	},
	{
		keywords:  []string{"refund", "money back", "return"},
		sentiment: domain.SentimentNeutral,
		latency:   0.6,
		reply:     "I completely understand your concern about getting a refund. Let me help you with the return process. First, I'll need to check your order details. Could you provide your order number? I'll make sure we handle this promptly.",
	},
	{
		keywords:  []string{"angry", "frustrated", "terrible", "awful", "worst"},
		sentiment: domain.SentimentNegative,
		latency:   0.3,
		reply:     "I sincerely apologize for the frustration you're experiencing. Your concerns are completely valid, and I want to make this right for you immediately. Let me escalate this to ensure you get the resolution you deserve.",
	},
	{
		keywords:  []string{"thank", "thanks", "great", "awesome", "excellent"},
		sentiment: domain.SentimentPositive,
		latency:   0.2,
		reply:     "Thank you so much for your kind words! It's wonderful to hear that we've been able to help you successfully. Your feedback truly means a lot to us. Is there anything else I can assist you with today?",
	},
}

// defaultResponse is returned when no rule matches.
var defaultResponse = Response{
	Reply:          "I understand what you're asking, and I want to make sure I give you the most accurate information. Let me connect you with one of our specialists who can provide detailed assistance with your specific question.",
	Sentiment:      domain.SentimentNeutral,
	LatencySeconds: 0.4,
}

// Greeting is the assistant turn that opens every conversation.
var Greeting = Response{
	Reply:          "👋 Hello! I'm your PacifisAI customer support assistant. I'm here to help you with any questions, concerns, or issues you might have. How can I assist you today?",
	Sentiment:      domain.SentimentPositive,
	LatencySeconds: 0.1,
}
