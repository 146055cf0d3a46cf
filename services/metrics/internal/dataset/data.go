package dataset

func float64Ptr(v float64) *float64 { return &v }

// OverviewData returns the overview page dataset.
func OverviewData() Overview {
	return Overview{
		KPIs: []KPI{
			{Title: "Customer Sentiment", Value: "94.2%", Subtitle: "from last month", Trend: 5.2},
			{Title: "Avg Response Time", Value: "2.3min", Subtitle: "faster than target", Trend: 12.5},
			{Title: "Tickets Resolved", Value: "432", Subtitle: "this week", Trend: 8.1},
			{Title: "Active Customers", Value: "2,847", Subtitle: "engaging this month", Trend: 3.4},
		},
		SentimentTrend: []SentimentMonth{
			{Month: "Jan", Positive: 85, Neutral: 68, Negative: 25},
			{Month: "Feb", Positive: 88, Neutral: 72, Negative: 22},
			{Month: "Mar", Positive: 92, Neutral: 75, Negative: 18},
			{Month: "Apr", Positive: 89, Neutral: 78, Negative: 20},
			{Month: "May", Positive: 94, Neutral: 82, Negative: 15},
			{Month: "Jun", Positive: 96, Neutral: 85, Negative: 12},
		},
		TicketStatus: []TicketStatus{
			{Name: "Resolved", Value: 432},
			{Name: "In Progress", Value: 89},
			{Name: "Escalated", Value: 23},
		},
	}
}

// AnalyticsData returns the analytics page dataset.
func AnalyticsData() Analytics {
	return Analytics{
		Metrics: []Metric{
			{Title: "Resolution Rate", Value: "96%", Change: "+8%"},
			{Title: "Avg Response Time", Value: "1.8min", Change: "-15s"},
			{Title: "Customer Satisfaction", Value: "4.8/5", Change: "+0.3"},
			{Title: "AI Efficiency", Value: "94%", Change: "+12%"},
		},
		Performance: []PerformanceMonth{
			{Month: "Jan", ResolutionRate: 85, AvgResponseTime: 3.2, CustomerSatisfaction: 4.1},
			{Month: "Feb", ResolutionRate: 88, AvgResponseTime: 2.9, CustomerSatisfaction: 4.3},
			{Month: "Mar", ResolutionRate: 92, AvgResponseTime: 2.4, CustomerSatisfaction: 4.5},
			{Month: "Apr", ResolutionRate: 89, AvgResponseTime: 2.7, CustomerSatisfaction: 4.2},
			{Month: "May", ResolutionRate: 94, AvgResponseTime: 2.1, CustomerSatisfaction: 4.6},
			{Month: "Jun", ResolutionRate: 96, AvgResponseTime: 1.8, CustomerSatisfaction: 4.8},
		},
		Channels: []ChannelVolume{
			{Channel: "Live Chat", Tickets: 432, Satisfaction: 4.7},
			{Channel: "Email", Tickets: 289, Satisfaction: 4.3},
			{Channel: "Social Media", Tickets: 156, Satisfaction: 4.5},
			{Channel: "Phone", Tickets: 98, Satisfaction: 4.4},
		},
		SentimentTrend: []SentimentPoint{
			{Date: "2024-01-01", Positive: 82, Neutral: 65, Negative: 23},
			{Date: "2024-01-15", Positive: 85, Neutral: 68, Negative: 20},
			{Date: "2024-02-01", Positive: 88, Neutral: 72, Negative: 18},
			{Date: "2024-02-15", Positive: 91, Neutral: 75, Negative: 15},
			{Date: "2024-03-01", Positive: 94, Neutral: 78, Negative: 12},
			{Date: "2024-03-15", Positive: 96, Neutral: 82, Negative: 10},
		},
		AgentEfficiency: []AgentEfficiency{
			{Agent: "AI Agent", Handled: 1250, AvgTime: "1.2 min", Satisfaction: 4.8},
			{Agent: "Sarah Chen", Handled: 89, AvgTime: "4.5 min", Satisfaction: 4.6},
			{Agent: "Mike Johnson", Handled: 76, AvgTime: "5.2 min", Satisfaction: 4.4},
			{Agent: "Emma Wilson", Handled: 68, AvgTime: "4.8 min", Satisfaction: 4.5},
		},
	}
}

// FeedbackData returns the feedback page dataset.
func FeedbackData() Feedback {
	return Feedback{
		Distribution: []FeedbackSlice{
			{Name: "Positive", Value: 68},
			{Name: "Neutral", Value: 24},
			{Name: "Negative", Value: 8},
		},
		SatisfactionTrend: []SatisfactionMonth{
			{Month: "Jan", Score: 4.2, Responses: 234},
			{Month: "Feb", Score: 4.3, Responses: 267},
			{Month: "Mar", Score: 4.5, Responses: 298},
			{Month: "Apr", Score: 4.4, Responses: 312},
			{Month: "May", Score: 4.6, Responses: 345},
			{Month: "Jun", Score: 4.8, Responses: 389},
		},
		ChannelFeedback: []ChannelRating{
			{Channel: "Live Chat", Rating: 4.8, Responses: 234},
			{Channel: "Email", Rating: 4.6, Responses: 189},
			{Channel: "Social Media", Rating: 4.7, Responses: 156},
			{Channel: "Phone", Rating: 4.5, Responses: 98},
		},
		Recent: []FeedbackEntry{
			{ID: 1, Customer: "Sarah Chen", Rating: 5, Comment: "Amazing support! The AI understood my problem immediately and provided exactly what I needed.", Channel: "Live Chat", Time: "2 hours ago", Category: "Technical Support", Sentiment: "positive"},
			{ID: 2, Customer: "Mike Johnson", Rating: 4, Comment: "Good service, though it took a while to get to a human agent when needed.", Channel: "Email", Time: "4 hours ago", Category: "Account Issues", Sentiment: "positive"},
			{ID: 3, Customer: "Emma Wilson", Rating: 5, Comment: "Impressed by how quickly the AI resolved my billing question. Very efficient!", Channel: "Live Chat", Time: "6 hours ago", Category: "Billing", Sentiment: "positive"},
			{ID: 4, Customer: "David Brown", Rating: 3, Comment: "The AI was helpful but I needed more detailed technical information.", Channel: "Phone", Time: "8 hours ago", Category: "Technical Support", Sentiment: "neutral"},
			{ID: 5, Customer: "Lisa Garcia", Rating: 2, Comment: "Had to repeat myself several times before getting the right answer.", Channel: "Email", Time: "10 hours ago", Category: "Product Questions", Sentiment: "negative"},
		},
	}
}

// KnowledgeData returns the knowledge-base page dataset, without any
// imported articles; the app layer merges those in.
func KnowledgeData() Knowledge {
	return Knowledge{
		Categories: []KnowledgeCategory{
			{Name: "Billing & Payments", Articles: 47, Searches: 234},
			{Name: "Technical Support", Articles: 62, Searches: 189},
			{Name: "Account Management", Articles: 28, Searches: 156},
			{Name: "Product Features", Articles: 91, Searches: 298},
			{Name: "Shipping & Returns", Articles: 35, Searches: 167},
			{Name: "Getting Started", Articles: 19, Searches: 89},
		},
		PopularFAQs: []FAQ{
			{Question: "How do I reset my password?", Category: "Account Management", Views: 1247, AIUses: 89, LastUpdated: "2 days ago", Confidence: 96},
			{Question: "What payment methods do you accept?", Category: "Billing & Payments", Views: 1089, AIUses: 134, LastUpdated: "1 week ago", Confidence: 98},
			{Question: "How do I track my order?", Category: "Shipping & Returns", Views: 956, AIUses: 78, LastUpdated: "3 days ago", Confidence: 94},
			{Question: "Can I upgrade my subscription?", Category: "Billing & Payments", Views: 743, AIUses: 65, LastUpdated: "1 day ago", Confidence: 92},
			{Question: "How do I cancel my account?", Category: "Account Management", Views: 567, AIUses: 43, LastUpdated: "5 days ago", Confidence: 89},
		},
		InstantAnswers: []InstantAnswer{
			{Query: "How to change email address", Answer: "To change your email address: 1) Go to Account Settings, 2) Click 'Edit Profile', 3) Update email field, 4) Verify new email", Sources: 2, Confidence: 94, ResponseTime: "0.3s"},
			{Query: "Refund policy duration", Answer: "We offer a 30-day money-back guarantee on all purchases. Refunds are processed within 5-7 business days.", Sources: 1, Confidence: 98, ResponseTime: "0.2s"},
			{Query: "API rate limits", Answer: "Standard plans include 1000 API calls per hour. Premium plans offer 10,000 calls per hour with burst capacity.", Sources: 3, Confidence: 96, ResponseTime: "0.4s"},
		},
	}
}

// EscalationData returns the escalation page dataset.
func EscalationData() Escalation {
	return Escalation{
		Steps: []EscalationStep{
			{ID: 1, Title: "AI Initial Response", Description: "Empathy-driven AI provides immediate support", Duration: "< 30 seconds", Status: "active", Success: 85},
			{ID: 2, Title: "Complexity Analysis", Description: "AI evaluates if issue requires human intervention", Duration: "< 10 seconds", Status: "processing", Success: 92},
			{ID: 3, Title: "Smart Routing", Description: "Routes to specialized agent based on issue type", Duration: "< 5 seconds", Status: "pending", Success: 98},
			{ID: 4, Title: "Human Takeover", Description: "Specialist agent receives full context and history", Duration: "< 1 minute", Status: "waiting", Success: 96},
		},
		Triggers: []EscalationTrigger{
			{Trigger: "Customer frustration detected", Weight: "High"},
			{Trigger: "Complex technical issue", Weight: "Medium"},
			{Trigger: "Account security concerns", Weight: "High"},
			{Trigger: "Billing disputes > $100", Weight: "Medium"},
			{Trigger: "Multiple failed AI attempts", Weight: "Low"},
			{Trigger: "VIP customer request", Weight: "High"},
		},
		Recent: []EscalationCase{
			{ID: "ESC-001", Customer: "Sarah Johnson", Issue: "Payment processing error", AIAttempts: 2, EscalatedTo: "Technical Specialist", TimeToEscalation: "3m 24s", Status: "resolved", Satisfaction: float64Ptr(4.8)},
			{ID: "ESC-002", Customer: "Mike Chen", Issue: "Account access locked", AIAttempts: 1, EscalatedTo: "Security Team", TimeToEscalation: "1m 12s", Status: "in-progress", Satisfaction: nil},
			{ID: "ESC-003", Customer: "Emma Wilson", Issue: "Billing discrepancy", AIAttempts: 3, EscalatedTo: "Billing Specialist", TimeToEscalation: "5m 45s", Status: "resolved", Satisfaction: float64Ptr(4.6)},
		},
	}
}

// ChannelsData returns the multi-channel page dataset.
func ChannelsData() Channels {
	return Channels{
		Channels: []Channel{
			{Name: "Live Chat", Status: "active", Tickets: 432, AvgResponse: "1.2min", Satisfaction: 4.8, Growth: "+12%"},
			{Name: "Email Support", Status: "active", Tickets: 289, AvgResponse: "2.4min", Satisfaction: 4.6, Growth: "+8%"},
			{Name: "Social Media", Status: "active", Tickets: 156, AvgResponse: "45s", Satisfaction: 4.7, Growth: "+15%"},
			{Name: "Phone Support", Status: "limited", Tickets: 98, AvgResponse: "3.1min", Satisfaction: 4.5, Growth: "+3%"},
		},
		RecentActivity: []ChannelActivity{
			{Channel: "Chat", Customer: "Alice Johnson", Message: "Need help with my recent order", Time: "2 min ago", Status: "ai-handling", Sentiment: "neutral"},
			{Channel: "Email", Customer: "Bob Smith", Message: "Billing question about subscription", Time: "5 min ago", Status: "escalated", Sentiment: "confused"},
			{Channel: "Twitter", Customer: "@customer123", Message: "Great service, thanks for the quick help!", Time: "8 min ago", Status: "resolved", Sentiment: "positive"},
			{Channel: "Chat", Customer: "Carol Williams", Message: "This is frustrating, third time contacting", Time: "12 min ago", Status: "escalated", Sentiment: "frustrated"},
		},
		Integrations: []Integration{
			{Name: "Slack", Status: "connected", LastSync: "2 min ago"},
			{Name: "Discord", Status: "connected", LastSync: "5 min ago"},
			{Name: "WhatsApp", Status: "pending", LastSync: "Never"},
			{Name: "Facebook Messenger", Status: "connected", LastSync: "1 min ago"},
			{Name: "Instagram DMs", Status: "connected", LastSync: "3 min ago"},
			{Name: "Telegram", Status: "disconnected", LastSync: "2 days ago"},
		},
	}
}

// NotificationsData returns the notifications page dataset.
func NotificationsData() Notifications {
	return Notifications{
		Notifications: []Notification{
			{ID: 1, Type: "escalation", Title: "High Priority Escalation", Message: "Customer Sarah Johnson requires immediate attention for billing dispute", Time: "2 minutes ago", Priority: "high", Read: false, Customer: "Sarah Johnson", TicketID: "TKT-2024-001"},
			{ID: 2, Type: "sentiment", Title: "Negative Sentiment Detected", Message: "AI detected frustrated customer in chat conversation", Time: "5 minutes ago", Priority: "medium", Read: false, Customer: "Mike Chen", TicketID: "TKT-2024-002"},
			{ID: 3, Type: "resolution", Title: "Ticket Resolved Successfully", Message: "AI successfully resolved customer inquiry about product features", Time: "8 minutes ago", Priority: "low", Read: true, Customer: "Emma Wilson", TicketID: "TKT-2024-003"},
			{ID: 4, Type: "threshold", Title: "Response Time Threshold", Message: "Response time exceeded 3 minutes for ongoing conversation", Time: "12 minutes ago", Priority: "medium", Read: false, Customer: "David Brown", TicketID: "TKT-2024-004"},
			{ID: 5, Type: "feedback", Title: "Positive Customer Feedback", Message: "Customer rated support interaction 5/5 stars", Time: "15 minutes ago", Priority: "low", Read: true, Customer: "Alice Green", TicketID: "TKT-2024-005"},
		},
		AlertTypes: []AlertType{
			{Type: "escalation", Name: "Escalation Alerts", Description: "When tickets are escalated to human agents", Count: 23, Enabled: true},
			{Type: "sentiment", Name: "Sentiment Warnings", Description: "Negative customer emotions detected", Count: 12, Enabled: true},
			{Type: "threshold", Name: "Performance Thresholds", Description: "Response time or resolution targets exceeded", Count: 8, Enabled: true},
			{Type: "feedback", Name: "Customer Feedback", Description: "Positive and negative customer ratings", Count: 45, Enabled: false},
		},
	}
}

// EmpathyData returns the empathy demo page dataset.
func EmpathyData() Empathy {
	return Empathy{
		Examples: []EmpathyExample{
			{ID: 1, Customer: "Frustrated Customer", Message: "This is the third time I'm contacting you about my order! It's been 2 weeks and still nothing!", Sentiment: "angry", AIResponse: "I completely understand your frustration, and I sincerely apologize for the delay with your order. Having to reach out multiple times must be incredibly frustrating. Let me personally ensure we resolve this immediately and provide you with a tracking update within the next hour.", EmpathyScore: 92, Tone: "Apologetic & Proactive"},
			{ID: 2, Customer: "Confused User", Message: "I don't understand how to use this new feature. The interface is confusing and I'm lost.", Sentiment: "confused", AIResponse: "I can see how the new interface might feel overwhelming at first - you're definitely not alone in feeling this way. Let me walk you through it step by step with some simple screenshots to make it much clearer for you.", EmpathyScore: 88, Tone: "Reassuring & Patient"},
			{ID: 3, Customer: "Happy Customer", Message: "Just wanted to say thanks for the amazing support! You guys are the best!", Sentiment: "positive", AIResponse: "Your kind words absolutely made our day! It's wonderful to hear that we've been able to help you successfully. Thank you for taking the time to share this feedback - it means the world to our team!", EmpathyScore: 95, Tone: "Grateful & Warm"},
		},
	}
}
