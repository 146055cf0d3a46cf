// Package dataset holds the curated dashboard datasets served by the
// metrics service. The numbers are the product team's demo corpus; they are
// versioned here as code so every environment renders the same dashboard.
package dataset

// KPI is a headline card on the overview page.
type KPI struct {
	Title    string  `json:"title"`
	Value    string  `json:"value"`
	Subtitle string  `json:"subtitle"`
	Trend    float64 `json:"trend"`
}

// SentimentMonth is one month of sentiment index values.
type SentimentMonth struct {
	Month    string `json:"month"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// TicketStatus is one slice of the ticket status breakdown.
type TicketStatus struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Overview is the overview page payload.
type Overview struct {
	KPIs           []KPI            `json:"kpis"`
	SentimentTrend []SentimentMonth `json:"sentimentTrend"`
	TicketStatus   []TicketStatus   `json:"ticketStatus"`
}

// PerformanceMonth is one month of support performance figures.
type PerformanceMonth struct {
	Month                string  `json:"month"`
	ResolutionRate       int     `json:"resolutionRate"`
	AvgResponseTime      float64 `json:"avgResponseTime"`
	CustomerSatisfaction float64 `json:"customerSatisfaction"`
}

// ChannelVolume is ticket volume and satisfaction per support channel.
type ChannelVolume struct {
	Channel      string  `json:"channel"`
	Tickets      int     `json:"tickets"`
	Satisfaction float64 `json:"satisfaction"`
}

// SentimentPoint is a dated sentiment sample.
type SentimentPoint struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// AgentEfficiency is a per-agent workload summary.
type AgentEfficiency struct {
	Agent        string  `json:"agent"`
	Handled      int     `json:"handled"`
	AvgTime      string  `json:"avgTime"`
	Satisfaction float64 `json:"satisfaction"`
}

// Metric is a headline analytics figure with its period-over-period change.
type Metric struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// Analytics is the analytics page payload.
type Analytics struct {
	Metrics         []Metric           `json:"metrics"`
	Performance     []PerformanceMonth `json:"performance"`
	Channels        []ChannelVolume    `json:"channels"`
	SentimentTrend  []SentimentPoint   `json:"sentimentTrend"`
	AgentEfficiency []AgentEfficiency  `json:"agentEfficiency"`
}

// FeedbackSlice is one slice of the feedback distribution pie.
type FeedbackSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SatisfactionMonth is one month of CSAT survey results.
type SatisfactionMonth struct {
	Month     string  `json:"month"`
	Score     float64 `json:"score"`
	Responses int     `json:"responses"`
}

// ChannelRating is the per-channel feedback summary.
type ChannelRating struct {
	Channel   string  `json:"channel"`
	Rating    float64 `json:"rating"`
	Responses int     `json:"responses"`
}

// FeedbackEntry is one recent customer review.
type FeedbackEntry struct {
	ID        int    `json:"id"`
	Customer  string `json:"customer"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Channel   string `json:"channel"`
	Time      string `json:"time"`
	Category  string `json:"category"`
	Sentiment string `json:"sentiment"`
}

// Feedback is the feedback page payload.
type Feedback struct {
	Distribution      []FeedbackSlice     `json:"distribution"`
	SatisfactionTrend []SatisfactionMonth `json:"satisfactionTrend"`
	ChannelFeedback   []ChannelRating     `json:"channelFeedback"`
	Recent            []FeedbackEntry     `json:"recent"`
}

// KnowledgeCategory is a knowledge-base section with its usage counters.
type KnowledgeCategory struct {
	Name     string `json:"name"`
	Articles int    `json:"articles"`
	Searches int    `json:"searches"`
}

// FAQ is one frequently asked question with AI usage stats.
type FAQ struct {
	Question    string `json:"question"`
	Category    string `json:"category"`
	Views       int    `json:"views"`
	AIUses      int    `json:"aiUses"`
	LastUpdated string `json:"lastUpdated"`
	Confidence  int    `json:"confidence"`
}

// InstantAnswer is a precomputed answer the agent serves verbatim.
type InstantAnswer struct {
	Query        string `json:"query"`
	Answer       string `json:"answer"`
	Sources      int    `json:"sources"`
	Confidence   int    `json:"confidence"`
	ResponseTime string `json:"responseTime"`
}

// ImportedArticle is a knowledge article registered through PDF import.
type ImportedArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Source   string `json:"source"`
	Pages    int    `json:"pages"`
	Excerpt  string `json:"excerpt"`
	Imported string `json:"imported"`
}

// Knowledge is the knowledge-base page payload.
type Knowledge struct {
	Categories       []KnowledgeCategory `json:"categories"`
	PopularFAQs      []FAQ               `json:"popularFAQs"`
	InstantAnswers   []InstantAnswer     `json:"instantAnswers"`
	ImportedArticles []ImportedArticle   `json:"importedArticles"`
}

// EscalationStep is one stage of the escalation pipeline.
type EscalationStep struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Status      string `json:"status"`
	Success     int    `json:"success"`
}

// EscalationTrigger is a condition that routes a ticket to a human.
type EscalationTrigger struct {
	Trigger string `json:"trigger"`
	Weight  string `json:"weight"`
}

// EscalationCase is one recent escalated ticket.
type EscalationCase struct {
	ID               string   `json:"id"`
	Customer         string   `json:"customer"`
	Issue            string   `json:"issue"`
	AIAttempts       int      `json:"aiAttempts"`
	EscalatedTo      string   `json:"escalatedTo"`
	TimeToEscalation string   `json:"timeToEscalation"`
	Status           string   `json:"status"`
	Satisfaction     *float64 `json:"satisfaction"`
}

// Escalation is the escalation page payload.
type Escalation struct {
	Steps    []EscalationStep    `json:"steps"`
	Triggers []EscalationTrigger `json:"triggers"`
	Recent   []EscalationCase    `json:"recent"`
}

// Channel is one support channel with its live stats.
type Channel struct {
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	Tickets      int     `json:"tickets"`
	AvgResponse  string  `json:"avgResponse"`
	Satisfaction float64 `json:"satisfaction"`
	Growth       string  `json:"growth"`
}

// ChannelActivity is one recent cross-channel interaction.
type ChannelActivity struct {
	Channel   string `json:"channel"`
	Customer  string `json:"customer"`
	Message   string `json:"message"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	Sentiment string `json:"sentiment"`
}

// Integration is a third-party messaging integration and its sync state.
type Integration struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	LastSync string `json:"lastSync"`
}

// Channels is the multi-channel page payload.
type Channels struct {
	Channels       []Channel         `json:"channels"`
	RecentActivity []ChannelActivity `json:"recentActivity"`
	Integrations   []Integration     `json:"integrations"`
}

// Notification is one alert feed entry.
type Notification struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Time     string `json:"time"`
	Priority string `json:"priority"`
	Read     bool   `json:"read"`
	Customer string `json:"customer"`
	TicketID string `json:"ticketId"`
}

// AlertType is a notification category with its toggle state.
type AlertType struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Enabled     bool   `json:"enabled"`
}

// Notifications is the notifications page payload.
type Notifications struct {
	Notifications []Notification `json:"notifications"`
	AlertTypes    []AlertType    `json:"alertTypes"`
}

// EmpathyExample is a scripted customer scenario paired with the empathetic
// reply the assistant demos for it.
type EmpathyExample struct {
	ID           int    `json:"id"`
	Customer     string `json:"customer"`
	Message      string `json:"message"`
	Sentiment    string `json:"sentiment"`
	AIResponse   string `json:"aiResponse"`
	EmpathyScore int    `json:"empathyScore"`
	Tone         string `json:"tone"`
}

// Empathy is the empathy demo page payload.
type Empathy struct {
	Examples []EmpathyExample `json:"examples"`
}
