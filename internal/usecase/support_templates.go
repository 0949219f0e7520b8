package usecase

import (
	"strings"

	"github.com/andriikh/ecomgen/internal/domain"
)

// Message templates per issue category. Slots are written as {name} and must
// only use names the category's fill rules provide.
var customerTemplates = map[domain.IssueType][]string{
	domain.IssueProductInquiry: {
		"Hi, I'm looking for {product_type}. Can you help me find something with {feature}?",
		"Do you have {product_type} that {requirement}? What would you recommend?",
		"I need a {product_type} for {use_case}. What are my options?",
	},
	domain.IssueOrderStatus: {
		"Hi, I placed order {order_id} {days} days ago. Can you check the status?",
		"Where is my order {order_id}? It's been {days} days and I haven't received it.",
		"I need an update on order {order_id}. When will it arrive?",
	},
	domain.IssueReturnRequest: {
		"I want to return {product}. It doesn't meet my expectations.",
		"How do I return {product}? The {issue} doesn't work as advertised.",
		"I received {product} but it has {defect}. Can I get a refund?",
	},
	domain.IssueTechnical: {
		"I'm having trouble with {product}. The {component} is not working.",
		"{product} stopped working after {time_period}. What should I do?",
		"Need help with {product}. Getting error: {error_message}.",
	},
	domain.IssuePriceInquiry: {
		"I saw {product} was ${old_price} last week, now it's ${new_price}. Why?",
		"Is there a discount on {product}? I'm interested in buying multiple.",
		"Can you match the price I saw on {competitor} for {product}?",
	},
	domain.IssueRecommendation: {
		"I'm looking for {product_type} under ${budget}. What do you recommend?",
		"Can you suggest {product_type} for someone who {description}?",
		"I need a gift for {occasion}. Budget is ${budget}. Ideas?",
	},
}

var agentTemplates = map[domain.IssueType][]string{
	domain.IssueProductInquiry: {
		"I'd be happy to help! Based on your needs, I recommend {recommendation}. It has {features} and is rated {rating}/5 by customers.",
		"Great question! We have several options. The {product} would be perfect because {reason}. Would you like more details?",
		"Let me search our catalog... I found {count} products matching your criteria. The most popular is {product}.",
	},
	domain.IssueOrderStatus: {
		"Let me check that for you... Your order {order_id} is currently {status}. Expected delivery: {date}.",
		"I see your order {order_id} was shipped on {date} via {carrier}. Tracking: {tracking}.",
		"Your order {order_id} is {status}. I've expedited it and you should receive it by {date}. Sorry for the delay!",
	},
	domain.IssueReturnRequest: {
		"I'm sorry to hear that. I've initiated a return for {product}. Return label sent to {email}. Refund will process in 3-5 days.",
		"I understand your frustration. Let's process your return. We'll send a prepaid label and issue a full refund once we receive it.",
		"I apologize for the inconvenience. I've created a return request. You can also choose an exchange if you prefer?",
	},
	domain.IssueTechnical: {
		"Let's troubleshoot this. First, try {step1}. If that doesn't work, {step2}. I'll also send detailed instructions to your email.",
		"I'm sorry you're experiencing this. Based on the issue, I recommend {solution}. If it persists, we'll replace it under warranty.",
		"That sounds like {diagnosis}. Here's how to fix it: {solution}. Let me know if you need further assistance!",
	},
	domain.IssuePriceInquiry: {
		"The price change is due to {reason}. However, I can offer you {discount}% off if you purchase today!",
		"Great news! We have a bulk discount available. For {quantity}+ items, you get {discount}% off. Interested?",
		"While we can't match that exact price, I can offer you {alternative}. Would that work for you?",
	},
	domain.IssueRecommendation: {
		"Based on your budget and needs, I'd recommend {product1} or {product2}. {product1} is {comparison}.",
		"Perfect! I have some great options: {list}. My personal favorite is {favorite} because {reason}.",
		"Great choice for {occasion}! I suggest {product}. It's {price}, well-reviewed, and {special_feature}.",
	},
}

// Bounded slot vocabularies.
var (
	inquiryFeatures     = []string{"good battery life", "high quality", "under $500", "5-star rating"}
	inquiryRequirements = []string{"fits my budget", "works for gaming", "is portable", "has warranty"}
	inquiryUseCases     = []string{"work", "school", "travel", "gift"}

	returnIssues  = []string{"quality", "size", "color", "functionality"}
	returnDefects = []string{"a scratch", "missing parts", "wrong color", "damage"}

	techComponents  = []string{"screen", "battery", "charger", "button"}
	techPeriods     = []string{"2 days", "a week", "a month"}
	techErrors      = []string{"Won't turn on", "Keeps crashing", "Not charging"}
	techSolutions   = []string{"reset to factory settings", "update firmware", "contact manufacturer"}
	techDiagnoses   = []string{"a software issue", "hardware malfunction", "compatibility issue"}
	priceCompetitor = []string{"Amazon", "Best Buy", "Walmart"}
	priceReasons    = []string{"a promotion ending", "market changes", "high demand"}
	priceDiscounts  = []string{"5", "10", "15"}
	priceQuantities = []string{"3", "5", "10"}

	recoBudgets      = []string{"100", "200", "500", "1000"}
	recoDescriptions = []string{"travels a lot", "works from home", "is a student", "loves tech"}
	recoOccasions    = []string{"birthday", "anniversary", "graduation", "holiday"}
	recoReasons      = []string{"of the quality", "it's popular", "great reviews"}
	recoFeatures     = []string{"comes with warranty", "free shipping", "on sale"}
	recoForWhom      = []string{"this occasion", "anyone", "that special someone"}

	agentFeatures = []string{"excellent performance", "great value", "top ratings"}
	agentReasons  = []string{"it matches your needs", "it's within budget", "it's highly rated"}

	carriers = []string{"FedEx", "UPS", "USPS", "DHL"}

	channels = []string{"chat", "email", "phone"}

	sentiments       = []domain.Sentiment{domain.SentimentPositive, domain.SentimentNeutral, domain.SentimentNegative}
	sentimentWeights = []float64{0.60, 0.30, 0.10}

	outcomes       = []domain.Outcome{domain.OutcomeResolved, domain.OutcomeEscalated, domain.OutcomePending}
	outcomeWeights = []float64{0.75, 0.15, 0.10}
)

// fillTemplate substitutes {name} slots. Unknown slots are left in place so a
// template/vocabulary mismatch is visible in the generated text.
func fillTemplate(tpl string, slots map[string]string) string {
	pairs := make([]string, 0, len(slots)*2)
	for k, v := range slots {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
