package agent

// Fixed response texts. These are product copy: the router's deterministic
// branches always answer with one of these, verbatim.

const responseGreeting = "Hi! 👋 I’m your shopping assistant. " +
	"I can help you track orders, manage returns, handle payments, " +
	"or answer questions about delivery and offers."

const responseGenericHelp = "Of course! 😊 Please tell me what you need help with — " +
	"for example, tracking an order, returns, refunds, or payment issues."

const responseCourtesy = "You’re welcome! If you have any more questions about orders, " +
	"shipping, returns, or payments, feel free to ask anytime."

// supportChannels is the contact block shared by both escalation responses.
const supportChannels = "You can contact customer support via:\n" +
	"- Email: support@example.com\n" +
	"- Phone: 1800-123-456\n" +
	"- Live chat (9 AM – 6 PM)"

const responseComplaintEscalation = "I’m really sorry about the inconvenience. " +
	"It looks like this issue needs attention from our human support team.\n\n" +
	supportChannels

const responseCriticalEscalation = "I might not be able to fully resolve this through the chatbot. " +
	"I recommend escalating this to a human support agent.\n\n" +
	supportChannels

const responseAskDetail = "Could you please provide a bit more detail? 😊 " +
	"For example, you can ask about order status, delivery time, refunds, or payments."

const responseOutOfScope = "I can help with shopping-related questions like orders, " +
	"returns, refunds, payments, delivery, and offers. " +
	"Please let me know how I can assist you."

const responseAskOrderIDTracking = "I can help you track an order, but I need the order ID first. " +
	"For example: 'Where is my order ORD123?'."

const responseAskOrderIDReturn = "Please include your order ID to start a return or exchange. " +
	"Example: 'I want to return order ORD123 because the item is damaged.'"

const responseModifyPolicy = "Orders can be modified or cancelled only while they are in Pending " +
	"or Processing status. Once shipped, changes are not possible and " +
	"a return may be requested after delivery."

const responsePaymentReversal = "If your payment failed but money was deducted, " +
	"it is usually reversed automatically within 5–7 business days."

const responseCancellationWindow = "Regarding cancellation: orders can only be cancelled while they are " +
	"in Pending or Processing status. Shipped orders cannot be cancelled " +
	"and may need a return after delivery."

const responseTechnicalIssue = "Sorry, I ran into a technical issue. Please try again later or " +
	"contact customer support."

const responseNotSure = "I’m not completely sure about that. Could you please provide " +
	"a bit more detail about your issue?"

// ecommerceKeywords is the vocabulary used by the out-of-scope filter: a
// message containing none of these is redirected to shopping topics.
var ecommerceKeywords = []string{
	"order", "refund", "payment", "pay", "card", "upi", "wallet",
	"shipping", "delivery", "track", "tracking",
	"product", "item", "size", "color", "stock", "availability",
	"price", "discount", "offer", "coupon", "promo",
	"return", "replace", "exchange", "cancel", "cancellation",
	"invoice", "bill", "receipt",
	"account", "login", "signup", "register", "address",
}

// complaintPhrases triggers the early repeated-complaint escalation.
var complaintPhrases = []string{"multiple complaints", "no response"}

// criticalPhrases triggers the later escalation rule. It overlaps
// complaintPhrases on purpose: complaint phrases hit the earlier rule first,
// so this rule only ever fires on the delivery-failure phrases.
var criticalPhrases = []string{
	"missing item", "items missing", "courier not responding",
	"multiple complaints", "no response", "not responding",
}

var courtesyPhrases = []string{"thank you", "thanks", "appreciate", "good job"}

var greetingPhrases = []string{"hi", "hello", "hey", "good morning", "good evening"}

var helpPhrases = []string{"i need help", "help", "can you help me"}

var returnPhrases = []string{"return", "replace", "exchange"}
