// Package knowledge holds the static store policy and FAQ passages the
// assistant retrieves from, plus the retrieval result type shared by the
// retriever and the agent.
package knowledge

// passages is the fixed knowledge base, loaded once per process. Order is
// stable so passage ids derived from position stay deterministic.
var passages = []string{
	// Finding products
	"Customers can find products by using the search bar at the top of the website. " +
		"They can type product names, categories, or keywords such as 'running shoes', 'wireless headphones', or 'blue t‑shirt'.",
	"Products are organized into categories like Men, Women, Kids, Electronics, Home, and more. " +
		"Customers can open a category from the main menu and then use filters such as size, color, brand, price range, and ratings.",
	"If a customer is not sure which product to choose, they can compare product details such as features, specifications, and customer reviews on the product page.",
	"When a product is out of stock, the product page may show an 'Out of stock' label. " +
		"Customers can add it to their wishlist or sign up for a back‑in‑stock notification if that option is available.",
	// Orders and tracking
	"Customers can view all their purchases in the 'My Orders' section after logging into their account. " +
		"Each order shows its current status such as Pending, Processing, Shipped, or Delivered.",
	"Customers can track their shipments from the 'My Orders' page by clicking on 'Track Order'. " +
		"Once the order is shipped, a courier tracking link and estimated delivery date are shown.",
	"An order can be modified or cancelled only while it is in Pending or Processing status. " +
		"After an order is marked as Shipped or Delivered, it can no longer be changed.",
	"If a wrong delivery address was entered, customers should cancel the order while it is still in Pending or Processing " +
		"and then place a new order with the correct address.",
	// Shipping and delivery
	"Standard delivery usually takes between 3 and 7 business days after the order has been shipped, " +
		"depending on the customer's location.",
	"Express delivery, when available, typically delivers orders within 1 to 3 business days after shipping.",
	"During major sale events, holidays, or unforeseen courier issues, delivery times may be longer than usual. " +
		"Customers will be notified by email or SMS in case of significant delays.",
	"Any shipping charges or free‑shipping eligibility are clearly displayed on the cart and checkout pages " +
		"before the order is confirmed.",
	// Returns and exchanges
	"Most items can be returned or exchanged within a limited return window, usually 7 to 10 days from the date of delivery, " +
		"as long as they are unused, unwashed, and in their original packaging with all tags attached.",
	"To start a return or exchange, customers should go to 'My Orders', select the relevant order, click 'Return or Replace', " +
		"choose a reason, and submit the request.",
	"Certain categories such as innerwear, personal care items, perishable goods, and customized or personalized products " +
		"are usually non‑returnable due to hygiene or customization reasons.",
	"If a product is received damaged, defective, or different from what was ordered, customers should raise a return or replacement " +
		"request within the return window and may be asked to upload clear photos of the issue.",
	"Return shipping is often free when the return is due to a seller error, such as a wrong, damaged, or defective item. " +
		"In other cases, return shipping charges may apply as per the store's policy.",
	// Refunds
	"Refunds are typically initiated after the returned product has been picked up and passes quality checks at the warehouse. " +
		"This process can take a few business days after pickup.",
	"Once approved, refunds are usually processed within 5 to 7 business days. " +
		"The actual time for the amount to appear can depend on the customer's bank or payment provider.",
	"Whenever possible, refunds are credited back to the original payment method such as credit card, debit card, UPI, or wallet. " +
		"If the original method is not available, refunds may be issued as store credit or gift vouchers.",
	"For Cash on Delivery orders, refunds are generally issued to a bank account, UPI ID, or as store credit " +
		"after the returned item is successfully picked up and verified.",
	// Payments
	"The store supports common payment methods, including major credit cards, debit cards, UPI, net banking, and selected digital wallets. " +
		"Available options are shown on the payment page during checkout.",
	"If a payment fails, customers should check their internet connection, card or UPI details, available balance, and any bank restrictions. " +
		"They can attempt payment again using the same or a different method.",
	"If money is debited from the customer's bank account but the order was not created, the amount is usually reversed automatically " +
		"by the bank or payment provider within 5 to 7 business days.",
	// Discounts and coupons
	"The store runs promotions, discounts, and special offers during seasonal sales, festive periods, and exclusive campaigns. " +
		"Active offers are highlighted on the homepage and product pages.",
	"Coupon codes or promo codes must be entered on the cart or checkout page before payment is completed. " +
		"Most coupons are valid for a limited time and may require a minimum order value or apply only to specific categories.",
	"Unless explicitly mentioned, only one coupon can be applied per order. " +
		"Coupons that are expired, used, or not applicable to the selected products will not be accepted by the system.",
	// Product information and stock
	"Each product page provides key details such as brand, size, color, material, features, and care instructions, " +
		"along with multiple images of the item.",
	"If a particular size or color is out of stock, customers can add the product to their wishlist or sign up for back‑in‑stock alerts " +
		"if that option is available on the product page.",
	"Product photos aim to represent items accurately, but actual colors may vary slightly due to different screen settings and lighting.",
	// Account and security
	"Customers can update their name, mobile number, and saved addresses from the 'My Account' section after logging in.",
	"If a customer forgets their password, they can reset it using the 'Forgot Password' option on the login page " +
		"and follow the instructions sent to their registered email or phone number.",
	"For security reasons, customers should never share one‑time passwords, full card numbers, or CVV codes with anyone, " +
		"even if they claim to be from customer support.",
	"If a customer notices suspicious activity on their account, they should change their password immediately " +
		"and contact customer support for further assistance.",
	// Support and escalation
	"If the chatbot or help articles do not resolve a customer's issue, they can contact human support via email, chat, or phone " +
		"during the published support hours.",
	"For urgent issues such as missing items in a delivered order, repeated delivery failures, or problems with high‑value orders, " +
		"customers are encouraged to raise a support ticket or call customer care so the team can investigate quickly.",
}

// Passages returns a copy of the knowledge base passages.
func Passages() []string {
	out := make([]string, len(passages))
	copy(out, passages)
	return out
}
