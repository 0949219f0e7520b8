package usecase

import (
	"github.com/andriikh/ecomgen/internal/domain"
	"github.com/andriikh/ecomgen/internal/rng"
)

// KBGenerator emits the static knowledge base: hand-authored reference
// articles with randomized view and vote counters layered on top. It has no
// relational dependency on the generated tables.
type KBGenerator struct {
	Rand *rng.Rand
}

type kbSeed struct {
	docID    string
	category string
	title    string
	content  string
	tags     []string
	viewsLo  int
	viewsHi  int
	votesLo  int
	votesHi  int
}

func (g *KBGenerator) Generate() []domain.KBArticle {
	articles := make([]domain.KBArticle, 0, len(kbSeeds))
	for _, s := range kbSeeds {
		articles = append(articles, domain.KBArticle{
			DocID:        s.docID,
			Category:     s.category,
			Title:        s.title,
			Content:      s.content,
			Tags:         s.tags,
			Views:        g.Rand.IntBetween(s.viewsLo, s.viewsHi),
			HelpfulVotes: g.Rand.IntBetween(s.votesLo, s.votesHi),
		})
	}
	return articles
}

var kbSeeds = []kbSeed{
	{
		docID:    "KB-001",
		category: "shipping",
		title:    "Shipping Policy and Delivery Times",
		content: `Our Shipping Policy:

Standard Shipping (5-7 business days):
- Free on orders over $50
- $9.99 flat rate for orders under $50
- Available nationwide

Express Shipping (2-3 business days):
- $19.99 flat rate
- Order before 2 PM for same-day processing

Overnight Shipping (next business day):
- $29.99 flat rate
- Order before 12 PM for next-day delivery
- Not available on weekends

International Shipping:
- Available to 50+ countries
- 7-14 business days
- Customs fees may apply
- Calculated at checkout

Tracking:
- Tracking number sent via email within 24 hours of shipment
- Track at track.ourstore.com
- Contact support if tracking not updated within 48 hours

Delivery Issues:
- Lost packages: Contact support after 10 business days
- Damaged items: Report within 48 hours of delivery
- Wrong address: Update within 2 hours of order placement`,
		tags:    []string{"shipping", "delivery", "tracking", "international"},
		viewsLo: 1000, viewsHi: 10000, votesLo: 100, votesHi: 1000,
	},
	{
		docID:    "KB-002",
		category: "returns",
		title:    "Return and Refund Policy",
		content: `Return Policy:

30-Day Return Window:
- Items can be returned within 30 days of delivery
- Must be in original condition with tags attached
- Original packaging preferred but not required

Return Process:
1. Log into your account
2. Go to Orders -> Select item -> Request Return
3. Print prepaid return label (emailed within 24 hours)
4. Drop off at any carrier location
5. Refund processed within 3-5 business days after receipt

Refund Methods:
- Original payment method (3-5 business days)
- Store credit (instant)
- Exchange for different item (free)

Non-Returnable Items:
- Final sale items (marked clearly)
- Opened software or digital products
- Personal care items
- Custom-made products

Damaged or Defective Items:
- Report within 48 hours of delivery
- Photos required for claim
- Free return shipping provided
- Full refund or replacement

Restocking Fee:
- None for most items
- 15% for opened electronics
- Waived for defective items`,
		tags:    []string{"returns", "refunds", "exchanges", "policy"},
		viewsLo: 5000, viewsHi: 15000, votesLo: 500, votesHi: 2000,
	},
	{
		docID:    "KB-003",
		category: "products",
		title:    "Product Warranty and Support",
		content: `Warranty Information:

Manufacturer Warranty:
- Included with all products
- Duration varies by manufacturer (typically 1-2 years)
- Covers manufacturing defects
- Requires proof of purchase

Extended Warranty:
- Available at checkout for electronics
- Extends coverage 2-3 additional years
- Covers accidental damage
- No deductible

Warranty Claims:
1. Contact our support team
2. Provide order number and issue description
3. Troubleshooting assistance provided
4. Repair, replacement, or refund if applicable

Technical Support:
- Free lifetime technical support
- Available via chat, email, or phone
- Average response time: under 2 hours
- 24/7 for premium members

Product Registration:
- Register products at register.ourstore.com
- Speeds up warranty claims
- Eligible for exclusive offers
- Product recall notifications

Common Coverage:
- Electronics: Hardware failures, screen defects
- Appliances: Motor issues, electrical problems
- Clothing: Manufacturing defects, stitching issues
- Furniture: Structural defects, material issues`,
		tags:    []string{"warranty", "support", "technical", "coverage"},
		viewsLo: 2000, viewsHi: 8000, votesLo: 200, votesHi: 1000,
	},
	{
		docID:    "KB-004",
		category: "account",
		title:    "Account Management and Security",
		content: `Account Management:

Creating an Account:
- Click "Sign Up" at top right
- Provide email and create password
- Verify email address
- Start shopping!

Account Benefits:
- Faster checkout
- Order history and tracking
- Saved addresses and payment methods
- Wishlist and favorites
- Exclusive member offers
- Early access to sales

Password Reset:
1. Click "Forgot Password"
2. Enter registered email
3. Check email for reset link (valid 1 hour)
4. Create new password

Security Features:
- Two-factor authentication available
- Secure checkout (SSL encrypted)
- Payment info never stored (tokenized)
- Regular security audits

Account Settings:
- Update personal information
- Manage payment methods
- Set communication preferences
- View purchase history
- Download data

Privacy:
- We never sell your data
- See Privacy Policy for details
- Control marketing preferences
- GDPR and CCPA compliant

Deleting Account:
- Contact support to request deletion
- Data removed within 30 days
- Some order records retained for legal requirements`,
		tags:    []string{"account", "security", "privacy", "password"},
		viewsLo: 3000, viewsHi: 10000, votesLo: 300, votesHi: 1500,
	},
	{
		docID:    "KB-005",
		category: "payment",
		title:    "Payment Methods and Billing",
		content: `Accepted Payment Methods:

Credit/Debit Cards:
- Visa, Mastercard, American Express, Discover
- 3D Secure authentication for security
- Save cards for future purchases (optional)

Digital Wallets:
- PayPal
- Apple Pay
- Google Pay
- Shop Pay

Other Methods:
- Gift cards and store credit
- Buy now, pay later (Klarna, Afterpay)
- Bank transfer (for large orders)

Payment Security:
- PCI DSS compliant
- Encrypted transactions
- Fraud detection systems
- Never store full card numbers

Billing:
- Charged when order ships
- Pre-authorization hold when ordered
- Billing address must match card
- Separate invoices for multiple shipments

Currency:
- Prices in USD
- International cards accepted
- Currency conversion at checkout
- No foreign transaction fees from us

Failed Payments:
- Order automatically cancelled
- Email notification sent
- Retry within 24 hours
- Contact support if issue persists

Refunds:
- Processed to original payment method
- 3-5 business days for cards
- Instant for store credit
- PayPal: 1-2 business days`,
		tags:    []string{"payment", "billing", "security", "methods"},
		viewsLo: 4000, viewsHi: 12000, votesLo: 400, votesHi: 1800,
	},
	{
		docID:    "KB-006",
		category: "promotions",
		title:    "Discounts, Coupons, and Promotions",
		content: `Current Promotions:

Seasonal Sales:
- Spring Sale: March-April (up to 50% off)
- Summer Clearance: July-August (up to 70% off)
- Black Friday: November (60-80% off select items)
- Holiday Sale: December (40-60% off)

Ongoing Discounts:
- Student discount: 15% off with valid ID
- Military discount: 20% off year-round
- Senior discount: 10% off (55+)
- Healthcare workers: 15% off

Coupon Usage:
- One coupon per order
- Cannot combine with other discounts
- Enter at checkout
- Check expiration date
- Some exclusions apply

Email Newsletter:
- Subscribe for 10% off first order
- Exclusive subscriber-only deals
- Early access to sales
- New product announcements

Loyalty Program:
- Earn 1 point per dollar spent
- 100 points = $5 reward
- Birthday bonus: 200 points
- Free shipping for members
- Exclusive member sales

Price Match:
- Match competitor prices (conditions apply)
- Must be identical product
- Provide proof (link or ad)
- Valid within 7 days of purchase
- Contact support with details

Referral Program:
- Refer friends, get $20 credit
- Friend gets 15% off first order
- No limit on referrals
- Credit applied after friend's first purchase`,
		tags:    []string{"discounts", "promotions", "coupons", "loyalty"},
		viewsLo: 10000, viewsHi: 25000, votesLo: 1000, votesHi: 3000,
	},
	{
		docID:    "KB-007",
		category: "products",
		title:    "Product Selection Guide - Electronics",
		content: `Electronics Buying Guide:

Laptops:
Budget ($300-600):
- Chromebooks for basic tasks
- Entry-level Windows for students
- 4-8GB RAM, 128-256GB storage

Mid-Range ($600-1200):
- Work and productivity
- 8-16GB RAM, 256-512GB SSD
- Intel i5/AMD Ryzen 5
- Good for light gaming

Premium ($1200+):
- Content creation, gaming
- 16-32GB RAM, 512GB-1TB SSD
- Intel i7/i9, AMD Ryzen 7/9
- Dedicated graphics

Smartphones:
Features to Consider:
- Camera quality (MP rating, night mode)
- Battery life (4000mAh+ recommended)
- Storage (128GB minimum recommended)
- 5G capability
- Screen size and quality

Top Picks by Use Case:
- Photography: iPhone Pro, Samsung Galaxy S
- Gaming: ROG Phone, iPhone Pro Max
- Budget: Google Pixel A, Samsung A series
- Battery life: Samsung M series, Moto G Power

Accessories:
Essential:
- Screen protector
- Protective case
- Fast charger (20W+)
- USB-C cable backup

Nice to Have:
- Wireless earbuds
- Power bank
- Car mount
- Wireless charging pad

Warranty Recommendations:
- Always get extended warranty for laptops
- AppleCare+ recommended for Apple products
- Screen protection plans for smartphones
- Accidental damage coverage for premium items`,
		tags:    []string{"electronics", "laptops", "smartphones", "guide"},
		viewsLo: 8000, viewsHi: 20000, votesLo: 800, votesHi: 2500,
	},
	{
		docID:    "KB-008",
		category: "troubleshooting",
		title:    "Common Issues and Solutions",
		content: `Troubleshooting Common Issues:

Order Issues:

Order Not Received:
1. Check tracking number in email
2. Verify delivery address
3. Check with neighbors/front desk
4. Wait 1-2 extra days (carrier delays)
5. Contact support after 10 business days

Wrong Item Received:
1. Don't open if obviously wrong
2. Take photos of package and items
3. Contact support immediately
4. Free return label provided
5. Correct item shipped priority

Damaged Package:
1. Document damage with photos
2. Don't discard packaging
3. Report within 48 hours
4. Support will arrange replacement/refund
5. No return shipping cost

Website/App Issues:

Can't Log In:
- Clear browser cache/cookies
- Try different browser
- Check Caps Lock
- Reset password
- Disable VPN temporarily

Payment Declined:
- Verify card details
- Check billing address matches
- Ensure sufficient funds
- Try different payment method
- Contact your bank (may be fraud hold)

Discount Code Not Working:
- Check expiration date
- Verify minimum purchase requirement
- One code per order rule
- Some items excluded
- Contact support for help

Product Not Available:
- Sign up for back-in-stock notification
- Check similar items
- Consider alternative brands
- Pre-order if available
- Ask support for ETA

Slow Website:
- Clear cache
- Check internet connection
- Try incognito mode
- Use app instead
- Report to support if persists`,
		tags:    []string{"troubleshooting", "issues", "solutions", "help"},
		viewsLo: 15000, viewsHi: 35000, votesLo: 1500, votesHi: 4000,
	},
}
