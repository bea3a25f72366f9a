package core

// Fixed enumerations offered to the UI. The data layer stores category
// strings verbatim; these lists constrain form choices and let callers
// classify imported data through the recognition helpers instead of
// trusting free-text input.

// CategoryOther is the fallback bucket for unrecognized values.
const CategoryOther = "Other"

var ExpenseCategories = []string{
	"Groceries", "Utilities", "Rent/EMI", "Education", "Healthcare",
	"Entertainment", "Festivals/Cultural Events", "Donations/Charity",
	"Gold/Jewellery", "Home Maintenance", "Domestic Help", "Transport",
	"Informal Loans/Repayments", "Clothing", "Personal Care", "Other",
}

var IncomeCategories = []string{
	"Salary", "Business", "Rent Income", "Interest", "Investments",
	"Freelance", "Gifts", "Bonus", "Other",
}

// PaymentMethods lists the methods offered by transaction forms.
// "Card" stays for data imported before credit and debit cards were
// split into separate entries.
var PaymentMethods = []string{
	"Cash", "UPI", "Card", "Bank Transfer", "Digital Wallet",
	"Credit Card", "Debit Card",
}

var GoalCategories = []string{
	"Emergency Fund", "Child Education", "Wedding", "Home Purchase",
	"Retirement", "Vacation", "Vehicle", "Business", "Investment",
	"Other",
}

// CategoriesFor returns the category list matching a transaction type.
func CategoriesFor(t TransactionType) []string {
	if t == Income {
		return IncomeCategories
	}
	return ExpenseCategories
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// IsKnownCategory reports whether v is one of the fixed categories for
// the given transaction type.
func IsKnownCategory(t TransactionType, v string) bool {
	return contains(CategoriesFor(t), v)
}

// IsKnownPaymentMethod reports whether v is a fixed payment method.
func IsKnownPaymentMethod(v string) bool {
	return contains(PaymentMethods, v)
}

// IsKnownGoalCategory reports whether v is a fixed goal category.
func IsKnownGoalCategory(v string) bool {
	return contains(GoalCategories, v)
}

// ClassifyCategory maps v onto the fixed category set for t. Known
// values pass through unchanged; everything else lands in the Other
// bucket with ok=false so callers can flag it without rewriting the
// stored value.
func ClassifyCategory(t TransactionType, v string) (string, bool) {
	if IsKnownCategory(t, v) {
		return v, true
	}
	return CategoryOther, false
}
