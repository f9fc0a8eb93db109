// Package vocab holds the fixed category and payment-method vocabularies and
// their display labels.
package vocab

import "github.com/theirongolddev/taka/internal/model"

// ExpenseCategories are the expense category keys in display order.
var ExpenseCategories = []string{
	"food", "transport", "shopping", "bills", "rent",
	"health", "education", "entertainment", "others",
}

// IncomeCategories are the income category keys in display order.
var IncomeCategories = []string{
	"salary", "business", "freelance", "gift", "investment", "other_income",
}

// PaymentMethods are the payment-method keys in display order.
var PaymentMethods = []string{"cash", "bkash", "nagad", "rocket", "card", "bank"}

type label struct {
	en string
	bn string
}

func (l label) in(lang model.Language) string {
	if lang == model.English {
		return l.en
	}
	return l.bn
}

var categoryLabels = map[string]label{
	"food":          {"Food", "খাবার"},
	"transport":     {"Transport", "যাতায়াত"},
	"shopping":      {"Shopping", "কেনাকাটা"},
	"bills":         {"Bills", "বিল"},
	"rent":          {"Rent", "বাসা ভাড়া"},
	"health":        {"Health", "স্বাস্থ্য"},
	"education":     {"Education", "শিক্ষা"},
	"entertainment": {"Entertainment", "বিনোদন"},
	"others":        {"Others", "অন্যান্য"},
	"salary":        {"Salary", "বেতন"},
	"business":      {"Business", "ব্যবসা"},
	"freelance":     {"Freelance", "ফ্রিল্যান্স"},
	"gift":          {"Gift", "উপহার"},
	"investment":    {"Investment", "বিনিয়োগ"},
	"other_income":  {"Other income", "অন্যান্য আয়"},
}

var paymentLabels = map[string]label{
	"cash":   {"Cash", "নগদ"},
	"bkash":  {"bKash", "বিকাশ"},
	"nagad":  {"Nagad", "নগদ (মোবাইল)"},
	"rocket": {"Rocket", "রকেট"},
	"card":   {"Card", "কার্ড"},
	"bank":   {"Bank", "ব্যাংক"},
}

// CategoriesFor returns the category vocabulary for a transaction type.
func CategoriesFor(t model.TransactionType) []string {
	if t == model.Income {
		return IncomeCategories
	}
	return ExpenseCategories
}

// IsKnownCategory reports whether key belongs to the vocabulary for t.
func IsKnownCategory(t model.TransactionType, key string) bool {
	for _, c := range CategoriesFor(t) {
		if c == key {
			return true
		}
	}
	return false
}

// CategoryLabel returns the display label for a category key.
// Unknown keys are returned verbatim.
func CategoryLabel(lang model.Language, key string) string {
	if l, ok := categoryLabels[key]; ok {
		return l.in(lang)
	}
	return key
}

// PaymentLabel returns the display label for a payment-method key.
// Unknown keys are returned verbatim.
func PaymentLabel(lang model.Language, key string) string {
	if l, ok := paymentLabels[key]; ok {
		return l.in(lang)
	}
	return key
}

// TypeLabel returns the label used for a transaction type in exports.
func TypeLabel(t model.TransactionType) string {
	if t == model.Income {
		return "Income"
	}
	return "Expense"
}
