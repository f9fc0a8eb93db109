package vocab

import "github.com/theirongolddev/taka/internal/model"

// UI phrase keys.
const (
	TextAppName      = "appName"
	TextBalance      = "currentBalance"
	TextIncome       = "totalIncome"
	TextExpense      = "totalExpense"
	TextRecent       = "transactionList"
	TextBreakdown    = "expenseBreakdown"
	TextBudgets      = "budgets"
	TextNoData       = "noData"
	TextNoBudgets    = "noBudgets"
	TextLockApp      = "lockApp"
	TextSetupPIN     = "setupPin"
	TextSetupHint    = "setupHint"
	TextEnterPIN     = "enterPin"
	TextWrongPIN     = "wrongPin"
	TextOverBudget   = "overBudget"
	TextExportDone   = "exportSuccess"
	TextSaved        = "saveSuccess"
	TextEntryDeleted = "entryDeleteSuccess"
	TextDashboard    = "dashboard"
	TextHistory      = "transactions"
	TextSettings     = "settings"
	TextLanguage     = "language"
	TextDarkMode     = "darkMode"
	TextCurrency     = "currency"
	TextExportCSV    = "exportCSV"
	TextLogout       = "logout"
	TextAllCategory  = "allCategories"
	TextDelEntry     = "confirmDeleteEntry"
	TextDelBudget    = "confirmDeleteBudget"
)

var texts = map[string]label{
	TextAppName:      {"Taka Tracker", "টাকা ট্র্যাকার"},
	TextBalance:      {"Current balance", "বর্তমান ব্যালেন্স"},
	TextIncome:       {"Income", "আয়"},
	TextExpense:      {"Expense", "ব্যয়"},
	TextRecent:       {"Recent transactions", "সাম্প্রতিক লেনদেন"},
	TextBreakdown:    {"Expense analytics", "ব্যয় বিশ্লেষণ"},
	TextBudgets:      {"Budgets", "বাজেট"},
	TextNoData:       {"No data", "বিশ্লেষণের তথ্য নেই"},
	TextNoBudgets:    {"No budgets set", "কোনো বাজেট নেই"},
	TextLockApp:      {"App locked", "অ্যাপ লক করা আছে"},
	TextSetupPIN:     {"Set a PIN", "পিন সেট করুন"},
	TextSetupHint:    {"Setup a 4-digit PIN for security", "সুরক্ষার জন্য ৪ সংখ্যার পিন কোড সেট করুন"},
	TextEnterPIN:     {"Enter your PIN", "আপনার পিন দিন"},
	TextWrongPIN:     {"Wrong PIN", "ভুল পিন"},
	TextOverBudget:   {"Over budget", "বাজেট ছাড়িয়েছে"},
	TextExportDone:   {"Export successful", "এক্সপোর্ট সফল হয়েছে"},
	TextSaved:        {"Saved", "সংরক্ষিত হয়েছে"},
	TextEntryDeleted: {"Entry deleted", "এন্ট্রি মুছে ফেলা হয়েছে"},
	TextDashboard:    {"Dashboard", "ড্যাশবোর্ড"},
	TextHistory:      {"Transactions", "লেনদেন"},
	TextSettings:     {"Settings", "সেটিংস"},
	TextLanguage:     {"Language", "ভাষা"},
	TextDarkMode:     {"Dark mode", "ডার্ক মোড"},
	TextCurrency:     {"Currency", "মুদ্রা"},
	TextExportCSV:    {"Export CSV", "CSV এক্সপোর্ট"},
	TextLogout:       {"Lock app", "অ্যাপ লক করুন"},
	TextAllCategory:  {"All categories", "সব ক্যাটাগরি"},
	TextDelEntry:     {"Delete this entry? (y/n)", "এই এন্ট্রি মুছবেন? (y/n)"},
	TextDelBudget:    {"Delete this budget? (y/n)", "এই বাজেট মুছবেন? (y/n)"},
}

var periodLabels = map[model.Period]label{
	model.Daily:   {"Daily", "দৈনিক"},
	model.Monthly: {"Monthly", "মাসিক"},
	model.Yearly:  {"Yearly", "বাৎসরিক"},
}

// Text returns a UI phrase. Unknown keys are returned verbatim.
func Text(lang model.Language, key string) string {
	if l, ok := texts[key]; ok {
		return l.in(lang)
	}
	return key
}

// PeriodLabel returns the tab label for a period.
func PeriodLabel(lang model.Language, p model.Period) string {
	if l, ok := periodLabels[p]; ok {
		return l.in(lang)
	}
	return string(p)
}
