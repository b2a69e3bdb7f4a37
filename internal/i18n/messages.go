package i18n

const (
	MsgRequiredFields   = "requiredFields"
	MsgInvalidRequest   = "invalidRequest"
	MsgInvalidID        = "invalidId"
	MsgUserExists       = "userExists"
	MsgUserCreated      = "userCreated"
	MsgUserNotFound     = "userNotFound"
	MsgInvalidPassword  = "invalidPassword"
	MsgUserLoggedIn     = "userLoggedIn"
	MsgUserLoggedOut    = "userLoggedOut"
	MsgAuthenticated    = "authenticated"
	MsgUnauthorized     = "unauthorized"
	MsgForbidden        = "forbidden"
	MsgTooManyAttempts  = "tooManyAttempts"
	MsgInternalError    = "internalError"
	MsgLanguageChanged  = "languageChanged"
	MsgInvalidLanguage  = "invalidLanguage"
	MsgUsersFound       = "usersFound"
	MsgCustomersFound   = "customersFound"
	MsgCustomerFound    = "customerFound"
	MsgCustomerNotFound = "customerNotFound"
	MsgCustomerCreated  = "customerCreated"
	MsgCustomerUpdated  = "customerUpdated"
	MsgCustomerDeleted  = "customerDeleted"
	MsgPaymentCreated   = "paymentCreated"
	MsgPaymentsFound    = "paymentsFound"
	MsgPaymentNotFound  = "paymentNotFound"
	MsgInstallmentAdded = "installmentRecorded"
	MsgInstallments     = "installmentsFound"
	MsgOverpayment      = "overpayment"
	MsgPasswordTooLong  = "passwordTooLong"
	MsgInvalidAmount    = "invalidAmount"
	MsgPageLogin        = "pageLogin"
	MsgPageSignup       = "pageSignup"
	MsgPageDashboard    = "pageDashboard"
)

var catalog = map[string]map[string]string{
	English: {
		MsgRequiredFields:   "All fields are required",
		"requiredName":      "Name is required",
		"requiredEmail":     "Email is required",
		"requiredPassword":  "Password is required",
		"requiredAmount":    "Amount must be greater than zero",
		MsgInvalidRequest:   "Invalid request",
		MsgInvalidID:        "Invalid ID",
		MsgUserExists:       "User already exists",
		MsgUserCreated:      "User created successfully",
		MsgUserNotFound:     "User not found",
		MsgInvalidPassword:  "Invalid password",
		MsgUserLoggedIn:     "Logged in successfully",
		MsgUserLoggedOut:    "Logged out successfully",
		MsgAuthenticated:    "Authenticated",
		MsgUnauthorized:     "Unauthorized",
		MsgForbidden:        "You do not have permission to access this resource",
		MsgTooManyAttempts:  "Too many login attempts, try again later",
		MsgInternalError:    "Internal server error",
		MsgLanguageChanged:  "Language changed successfully",
		MsgInvalidLanguage:  "Unsupported language",
		MsgUsersFound:       "Users found",
		MsgCustomersFound:   "Customers found",
		MsgCustomerFound:    "Customer found",
		MsgCustomerNotFound: "Customer not found",
		MsgCustomerCreated:  "Customer created successfully",
		MsgCustomerUpdated:  "Customer updated successfully",
		MsgCustomerDeleted:  "Customer deleted successfully",
		MsgPaymentCreated:   "Payment created successfully",
		MsgPaymentsFound:    "Payments found",
		MsgPaymentNotFound:  "Payment not found",
		MsgInstallmentAdded: "Installment recorded successfully",
		MsgInstallments:     "Installments found",
		MsgOverpayment:      "Installment exceeds the remaining amount",
		MsgPasswordTooLong:  "Password must be at most 72 bytes",
		MsgInvalidAmount:    "Amount must be below 1,000,000,000,000 with at most two decimal places",
		MsgPageLogin:        "Login",
		MsgPageSignup:       "Sign up",
		MsgPageDashboard:    "Dashboard",
	},
	Urdu: {
		MsgRequiredFields:   "تمام خانے پُر کرنا لازمی ہیں",
		"requiredName":      "نام لازمی ہے",
		"requiredEmail":     "ای میل لازمی ہے",
		"requiredPassword":  "پاس ورڈ لازمی ہے",
		"requiredAmount":    "رقم صفر سے زیادہ ہونی چاہیے",
		MsgInvalidRequest:   "غلط درخواست",
		MsgInvalidID:        "غلط شناخت",
		MsgUserExists:       "صارف پہلے سے موجود ہے",
		MsgUserCreated:      "صارف کامیابی سے بن گیا",
		MsgUserNotFound:     "صارف نہیں ملا",
		MsgInvalidPassword:  "غلط پاس ورڈ",
		MsgUserLoggedIn:     "کامیابی سے لاگ ان ہو گئے",
		MsgUserLoggedOut:    "کامیابی سے لاگ آؤٹ ہو گئے",
		MsgAuthenticated:    "تصدیق شدہ",
		MsgUnauthorized:     "غیر مجاز",
		MsgForbidden:        "آپ کو اس تک رسائی کی اجازت نہیں ہے",
		MsgTooManyAttempts:  "لاگ ان کی بہت زیادہ کوششیں، بعد میں دوبارہ کوشش کریں",
		MsgInternalError:    "سرور میں اندرونی خرابی",
		MsgLanguageChanged:  "زبان کامیابی سے تبدیل ہو گئی",
		MsgInvalidLanguage:  "غیر معاون زبان",
		MsgUsersFound:       "صارفین مل گئے",
		MsgCustomersFound:   "گاہک مل گئے",
		MsgCustomerFound:    "گاہک مل گیا",
		MsgCustomerNotFound: "گاہک نہیں ملا",
		MsgCustomerCreated:  "گاہک کامیابی سے بن گیا",
		MsgCustomerUpdated:  "گاہک کامیابی سے اپ ڈیٹ ہو گیا",
		MsgCustomerDeleted:  "گاہک کامیابی سے حذف ہو گیا",
		MsgPaymentCreated:   "ادائیگی کامیابی سے بن گئی",
		MsgPaymentsFound:    "ادائیگیاں مل گئیں",
		MsgPaymentNotFound:  "ادائیگی نہیں ملی",
		MsgInstallmentAdded: "قسط کامیابی سے درج ہو گئی",
		MsgInstallments:     "اقساط مل گئیں",
		MsgOverpayment:      "قسط باقی رقم سے زیادہ ہے",
		MsgPasswordTooLong:  "پاس ورڈ زیادہ سے زیادہ 72 بائٹس کا ہو سکتا ہے",
		MsgInvalidAmount:    "رقم 1,000,000,000,000 سے کم اور زیادہ سے زیادہ دو اعشاریہ مقامات تک ہونی چاہیے",
		MsgPageLogin:        "لاگ ان",
		MsgPageSignup:       "سائن اپ",
		MsgPageDashboard:    "ڈیش بورڈ",
	},
}
