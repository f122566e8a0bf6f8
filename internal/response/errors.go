package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrUnauthorized       ErrCode = "UNAUTHORIZED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation        ErrCode = "VALIDATION_ERROR"
	ErrInvalidID         ErrCode = "INVALID_ID"
	ErrAmbiguousCategory ErrCode = "AMBIGUOUS_CATEGORY"
	ErrEmptyMessage      ErrCode = "EMPTY_MESSAGE"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrCategoryExists   ErrCode = "CATEGORY_EXISTS"
	ErrCategoryHasItems ErrCode = "CATEGORY_HAS_ITEMS"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Assistant ─────────────────────────────────────────────────────
	ErrAssistantNotConfigured ErrCode = "ASSISTANT_NOT_CONFIGURED"
	ErrMenuEmpty              ErrCode = "MENU_EMPTY"
	ErrAssistantFailed        ErrCode = "ASSISTANT_FAILED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns the user-facing Persian message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "اطلاعات ورود صحیح نیست."
	case ErrUnauthorized:
		return "برای انجام این عملیات ابتدا وارد شوید."
	case ErrValidation:
		return "ورودی نامعتبر است."
	case ErrInvalidID:
		return "شناسه معتبر نیست."
	case ErrAmbiguousCategory:
		return "categoryId و categoryName را همزمان ارسال نکنید."
	case ErrEmptyMessage:
		return "پیام کاربر خالی است."
	case ErrNotFound:
		return "موردی با این شناسه پیدا نشد."
	case ErrCategoryExists:
		return "دسته‌بندی با این نام وجود دارد."
	case ErrCategoryHasItems:
		return "برای حذف این دسته‌بندی ابتدا محصولات مرتبط را حذف یا منتقل کنید."
	case ErrFileRequired:
		return "فایل ارسال نشده است."
	case ErrUnsupportedFile:
		return "فقط بارگذاری تصویر مجاز است."
	case ErrFileTooLarge:
		return "حجم فایل باید کمتر از ۵ مگابایت باشد."
	case ErrAssistantNotConfigured:
		return "کلید Gemini تنظیم نشده است."
	case ErrMenuEmpty:
		return "منو خالی است."
	case ErrAssistantFailed:
		return "پاسخ هوش مصنوعی قابل دریافت نیست."
	case ErrInternal:
		return "خطای داخلی سرور رخ داده است."
	default:
		return "خطای غیرمنتظره‌ای رخ داده است."
	}
}
