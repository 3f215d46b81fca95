package catalog

// Message is the bilingual text shown to users for a code.
type Message struct {
	EN string
	AR string
}

func (m Message) in(lang Language) string {
	if lang == Arabic && m.AR != "" {
		return m.AR
	}
	return m.EN
}

var messages = map[Code]Message{
	AuthTokenRequired:           {EN: "Authentication token is required", AR: "رمز المصادقة مطلوب"},
	AuthInvalidToken:            {EN: "Invalid authentication token", AR: "رمز المصادقة غير صحيح"},
	AuthTokenExpired:            {EN: "Authentication token has expired", AR: "انتهت صلاحية رمز المصادقة"},
	AuthInvalidCredentials:      {EN: "Invalid credentials provided", AR: "بيانات الاعتماد غير صحيحة"},
	AuthUserNotFound:            {EN: "User not found", AR: "المستخدم غير موجود"},
	AuthUserExists:              {EN: "User already exists", AR: "المستخدم موجود بالفعل"},
	AuthAccessDenied:            {EN: "Access denied", AR: "تم رفض الوصول"},
	AuthInsufficientPermissions: {EN: "Insufficient permissions", AR: "صلاحيات غير كافية"},
	AuthAccountLocked:           {EN: "Account is locked", AR: "الحساب مقفل"},
	AuthAccountDisabled:         {EN: "Account is disabled", AR: "الحساب معطل"},

	OTPInvalid:         {EN: "Invalid OTP code", AR: "رمز التحقق غير صحيح"},
	OTPExpired:         {EN: "OTP code has expired", AR: "انتهت صلاحية رمز التحقق"},
	OTPAlreadyUsed:     {EN: "OTP code has already been used", AR: "تم استخدام رمز التحقق بالفعل"},
	OTPTooManyAttempts: {EN: "Too many OTP attempts. Please try again later", AR: "محاولات كثيرة لرمز التحقق. يرجى المحاولة لاحقاً"},
	OTPSendFailed:      {EN: "Failed to send OTP code", AR: "فشل في إرسال رمز التحقق"},
	OTPResendLimit:     {EN: "OTP resend limit exceeded", AR: "تم تجاوز حد إعادة إرسال رمز التحقق"},

	ValRequired:        {EN: "This field is required", AR: "هذا الحقل مطلوب"},
	ValInvalidFormat:   {EN: "Invalid format", AR: "تنسيق غير صحيح"},
	ValInvalidPhone:    {EN: "Invalid phone number format", AR: "تنسيق رقم الهاتف غير صحيح"},
	ValInvalidEmail:    {EN: "Invalid email format", AR: "تنسيق البريد الإلكتروني غير صحيح"},
	ValInvalidPrice:    {EN: "Invalid price value", AR: "قيمة السعر غير صحيحة"},
	ValInvalidDate:     {EN: "Invalid date format", AR: "تنسيق التاريخ غير صحيح"},
	ValTextTooShort:    {EN: "Text is too short", AR: "النص قصير جداً"},
	ValTextTooLong:     {EN: "Text is too long", AR: "النص طويل جداً"},
	ValNumberTooSmall:  {EN: "Number is too small", AR: "الرقم صغير جداً"},
	ValNumberTooLarge:  {EN: "Number is too large", AR: "الرقم كبير جداً"},
	ValInvalidFileType: {EN: "Invalid file type", AR: "نوع الملف غير صحيح"},
	ValFileTooLarge:    {EN: "File size is too large", AR: "حجم الملف كبير جداً"},

	UserNotFound:          {EN: "User not found", AR: "المستخدم غير موجود"},
	UserExists:            {EN: "User already exists", AR: "المستخدم موجود بالفعل"},
	UserProfileIncomplete: {EN: "User profile is incomplete", AR: "الملف الشخصي غير مكتمل"},
	UserPhoneRegistered:   {EN: "Phone number is already registered", AR: "رقم الهاتف مسجل بالفعل"},
	UserEmailRegistered:   {EN: "Email is already registered", AR: "البريد الإلكتروني مسجل بالفعل"},
	UserSuspended:         {EN: "User account is suspended", AR: "حساب المستخدم معلق"},

	ProductNotFound:              {EN: "Product not found", AR: "المنتج غير موجود"},
	ProductExists:                {EN: "Product already exists", AR: "المنتج موجود بالفعل"},
	ProductOutOfStock:            {EN: "Product is out of stock", AR: "المنتج غير متوفر"},
	ProductInactive:              {EN: "Product is inactive", AR: "المنتج غير نشط"},
	ProductImageUploadFailed:     {EN: "Failed to upload product image", AR: "فشل في رفع صورة المنتج"},
	ProductInvalidCategory:       {EN: "Invalid product category", AR: "فئة المنتج غير صحيحة"},
	ProductInvalidPrice:          {EN: "Invalid product price", AR: "سعر المنتج غير صحيح"},
	ProductDeleteFailed:          {EN: "Failed to delete product", AR: "فشل في حذف المنتج"},
	ProductMinimumExceedsInitial: {EN: "Minimum price must be equal to or less than initial price", AR: "يجب أن يكون السعر الأدنى مساوياً أو أقل من السعر الأولي"},

	OrderNotFound:          {EN: "Order not found", AR: "الطلب غير موجود"},
	OrderAlreadyProcessed:  {EN: "Order has already been processed", AR: "تم معالجة الطلب بالفعل"},
	OrderCancelFailed:      {EN: "Failed to cancel order", AR: "فشل في إلغاء الطلب"},
	OrderPaymentFailed:     {EN: "Payment processing failed", AR: "فشل في معالجة الدفع"},
	OrderInsufficientStock: {EN: "Insufficient stock for order", AR: "المخزون غير كافي للطلب"},
	OrderInvalidStatus:     {EN: "Invalid order status", AR: "حالة الطلب غير صحيحة"},
	OrderDeliveryFailed:    {EN: "Order delivery failed", AR: "فشل في تسليم الطلب"},

	SysDatabaseError:   {EN: "Database connection error", AR: "خطأ في الاتصال بقاعدة البيانات"},
	SysNetworkError:    {EN: "Network connection error", AR: "خطأ في الاتصال بالشبكة"},
	SysUnavailable:     {EN: "Service is temporarily unavailable", AR: "الخدمة غير متاحة مؤقتاً"},
	SysMaintenance:     {EN: "System is under maintenance", AR: "النظام تحت الصيانة"},
	SysRateLimited:     {EN: "Rate limit exceeded. Please try again later", AR: "تم تجاوز حد الطلبات. يرجى المحاولة لاحقاً"},
	SysStorageFull:     {EN: "Storage is full", AR: "التخزين ممتلئ"},
	SysConfiguration:   {EN: "System configuration error", AR: "خطأ في إعدادات النظام"},
	SysExternalService: {EN: "External service error", AR: "خطأ في الخدمة الخارجية"},

	GenUnknown:      {EN: "An unknown error occurred", AR: "حدث خطأ غير معروف"},
	GenInternal:     {EN: "Internal server error", AR: "خطأ داخلي في الخادم"},
	GenBadRequest:   {EN: "Bad request", AR: "طلب غير صحيح"},
	GenNotFound:     {EN: "Resource not found", AR: "المورد غير موجود"},
	GenConflict:     {EN: "Resource conflict", AR: "تعارض في المورد"},
	GenTimeout:      {EN: "Request timeout", AR: "انتهت مهلة الطلب"},
	GenForbidden:    {EN: "Access forbidden", AR: "الوصول محظور"},
	GenUnauthorized: {EN: "Unauthorized access", AR: "وصول غير مصرح به"},
}

// Lookup returns the bilingual message for a code and whether the code is known.
func Lookup(code Code) (Message, bool) {
	m, ok := messages[code]
	return m, ok
}

// Localize returns the message for code in lang. Unknown codes resolve to
// GenUnknown; languages without an entry resolve to English.
func Localize(code Code, lang Language) string {
	m, ok := messages[code]
	if !ok {
		m = messages[GenUnknown]
	}
	return m.in(lang)
}
