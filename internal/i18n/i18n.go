package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultLocale is used when the request carries no usable locale hint.
const DefaultLocale = "en-US"

const localeQueryKey = "lang"
const localeHeaderKey = "Accept-Language"

var supportedLocales = map[string]struct{}{
	"en-US": {},
	"ru-RU": {},
}

// ResolveLocale picks the response locale from the ?lang= query parameter
// or the Accept-Language header, falling back to DefaultLocale.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := normalizeLocale(c.Query(localeQueryKey)); lang != "" {
		return lang
	}
	header := c.GetHeader(localeHeaderKey)
	for _, part := range strings.Split(header, ",") {
		tag := part
		if idx := strings.Index(tag, ";"); idx >= 0 {
			tag = tag[:idx]
		}
		if lang := normalizeLocale(tag); lang != "" {
			return lang
		}
	}
	return DefaultLocale
}

// T translates a message key for the given locale. Unknown keys are
// returned unchanged so missing translations stay visible in responses.
func T(locale, key string) string {
	table, ok := messages[normalizeLocale(locale)]
	if !ok {
		table = messages[DefaultLocale]
	}
	if msg, ok := table[key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf translates a key and formats the result with args.
func Sprintf(locale, key string, args ...interface{}) string {
	msg := T(locale, key)
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func normalizeLocale(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	lowered := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lowered, "en"):
		return "en-US"
	case strings.HasPrefix(lowered, "ru"):
		return "ru-RU"
	}
	if _, ok := supportedLocales[trimmed]; ok {
		return trimmed
	}
	return ""
}

var messages = map[string]map[string]string{
	"en-US": {
		"error.bad_request":              "invalid request",
		"error.unauthorized":             "authentication required",
		"error.forbidden":                "permission denied",
		"error.internal":                 "internal server error",
		"error.auth_header_missing":      "authorization header is missing",
		"error.auth_header_invalid":      "authorization header is malformed",
		"error.jwt_secret_missing":       "jwt secret is not configured",
		"error.token_invalid":            "token is invalid",
		"error.token_revoked":            "token has been revoked",
		"error.user_disabled":            "account is disabled",
		"error.invalid_credentials":      "email or password is incorrect",
		"error.email_exists":             "email is already registered",
		"error.email_invalid":            "email address is invalid",
		"error.password_too_weak":        "password does not meet the policy",
		"error.password_min_length":      "password must be at least %d characters",
		"error.password_require_upper":   "password needs an uppercase letter",
		"error.password_require_lower":   "password needs a lowercase letter",
		"error.password_require_number":  "password needs a digit",
		"error.password_require_special": "password needs a special character",
		"error.password_invalid":         "current password is incorrect",
		"error.captcha_required":         "captcha is required",
		"error.captcha_invalid":          "captcha answer is incorrect",
		"error.user_id_invalid":          "user id is invalid",
		"error.user_id_type_invalid":     "user id has unexpected type",
		"error.admin_id_invalid":         "admin id is invalid",
		"error.admin_id_type_invalid":    "admin id has unexpected type",
		"error.faction_not_found":        "faction not found",
		"error.product_not_found":        "product not found",
		"error.cart_not_found":           "cart not found",
		"error.cart_item_not_found":      "cart item not found",
		"error.cart_empty":               "cart is empty",
		"error.order_not_found":          "order not found",
		"error.category_invalid":         "product category is invalid",
		"error.quantity_invalid":         "quantity is invalid",
		"error.price_invalid":            "price is invalid",
		"error.faction_in_use":           "faction still has products",
		"error.catalog_fetch_failed":     "failed to load catalog",
		"error.faction_fetch_failed":     "failed to load factions",
		"error.cart_fetch_failed":        "failed to load cart",
		"error.cart_update_failed":       "failed to update cart",
		"error.order_fetch_failed":       "failed to load orders",
		"error.register_failed":          "registration failed",
		"error.login_failed":             "login failed",
		"error.password_change_failed":   "password change failed",
		"error.faction_save_failed":      "failed to save faction",
		"error.product_save_failed":      "failed to save product",
		"error.upload_invalid":           "uploaded file is not acceptable",
		"error.file_missing":             "no file in request",
		"error.upload_failed":            "file upload failed",
		"error.login_too_many":           "too many login attempts, try again in %d seconds",
		"error.rate_limited":             "too many requests, try again in %d seconds",
		"error.rate_limit_unavailable":   "rate limiter is unavailable",
	},
	"ru-RU": {
		"error.bad_request":              "некорректный запрос",
		"error.unauthorized":             "требуется авторизация",
		"error.forbidden":                "доступ запрещён",
		"error.internal":                 "внутренняя ошибка сервера",
		"error.auth_header_missing":      "отсутствует заголовок авторизации",
		"error.auth_header_invalid":      "неверный заголовок авторизации",
		"error.jwt_secret_missing":       "jwt-секрет не настроен",
		"error.token_invalid":            "недействительный токен",
		"error.token_revoked":            "токен отозван",
		"error.user_disabled":            "учётная запись отключена",
		"error.invalid_credentials":      "неверный email или пароль",
		"error.email_exists":             "email уже зарегистрирован",
		"error.email_invalid":            "некорректный email",
		"error.password_too_weak":        "пароль не соответствует требованиям",
		"error.password_min_length":      "пароль должен содержать не менее %d символов",
		"error.password_require_upper":   "пароль должен содержать заглавную букву",
		"error.password_require_lower":   "пароль должен содержать строчную букву",
		"error.password_require_number":  "пароль должен содержать цифру",
		"error.password_require_special": "пароль должен содержать спецсимвол",
		"error.password_invalid":         "текущий пароль неверен",
		"error.captcha_required":         "требуется капча",
		"error.captcha_invalid":          "неверный ответ капчи",
		"error.user_id_invalid":          "некорректный идентификатор пользователя",
		"error.user_id_type_invalid":     "неожиданный тип идентификатора пользователя",
		"error.admin_id_invalid":         "некорректный идентификатор администратора",
		"error.admin_id_type_invalid":    "неожиданный тип идентификатора администратора",
		"error.faction_not_found":        "фракция не найдена",
		"error.product_not_found":        "товар не найден",
		"error.cart_not_found":           "корзина не найдена",
		"error.cart_item_not_found":      "позиция корзины не найдена",
		"error.cart_empty":               "корзина пуста",
		"error.order_not_found":          "заказ не найден",
		"error.category_invalid":         "некорректная категория товара",
		"error.quantity_invalid":         "некорректное количество",
		"error.price_invalid":            "некорректная цена",
		"error.faction_in_use":           "у фракции ещё есть товары",
		"error.catalog_fetch_failed":     "не удалось загрузить каталог",
		"error.faction_fetch_failed":     "не удалось загрузить фракции",
		"error.cart_fetch_failed":        "не удалось загрузить корзину",
		"error.cart_update_failed":       "не удалось обновить корзину",
		"error.order_fetch_failed":       "не удалось загрузить заказы",
		"error.register_failed":          "не удалось зарегистрироваться",
		"error.login_failed":             "не удалось войти",
		"error.password_change_failed":   "не удалось сменить пароль",
		"error.faction_save_failed":      "не удалось сохранить фракцию",
		"error.product_save_failed":      "не удалось сохранить товар",
		"error.upload_invalid":           "файл не принят",
		"error.file_missing":             "файл не передан",
		"error.upload_failed":            "не удалось загрузить файл",
		"error.login_too_many":           "слишком много попыток входа, повторите через %d секунд",
		"error.rate_limited":             "слишком много запросов, повторите через %d секунд",
		"error.rate_limit_unavailable":   "ограничитель запросов недоступен",
	},
}
