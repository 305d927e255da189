package domain

import (
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

// Recognised Indonesian numbering plans, matched against the digits only
var indonesianPhonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^08\d{8,13}$`),  // mobile
	regexp.MustCompile(`^628\d{8,13}$`), // mobile, international prefix
	regexp.MustCompile(`^8\d{8,13}$`),   // mobile without trunk zero
	regexp.MustCompile(`^021\d{7,8}$`),  // Jakarta landline
	regexp.MustCompile(`^061\d{7,8}$`),  // Medan landline
	regexp.MustCompile(`^031\d{7,8}$`),  // Surabaya landline
}

var (
	localMobileGroups = regexp.MustCompile(`(\d{4})(\d{4})(\d+)`)
	intlMobileGroups  = regexp.MustCompile(`(\d{3})(\d{4})(\d{4})(\d+)`)
)

// CleanPhone strips everything but digits
func CleanPhone(phone string) string {
	return nonDigit.ReplaceAllString(phone, "")
}

// ValidIndonesianPhone reports whether the digits of phone match a recognised pattern.
// Separators and a leading "+" are ignored.
func ValidIndonesianPhone(phone string) bool {
	clean := CleanPhone(phone)
	for _, pattern := range indonesianPhonePatterns {
		if pattern.MatchString(clean) {
			return true
		}
	}
	return false
}

// FormatPhone groups mobile numbers for display. It never changes which digits are kept,
// so validation gives the same result before and after formatting.
func FormatPhone(phone string) string {
	clean := CleanPhone(phone)

	if strings.HasPrefix(clean, "08") {
		return localMobileGroups.ReplaceAllString(clean, "$1-$2-$3")
	}
	if strings.HasPrefix(clean, "628") {
		return intlMobileGroups.ReplaceAllString(clean, "+$1-$2-$3-$4")
	}

	return phone
}
