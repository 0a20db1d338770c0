package workflow

import (
	"regexp"
	"strconv"
	"strings"
)

var titleCountPrefix = regexp.MustCompile(`^\d+\s*`)

// RetitleForProductCount keeps the leading product-count prefix of a title in
// sync when the product list changes size. A zero count drops the prefix.
func RetitleForProductCount(title string, productCount int) string {
	rest := titleCountPrefix.ReplaceAllString(title, "")
	if productCount <= 0 {
		return rest
	}
	return strconv.Itoa(productCount) + " " + rest
}

// TitleWithoutCountPrefix strips the product-count prefix for display.
func TitleWithoutCountPrefix(title string) string {
	return strings.TrimSpace(titleCountPrefix.ReplaceAllString(title, ""))
}
