package dataset

import (
	"fmt"
	"strings"
	"time"
)

var fourDigitLayouts = []string{"1/2/2006", "2006-01-02"}

var twoDigitLayouts = []string{"1/2/06"}

// ParseDate 解析入职、离职等日期。
// 两位数的年份沿用 time 包的世纪窗口：69-99 为 19xx，00-68 为 20xx。
func ParseDate(raw string) (time.Time, error) {
	return parseDate(raw, func(t time.Time) time.Time { return t })
}

// ParseBirthDate 解析出生日期，两位数的年份一律视为 19xx。
func ParseBirthDate(raw string) (time.Time, error) {
	return parseDate(raw, func(t time.Time) time.Time {
		return time.Date(1900+t.Year()%100, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	})
}

func parseDate(raw string, century func(time.Time) time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	for _, layout := range fourDigitLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	if hasTwoDigitYear(raw) {
		for _, layout := range twoDigitLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return century(t), nil
			}
		}
	}

	return time.Time{}, fmt.Errorf("无法识别的日期格式: %q", raw)
}

func hasTwoDigitYear(raw string) bool {
	i := strings.LastIndex(raw, "/")
	return i >= 0 && len(raw)-i-1 == 2
}
