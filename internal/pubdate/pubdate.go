// Package pubdate derives the publish date label and the output filename
// from the feed's updated timestamp. All calendar math happens in JST.
package pubdate

import (
	"log/slog"
	"regexp"
	"time"

	"github.com/araddon/dateparse"
)

const (
	FileLabel        = "Qiitaトレンド"
	FallbackFileName = FileLabel + ".txt"

	jstOffset = 9 * 60 * 60
)

// JST is the fixed UTC+9 zone. It does not depend on tzdata.
var JST = time.FixedZone("JST", jstOffset)

var datePrefix = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

// DerivedDate is the day after the feed's update date, in two display forms.
type DerivedDate struct {
	Formatted string // 2006/01/02
	Short     string // 06.01.02
}

// Deriver holds the clock and logger used by the date helpers.
type Deriver struct {
	Now    func() time.Time
	Logger *slog.Logger
}

func (d Deriver) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Deriver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// NextDay returns the calendar day after feedUpdated's date in JST. When
// feedUpdated does not start with a valid YYYY-MM-DD the current JST date
// is used as the base instead.
func (d Deriver) NextDay(feedUpdated string) DerivedDate {
	base, ok := parseDatePrefix(feedUpdated)
	if !ok {
		now := d.now().In(JST)
		base = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, JST)
		d.logger().Debug("feed date not usable, using current JST date", "feed_updated", feedUpdated, "base", base.Format("2006-01-02"))
	}

	next := base.AddDate(0, 0, 1)
	return DerivedDate{
		Formatted: next.Format("2006/01/02"),
		Short:     next.Format("06.01.02"),
	}
}

func parseDatePrefix(s string) (time.Time, bool) {
	if len(s) < 10 || !datePrefix.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s[:10], JST)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FileName builds "YYYYMMDD_Qiitaトレンド.txt" from feedUpdated, trying a
// regex match, then fixed dash positions, then a generic timestamp parse
// shifted to JST. Empty or unusable input yields FallbackFileName.
func (d Deriver) FileName(feedUpdated string) string {
	log := d.logger().With("feed_updated", feedUpdated)

	if feedUpdated == "" {
		log.Debug("empty feed timestamp, using fallback filename")
		return FallbackFileName
	}

	if m := datePrefix.FindStringSubmatch(feedUpdated); m != nil {
		log.Debug("filename derived", "method", "regex")
		return m[1] + m[2] + m[3] + "_" + FileLabel + ".txt"
	}

	if len(feedUpdated) >= 10 && feedUpdated[4] == '-' && feedUpdated[7] == '-' {
		log.Debug("filename derived", "method", "positional")
		return feedUpdated[0:4] + feedUpdated[5:7] + feedUpdated[8:10] + "_" + FileLabel + ".txt"
	}

	t, err := dateparse.ParseAny(feedUpdated)
	if err != nil {
		log.Warn("feed timestamp unparseable, using fallback filename", "error", err)
		return FallbackFileName
	}
	shifted := t.UTC().Add(jstOffset * time.Second)
	log.Debug("filename derived", "method", "parse", "parsed", t.Format(time.RFC3339))
	return shifted.Format("20060102") + "_" + FileLabel + ".txt"
}
