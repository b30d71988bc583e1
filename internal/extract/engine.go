// Package extract recovers a structured JobRecord from one empleos.net
// job-detail page. The markup has no stable schema, so every field is read
// through an ordered fallback chain of heuristics and degrades to a
// documented default instead of failing; Extract always returns a complete
// record.
package extract

import (
	"net/url"
	"strings"
	"time"

	"empleos-scraper/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// Engine extracts job records. It is stateless across calls and safe for
// concurrent use; it only reads the document tree and performs no I/O.
type Engine struct {
	base *url.URL
	now  func() time.Time
}

// New returns an Engine that resolves relative image and logo sources
// against baseURL.
func New(baseURL string) (*Engine, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Engine{base: u, now: time.Now}, nil
}

// Extract builds the full record for one detail page. sourceURL is carried
// into _job_apply_url verbatim; it is the record's identity for dedupe.
func (e *Engine) Extract(doc *goquery.Document, sourceURL string) domain.JobRecord {
	// Location runs once; its single result feeds address, location and
	// map_location identically.
	location := e.location(doc)

	return domain.JobRecord{
		FeaturedImage: e.featuredImage(doc),
		Title:         extractTitle(doc),
		Featured:      flag(isFeatured(doc)),
		Filled:        0,
		Urgent:        flag(isUrgent(doc)),
		Description:   extractDescription(doc),
		Category:      extractCategory(doc),
		Type:          extractType(doc),
		Tag:           extractTags(doc),
		ExpiryDate:    e.expiryDate(),
		Gender:        extractGender(doc),
		ApplyType:     "external",
		ApplyURL:      sourceURL,
		ApplyEmail:    extractEmail(doc),
		SalaryType:    extractSalaryType(doc),
		Salary:        extractSalary(doc),
		MaxSalary:     extractMaxSalary(doc),
		Experience:    labelValue(doc, reExperienceLabel),
		CareerLevel:   extractCareerLevel(doc),
		Qualification: labelValue(doc, reQualificationLabel),
		VideoURL:      extractVideo(doc),
		Photos:        e.photos(doc),
		DeadlineDate:  e.deadline(doc),
		Address:       location,
		Location:      location,
		MapLocation:   location,
	}
}

// expiryDate is "today + 90 days" as YYYY-MM-DD; also the deadline fallback.
func (e *Engine) expiryDate() string {
	return e.now().AddDate(0, 0, 90).Format("2006-01-02")
}

// resolve turns a possibly relative src/href into an absolute URL on the
// site's origin.
func (e *Engine) resolve(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return e.base.ResolveReference(ref).String()
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
