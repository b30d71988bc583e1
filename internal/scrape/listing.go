package scrape

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"empleos-scraper/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

var reNextLink = regexp.MustCompile(`(?i)siguiente|next`)

// ListingURL builds the search URL for one listing page. The empty Claves
// and Area params are what the site's own search form sends.
func ListingURL(searchURL, country string, page int) string {
	u, err := url.Parse(searchURL)
	if err != nil {
		return searchURL
	}
	q := url.Values{}
	q.Set("Claves", "")
	q.Set("Area", "")
	q.Set("Pais", country)
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}

// ListingLinks returns detail-page URLs found on a listing page, resolved
// against base and deduplicated in page order. Detail pages all live under
// a puesto/ path.
func ListingLinks(doc *goquery.Document, base *url.URL) []string {
	seen := map[string]bool{}
	var links []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !strings.Contains(href, "puesto/") {
			return
		}
		abs := util.AbsoluteURL(base, href)
		if abs == "" || seen[abs] {
			return
		}
		seen[abs] = true
		links = append(links, abs)
	})
	return links
}

// HasNextPage reports whether the listing page links to a following page.
func HasNextPage(doc *goquery.Document) bool {
	found := false
	doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if reNextLink.MatchString(a.Text()) {
			found = true
			return false
		}
		return true
	})
	return found
}
