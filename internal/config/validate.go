package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills gaps with safe defaults and flags values that
// would make a run useless or impolite.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if strings.TrimSpace(out.Scrape.BaseURL) == "" {
		out.Scrape.BaseURL = "https://empleos.net"
	}
	if strings.TrimSpace(out.Scrape.SearchURL) == "" {
		out.Scrape.SearchURL = out.Scrape.BaseURL + "/buscar_vacantes.php"
	}
	if strings.TrimSpace(out.Scrape.Country) == "" {
		out.Scrape.Country = "1" // Costa Rica
	}
	if out.Scrape.MaxPages <= 0 {
		out.Scrape.MaxPages = 44
	}
	if out.Scrape.Workers <= 0 {
		out.Scrape.Workers = 4
	}
	if out.Scrape.RequestsPerSecond <= 0 {
		out.Scrape.RequestsPerSecond = 0.5
	}
	if out.Scrape.Burst <= 0 {
		out.Scrape.Burst = 1
	}
	if strings.TrimSpace(out.Scrape.UserAgent) == "" {
		out.Scrape.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if strings.TrimSpace(out.Export.JSONFile) == "" {
		out.Export.JSONFile = "costa_rica_jobs_full.json"
	}
	if strings.TrimSpace(out.Export.CSVFile) == "" {
		out.Export.CSVFile = "costa_rica_jobs_full.csv"
	}

	for _, raw := range []string{out.Scrape.BaseURL, out.Scrape.SearchURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			res.addErr("not an absolute URL: %q", raw)
		}
	}

	if out.Scrape.RequestsPerSecond > 2 {
		res.addWarn("requests_per_second is %.1f; the board is slow and may start refusing requests.", out.Scrape.RequestsPerSecond)
	}
	if out.Scrape.Workers > 8 {
		res.addWarn("workers is %d; more workers than the rate limit allows just idle.", out.Scrape.Workers)
	}

	return out, res
}
