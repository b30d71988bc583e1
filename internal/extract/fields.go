package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Label and class patterns. All of these are matched against folded
// (lowercase, accent-stripped) text, so they are written without accents.
// Spanish and English synonyms are tried together in one pattern.
var (
	reBadge              = regexp.MustCompile(`(?i)vacante\s+fresca`)
	reTitleClass         = regexp.MustCompile(`title|puesto|job-title`)
	reLogoClass          = regexp.MustCompile(`logo|company`)
	reFeatured           = regexp.MustCompile(`featured|destacado`)
	reUrgentText         = regexp.MustCompile(`vacante\s+fresca|urgente`)
	reDescLabel          = regexp.MustCompile(`funciones del puesto|descripcion`)
	reDescClass          = regexp.MustCompile(`description|funciones|contenido`)
	reAreaLabel          = regexp.MustCompile(`area del puesto|category`)
	reJobTypeText        = regexp.MustCompile(`tiempo completo|tiempo parcial|full[-\s]?time|part[-\s]?time`)
	reTagIconSrc         = regexp.MustCompile(`icon|tag`)
	reGenderLabel        = regexp.MustCompile(`genero|gender|sexo`)
	reEmail              = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	reSalaryLabel        = regexp.MustCompile(`salario|salary|sueldo`)
	reNumber             = regexp.MustCompile(`\d+[\d,.]*`)
	reExperienceLabel    = regexp.MustCompile(`experiencia|experience`)
	reCareerLevelLabel   = regexp.MustCompile(`nivel de computo|career level|nivel`)
	reQualificationLabel = regexp.MustCompile(`nivel academico|education|qualification|escolaridad`)
	reVideoSrc           = regexp.MustCompile(`youtube|vimeo`)
	reDeadlineLabel      = regexp.MustCompile(`fecha\s+limite|deadline|cierre`)
	reLocClass           = regexp.MustCompile(`location|ubicacion`)
	reLocLabel           = regexp.MustCompile(`ubicacion del puesto|location|ubicacion`)
	rePinClass           = regexp.MustCompile(`location|map|pin`)

	// Bare "Tibás, San Jose" / "Barrio Tournon, Costa Rica" style text.
	// Matched against raw node text, case-insensitively.
	reLocFreeText = regexp.MustCompile(`(?i)[A-Z][a-záéíóúñ]+,\s*(?:San Jose|Costa Rica)`)
)

var numberCleaner = strings.NewReplacer(",", "", ".", "")

// extractTitle takes the first real heading, with the "Vacante Fresca"
// badge stripped; headings of one or two runes are noise (badge leftovers,
// icons). Falls back to a title-ish class.
func extractTitle(doc *goquery.Document) string {
	var title string
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := cleanText(reBadge.ReplaceAllString(s.Text(), ""))
		if len([]rune(t)) > 2 {
			title = t
			return false
		}
		return true
	})
	return firstOf("",
		func() string { return title },
		func() string {
			if s := findByClass(doc, reTitleClass, ""); s != nil {
				return cleanText(reBadge.ReplaceAllString(s.Text(), ""))
			}
			return ""
		},
	)
}

func (e *Engine) featuredImage(doc *goquery.Document) string {
	if s := findByClass(doc, reLogoClass, "img"); s != nil {
		if src, ok := s.Attr("src"); ok && strings.TrimSpace(src) != "" {
			return e.resolve(src)
		}
	}
	return ""
}

func isFeatured(doc *goquery.Document) bool {
	return findByClass(doc, reFeatured, "") != nil
}

func isUrgent(doc *goquery.Document) bool {
	return findText(doc, reUrgentText) != nil
}

func extractDescription(doc *goquery.Document) string {
	return firstOf("",
		func() string { return descriptionNearLabel(doc) },
		func() string {
			if s := findByClass(doc, reDescClass, ""); s != nil {
				return nodeLines(s.Nodes[0])
			}
			return ""
		},
	)
}

// descriptionNearLabel reads the block after a "Funciones del Puesto" or
// "Descripción" label. Unlike the other label-then-value fields, the
// fallback when the label's element has no sibling is the enclosing
// container, since descriptions often wrap the label and body together.
func descriptionNearLabel(doc *goquery.Document) string {
	label := findText(doc, reDescLabel)
	if label == nil || label.Parent == nil {
		return ""
	}
	value := nextSiblingElement(label.Parent)
	if value == nil {
		value = label.Parent.Parent
	}
	if value == nil {
		return ""
	}
	return nodeLines(value)
}

func extractCategory(doc *goquery.Document) string {
	return firstOf("Aduanas", func() string { return labelValue(doc, reAreaLabel) })
}

// extractType normalizes any employment-type mention anywhere on the page
// to one of the two canonical Spanish strings.
func extractType(doc *goquery.Document) string {
	node := findText(doc, reJobTypeText)
	if node != nil {
		text := foldText(node.Data)
		switch {
		case strings.Contains(text, "completo") || strings.Contains(text, "full"):
			return "Tiempo Completo"
		case strings.Contains(text, "parcial") || strings.Contains(text, "medio") || strings.Contains(text, "part"):
			return "Tiempo Parcial"
		}
	}
	return "Tiempo Completo"
}

// extractTags collects alt text of icon/tag images.
func extractTags(doc *goquery.Document) string {
	var tags []string
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if !reTagIconSrc.MatchString(foldText(src)) {
			return
		}
		if alt := strings.TrimSpace(s.AttrOr("alt", "")); alt != "" {
			tags = append(tags, alt)
		}
	})
	return strings.Join(tags, ",")
}

func extractGender(doc *goquery.Document) string {
	text := strings.ToLower(labelValue(doc, reGenderLabel))
	switch {
	case text == "":
		return "Indistinto"
	case strings.Contains(text, "masculino") || strings.Contains(text, "hombre") || strings.Contains(text, "male"):
		return "Masculino"
	case strings.Contains(text, "femenino") || strings.Contains(text, "mujer") || strings.Contains(text, "female"):
		return "Femenino"
	case strings.Contains(text, "indistinto") || strings.Contains(text, "ambos") || strings.Contains(text, "both"):
		return "Indistinto"
	}
	return "Indistinto"
}

// extractEmail scans the whole page text; contact emails rarely sit in a
// predictable element.
func extractEmail(doc *goquery.Document) string {
	return reEmail.FindString(doc.Text())
}

// salaryText returns the flattened text of the element enclosing the first
// salary label, which carries the figures and the period.
func salaryText(doc *goquery.Document) string {
	label := findText(doc, reSalaryLabel)
	if label == nil || label.Parent == nil {
		return ""
	}
	return nodeText(label.Parent)
}

func extractSalaryType(doc *goquery.Document) string {
	text := strings.ToLower(salaryText(doc))
	switch {
	case strings.Contains(text, "mensual") || strings.Contains(text, "monthly") || strings.Contains(text, "mes"):
		return "Mensual"
	case strings.Contains(text, "anual") || strings.Contains(text, "yearly") || strings.Contains(text, "año"):
		return "Anual"
	case strings.Contains(text, "hora") || strings.Contains(text, "hourly"):
		return "Por Hora"
	case strings.Contains(text, "semanal") || strings.Contains(text, "weekly") || strings.Contains(text, "semana"):
		return "Semanal"
	}
	return "Mensual"
}

// extractSalary returns the first numeric token near the salary label with
// thousands separators stripped; extractMaxSalary the second, when a range
// is given.
func extractSalary(doc *goquery.Document) string {
	if nums := reNumber.FindAllString(salaryText(doc), -1); len(nums) >= 1 {
		return numberCleaner.Replace(nums[0])
	}
	return ""
}

func extractMaxSalary(doc *goquery.Document) string {
	if nums := reNumber.FindAllString(salaryText(doc), -1); len(nums) >= 2 {
		return numberCleaner.Replace(nums[1])
	}
	return ""
}

func extractCareerLevel(doc *goquery.Document) string {
	return firstOf("Nivel Básico", func() string { return labelValue(doc, reCareerLevelLabel) })
}

func extractVideo(doc *goquery.Document) string {
	var src string
	doc.Find("iframe[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("src")
		if reVideoSrc.MatchString(foldText(v)) {
			src = v
			return false
		}
		return true
	})
	return src
}

// photos collects up to five content images, skipping logos and icons.
func (e *Engine) photos(doc *goquery.Document) string {
	var photos []string
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		src = strings.TrimSpace(src)
		if src == "" {
			return true
		}
		low := strings.ToLower(src)
		if strings.Contains(low, "logo") || strings.Contains(low, "icon") {
			return true
		}
		photos = append(photos, e.resolve(src))
		return len(photos) < 5
	})
	return strings.Join(photos, ",")
}

// deadline parses a labeled dd/mm/yyyy deadline; anything unparsable falls
// back to the computed expiry date.
func (e *Engine) deadline(doc *goquery.Document) string {
	if raw := labelValue(doc, reDeadlineLabel); raw != "" {
		if t, err := time.Parse("02/01/2006", raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return e.expiryDate()
}

// location tries, in order: a location-ish class, the "Ubicación del
// Puesto" label, text next to a map/pin icon, and finally a bare
// "Town, Costa Rica" text pattern. The order is deliberate; keep it even
// where a later step would look more precise.
func (e *Engine) location(doc *goquery.Document) string {
	return firstOf("Costa Rica",
		func() string {
			if s := findByClass(doc, reLocClass, ""); s != nil {
				return cleanText(s.Text())
			}
			return ""
		},
		func() string { return labelValue(doc, reLocLabel) },
		func() string { return locationNearPin(doc) },
		func() string {
			if n := findTextRaw(doc, reLocFreeText); n != nil {
				return strings.TrimSpace(n.Data)
			}
			return ""
		},
	)
}

// locationNearPin reads the sibling text of map/pin icon elements; very
// short siblings are icon glyphs or separators, not place names.
func locationNearPin(doc *goquery.Document) string {
	var out string
	doc.Find("i[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		if !rePinClass.MatchString(foldText(class)) {
			return true
		}
		sib := nextSiblingElement(s.Nodes[0])
		if sib == nil {
			return true
		}
		if t := cleanText(nodeText(sib)); len([]rune(t)) > 3 {
			out = t
			return false
		}
		return true
	})
	return out
}
