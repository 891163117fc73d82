package scraper

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pfrederiksen/friidrett-stats/internal/perf"
	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

const StatbankBaseURL = "https://www.minfriidrettsstatistikk.info/php/LandsStatistikk.php"

// Class codes for the senior national lists.
const (
	StatbankClassWomen = 22
	StatbankClassMen   = 11
)

var (
	athleteIDRE = regexp.MustCompile(`[?&]showathl=(\d+)\b`)
	compIDRE    = regexp.MustCompile(`posttoresultlist\((\d+)\)`)
)

// BuildStatbankURL builds the per-class, per-season national list URL.
func BuildStatbankURL(showClass, season int) string {
	return fmt.Sprintf("%s?showclass=%d&showevent=0&outdoor=Y&showseason=%d&showclub=0",
		StatbankBaseURL, showClass, season)
}

// StatbankClass returns the class code used for a gender's senior list.
func StatbankClass(gender record.Gender) int {
	if gender == record.Women {
		return StatbankClassWomen
	}
	return StatbankClassMen
}

// ParseStatbank extracts the per-event ranking tables from a statbank page.
// Every event section is a div with the Norwegian id "øvelse" holding an h4
// title and one result table.
func ParseStatbank(htmlBytes []byte, season int, gender record.Gender, sourceURL string) ([]record.Row, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var out []record.Row
	doc.Find(`div[id='øvelse']`).Each(func(_ int, div *goquery.Selection) {
		eventName := normCell(div.Find("h4").First().Text())
		if eventName == "" {
			// The page wraps side-lists (foreign citizens etc.) in the same
			// div without a title; those duplicate the per-event tables.
			return
		}

		rows := div.Find("table").First().Find("tr")
		if rows.Length() < 2 {
			return
		}

		rank := 0
		resultCount := 0
		prevClean := ""
		rows.Slice(1, goquery.ToEnd).Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() < 6 {
				return
			}

			cleaned, ok := perf.Clean(normCell(cells.Eq(0).Text()))
			if !ok || cleaned.Clean == "" {
				return
			}

			athleteTD := cells.Eq(1)
			link := athleteTD.Find("a").First()
			if link.Length() == 0 {
				return
			}
			athleteName := normCell(link.Text())
			href, _ := link.Attr("href")
			m := athleteIDRE.FindStringSubmatch(href)
			if m == nil {
				return
			}
			athleteID, err := strconv.ParseInt(m[1], 10, 64)
			if err != nil {
				return
			}

			clubName := strings.TrimSpace(strings.TrimPrefix(ownText(athleteTD), ","))

			birth := parseBirthDate(cells.Eq(2).Text())
			placement := normCell(cells.Eq(3).Text())

			venueTD := cells.Eq(4)
			stadium, _ := venueTD.Attr("title")
			stadium = strings.TrimSpace(stadium)
			venueCity := strings.TrimSpace(strings.TrimSuffix(ownText(venueTD), ","))

			var compID int64
			var compName string
			if compLink := venueTD.Find("a").First(); compLink.Length() > 0 {
				compName = normCell(compLink.Text())
				compHref, _ := compLink.Attr("href")
				if m := compIDRE.FindStringSubmatch(compHref); m != nil {
					compID, _ = strconv.ParseInt(m[1], 10, 64)
				}
			}

			resultDate, _ := perf.ParseDayMonthYear(normCell(cells.Eq(5).Text()), 0)

			// Competition-style ranking: tied performances share the rank.
			resultCount++
			if cleaned.Clean != prevClean {
				rank = resultCount
				prevClean = cleaned.Clean
			}

			out = append(out, record.Row{
				Season:      season,
				Gender:      gender,
				EventLabel:  eventName,
				RankInList:  rank,
				RawPerf:     cleaned.Raw,
				CleanPerf:   cleaned.Clean,
				Wind:        cleaned.Wind,
				AthleteID:   athleteID,
				AthleteName: athleteName,
				ClubName:    clubName,
				BirthDate:   birth,
				Placement:   placement,
				VenueCity:   venueCity,
				Stadium:     stadium,
				CompID:      compID,
				CompName:    compName,
				ResultDate:  resultDate,
				SourceURL:   sourceURL,
			})
		})
	})
	return out, nil
}

// ownText collects the text nodes directly under a selection, skipping child
// elements; statbank venue/athlete cells mix a link with loose text.
func ownText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
	}
	return normCell(b.String())
}
