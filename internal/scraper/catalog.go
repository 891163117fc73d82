package scraper

import "github.com/pfrederiksen/friidrett-stats/internal/record"

// LegacyPage is one federation year-statistics page. The site only ever
// published 2008 and 2010 in this format.
type LegacyPage struct {
	Season int
	Gender record.Gender
	URL    string
}

// LegacyPages lists every known federation statistics page. The two PDF
// race-walk URLs are dead today but stay in the catalog so a restored source
// is picked up without code changes; ParseLegacy skips PDF payloads.
var LegacyPages = []LegacyPage{
	// Men 2008: sprint, distance, hurdles, jumps, throws, combined.
	{Season: 2008, Gender: record.Men, URL: "https://www.friidrett.no/link/ededda76178747499ab11bea8ebaa930.aspx"},
	{Season: 2008, Gender: record.Men, URL: "https://www.friidrett.no/link/47d7e60b56c24727b14b0df456ebb049.aspx"},
	{Season: 2008, Gender: record.Men, URL: "https://www.friidrett.no/link/0329d071badb421ebdbae98d140c7ccf.aspx"},
	{Season: 2008, Gender: record.Men, URL: "https://www.friidrett.no/link/d00ff6eaace545ffaa3e97f7f2a658be.aspx"},
	{Season: 2008, Gender: record.Men, URL: "https://www.friidrett.no/link/14ef5ded64ec4edc84de594fc0929cab.aspx"},
	{Season: 2008, Gender: record.Men, URL: "https://www.friidrett.no/link/2b28b7d7700a496794d78ebd385aaacd.aspx"},
	// Women 2008: sprint, distance, hurdles, jumps, throws, combined.
	{Season: 2008, Gender: record.Women, URL: "https://www.friidrett.no/link/3ff25f4a57bb445c9643a678d7dc259e.aspx"},
	{Season: 2008, Gender: record.Women, URL: "https://www.friidrett.no/link/7d498b1130774467a50e2918667213df.aspx"},
	{Season: 2008, Gender: record.Women, URL: "https://www.friidrett.no/link/62dec3aef5414932af0395bf434f4f21.aspx"},
	{Season: 2008, Gender: record.Women, URL: "https://www.friidrett.no/link/1d94cc63d00f48cebe4be05fec33aa9a.aspx"},
	{Season: 2008, Gender: record.Women, URL: "https://www.friidrett.no/link/8a94b13eb9d34f1b8e1864b7b6bb67b9.aspx"},
	{Season: 2008, Gender: record.Women, URL: "https://www.friidrett.no/globalassets/aktivitet/statistikk/arsstatistikker/2008/www.friidrett.no-ksmk08.htm"},
	// 2008 senior race walk, both genders share the PDF.
	{Season: 2008, Gender: record.Men, URL: "https://www.friidrett.no/globalassets/aktivitet/statistikk/arsstatistikker/2008/www.friidrett.no-kappgangs2008.pdf"},
	{Season: 2008, Gender: record.Women, URL: "https://www.friidrett.no/globalassets/aktivitet/statistikk/arsstatistikker/2008/www.friidrett.no-kappgangs2008.pdf"},
	// Men 2010.
	{Season: 2010, Gender: record.Men, URL: "https://www.friidrett.no/link/9f75977878cc4932809862cd399e435c.aspx"},
	{Season: 2010, Gender: record.Men, URL: "https://www.friidrett.no/link/ef7554091d4f4e3eb3d27159365e2f82.aspx"},
	{Season: 2010, Gender: record.Men, URL: "https://www.friidrett.no/link/01774b1d5d9842ddb8622316090d03b7.aspx"},
	{Season: 2010, Gender: record.Men, URL: "https://www.friidrett.no/link/580473c8526f4e0d879df48950427fe0.aspx"},
	{Season: 2010, Gender: record.Men, URL: "https://www.friidrett.no/link/97eefbd05e3b4b7aad6f13569801a065.aspx"},
	{Season: 2010, Gender: record.Men, URL: "https://www.friidrett.no/link/2d3b2204f863462c8b3f79a57010357d.aspx"},
	// Women 2010.
	{Season: 2010, Gender: record.Women, URL: "https://www.friidrett.no/link/e21697d0f7db47fcb77d6825cda87118.aspx"},
	{Season: 2010, Gender: record.Women, URL: "https://www.friidrett.no/link/38589b538d324a7eacfd96e33ac85316.aspx"},
	{Season: 2010, Gender: record.Women, URL: "https://www.friidrett.no/link/3a3ffae3dd724e7f89ebfe9555ef561a.aspx"},
	{Season: 2010, Gender: record.Women, URL: "https://www.friidrett.no/link/24faa01d343a4e25807beddb39f4b73b.aspx"},
	{Season: 2010, Gender: record.Women, URL: "https://www.friidrett.no/link/5be74b7a9c3a4d9089371d20f19fb7d5.aspx"},
	{Season: 2010, Gender: record.Women, URL: "https://www.friidrett.no/link/2f5b992e90744492b8a25ad530088cd2.aspx"},
}

// LegacyPagesFor filters the catalog by season set and gender. An empty
// gender matches both.
func LegacyPagesFor(years map[int]bool, gender record.Gender) []LegacyPage {
	var out []LegacyPage
	for _, p := range LegacyPages {
		if !years[p.Season] {
			continue
		}
		if gender != "" && p.Gender != gender {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RoadPage is one Kondis national year list for a single road event and
// gender. Disabled pages are kept in the catalog so sync can purge rows
// previously ingested from them.
type RoadPage struct {
	Season   int
	Gender   record.Gender
	EventNo  string
	URL      string
	Disabled bool
}

var RoadPages = []RoadPage{
	// 5 km (Women)
	{Season: 2025, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2025-5-km-kvinner/469715"},
	{Season: 2024, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2024-5-km-kvinner/469761"},
	{Season: 2023, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2023-5-km-kvinner/469406"},
	{Season: 2022, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2022-5-km-kvinner/469196"},
	{Season: 2021, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2021-5-km-kvinner/469308"},
	{Season: 2020, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2020-5-km-kvinner/469549"},
	{Season: 2019, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/de-beste-2019-5-km-kvinner/1530239"},
	{Season: 2018, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/de-beste-2018-5-km-kvinner/1530190"},
	{Season: 2017, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/de-beste-2017-5-km-kvinner/1530458"},
	{Season: 2016, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/de-beste-2016-5-km-kvinner/1530764"},
	// No usable source page for 2015 women's 5 km.
	{Season: 2014, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2014-5-km-kvinner/1529705"},
	{Season: 2013, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2013-5-km-kvinner/1530122"},
	{Season: 2012, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2012-5-km-kvinner/1530020"},
	{Season: 2011, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2011-5-km-kvinner/1530223"},
	{Season: 2010, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/a/4769524"},
	{Season: 2009, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/a/4628497"},
	{Season: 2008, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/a/4628499"},
	{Season: 2007, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/a/4628502"},
	{Season: 2006, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/a/4628503"},
	{Season: 2005, Gender: record.Women, EventNo: "5 km gateløp", URL: "https://www.kondis.no/a/4628504"},
	// 5 km (Men)
	{Season: 2025, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2025-5-km-menn/469161"},
	{Season: 2024, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2024-5-km-menn/469056"},
	{Season: 2023, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2023-5-km-menn/469195"},
	{Season: 2022, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2022-5-km-menn/469435"},
	{Season: 2021, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2021-5-km-menn/469099"},
	{Season: 2020, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2020-5-km-menn/469718"},
	{Season: 2019, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/de-beste-2019-5-km-menn/1530325"},
	{Season: 2018, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/de-beste-2018-5-km-menn/1530960"},
	{Season: 2017, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/de-beste-2017-5-km-menn/1529840"},
	{Season: 2016, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/de-beste-2016-5-km-menn/1529481"},
	{Season: 2015, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2015-5-km-menn/1529534"},
	{Season: 2014, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2014-5-km-menn/1530301"},
	{Season: 2013, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2013-5-km-menn/1529659"},
	{Season: 2012, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2012-5-km-menn/1529910"},
	{Season: 2011, Gender: record.Men, EventNo: "5 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2011-5-km-menn/1530603"},
	// 10 km (Women)
	{Season: 2025, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2025-10-km-kvinner/469281"},
	{Season: 2024, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2024-10-km-kvinner/469743"},
	{Season: 2023, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2023-10-km-kvinner/469252"},
	{Season: 2022, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2022-10-km-kvinner/469414"},
	{Season: 2021, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2021-10-km-kvinner/469372"},
	{Season: 2020, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2020-10-km-kvinner/469037"},
	{Season: 2019, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/de-beste-2019-10-km-kvinner/1529842"},
	{Season: 2018, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/de-beste-2018-10-km-kvinner/1530884"},
	{Season: 2017, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/de-beste-2017-10-km-kvinner/1530320"},
	{Season: 2016, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/de-beste-2016-10-km-kvinner/1529621"},
	{Season: 2015, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2015-10-km-kvinner/1530945"},
	{Season: 2014, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2014-10-km-kvinner/1529956"},
	{Season: 2013, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2013-10-km-kvinner/1530716"},
	{Season: 2012, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2012-10-km-kvinner/1530617"},
	{Season: 2011, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2011-10-km-kvinner/1530169"},
	{Season: 2010, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4800243"},
	{Season: 2009, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628387"},
	{Season: 2008, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628484"},
	{Season: 2007, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628485"},
	{Season: 2006, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628486"},
	{Season: 2005, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628487"},
	{Season: 2004, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628489"},
	{Season: 2003, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628490"},
	{Season: 2002, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628491"},
	{Season: 2001, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628492"},
	{Season: 2000, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628493"},
	{Season: 1999, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628494"},
	{Season: 1998, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628495"},
	{Season: 1997, Gender: record.Women, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4628496"},
	// 10 km (Men)
	{Season: 2025, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2025-10-km-menn/469622"},
	{Season: 2024, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2024-10-km-menn/469602"},
	{Season: 2023, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2023-10-km-menn/469696"},
	{Season: 2022, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2022-10-km-menn/469546"},
	{Season: 2021, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2021-10-km-menn/469670"},
	{Season: 2020, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/de-beste-2020-10-km-menn/469156"},
	{Season: 2019, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/de-beste-2019-10-km-menn/1530487"},
	{Season: 2018, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/de-beste-2018-10-km-menn/1530891"},
	{Season: 2017, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/de-beste-2017-10-km-menn/1530089"},
	{Season: 2016, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/de-beste-2016-10-km-menn/1529822"},
	{Season: 2015, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2015-10-km-menn/1530203"},
	// No usable source page for 2014 men's 10 km.
	{Season: 2013, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2013-10-km-menn/1530855"},
	{Season: 2012, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2012-10-km-menn/1529446"},
	{Season: 2011, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2011-10-km-menn/1529468"},
	{Season: 2010, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4800244"},
	{Season: 2009, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627781"},
	{Season: 2008, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627783"},
	{Season: 2007, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627784"},
	{Season: 2006, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627785"},
	{Season: 2005, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627786"},
	{Season: 2004, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627787"},
	{Season: 2003, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627788"},
	{Season: 2002, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627789"},
	{Season: 2001, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627790"},
	{Season: 2000, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627791"},
	{Season: 1999, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627792"},
	{Season: 1998, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627793"},
	{Season: 1997, Gender: record.Men, EventNo: "10 km gateløp", URL: "https://www.kondis.no/a/4627794"},
	// Half marathon (Women)
	{Season: 2025, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2025-halvmaraton-kvinner/469010"},
	{Season: 2024, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2024-halvmaraton-kvinner/469698"},
	{Season: 2023, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2023-halvmaraton-kvinner/469012"},
	{Season: 2022, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2022-halvmaraton-kvinner/469443"},
	{Season: 2021, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2021-halvmaraton-kvinner/469109"},
	{Season: 2020, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2020-halvmaraton-kvinner/469203"},
	{Season: 2019, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/de-beste-2019-halvmaraton-kvinner/1530369"},
	{Season: 2018, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/de-beste-2018-halvmaraton-kvinner/1530757"},
	{Season: 2017, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/de-beste-2017-halvmaraton-kvinner/1530538"},
	{Season: 2016, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/de-beste-2016-halvmaraton-kvinner/1530055"},
	{Season: 2015, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2015-halvmaraton-kvinner/1529650"},
	{Season: 2014, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2014-halvmaraton-kvinner/1530255"},
	{Season: 2013, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2013-halvmaraton-kvinner/1530037"},
	{Season: 2012, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2012-halvmaraton-kvinner/1529698"},
	{Season: 2011, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2011-halvmaraton-kvinner/1529392"},
	{Season: 2010, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4760450"},
	{Season: 2009, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627953"},
	{Season: 2008, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627954"},
	{Season: 2007, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627955"},
	{Season: 2006, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627956"},
	{Season: 2005, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627957"},
	{Season: 2004, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627958"},
	{Season: 2003, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627959"},
	{Season: 2002, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627960"},
	{Season: 2001, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627962"},
	{Season: 2000, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627964"},
	{Season: 1999, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627965"},
	{Season: 1998, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627967"},
	{Season: 1997, Gender: record.Women, EventNo: "Halvmaraton", URL: "https://www.kondis.no/a/4627968"},
	// Half marathon (Men)
	{Season: 2025, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2025-halvmaraton-menn/469692"},
	{Season: 2024, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2024-halvmaraton-menn/469467"},
	{Season: 2023, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2023-halvmaraton-menn/469245"},
	{Season: 2022, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2022-halvmaraton-menn/469760"},
	{Season: 2021, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2021-halvmaraton-menn/469188"},
	{Season: 2020, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/de-beste-2020-halvmaraton-menn/469429"},
	{Season: 2019, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/de-beste-2019-halvmaraton-menn/1529640"},
	{Season: 2018, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/de-beste-2018-halvmaraton-menn/1530408"},
	// The only known URL for 2017 men's halvmaraton serves unrelated results.
	// Kept disabled so sync still purges anything ingested from it earlier.
	{Season: 2017, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/index.php?id=5947377", Disabled: true},
	{Season: 2016, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/de-beste-2016-halvmaraton-menn/1529724"},
	// No usable source page for 2015 men's half marathon.
	{Season: 2014, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2014-halvmaraton-menn/1530327"},
	{Season: 2013, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2013-halvmaraton-menn/1530936"},
	{Season: 2012, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2012-halvmaraton-menn/1530956"},
	{Season: 2011, Gender: record.Men, EventNo: "Halvmaraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2011-halvmaraton-menn/1530673"},
	// Marathon (Women)
	{Season: 2025, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2025-maraton-kvinner/469517"},
	{Season: 2024, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2024-maraton-kvinner/469539"},
	{Season: 2023, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2023-maraton-kvinner/469199"},
	{Season: 2022, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2022-maraton-kvinner/469311"},
	{Season: 2021, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2021-maraton-kvinner/469704"},
	{Season: 2020, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2020-maraton-kvinner/469438"},
	{Season: 2019, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/de-beste-2019-maraton-kvinner/1530231"},
	{Season: 2018, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/de-beste-2018-maraton-kvinner/1530062"},
	{Season: 2017, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/de-beste-2017-maraton-kvinner/1530701"},
	{Season: 2016, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/de-beste-2016-maraton-kvinner/1529960"},
	// No usable source page for 2015 women's marathon.
	{Season: 2014, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2014-maraton-kvinner/1530975"},
	{Season: 2013, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2013-maraton-kvinner/1530211"},
	{Season: 2012, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2012-maraton-kvinner/1530329"},
	{Season: 2011, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2011-maraton-kvinner/1529618"},
	{Season: 2010, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4750660"},
	{Season: 2009, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627922"},
	{Season: 2008, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627941"},
	{Season: 2007, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627942"},
	{Season: 2006, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627943"},
	{Season: 2005, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627944"},
	{Season: 2004, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627945"},
	{Season: 2003, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627946"},
	{Season: 2002, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627947"},
	{Season: 2001, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627948"},
	{Season: 2000, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627949"},
	{Season: 1999, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627950"},
	{Season: 1998, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627951"},
	{Season: 1997, Gender: record.Women, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627952"},
	// Marathon (Men)
	{Season: 2025, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2025-maraton-menn/469051"},
	{Season: 2024, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2024-maraton-menn/469657"},
	{Season: 2023, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2023-maraton-menn/469687"},
	{Season: 2022, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2022-maraton-menn/469694"},
	{Season: 2021, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2021-maraton-menn/469604"},
	{Season: 2020, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/de-beste-2020-maraton-menn/469589"},
	{Season: 2019, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/de-beste-2019-maraton-menn/1529965"},
	{Season: 2018, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/de-beste-2018-maraton-menn/1529589"},
	{Season: 2017, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/de-beste-2017-maraton-menn/1530110"},
	{Season: 2016, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/de-beste-2016-maraton-menn/1529759"},
	{Season: 2015, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2015-maraton-menn/1530248"},
	{Season: 2014, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2014-maraton-menn/1530640"},
	{Season: 2013, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2013-maraton-menn/1530278"},
	{Season: 2012, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2012-maraton-menn/1530778"},
	{Season: 2011, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/statistikk/norgesstatistikk-2011-maraton-menn/1530305"},
	{Season: 2010, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4750579"},
	{Season: 2009, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627318"},
	{Season: 2008, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627736"},
	{Season: 2007, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627737"},
	{Season: 2006, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627738"},
	{Season: 2005, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627740"},
	{Season: 2004, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627742"},
	{Season: 2003, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627743"},
	{Season: 2002, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627744"},
	{Season: 2001, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627753"},
	{Season: 2000, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627760"},
	{Season: 1999, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627761"},
	{Season: 1998, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627762"},
	{Season: 1997, Gender: record.Men, EventNo: "Maraton", URL: "https://www.kondis.no/a/4627763"},
}

// RoadPagesFor filters the road catalog by season set and gender. An empty
// gender matches both. Disabled pages are included; callers decide whether
// to purge or skip them.
func RoadPagesFor(years map[int]bool, gender record.Gender) []RoadPage {
	var out []RoadPage
	for _, p := range RoadPages {
		if !years[p.Season] {
			continue
		}
		if gender != "" && p.Gender != gender {
			continue
		}
		out = append(out, p)
	}
	return out
}
